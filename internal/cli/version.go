package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"
)

// Version of the mvg tools.
const Version = "0.1.0"

// BuildTimestamp returns the VCS commit time embedded in the binary, falling
// back to the executable's modification time.
func BuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", name, Version)
	fmt.Fprintf(w, "Built: %s\n", BuildTimestamp())
}
