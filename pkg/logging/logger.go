package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when neither a flag nor the environment selects a level.
const DefaultLevel = "info"

// linePrefix marks human-readable output from the stage tools.
const linePrefix = "📷 "

// NewLogger creates an hclog logger with the settings shared by every stage binary.
// JSON output is written unprefixed so it stays machine-readable.
func NewLogger(name string, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel maps a level name to an hclog level, falling back to DefaultLevel
// for empty or unknown names.
func ParseLevel(level string) hclog.Level {
	parsed := hclog.LevelFromString(strings.TrimSpace(level))
	if parsed == hclog.NoLevel {
		return hclog.LevelFromString(DefaultLevel)
	}
	return parsed
}
