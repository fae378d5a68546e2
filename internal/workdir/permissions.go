package workdir

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default permissions of stage outputs.
const (
	DefaultFilePerms os.FileMode = 0o644
	DefaultDirPerms  os.FileMode = 0o755
)

// ParseMode parses an octal permission string such as "755", "0755" or
// "0o755". An empty string yields fallback.
func ParseMode(s string, fallback os.FileMode) (os.FileMode, error) {
	if s == "" {
		return fallback, nil
	}

	trimmed := strings.TrimPrefix(s, "0o")
	trimmed = strings.TrimPrefix(trimmed, "0")
	if trimmed == "" {
		return 0, nil
	}

	val, err := strconv.ParseUint(trimmed, 8, 12)
	if err != nil {
		return fallback, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	return os.FileMode(val), nil
}

// FormatMode formats a permission value as an octal string.
func FormatMode(mode os.FileMode) string {
	return fmt.Sprintf("0%o", mode.Perm())
}
