package workdir

import (
	"fmt"
	"os"
)

// DirStatus is the outcome of preparing an output directory.
type DirStatus int

const (
	DirFailed  DirStatus = iota // Missing and could not be created
	DirExists                   // Already present
	DirCreated                  // Created by this call
)

// String returns the status name.
func (s DirStatus) String() string {
	switch s {
	case DirExists:
		return "exists"
	case DirCreated:
		return "created"
	default:
		return "failed"
	}
}

// Ensure makes sure path is a directory, creating it with its parents if it
// is missing. A path that exists but is not a directory fails.
func Ensure(fsys FileSystem, path string) (DirStatus, error) {
	return EnsureMode(fsys, path, DefaultDirPerms)
}

// EnsureMode is Ensure with an explicit permission for created directories.
func EnsureMode(fsys FileSystem, path string, perm os.FileMode) (DirStatus, error) {
	if path == "" {
		return DirFailed, fmt.Errorf("empty directory path")
	}

	if info, err := fsys.Stat(path); err == nil {
		if !info.IsDir() {
			return DirFailed, fmt.Errorf("%s exists and is not a directory", path)
		}
		return DirExists, nil
	} else if !os.IsNotExist(err) {
		return DirFailed, fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	if err := fsys.MkdirAll(path, perm); err != nil {
		return DirFailed, fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return DirCreated, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is not a directory.
func IsFile(fsys FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
