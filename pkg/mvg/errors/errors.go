// Package errors holds the sentinel errors shared by the mvg stage tooling.
package errors

import "errors"

var (
	// Configuration errors ⚙️
	ErrInvalidConfiguration = errors.New("❌ invalid stage configuration")
	ErrMissingArgument      = errors.New("❌ missing required argument")

	// Filesystem errors 📁
	ErrDirectoryUnavailable = errors.New("❌ output directory unavailable")

	// Persistence errors 💾
	ErrDescriberCorrupt = errors.New("❌ corrupt image describer file")

	// Collaborator errors 🔌
	ErrEngineUnavailable = errors.New("❌ no engine registered for stage")

	// Plan errors 🗺️
	ErrPlanInvalid = errors.New("❌ invalid pipeline plan")
)
