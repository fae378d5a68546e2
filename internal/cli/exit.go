package cli

import (
	"errors"

	mvgerrors "github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitCode maps a command error to the process exit code. An unavailable
// engine after successful validation is not a failure.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, mvgerrors.ErrEngineUnavailable) {
		return ExitSuccess
	}
	return ExitFailure
}
