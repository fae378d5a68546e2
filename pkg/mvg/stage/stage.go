// Package stage builds the validated configuration record of each pipeline
// stage.
//
// A Builder runs the checks of a stage in a fixed order and stops at the
// first failure. On success it returns an immutable record; on failure it
// returns a *ValidationError and no record.
package stage

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// Name identifies a pipeline stage.
type Name string

const (
	StageListing         Name = "listing"
	StageFeatures        Name = "features"
	StagePairs           Name = "pairs"
	StageMatching        Name = "matching"
	StageGeometricFilter Name = "geometric_filter"
	StageSfM             Name = "sfm"
)

// Record is a validated stage configuration.
type Record interface {
	Stage() Name
}

// ValidationError reports the first check a stage configuration failed.
type ValidationError struct {
	Stage     Name
	Parameter string
	Message   string

	kind error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Stage, e.Parameter, e.Message)
}

// Unwrap exposes errors.ErrInvalidConfiguration and, when the failure has a
// more specific cause, that sentinel too.
func (e *ValidationError) Unwrap() []error {
	if e.kind == nil {
		return []error{errors.ErrInvalidConfiguration}
	}
	return []error{errors.ErrInvalidConfiguration, e.kind}
}

// Settings are the build level switches that affect validation.
type Settings struct {
	EnableLiGT bool        // Patented LiGT solver compiled in
	DirMode    os.FileMode // Permission of created output directories
}

// DefaultSettings returns the settings of a standard build.
func DefaultSettings() Settings {
	return Settings{DirMode: workdir.DefaultDirPerms}
}

// Builder validates stage inputs and assembles their records.
type Builder struct {
	fs       workdir.FileSystem
	logger   hclog.Logger
	settings Settings
}

// NewBuilder creates a Builder. A nil filesystem uses the OS and a nil
// logger discards output.
func NewBuilder(fsys workdir.FileSystem, logger hclog.Logger, settings Settings) *Builder {
	if fsys == nil {
		fsys = workdir.OSFileSystem{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if settings.DirMode == 0 {
		settings.DirMode = workdir.DefaultDirPerms
	}
	return &Builder{fs: fsys, logger: logger, settings: settings}
}

// Settings returns the builder settings.
func (b *Builder) Settings() Settings {
	return b.settings
}

// check is one named validation step.
type check struct {
	param string
	run   func() validate.Verdict
	kind  error
}

func required(name, value string) check {
	return check{
		param: name,
		run:   func() validate.Verdict { return validate.Required(name, value) },
		kind:  errors.ErrMissingArgument,
	}
}

func (b *Builder) outputDir(name, path string) check {
	return check{
		param: name,
		run:   func() validate.Verdict { return validate.OutputDirectoryMode(b.fs, path, b.settings.DirMode) },
		kind:  errors.ErrDirectoryUnavailable,
	}
}

func verdict(name string, fn func() validate.Verdict) check {
	return check{param: name, run: fn}
}

// runChecks stops at the first failing check.
func (b *Builder) runChecks(stage Name, checks []check) error {
	for _, c := range checks {
		v := c.run()
		if v.OK {
			continue
		}
		b.logger.Error("❌ Validation failed",
			"stage", stage,
			"parameter", c.param,
			"reason", v.Message,
		)
		return &ValidationError{Stage: stage, Parameter: c.param, Message: v.Message, kind: c.kind}
	}
	return nil
}
