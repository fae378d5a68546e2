// Package cli builds the cobra commands of the mvg stage binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/provide-io/mvg/go/mvg/internal/settings"
	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/logging"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/describer"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/engine"
	mvgerrors "github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// Env is what a stage command needs once common flags are processed.
type Env struct {
	Logger     hclog.Logger
	Settings   settings.Settings
	FS         workdir.FileSystem
	Builder    *stage.Builder
	Dispatcher *engine.Dispatcher
	RunID      string
}

// Dispatch hands rec to its engine. Without a registered engine the stage
// stops after validation with a warning.
func (e *Env) Dispatch(ctx context.Context, rec stage.Record) error {
	err := e.Dispatcher.Dispatch(ctx, rec)
	if errors.Is(err, mvgerrors.ErrEngineUnavailable) {
		e.Logger.Warn("⚠️ Configuration is valid but no engine is registered", "stage", rec.Stage(), "reason", err)
		return nil
	}
	return err
}

// runRecord performs what follows a successful build of rec and dispatches
// it. A new describer is saved; a restored one makes the describer flags
// in flags void. Matching and filtering are skipped when their output exists
// unless forced. flags may be nil.
func runRecord(ctx context.Context, env *Env, rec stage.Record, flags *pflag.FlagSet) error {
	switch r := rec.(type) {
	case stage.FeaturesRecord:
		if !r.Restored() {
			if err := describer.Save(env.FS, r.OutputDir(), r.Describer()); err != nil {
				return err
			}
			break
		}
		if flags != nil {
			for _, name := range changed(flags, "describerMethod", "describerPreset", "upright") {
				env.Logger.Warn("⚠️ Ignoring flag, describer restored from previous run",
					"flag", name, "file", describer.Path(r.OutputDir()))
			}
		}
	case stage.MatchingRecord:
		if !r.Force() && env.FS.Exists(r.OutputFile()) {
			env.Logger.Info("✅ Matches already computed, use --force to recompute", "output_file", r.OutputFile())
			return nil
		}
	case stage.GeometricFilterRecord:
		if !r.Force() && env.FS.Exists(r.OutputFile()) {
			env.Logger.Info("✅ Filtered matches already computed, use --force to recompute", "output_file", r.OutputFile())
			return nil
		}
	}
	return env.Dispatch(ctx, rec)
}

// Options configure how commands are constructed.
type Options struct {
	Collaborators engine.Collaborators
	FS            workdir.FileSystem
	LogOutput     io.Writer
}

type commonFlags struct {
	logLevel     string
	settingsFile string
	version      bool
}

// newCommand creates a stage command with the common flags. run is called
// with a ready Env unless --version was given.
func newCommand(opts Options, use, short string, run func(cmd *cobra.Command, env *Env) error) *cobra.Command {
	var common commonFlags

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if common.version {
				printVersion(cmd.OutOrStdout(), use)
				return nil
			}
			env, err := newEnv(opts, use, common)
			if err != nil {
				return err
			}
			return run(cmd, env)
		},
	}

	cmd.Flags().StringVar(&common.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&common.settingsFile, "config", "", "Settings file (defaults to $MVG_CONFIG)")
	cmd.Flags().BoolVarP(&common.version, "version", "V", false, "Show version information")
	return cmd
}

func newEnv(opts Options, name string, common commonFlags) (*Env, error) {
	s, err := settings.Load(common.settingsFile)
	if err != nil {
		return nil, err
	}
	if common.logLevel != "" {
		s.LogLevel = common.logLevel
	}

	output := opts.LogOutput
	if output == nil {
		output = os.Stderr
	}
	runID := uuid.NewString()
	logger := logging.NewLogger(name, s.LogLevel, s.JSONLog, output).With("run_id", runID)

	fsys := opts.FS
	if fsys == nil {
		fsys = workdir.OSFileSystem{}
	}

	return &Env{
		Logger:     logger,
		Settings:   s,
		FS:         fsys,
		Builder:    stage.NewBuilder(fsys, logger, s.Stage()),
		Dispatcher: engine.NewDispatcher(opts.Collaborators, fsys, logger),
		RunID:      runID,
	}, nil
}

// changed returns the names among names that were set on the command line.
func changed(f *pflag.FlagSet, names ...string) []string {
	var set []string
	for _, name := range names {
		if f.Changed(name) {
			set = append(set, name)
		}
	}
	return set
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

// Run executes cmd with args and returns the process exit code. A leading
// --version or -V is handled before flag parsing so required flags do not
// get in the way.
func Run(cmd *cobra.Command, args []string) int {
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-V") {
		printVersion(cmd.OutOrStdout(), cmd.Name())
		return ExitSuccess
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if code := ExitCode(err); code != ExitSuccess {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return code
		}
	}
	return ExitSuccess
}
