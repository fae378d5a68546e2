package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/internal/plan"
)

type planFlags struct {
	path        string
	execute     bool
	concurrency int
}

// NewPlanCommand creates the command validating a whole pipeline plan and,
// with --execute, running its stages in order.
func NewPlanCommand(opts Options) *cobra.Command {
	var pf planFlags

	cmd := newCommand(opts, "mvg-plan", "Validate a pipeline plan and optionally run its stages",
		func(cmd *cobra.Command, env *Env) error {
			ctx := cmd.Context()
			p, err := plan.NewFileLoader(env.FS, pf.path).Load(ctx)
			if err != nil {
				return err
			}
			report, err := plan.NewRunner(env.Builder, env.Logger, pf.concurrency).Validate(ctx, p)
			if err != nil {
				return err
			}
			if !pf.execute {
				env.Logger.Info("✅ Plan is valid, use --execute to run it", "plan", report.Name, "steps", len(report.Results))
				return nil
			}

			for i, rec := range report.Records() {
				env.Logger.Info("🚀 Running step", "step", report.Results[i].ID, "stage", rec.Stage())
				if err := runRecord(ctx, env, rec, nil); err != nil {
					return err
				}
			}
			return nil
		})

	f := cmd.Flags()
	f.StringVarP(&pf.path, "plan", "p", "", "Pipeline plan file (required)")
	f.BoolVarP(&pf.execute, "execute", "x", false, "Run the stages after validation")
	f.IntVarP(&pf.concurrency, "concurrency", "j", plan.DefaultConcurrency, "Steps validated in parallel")

	markRequired(cmd, "plan")
	return cmd
}
