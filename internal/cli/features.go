package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// NewFeaturesCommand creates the feature computation command.
func NewFeaturesCommand(opts Options) *cobra.Command {
	in := stage.DefaultFeaturesInputs()

	cmd := newCommand(opts, "mvg-features", "Compute image regions for every view of a scene",
		func(cmd *cobra.Command, env *Env) error {
			rec, err := env.Builder.Features(in)
			if err != nil {
				return err
			}
			return runRecord(cmd.Context(), env, rec, cmd.Flags())
		})

	f := cmd.Flags()
	f.StringVarP(&in.InputFile, "input_file", "i", "", "Input scene description (required)")
	f.StringVarP(&in.OutputDir, "outdir", "o", "", "Output directory for regions (required)")
	f.StringVarP(&in.DescriberMethod, "describerMethod", "m", stage.DefaultDescriberMethod,
		"Describer: SIFT, SIFT_ANATOMY, AKAZE_FLOAT, AKAZE_MLDB")
	f.BoolVarP(&in.Upright, "upright", "u", false, "Use upright features")
	f.BoolVarP(&in.Force, "force", "f", false, "Recompute data even if it exists")
	f.StringVarP(&in.DescriberPreset, "describerPreset", "p", stage.DefaultDescriberPreset,
		"Preset: NORMAL, HIGH, ULTRA")
	f.IntVarP(&in.NumThreads, "numThreads", "n", stage.DefaultThreadCount, "Worker threads, 0 for one per core")

	markRequired(cmd, "input_file", "outdir")
	return cmd
}
