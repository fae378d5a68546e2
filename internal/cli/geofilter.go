package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// NewGeometricFilterCommand creates the geometric filtering command.
func NewGeometricFilterCommand(opts Options) *cobra.Command {
	in := stage.DefaultGeometricFilterInputs()

	cmd := newCommand(opts, "mvg-geofilter", "Filter putative matches with a robust geometric model",
		func(cmd *cobra.Command, env *Env) error {
			rec, err := env.Builder.GeometricFilter(in)
			if err != nil {
				return err
			}
			return runRecord(cmd.Context(), env, rec, cmd.Flags())
		})

	f := cmd.Flags()
	f.StringVarP(&in.InputFile, "input_file", "i", "", "Input scene description (required)")
	f.StringVarP(&in.OutputFile, "output_file", "o", "", "Output filtered matches file (required)")
	f.StringVarP(&in.Matches, "matches", "m", "", "Putative matches file (required)")
	f.StringVarP(&in.InputPairs, "input_pairs", "p", "", "Restrict filtering to these pairs")
	f.StringVarP(&in.OutputPairs, "output_pairs", "s", "", "Write the surviving pairs here")
	f.StringVarP(&in.GeometricModel, "geometric_model", "g", stage.DefaultGeometricModel,
		"f fundamental, e essential, h homography, a essential angular, u essential upright, o essential ortho")
	f.BoolVarP(&in.Force, "force", "f", false, "Recompute data even if it exists")
	f.BoolVarP(&in.GuidedMatching, "guided_matching", "r", false, "Refine matches with the estimated model")
	f.IntVarP(&in.MaxIterations, "max_iteration", "I", stage.DefaultMaxIterations, "Maximum robust estimation iterations")
	f.IntVarP(&in.CacheSize, "cache_size", "c", stage.DefaultCacheSize, "Region cache size in views, 0 for unlimited")

	// Checked in this order by the builder as well.
	markRequired(cmd, "output_file", "input_file", "matches")
	return cmd
}
