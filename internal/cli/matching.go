package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// NewMatchingCommand creates the putative matching command.
func NewMatchingCommand(opts Options) *cobra.Command {
	in := stage.DefaultMatchingInputs()

	cmd := newCommand(opts, "mvg-matches", "Compute putative feature matches between image pairs",
		func(cmd *cobra.Command, env *Env) error {
			in.UsePreemptive = cmd.Flags().Changed("preemptive_feature_count")

			rec, err := env.Builder.Matching(in)
			if err != nil {
				return err
			}
			return runRecord(cmd.Context(), env, rec, cmd.Flags())
		})

	f := cmd.Flags()
	f.StringVarP(&in.InputFile, "input_file", "i", "", "Input scene description (required)")
	f.StringVarP(&in.OutputFile, "output_file", "o", "", "Output matches file (required)")
	f.StringVarP(&in.PairList, "pair_list", "p", "", "Predefined pair list to match")
	f.Float64VarP(&in.Ratio, "ratio", "r", stage.DefaultDistanceRatio, "Nearest neighbour distance ratio")
	f.StringVarP(&in.Matcher, "nearest_matching_method", "n", stage.DefaultMatcher,
		"AUTO, BRUTEFORCEL2, ANNL2, CASCADEHASHINGL2, FASTCASCADEHASHINGL2, HNSWL2, HNSWL1, BRUTEFORCEHAMMING, HNSWHAMMING")
	f.BoolVarP(&in.Force, "force", "f", false, "Recompute data even if it exists")
	f.IntVarP(&in.CacheSize, "cache_size", "c", stage.DefaultCacheSize, "Region cache size in views, 0 for unlimited")
	f.IntVarP(&in.PreemptiveCount, "preemptive_feature_count", "P", stage.DefaultPreemptiveCount,
		"Features used for preemptive matching")

	markRequired(cmd, "input_file", "output_file")
	return cmd
}
