package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// NewPairsCommand creates the pair generation command.
func NewPairsCommand(opts Options) *cobra.Command {
	in := stage.DefaultPairsInputs()

	cmd := newCommand(opts, "mvg-pairs", "Generate the list of image pairs to match",
		func(cmd *cobra.Command, env *Env) error {
			rec, err := env.Builder.Pairs(in)
			if err != nil {
				return err
			}
			return env.Dispatch(cmd.Context(), rec)
		})

	f := cmd.Flags()
	f.StringVarP(&in.InputFile, "input_file", "i", "", "Input scene description (required)")
	f.StringVarP(&in.OutputFile, "output_file", "o", "", "Output pair list (required)")
	f.StringVarP(&in.PairMode, "pair_mode", "m", stage.DefaultPairMode, "Pair mode: EXHAUSTIVE, CONTIGUOUS")
	f.IntVarP(&in.ContiguousCount, "contiguous_count", "c", stage.DefaultContiguousCount,
		"Number of contiguous links, required with CONTIGUOUS")

	markRequired(cmd, "input_file", "output_file")
	return cmd
}
