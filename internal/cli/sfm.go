package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// NewSfMCommand creates the structure from motion command.
func NewSfMCommand(opts Options) *cobra.Command {
	in := stage.DefaultSfMInputs()

	cmd := newCommand(opts, "mvg-sfm", "Reconstruct camera poses and structure from matches",
		func(cmd *cobra.Command, env *Env) error {
			rec, err := env.Builder.SfM(in)
			if err != nil {
				return err
			}
			return env.Dispatch(cmd.Context(), rec)
		})

	f := cmd.Flags()
	f.StringVarP(&in.InputFile, "input_file", "i", "", "Input scene description (required)")
	f.StringVarP(&in.MatchDir, "match_dir", "m", "", "Directory holding regions and matches")
	f.StringVarP(&in.MatchFile, "match_file", "M", "", "Match file, defaults to matches.f.txt/bin or matches.e.txt/bin")
	f.StringVarP(&in.OutputDir, "output_dir", "o", "", "Output directory (required)")
	f.StringVarP(&in.Engine, "sfm_engine", "s", stage.DefaultEngine, "INCREMENTAL, INCREMENTALV2, GLOBAL, STELLAR")

	f.StringVarP(&in.RefineIntrinsics, "refine_intrinsic_config", "f", stage.DefaultRefineIntrinsics,
		"NONE, or ADJUST_ALL, or a | list of ADJUST_FOCAL_LENGTH, ADJUST_PRINCIPAL_POINT, ADJUST_DISTORTION")
	f.StringVarP(&in.RefineExtrinsics, "refine_extrinsic_config", "e", stage.DefaultRefineExtrinsics,
		"NONE, or ADJUST_ALL, or a | list of ADJUST_ROTATION, ADJUST_TRANSLATION")
	f.BoolVarP(&in.UsePriors, "prior_usage", "P", false, "Use pose priors")

	f.IntVarP(&in.Triangulation, "triangulation_method", "t", stage.DefaultTriangulation,
		"1 DLT, 2 L1 angular, 3 LInfinity angular, 4 inverse depth weighted midpoint, 5 default")
	f.IntVarP(&in.Resection, "resection_method", "r", stage.DefaultResection,
		"0 DLT 6 points, 1 P3P Ke, 2 P3P Kneip, 3 P3P Nordberg, 4 UP2P Kukelova")
	f.IntVarP(&in.CameraModel, "camera_model", "c", stage.DefaultSfMCamera,
		"Model for views with unknown intrinsics: 1 pinhole, 2 radial1, 3 radial3, 4 brown, 5 fisheye, 7 spherical")

	f.StringVarP(&in.Initializer, "sfm_initializer", "S", stage.DefaultInitializer,
		"EXISTING_POSE, MAX_PAIR, AUTO_PAIR, STELLAR")
	f.StringVarP(&in.InitialPairA, "initial_pair_a", "a", "", "First image of the initial pair")
	f.StringVarP(&in.InitialPairB, "initial_pair_b", "b", "", "Second image of the initial pair")

	f.IntVarP(&in.RotationAveraging, "rotationAveraging", "R", stage.DefaultRotationAveraging, "1 L1, 2 L2")
	f.IntVarP(&in.TranslationAveraging, "translationAveraging", "T", stage.DefaultTranslationAveraging,
		"1 L1, 2 L2 chordal, 3 soft L1, 4 LiGT")

	f.StringVarP(&in.GraphSimplification, "graph_simplification", "G", stage.DefaultGraphSimplification,
		"NONE, MST_X, STAR_X")
	f.IntVarP(&in.GraphSimplificationValue, "graph_simplification_value", "g", stage.DefaultGraphSimplificationValue,
		"Graph simplification factor, > 1")

	markRequired(cmd, "input_file", "output_dir")
	return cmd
}
