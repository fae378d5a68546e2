package cli

import (
	"github.com/spf13/cobra"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// NewListingCommand creates the image listing command.
func NewListingCommand(opts Options) *cobra.Command {
	in := stage.DefaultListingInputs()
	groupCameraModel := 1

	cmd := newCommand(opts, "mvg-listing", "Create the initial scene description from an image directory",
		func(cmd *cobra.Command, env *Env) error {
			in.GroupCameraModel = groupCameraModel != 0

			rec, err := env.Builder.Listing(in)
			if err != nil {
				return err
			}
			return env.Dispatch(cmd.Context(), rec)
		})

	f := cmd.Flags()
	f.StringVarP(&in.ImageDir, "imageDirectory", "i", "", "Image directory (required)")
	f.StringVarP(&in.SensorWidthDatabase, "sensorWidthDatabase", "d", "", "Camera sensor width database")
	f.StringVarP(&in.OutputDir, "outputDirectory", "o", "", "Output directory (required)")
	f.Float64VarP(&in.Focal, "focal", "f", stage.DefaultFocal, "Focal length in pixels")
	f.StringVarP(&in.KMatrix, "intrinsics", "k", "", `K matrix "f;0;ppx;0;f;ppy;0;0;1"`)
	f.IntVarP(&in.CameraModel, "camera_model", "c", stage.DefaultListingCamera,
		"Camera model: 1 pinhole, 2 radial1, 3 radial3, 4 brown, 5 fisheye, 7 spherical")
	f.IntVarP(&groupCameraModel, "group_camera_model", "g", 1, "Group views sharing camera intrinsics (0 or 1)")
	f.BoolVarP(&in.UsePosePrior, "use_pose_prior", "P", false, "Use pose priors when available")
	f.StringVarP(&in.PriorWeights, "prior_weights", "W", stage.DefaultPriorWeights, `Pose prior weights "wx;wy;wz"`)
	f.IntVarP(&in.GPSConversion, "gps_to_xyz_method", "m", stage.DefaultGPSConversion, "GPS conversion: 0 ECEF, 1 UTM")

	markRequired(cmd, "imageDirectory", "outputDirectory")
	return cmd
}
