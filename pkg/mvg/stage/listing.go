package stage

import (
	"path/filepath"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// ListingInputs are the raw arguments of the image listing stage.
type ListingInputs struct {
	ImageDir            string  `yaml:"imageDirectory"`
	SensorWidthDatabase string  `yaml:"sensorWidthDatabase"`
	OutputDir           string  `yaml:"outputDirectory"`
	Focal               float64 `yaml:"focal"`      // DefaultFocal when unknown
	KMatrix             string  `yaml:"intrinsics"` // "f;0;ppx;0;f;ppy;0;0;1"
	CameraModel         int     `yaml:"camera_model"`
	GroupCameraModel    bool    `yaml:"group_camera_model"`
	UsePosePrior        bool    `yaml:"use_pose_prior"`
	PriorWeights        string  `yaml:"prior_weights"`
	GPSConversion       int     `yaml:"gps_to_xyz_method"`
}

// DefaultListingInputs returns inputs holding every listing default.
func DefaultListingInputs() ListingInputs {
	return ListingInputs{
		Focal:            DefaultFocal,
		CameraModel:      DefaultListingCamera,
		GroupCameraModel: DefaultGroupCameraModel,
		PriorWeights:     DefaultPriorWeights,
		GPSConversion:    DefaultGPSConversion,
	}
}

// ListingRecord is the validated image listing configuration.
type ListingRecord struct {
	imageDir         string
	sensorDB         string
	outputDir        string
	focal            float64
	kMatrix          options.KMatrix
	hasKMatrix       bool
	camera           options.CameraModel
	groupCameraModel bool
	usePosePrior     bool
	priorWeights     options.PriorWeights
	gps              options.GPSConversion
}

func (ListingRecord) Stage() Name { return StageListing }

func (r ListingRecord) ImageDir() string                   { return r.imageDir }
func (r ListingRecord) SensorWidthDatabase() string        { return r.sensorDB }
func (r ListingRecord) OutputDir() string                  { return r.outputDir }
func (r ListingRecord) Camera() options.CameraModel        { return r.camera }
func (r ListingRecord) GroupCameraModel() bool             { return r.groupCameraModel }
func (r ListingRecord) UsePosePrior() bool                 { return r.usePosePrior }
func (r ListingRecord) GPS() options.GPSConversion         { return r.gps }
func (r ListingRecord) SfMDataPath() string                { return filepath.Join(r.outputDir, SfMDataFileName) }
func (r ListingRecord) PriorWeights() options.PriorWeights { return r.priorWeights }

// Focal returns the focal length in pixels and whether it is known, either
// given directly or taken from the K matrix.
func (r ListingRecord) Focal() (float64, bool) {
	if r.hasKMatrix {
		return r.kMatrix.Focal, true
	}
	return r.focal, r.focal != DefaultFocal
}

// KMatrix returns the K matrix entries when one was given.
func (r ListingRecord) KMatrix() (options.KMatrix, bool) {
	return r.kMatrix, r.hasKMatrix
}

// Listing validates in and builds the image listing record. The output
// directory is created when missing.
func (b *Builder) Listing(in ListingInputs) (ListingRecord, error) {
	camera := options.CameraModelFromInt(in.CameraModel)
	gps := options.GPSConversionFromInt(in.GPSConversion)

	checks := []check{
		required("imageDirectory", in.ImageDir),
		verdict("imageDirectory", func() validate.Verdict {
			return validate.ExistingDirectory(b.fs, "input", in.ImageDir)
		}),
		required("outputDirectory", in.OutputDir),
		verdict("camera_model", func() validate.Verdict { return validate.CameraModel(camera) }),
		verdict("gps_to_xyz_method", func() validate.Verdict { return validate.GPSConversion(gps) }),
		verdict("intrinsics", func() validate.Verdict { return validate.KMatrix(in.KMatrix) }),
		verdict("focal", func() validate.Verdict {
			return validate.FocalExclusive(in.Focal != DefaultFocal, in.KMatrix != "")
		}),
		verdict("sensorWidthDatabase", func() validate.Verdict {
			return validate.ExistingFile(b.fs, "sensor width database", in.SensorWidthDatabase)
		}),
		verdict("prior_weights", func() validate.Verdict {
			if !in.UsePosePrior {
				return validate.Pass
			}
			return validate.PriorWeights(in.PriorWeights)
		}),
		b.outputDir("outputDirectory", in.OutputDir),
	}
	if err := b.runChecks(StageListing, checks); err != nil {
		return ListingRecord{}, err
	}

	rec := ListingRecord{
		imageDir:         in.ImageDir,
		sensorDB:         in.SensorWidthDatabase,
		outputDir:        in.OutputDir,
		focal:            in.Focal,
		camera:           camera,
		groupCameraModel: in.GroupCameraModel,
		usePosePrior:     in.UsePosePrior,
		priorWeights:     options.DefaultPriorWeights,
		gps:              gps,
	}
	if in.KMatrix != "" {
		rec.kMatrix, rec.hasKMatrix = options.ParseKMatrix(in.KMatrix)
	}
	if in.UsePosePrior {
		rec.priorWeights, _ = options.ParsePriorWeights(in.PriorWeights)
	}

	focal, focalKnown := rec.Focal()
	b.logger.Info("📷 You called image listing",
		"imageDirectory", rec.imageDir,
		"sensorWidthDatabase", rec.sensorDB,
		"outputDirectory", rec.outputDir,
		"focal", focal,
		"focal_known", focalKnown,
		"camera_model", rec.camera.String(),
		"group_camera_model", rec.groupCameraModel,
		"use_pose_prior", rec.usePosePrior,
		"gps_to_xyz_method", rec.gps.String(),
	)
	return rec, nil
}
