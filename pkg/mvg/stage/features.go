package stage

import (
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/describer"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// FeaturesInputs are the raw arguments of the feature computation stage.
type FeaturesInputs struct {
	InputFile       string `yaml:"input_file"`
	OutputDir       string `yaml:"outdir"`
	DescriberMethod string `yaml:"describerMethod"`
	DescriberPreset string `yaml:"describerPreset"`
	Upright         bool   `yaml:"upright"`
	Force           bool   `yaml:"force"`
	NumThreads      int    `yaml:"numThreads"`
}

// DefaultFeaturesInputs returns inputs holding every feature default.
func DefaultFeaturesInputs() FeaturesInputs {
	return FeaturesInputs{
		DescriberMethod: DefaultDescriberMethod,
		DescriberPreset: DefaultDescriberPreset,
		NumThreads:      DefaultThreadCount,
	}
}

// FeaturesRecord is the validated feature computation configuration.
type FeaturesRecord struct {
	inputFile  string
	outputDir  string
	describer  describer.Config
	restored   bool
	force      bool
	numThreads int
}

func (FeaturesRecord) Stage() Name { return StageFeatures }

func (r FeaturesRecord) InputFile() string           { return r.inputFile }
func (r FeaturesRecord) OutputDir() string           { return r.outputDir }
func (r FeaturesRecord) Describer() describer.Config { return r.describer }
func (r FeaturesRecord) Force() bool                 { return r.force }
func (r FeaturesRecord) NumThreads() int             { return r.numThreads }

// Restored reports whether the describer was read back from a previous run
// instead of being taken from the inputs.
func (r FeaturesRecord) Restored() bool { return r.restored }

// Features validates in and builds the feature computation record. Unless
// forced, an image_describer.json already in the output directory decides
// the describer and the method and preset inputs are ignored.
func (b *Builder) Features(in FeaturesInputs) (FeaturesRecord, error) {
	var (
		cfg      describer.Config
		restored bool
	)
	restore := !in.Force && describer.Exists(b.fs, in.OutputDir)

	checks := []check{
		required("input_file", in.InputFile),
		required("outdir", in.OutputDir),
		b.outputDir("outdir", in.OutputDir),
	}
	if restore {
		checks = append(checks, check{
			param: "image_describer",
			kind:  errors.ErrDescriberCorrupt,
			run: func() validate.Verdict {
				loaded, err := describer.Load(b.fs, in.OutputDir)
				if err != nil {
					return validate.Fail("Cannot restore image describer: %v", err)
				}
				cfg, restored = loaded, true
				return validate.Pass
			},
		})
	} else {
		method := options.ParseDescriberMethod(in.DescriberMethod)
		preset := options.ParseDescriberPreset(in.DescriberPreset)
		cfg = describer.Config{Method: method, Preset: preset, Upright: in.Upright}
		checks = append(checks,
			verdict("describerMethod", func() validate.Verdict { return validate.DescriberMethod(method) }),
			verdict("describerPreset", func() validate.Verdict { return validate.DescriberPreset(preset) }),
		)
	}
	checks = append(checks,
		verdict("numThreads", func() validate.Verdict { return validate.ThreadCount(in.NumThreads) }),
	)

	if err := b.runChecks(StageFeatures, checks); err != nil {
		return FeaturesRecord{}, err
	}

	rec := FeaturesRecord{
		inputFile:  in.InputFile,
		outputDir:  in.OutputDir,
		describer:  cfg,
		restored:   restored,
		force:      in.Force,
		numThreads: in.NumThreads,
	}
	b.logger.Info("📷 You called feature computation",
		"input_file", rec.inputFile,
		"outdir", rec.outputDir,
		"describerMethod", cfg.Method.String(),
		"describerPreset", cfg.Preset.String(),
		"upright", cfg.Upright,
		"restored", rec.restored,
		"force", rec.force,
		"numThreads", rec.numThreads,
	)
	return rec, nil
}
