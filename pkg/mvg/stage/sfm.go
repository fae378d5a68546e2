package stage

import (
	"path/filepath"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/refine"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// SfMInputs are the raw arguments of the structure from motion stage.
type SfMInputs struct {
	InputFile string `yaml:"input_file"`
	MatchDir  string `yaml:"match_dir"`
	MatchFile string `yaml:"match_file"`
	OutputDir string `yaml:"output_dir"`
	Engine    string `yaml:"sfm_engine"`

	RefineIntrinsics string `yaml:"refine_intrinsic_config"`
	RefineExtrinsics string `yaml:"refine_extrinsic_config"`
	UsePriors        bool   `yaml:"prior_usage"`

	Triangulation int `yaml:"triangulation_method"`
	Resection     int `yaml:"resection_method"`
	CameraModel   int `yaml:"camera_model"`

	Initializer  string `yaml:"sfm_initializer"`
	InitialPairA string `yaml:"initial_pair_a"`
	InitialPairB string `yaml:"initial_pair_b"`

	RotationAveraging    int `yaml:"rotationAveraging"`
	TranslationAveraging int `yaml:"translationAveraging"`

	GraphSimplification      string `yaml:"graph_simplification"`
	GraphSimplificationValue int    `yaml:"graph_simplification_value"`
}

// DefaultSfMInputs returns inputs holding every SfM default.
func DefaultSfMInputs() SfMInputs {
	return SfMInputs{
		Engine:                   DefaultEngine,
		RefineIntrinsics:         DefaultRefineIntrinsics,
		RefineExtrinsics:         DefaultRefineExtrinsics,
		Triangulation:            DefaultTriangulation,
		Resection:                DefaultResection,
		CameraModel:              DefaultSfMCamera,
		Initializer:              DefaultInitializer,
		RotationAveraging:        DefaultRotationAveraging,
		TranslationAveraging:     DefaultTranslationAveraging,
		GraphSimplification:      DefaultGraphSimplification,
		GraphSimplificationValue: DefaultGraphSimplificationValue,
	}
}

// SfMRecord is the validated structure from motion configuration.
type SfMRecord struct {
	inputFile string
	matchDir  string
	matchFile string
	outputDir string
	engine    options.SfMEngine

	intrinsics refine.IntrinsicParams
	extrinsics refine.ExtrinsicParams
	usePriors  bool

	triangulation options.TriangulationMethod
	resection     options.ResectionMethod
	camera        options.CameraModel

	initializer options.SceneInitializer
	initialPair [2]string

	rotation    options.RotationAveraging
	translation options.TranslationAveraging

	graph      options.GraphSimplification
	graphValue int
}

func (SfMRecord) Stage() Name { return StageSfM }

func (r SfMRecord) InputFile() string                                  { return r.inputFile }
func (r SfMRecord) MatchDir() string                                   { return r.matchDir }
func (r SfMRecord) MatchFile() string                                  { return r.matchFile }
func (r SfMRecord) OutputDir() string                                  { return r.outputDir }
func (r SfMRecord) Engine() options.SfMEngine                          { return r.engine }
func (r SfMRecord) Intrinsics() refine.IntrinsicParams                 { return r.intrinsics }
func (r SfMRecord) Extrinsics() refine.ExtrinsicParams                 { return r.extrinsics }
func (r SfMRecord) UsePriors() bool                                    { return r.usePriors }
func (r SfMRecord) Triangulation() options.TriangulationMethod         { return r.triangulation }
func (r SfMRecord) Resection() options.ResectionMethod                 { return r.resection }
func (r SfMRecord) Camera() options.CameraModel                        { return r.camera }
func (r SfMRecord) Initializer() options.SceneInitializer              { return r.initializer }
func (r SfMRecord) RotationAveraging() options.RotationAveraging       { return r.rotation }
func (r SfMRecord) TranslationAveraging() options.TranslationAveraging { return r.translation }
func (r SfMRecord) GraphSimplification() options.GraphSimplification   { return r.graph }
func (r SfMRecord) GraphSimplificationValue() int                      { return r.graphValue }

// InitialPair returns the image names seeding an incremental reconstruction
// and whether they were given.
func (r SfMRecord) InitialPair() (string, string, bool) {
	return r.initialPair[0], r.initialPair[1], r.initialPair[0] != ""
}

// ReportPath is the HTML reconstruction report inside the output directory.
func (r SfMRecord) ReportPath() string {
	return filepath.Join(r.outputDir, ReconstructionReportName)
}

// MatchCandidates lists the match files to try in order: the given match
// file, then the default names.
func (r SfMRecord) MatchCandidates() []string {
	candidates := make([]string, 0, len(DefaultMatchFiles)+1)
	if r.matchFile != "" {
		candidates = append(candidates, filepath.Join(r.matchDir, r.matchFile))
	}
	for _, name := range DefaultMatchFiles {
		candidates = append(candidates, filepath.Join(r.matchDir, name))
	}
	return candidates
}

// SfM validates in and builds the structure from motion record. When only a
// match file is given and it exists, the match directory is the file's
// directory and the match file its base name.
func (b *Builder) SfM(in SfMInputs) (SfMRecord, error) {
	triangulation := options.TriangulationFromInt(in.Triangulation)
	resection := options.ResectionFromInt(in.Resection)
	camera := options.CameraModelFromInt(in.CameraModel)
	intrinsics := refine.ParseIntrinsic(in.RefineIntrinsics)
	extrinsics := refine.ParseExtrinsic(in.RefineExtrinsics)
	initializer := options.ParseSceneInitializer(in.Initializer)
	engine := options.ParseSfMEngine(in.Engine)
	rotation := options.RotationAveragingFromInt(in.RotationAveraging)
	translation := options.TranslationAveragingFromInt(in.TranslationAveraging)
	graph := options.ParseGraphSimplification(in.GraphSimplification)

	checks := []check{
		required("input_file", in.InputFile),
		verdict("triangulation_method", func() validate.Verdict { return validate.Triangulation(triangulation) }),
		verdict("resection_method", func() validate.Verdict { return validate.Resection(resection) }),
		verdict("camera_model", func() validate.Verdict { return validate.CameraModel(camera) }),
		verdict("refine_intrinsic_config", func() validate.Verdict { return validate.Intrinsic(intrinsics) }),
		verdict("refine_intrinsic_config", func() validate.Verdict { return validate.IntrinsicNoneExclusive(intrinsics) }),
		verdict("refine_extrinsic_config", func() validate.Verdict { return validate.Extrinsic(extrinsics) }),
		verdict("refine_extrinsic_config", func() validate.Verdict { return validate.ExtrinsicNoneExclusive(extrinsics) }),
		verdict("sfm_initializer", func() validate.Verdict { return validate.SceneInitializer(initializer) }),
		verdict("sfm_engine", func() validate.Verdict { return validate.SfMEngine(engine) }),
		verdict("rotationAveraging", func() validate.Verdict { return validate.RotationAveraging(rotation) }),
		verdict("translationAveraging", func() validate.Verdict { return validate.TranslationAveraging(translation) }),
		verdict("graph_simplification", func() validate.Verdict { return validate.GraphSimplification(graph) }),
		verdict("graph_simplification_value", func() validate.Verdict {
			return validate.GraphSimplificationValue(in.GraphSimplificationValue)
		}),
		verdict("output_dir", func() validate.Verdict {
			if in.OutputDir == "" {
				return validate.Fail("It is an invalid output directory")
			}
			return validate.Pass
		}),
		verdict("translationAveraging", func() validate.Verdict {
			return validate.LiGTAvailable(translation, b.settings.EnableLiGT)
		}),
		verdict("initial_pair", func() validate.Verdict {
			return validate.DistinctInitialPair(in.InitialPairA, in.InitialPairB)
		}),
		b.outputDir("output_dir", in.OutputDir),
	}
	if err := b.runChecks(StageSfM, checks); err != nil {
		return SfMRecord{}, err
	}

	matchDir, matchFile := in.MatchDir, in.MatchFile
	if matchDir == "" && matchFile != "" && b.fs.Exists(matchFile) {
		matchDir, matchFile = filepath.Dir(matchFile), filepath.Base(matchFile)
	}

	rec := SfMRecord{
		inputFile:     in.InputFile,
		matchDir:      matchDir,
		matchFile:     matchFile,
		outputDir:     in.OutputDir,
		engine:        engine,
		intrinsics:    intrinsics,
		extrinsics:    extrinsics,
		usePriors:     in.UsePriors,
		triangulation: triangulation,
		resection:     resection,
		camera:        camera,
		initializer:   initializer,
		initialPair:   [2]string{in.InitialPairA, in.InitialPairB},
		rotation:      rotation,
		translation:   translation,
		graph:         graph,
		graphValue:    in.GraphSimplificationValue,
	}
	b.logger.Info("📷 You called structure from motion",
		"input_file", rec.inputFile,
		"match_dir", rec.matchDir,
		"match_file", rec.matchFile,
		"output_dir", rec.outputDir,
		"sfm_engine", rec.engine.String(),
		"refine_intrinsic_config", rec.intrinsics.String(),
		"refine_extrinsic_config", rec.extrinsics.String(),
		"prior_usage", rec.usePriors,
		"triangulation_method", rec.triangulation.String(),
		"resection_method", rec.resection.String(),
		"camera_model", rec.camera.String(),
		"sfm_initializer", rec.initializer.String(),
		"rotationAveraging", rec.rotation.String(),
		"translationAveraging", rec.translation.String(),
		"graph_simplification", rec.graph.String(),
		"graph_simplification_value", rec.graphValue,
	)
	return rec, nil
}
