package stage

import (
	"path/filepath"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// GeometricFilterInputs are the raw arguments of the geometric filtering
// stage.
type GeometricFilterInputs struct {
	InputFile      string `yaml:"input_file"`
	Matches        string `yaml:"matches"`
	OutputFile     string `yaml:"output_file"`
	InputPairs     string `yaml:"input_pairs"`
	OutputPairs    string `yaml:"output_pairs"`
	GeometricModel string `yaml:"geometric_model"`
	GuidedMatching bool   `yaml:"guided_matching"`
	MaxIterations  int    `yaml:"max_iteration"`
	CacheSize      int    `yaml:"cache_size"`
	Force          bool   `yaml:"force"`
}

// DefaultGeometricFilterInputs returns inputs holding every filter default.
func DefaultGeometricFilterInputs() GeometricFilterInputs {
	return GeometricFilterInputs{
		GeometricModel: DefaultGeometricModel,
		MaxIterations:  DefaultMaxIterations,
		CacheSize:      DefaultCacheSize,
	}
}

// GeometricFilterRecord is the validated geometric filtering configuration.
type GeometricFilterRecord struct {
	inputFile     string
	matches       string
	outputFile    string
	inputPairs    string
	outputPairs   string
	model         options.GeometricModel
	guided        bool
	maxIterations int
	cacheSize     int
	force         bool
}

func (GeometricFilterRecord) Stage() Name { return StageGeometricFilter }

func (r GeometricFilterRecord) InputFile() string             { return r.inputFile }
func (r GeometricFilterRecord) Matches() string               { return r.matches }
func (r GeometricFilterRecord) OutputFile() string            { return r.outputFile }
func (r GeometricFilterRecord) InputPairs() string            { return r.inputPairs }
func (r GeometricFilterRecord) OutputPairs() string           { return r.outputPairs }
func (r GeometricFilterRecord) Model() options.GeometricModel { return r.model }
func (r GeometricFilterRecord) GuidedMatching() bool          { return r.guided }
func (r GeometricFilterRecord) MaxIterations() int            { return r.maxIterations }
func (r GeometricFilterRecord) CacheSize() int                { return r.cacheSize }
func (r GeometricFilterRecord) Force() bool                   { return r.force }

// MatchesDir is the directory holding the putative matches and regions.
func (r GeometricFilterRecord) MatchesDir() string { return filepath.Dir(r.matches) }

func (r GeometricFilterRecord) AdjacencyMatrixPath() string {
	return filepath.Join(filepath.Dir(r.outputFile), GeometricMatrixFileName)
}

// GeometricFilter validates in and builds the geometric filtering record.
func (b *Builder) GeometricFilter(in GeometricFilterInputs) (GeometricFilterRecord, error) {
	model := options.ParseGeometricModel(in.GeometricModel)

	checks := []check{
		required("output_file", in.OutputFile),
		required("input_file", in.InputFile),
		required("matches", in.Matches),
		verdict("geometric_model", func() validate.Verdict { return validate.GeometricModel(model) }),
		verdict("max_iteration", func() validate.Verdict { return validate.MaxIterations(in.MaxIterations) }),
		verdict("cache_size", func() validate.Verdict { return validate.CacheSize(in.CacheSize) }),
		verdict("input_pairs", func() validate.Verdict {
			return validate.ExistingFile(b.fs, "input pairs", in.InputPairs)
		}),
	}
	if err := b.runChecks(StageGeometricFilter, checks); err != nil {
		return GeometricFilterRecord{}, err
	}

	rec := GeometricFilterRecord{
		inputFile:     in.InputFile,
		matches:       in.Matches,
		outputFile:    in.OutputFile,
		inputPairs:    in.InputPairs,
		outputPairs:   in.OutputPairs,
		model:         model,
		guided:        in.GuidedMatching,
		maxIterations: in.MaxIterations,
		cacheSize:     in.CacheSize,
		force:         in.Force,
	}
	b.logger.Info("📷 You called geometric filtering",
		"input_file", rec.inputFile,
		"matches", rec.matches,
		"output_file", rec.outputFile,
		"input_pairs", rec.inputPairs,
		"output_pairs", rec.outputPairs,
		"geometric_model", rec.model.String(),
		"guided_matching", rec.guided,
		"max_iteration", rec.maxIterations,
		"cache_size", validate.CacheSizeLabel(rec.cacheSize),
		"force", rec.force,
	)
	return rec, nil
}
