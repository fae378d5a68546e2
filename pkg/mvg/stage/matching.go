package stage

import (
	"path/filepath"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/describer"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// MatchingInputs are the raw arguments of the putative matching stage.
type MatchingInputs struct {
	InputFile       string  `yaml:"input_file"`
	OutputFile      string  `yaml:"output_file"`
	PairList        string  `yaml:"pair_list"`
	Ratio           float64 `yaml:"ratio"`
	Matcher         string  `yaml:"nearest_matching_method"`
	CacheSize       int     `yaml:"cache_size"`
	UsePreemptive   bool    `yaml:"-"` // set when preemptive_feature_count is supplied
	PreemptiveCount int     `yaml:"preemptive_feature_count"`
	Force           bool    `yaml:"force"`
}

// DefaultMatchingInputs returns inputs holding every matching default.
func DefaultMatchingInputs() MatchingInputs {
	return MatchingInputs{
		Ratio:           DefaultDistanceRatio,
		Matcher:         DefaultMatcher,
		CacheSize:       DefaultCacheSize,
		PreemptiveCount: DefaultPreemptiveCount,
	}
}

// MatchingRecord is the validated putative matching configuration.
type MatchingRecord struct {
	inputFile       string
	outputFile      string
	matchesDir      string
	pairList        string
	matcher         options.MatcherType
	requested       options.MatcherType
	regions         options.RegionKind
	ratio           float64
	cacheSize       int
	preemptive      bool
	preemptiveCount int
	force           bool
}

func (MatchingRecord) Stage() Name { return StageMatching }

func (r MatchingRecord) InputFile() string  { return r.inputFile }
func (r MatchingRecord) OutputFile() string { return r.outputFile }
func (r MatchingRecord) MatchesDir() string { return r.matchesDir }
func (r MatchingRecord) PairList() string   { return r.pairList }
func (r MatchingRecord) Ratio() float64     { return r.ratio }
func (r MatchingRecord) CacheSize() int     { return r.cacheSize }
func (r MatchingRecord) Force() bool        { return r.force }

// Matcher returns the concrete matcher; AUTO is already resolved.
func (r MatchingRecord) Matcher() options.MatcherType { return r.matcher }

// RequestedMatcher returns the matcher as given, possibly AUTO.
func (r MatchingRecord) RequestedMatcher() options.MatcherType { return r.requested }

// Regions returns the region kind read from the describer file, or
// RegionsUnknown when the matches directory has none.
func (r MatchingRecord) Regions() options.RegionKind { return r.regions }

// Preemptive returns the feature count of preemptive matching and whether it
// is enabled.
func (r MatchingRecord) Preemptive() (int, bool) {
	return r.preemptiveCount, r.preemptive
}

// PreemptiveThreshold is the minimum match count a pair needs to survive
// preemptive matching.
func (r MatchingRecord) PreemptiveThreshold() float64 {
	if !r.preemptive {
		return 0
	}
	return PreemptiveThresholdFactor * float64(r.preemptiveCount)
}

func (r MatchingRecord) PreemptivePairsPath() string {
	return filepath.Join(r.matchesDir, PreemptivePairsFileName)
}

func (r MatchingRecord) AdjacencyMatrixPath() string {
	return filepath.Join(r.matchesDir, AdjacencyMatrixFileName)
}

// Matching validates in and builds the putative matching record. The
// matches directory is the directory of the output file; when it holds an
// image_describer.json its region kind resolves AUTO and is checked against
// the matcher metric.
func (b *Builder) Matching(in MatchingInputs) (MatchingRecord, error) {
	matchesDir := filepath.Dir(in.OutputFile)
	requested := options.ParseMatcherType(in.Matcher)
	regions := options.RegionsUnknown

	checks := []check{
		required("input_file", in.InputFile),
		required("output_file", in.OutputFile),
		verdict("ratio", func() validate.Verdict { return validate.DistanceRatio(in.Ratio) }),
		verdict("nearest_matching_method", func() validate.Verdict { return validate.Matcher(requested) }),
		verdict("cache_size", func() validate.Verdict { return validate.CacheSize(in.CacheSize) }),
		verdict("preemptive_feature_count", func() validate.Verdict {
			if !in.UsePreemptive {
				return validate.Pass
			}
			return validate.PreemptiveFeatureCount(in.PreemptiveCount)
		}),
		verdict("pair_list", func() validate.Verdict {
			return validate.ExistingFile(b.fs, "pair list", in.PairList)
		}),
		{
			param: "image_describer",
			kind:  errors.ErrDescriberCorrupt,
			run: func() validate.Verdict {
				if !describer.Exists(b.fs, matchesDir) {
					return validate.Pass
				}
				cfg, err := describer.Load(b.fs, matchesDir)
				if err != nil {
					return validate.Fail("Invalid regions type file: %v", err)
				}
				regions = cfg.Regions()
				return validate.Pass
			},
		},
		verdict("nearest_matching_method", func() validate.Verdict {
			return validate.MatcherRegionCompatible(requested, regions)
		}),
	}
	if err := b.runChecks(StageMatching, checks); err != nil {
		return MatchingRecord{}, err
	}

	rec := MatchingRecord{
		inputFile:       in.InputFile,
		outputFile:      in.OutputFile,
		matchesDir:      matchesDir,
		pairList:        in.PairList,
		matcher:         options.ResolveAuto(requested, regions),
		requested:       requested,
		regions:         regions,
		ratio:           in.Ratio,
		cacheSize:       in.CacheSize,
		preemptive:      in.UsePreemptive,
		preemptiveCount: in.PreemptiveCount,
		force:           in.Force,
	}
	if !rec.preemptive {
		rec.preemptiveCount = 0
	}

	b.logger.Info("📷 You called putative matching",
		"input_file", rec.inputFile,
		"output_file", rec.outputFile,
		"pair_list", rec.pairList,
		"nearest_matching_method", rec.matcher.String(),
		"regions_type", rec.regions.String(),
		"ratio", rec.ratio,
		"cache_size", validate.CacheSizeLabel(rec.cacheSize),
		"preemptive_feature_used", rec.preemptive,
		"preemptive_feature_count", rec.preemptiveCount,
		"force", rec.force,
	)
	return rec, nil
}
