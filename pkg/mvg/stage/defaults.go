package stage

import "github.com/provide-io/mvg/go/mvg/pkg/mvg/options"

// Listing defaults.
const (
	DefaultFocal            = -1.0 // Unknown focal length
	DefaultGroupCameraModel = true
	DefaultPriorWeights     = "1.0;1.0;1.0"
	DefaultGPSConversion    = int(options.DefaultGPSConversion)
	DefaultListingCamera    = int(options.DefaultCameraModel)
	SfMDataFileName         = "sfm_data.json"
)

// Feature defaults.
const (
	DefaultDescriberMethod = "SIFT"
	DefaultDescriberPreset = "NORMAL"
	DefaultThreadCount     = 0 // One thread per core
)

// Pair defaults.
const (
	DefaultPairMode        = "EXHAUSTIVE"
	DefaultContiguousCount = -1 // Unset
)

// Matching defaults.
const (
	DefaultDistanceRatio      = 0.8
	DefaultMatcher            = "AUTO"
	DefaultCacheSize          = 0 // Unlimited
	DefaultPreemptiveCount    = 200
	PreemptiveThresholdFactor = 0.08

	PreemptivePairsFileName  = "preemptive_pairs.txt"
	AdjacencyMatrixFileName  = "PutativeAdjacencyMatrix.svg"
	PutativeMatchesFileStem  = "putative_matches"
	GeometricMatrixFileName  = "GeometricAdjacencyMatrix.svg"
	ReconstructionReportName = "Reconstruction_Report.html"
)

// Geometric filter defaults.
const (
	DefaultGeometricModel = "f"
	DefaultMaxIterations  = 2048
)

// SfM defaults.
const (
	DefaultEngine                   = "INCREMENTAL"
	DefaultRefineIntrinsics         = "ADJUST_ALL"
	DefaultRefineExtrinsics         = "ADJUST_ALL"
	DefaultInitializer              = "STELLAR"
	DefaultGraphSimplification      = "MST_X"
	DefaultGraphSimplificationValue = 5
	DefaultTriangulation            = int(options.TriangulationDefault)
	DefaultResection                = int(options.DefaultResection)
	DefaultSfMCamera                = int(options.DefaultCameraModel)
	DefaultRotationAveraging        = int(options.DefaultRotationAveraging)
	DefaultTranslationAveraging     = int(options.DefaultTranslationAveraging)
)

// Default match files tried, in order, after an explicit match file.
var DefaultMatchFiles = []string{
	"matches.f.txt",
	"matches.f.bin",
	"matches.e.txt",
	"matches.e.bin",
}
