// Package validate holds the checks a stage configuration must pass before the
// stage runs.
//
// Every check is a pure function of its inputs (plus, for path checks, the
// filesystem) and reports a Verdict. Checks never panic and never return an
// error; the caller decides how a failed Verdict aborts the stage.
package validate

import (
	"fmt"
	"os"
	"strconv"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/refine"
)

// Verdict is the outcome of a single check.
type Verdict struct {
	OK      bool
	Message string
}

// Pass is the verdict of a successful check.
var Pass = Verdict{OK: true}

// Fail returns a failed verdict with the given diagnostic.
func Fail(format string, args ...any) Verdict {
	return Verdict{Message: fmt.Sprintf(format, args...)}
}

func check(ok bool, message string) Verdict {
	if ok {
		return Pass
	}
	return Verdict{Message: message}
}

// Enumerated axes

// Matcher rejects an unrecognized nearest neighbour method.
func Matcher(m options.MatcherType) Verdict {
	return check(m != options.MatcherNone, "Invalid Nearest Neighbor method")
}

// GeometricModel rejects an unknown geometric model letter.
func GeometricModel(g options.GeometricModel) Verdict {
	return check(g != options.GeometricInvalid, "Unknown geometric model")
}

// Triangulation requires a method within the known range.
func Triangulation(t options.TriangulationMethod) Verdict {
	return check(t >= options.TriangulationFirst && t <= options.TriangulationLast,
		"Invalid triangulation method")
}

// Resection requires a method within the known range.
func Resection(r options.ResectionMethod) Verdict {
	return check(r >= options.ResectionFirst && r <= options.ResectionLast,
		"Invalid resection method")
}

// CameraModel accepts pinhole and spherical camera models.
func CameraModel(c options.CameraModel) Verdict {
	return check(c.IsPinhole() || c.IsSpherical(), "Invalid camera type")
}

// RotationAveraging requires a method within the known range.
func RotationAveraging(r options.RotationAveraging) Verdict {
	return check(r >= options.RotationAveragingFirst && r <= options.RotationAveragingLast,
		"Rotation averaging method is invalid")
}

// TranslationAveraging requires a method within the known range.
func TranslationAveraging(t options.TranslationAveraging) Verdict {
	return check(t >= options.TranslationAveragingFirst && t <= options.TranslationAveragingLast,
		"Translation averaging method is invalid")
}

// SceneInitializer rejects an unknown SfM initializer.
func SceneInitializer(i options.SceneInitializer) Verdict {
	return check(i != options.InitializerInvalid, "Invalid input for the SfM initializer option")
}

// SfMEngine rejects an unknown reconstruction engine.
func SfMEngine(e options.SfMEngine) Verdict {
	return check(e != options.EngineInvalid, "Invalid input for the SfM Engine type")
}

// GraphSimplification rejects an unknown simplification method.
func GraphSimplification(g options.GraphSimplification) Verdict {
	return check(g != options.GraphSimplificationInvalid, "Cannot recognize graph simplification method")
}

// DescriberMethod rejects an unknown image describer.
func DescriberMethod(d options.DescriberMethod) Verdict {
	return check(d != options.DescriberInvalid, "Unknown image describer method")
}

// DescriberPreset rejects an unknown describer preset.
func DescriberPreset(p options.DescriberPreset) Verdict {
	return check(p != options.PresetUnrecognized, "Preset configuration failed")
}

// PairMode rejects an unknown pair generation mode.
func PairMode(m options.PairMode) Verdict {
	return check(m != options.PairModeInvalid, "Unknown pair mode")
}

// GPSConversion accepts ECEF and UTM.
func GPSConversion(g options.GPSConversion) Verdict {
	return check(g == options.GPSToECEF || g == options.GPSToUTM, "Invalid GPS to XYZ conversion method")
}

// Refinement masks

// Intrinsic rejects an intrinsic mask that failed to parse.
func Intrinsic(p refine.IntrinsicParams) Verdict {
	return check(p != 0, "Invalid input for Bundle Adjustment Intrinsic parameter refinement option")
}

// Extrinsic rejects an extrinsic mask that failed to parse.
func Extrinsic(p refine.ExtrinsicParams) Verdict {
	return check(p != 0, "Invalid input for the Bundle Adjustment Extrinsic parameter refinement option")
}

// IntrinsicNoneExclusive rejects NONE combined with any adjust flag.
func IntrinsicNoneExclusive(p refine.IntrinsicParams) Verdict {
	return check(p.IsNoneExclusive(), "NONE cannot be combined with other intrinsic refinement flags")
}

// ExtrinsicNoneExclusive rejects NONE combined with any adjust flag.
func ExtrinsicNoneExclusive(p refine.ExtrinsicParams) Verdict {
	return check(p.IsNoneExclusive(), "NONE cannot be combined with other extrinsic refinement flags")
}

// Numeric ranges

// DistanceRatio accepts the nearest neighbour ratio in (0, 1].
func DistanceRatio(r float64) Verdict {
	return check(r > 0 && r <= 1, "Distance ratio must be in (0, 1]")
}

// CacheSize accepts any non negative size; 0 means unlimited.
func CacheSize(n int) Verdict {
	return check(n >= 0, "Cache size must be >= 0")
}

// CacheSizeLabel renders a cache size for summaries.
func CacheSizeLabel(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return strconv.Itoa(n)
}

// GraphSimplificationValue requires a value above 1.
func GraphSimplificationValue(n int) Verdict {
	return check(n > 1, "graph simplification value must be > 1")
}

// MaxIterations requires a positive robust estimation budget.
func MaxIterations(n int) Verdict {
	return check(n > 0, "Maximum iteration count must be > 0")
}

// ThreadCount accepts 0 (one thread per core) or a positive count.
func ThreadCount(n int) Verdict {
	return check(n >= 0, "Thread count must be >= 0")
}

// ContiguousCount requires a positive neighbour count in CONTIGUOUS mode.
func ContiguousCount(mode options.PairMode, n int) Verdict {
	if mode != options.PairModeContiguous {
		return Pass
	}
	return check(n > 0, "Contiguous pair mode requires a contiguous count > 0")
}

// PreemptiveFeatureCount requires a positive count when preemptive matching is used.
func PreemptiveFeatureCount(n int) Verdict {
	return check(n > 0, "Preemptive feature count must be > 0")
}

// Cross-field rules

// DistinctInitialPair requires both or neither initial image names, and two
// different names when both are given.
func DistinctInitialPair(first, second string) Verdict {
	switch {
	case first == "" && second == "":
		return Pass
	case first == "" || second == "":
		return Fail("Initial pair requires two image names")
	case first == second:
		return Fail("Invalid image names. You cannot use the same image to initialize a pair.")
	default:
		return Pass
	}
}

// LiGTAvailable rejects the LiGT solver unless the build enables it.
func LiGTAvailable(t options.TranslationAveraging, enabled bool) Verdict {
	if t != options.TranslationAveragingLiGT || enabled {
		return Pass
	}
	return Fail("LiGT translation averaging is not available in this build")
}

// MatcherRegionCompatible checks the matcher metric against the descriptor
// family. Unknown region kinds and unresolved matchers pass.
func MatcherRegionCompatible(m options.MatcherType, kind options.RegionKind) Verdict {
	metric := m.Metric()
	if metric == options.MetricUnknown || metric.Accepts(kind) {
		return Pass
	}
	return Fail("%s matcher cannot compare %s regions", m, kind)
}

// FocalExclusive rejects a focal length given together with a K matrix.
func FocalExclusive(focalSet, kMatrixSet bool) Verdict {
	return check(!(focalSet && kMatrixSet), "Cannot combine -f and -k options")
}

// KMatrix accepts nine semicolon separated numbers. An empty value passes.
func KMatrix(s string) Verdict {
	if s == "" {
		return Pass
	}
	_, ok := options.ParseKMatrix(s)
	return check(ok, "Invalid K matrix input")
}

// PriorWeights accepts three semicolon separated numbers.
func PriorWeights(s string) Verdict {
	_, ok := options.ParsePriorWeights(s)
	return check(ok, "Invalid prior weights input, expected \"wx;wy;wz\"")
}

// Paths

// Required rejects an empty value of the named argument.
func Required(name, value string) Verdict {
	return check(value != "", fmt.Sprintf("Missing required argument %s", name))
}

// ExistingDirectory requires path to be an existing directory.
func ExistingDirectory(fsys workdir.FileSystem, name, path string) Verdict {
	if workdir.IsDir(fsys, path) {
		return Pass
	}
	return Fail("The %s directory %q doesn't exist", name, path)
}

// ExistingFile requires an optional file argument to exist when it is given.
func ExistingFile(fsys workdir.FileSystem, name, path string) Verdict {
	if path == "" || workdir.IsFile(fsys, path) {
		return Pass
	}
	return Fail("The %s file %q doesn't exist", name, path)
}

// OutputDirectory passes when path already is a directory or could be created.
func OutputDirectory(fsys workdir.FileSystem, path string) Verdict {
	return OutputDirectoryMode(fsys, path, workdir.DefaultDirPerms)
}

// OutputDirectoryMode is OutputDirectory with an explicit permission for a
// created directory.
func OutputDirectoryMode(fsys workdir.FileSystem, path string, perm os.FileMode) Verdict {
	if path == "" {
		return Fail("It is an invalid output directory")
	}
	status, err := workdir.EnsureMode(fsys, path, perm)
	switch status {
	case workdir.DirExists, workdir.DirCreated:
		return Pass
	default:
		return Fail("Cannot create output directory %q: %v", path, err)
	}
}
