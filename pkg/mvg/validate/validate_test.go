package validate

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/refine"
)

func TestDistanceRatio(t *testing.T) {
	testCases := []struct {
		ratio float64
		ok    bool
	}{
		{0.8, true},
		{1.0, true},
		{0.0001, true},
		{0.0, false},
		{-0.5, false},
		{1.1, false},
	}

	for _, tc := range testCases {
		v := DistanceRatio(tc.ratio)
		assert.Equal(t, tc.ok, v.OK, "ratio %v", tc.ratio)
		if !v.OK {
			assert.NotEmpty(t, v.Message)
		}
	}
}

func TestCacheSize(t *testing.T) {
	assert.True(t, CacheSize(0).OK)
	assert.True(t, CacheSize(256).OK)
	assert.False(t, CacheSize(-1).OK)
	assert.Equal(t, "unlimited", CacheSizeLabel(0))
	assert.Equal(t, "64", CacheSizeLabel(64))
}

func TestGraphSimplificationValue(t *testing.T) {
	assert.False(t, GraphSimplificationValue(0).OK)
	assert.False(t, GraphSimplificationValue(1).OK)
	assert.True(t, GraphSimplificationValue(2).OK)
	assert.True(t, GraphSimplificationValue(5).OK)
	assert.Equal(t, "graph simplification value must be > 1", GraphSimplificationValue(1).Message)
}

func TestEnumChecks(t *testing.T) {
	testCases := []struct {
		name    string
		verdict Verdict
		ok      bool
	}{
		{"matcher none", Matcher(options.MatcherNone), false},
		{"matcher auto", Matcher(options.MatcherAuto), true},
		{"geometric x", GeometricModel(options.ParseGeometricModel("x")), false},
		{"geometric f", GeometricModel(options.ParseGeometricModel("f")), true},
		{"triangulation 0", Triangulation(options.TriangulationFromInt(0)), false},
		{"triangulation raw 0", Triangulation(options.TriangulationMethod(0)), false},
		{"triangulation raw 6", Triangulation(options.TriangulationMethod(6)), false},
		{"triangulation 5", Triangulation(options.TriangulationFromInt(5)), true},
		{"triangulation 1", Triangulation(options.TriangulationFromInt(1)), true},
		{"resection -1", Resection(options.ResectionInvalid), false},
		{"resection 0", Resection(options.ResectionDLT6Points), true},
		{"camera start marker", CameraModel(options.CameraPinholeStart), false},
		{"camera end marker", CameraModel(options.CameraPinholeEnd), false},
		{"camera radial3", CameraModel(options.CameraPinholeRadial3), true},
		{"camera spherical", CameraModel(options.CameraSpherical), true},
		{"camera 8", CameraModel(options.CameraModel(8)), false},
		{"rotation 0", RotationAveraging(options.RotationAveraging(0)), false},
		{"rotation 3", RotationAveraging(options.RotationAveraging(3)), false},
		{"rotation 2", RotationAveraging(options.RotationAveragingL2), true},
		{"translation 5", TranslationAveraging(options.TranslationAveraging(5)), false},
		{"translation 4", TranslationAveraging(options.TranslationAveragingLiGT), true},
		{"initializer invalid", SceneInitializer(options.ParseSceneInitializer("FOO")), false},
		{"initializer stellar", SceneInitializer(options.InitializerStellar), true},
		{"engine invalid", SfMEngine(options.ParseSfMEngine("GLOBALV2")), false},
		{"engine global", SfMEngine(options.EngineGlobal), true},
		{"graph none is legal", GraphSimplification(options.GraphSimplificationNone), true},
		{"graph invalid", GraphSimplification(options.GraphSimplificationInvalid), false},
		{"describer invalid", DescriberMethod(options.DescriberInvalid), false},
		{"preset unrecognized", DescriberPreset(options.ParseDescriberPreset("MAX")), false},
		{"preset ultra", DescriberPreset(options.PresetUltra), true},
		{"pair mode invalid", PairMode(options.PairModeInvalid), false},
		{"gps 2", GPSConversion(options.GPSConversionFromInt(2)), false},
		{"gps utm", GPSConversion(options.GPSToUTM), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.verdict.OK)
			if tc.ok {
				assert.Empty(t, tc.verdict.Message)
			} else {
				assert.NotEmpty(t, tc.verdict.Message)
			}
		})
	}
}

func TestRefinementMasks(t *testing.T) {
	assert.False(t, Intrinsic(refine.ParseIntrinsic("")).OK)
	assert.False(t, Intrinsic(refine.ParseIntrinsic("ADJUST_MORE")).OK)
	assert.True(t, Intrinsic(refine.ParseIntrinsic("ADJUST_ALL")).OK)
	assert.True(t, IntrinsicNoneExclusive(refine.IntrinsicNone).OK)
	assert.False(t, IntrinsicNoneExclusive(refine.ParseIntrinsic("NONE|ADJUST_DISTORTION")).OK)

	assert.False(t, Extrinsic(refine.ParseExtrinsic("ADJUST_SCALE")).OK)
	assert.True(t, Extrinsic(refine.ParseExtrinsic("ADJUST_ROTATION")).OK)
	assert.False(t, ExtrinsicNoneExclusive(refine.ParseExtrinsic("NONE|ADJUST_ALL")).OK)
}

func TestCrossFieldRules(t *testing.T) {
	assert.True(t, DistinctInitialPair("", "").OK)
	assert.True(t, DistinctInitialPair("a.jpg", "b.jpg").OK)
	assert.False(t, DistinctInitialPair("a.jpg", "a.jpg").OK)
	assert.False(t, DistinctInitialPair("a.jpg", "").OK)

	assert.True(t, LiGTAvailable(options.TranslationAveragingSoftL1, false).OK)
	assert.True(t, LiGTAvailable(options.TranslationAveragingLiGT, true).OK)
	assert.False(t, LiGTAvailable(options.TranslationAveragingLiGT, false).OK)

	assert.True(t, MatcherRegionCompatible(options.MatcherHNSWHamming, options.RegionsBinary).OK)
	assert.False(t, MatcherRegionCompatible(options.MatcherHNSWHamming, options.RegionsScalar).OK)
	assert.False(t, MatcherRegionCompatible(options.MatcherANNL2, options.RegionsBinary).OK)
	assert.True(t, MatcherRegionCompatible(options.MatcherANNL2, options.RegionsUnknown).OK)
	assert.True(t, MatcherRegionCompatible(options.MatcherAuto, options.RegionsBinary).OK)

	assert.False(t, FocalExclusive(true, true).OK)
	assert.True(t, FocalExclusive(true, false).OK)
	assert.True(t, KMatrix("").OK)
	assert.True(t, KMatrix("1000;0;320;0;1000;240;0;0;1").OK)
	assert.False(t, KMatrix("1000;0;320").OK)
	assert.True(t, PriorWeights("1.0;1.0;1.0").OK)
	assert.False(t, PriorWeights("1.0").OK)
}

func TestCounts(t *testing.T) {
	assert.False(t, MaxIterations(0).OK)
	assert.True(t, MaxIterations(2048).OK)
	assert.True(t, ThreadCount(0).OK)
	assert.False(t, ThreadCount(-2).OK)
	assert.True(t, ContiguousCount(options.PairModeExhaustive, 0).OK)
	assert.False(t, ContiguousCount(options.PairModeContiguous, 0).OK)
	assert.True(t, ContiguousCount(options.PairModeContiguous, 3).OK)
	assert.False(t, PreemptiveFeatureCount(0).OK)
	assert.True(t, PreemptiveFeatureCount(200).OK)
}

type readOnlyFS struct {
	*workdir.MemoryFileSystem
}

func (readOnlyFS) MkdirAll(path string, _ os.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrPermission}
}

func TestPathChecks(t *testing.T) {
	root := t.TempDir()
	osfs := workdir.OSFileSystem{}
	file := filepath.Join(root, "sfm_data.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))

	assert.True(t, Required("input_file", file).OK)
	assert.False(t, Required("input_file", "").OK)
	assert.Contains(t, Required("input_file", "").Message, "input_file")

	assert.True(t, ExistingDirectory(osfs, "image", root).OK)
	assert.False(t, ExistingDirectory(osfs, "image", file).OK)
	assert.False(t, ExistingDirectory(osfs, "image", filepath.Join(root, "nope")).OK)

	assert.True(t, ExistingFile(osfs, "pair", "").OK)
	assert.True(t, ExistingFile(osfs, "pair", file).OK)
	assert.False(t, ExistingFile(osfs, "pair", filepath.Join(root, "pairs.txt")).OK)

	assert.True(t, OutputDirectory(osfs, root).OK)
	assert.True(t, OutputDirectory(osfs, filepath.Join(root, "out", "nested")).OK)
	assert.False(t, OutputDirectory(osfs, file).OK)
	assert.False(t, OutputDirectory(osfs, "").OK)
	assert.False(t, OutputDirectory(readOnlyFS{workdir.NewMemoryFileSystem()}, "/out").OK)
}
