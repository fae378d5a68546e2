package stage

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/describer"
	mvgerrors "github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
)

func featuresInputs() FeaturesInputs {
	in := DefaultFeaturesInputs()
	in.InputFile = "/work/sfm_data.json"
	in.OutputDir = "/work/matches"
	return in
}

func TestFeaturesFromInputs(t *testing.T) {
	mfs := memFS(t)
	b, _ := testBuilder(t, mfs)

	in := featuresInputs()
	in.DescriberMethod = "AKAZE_FLOAT"
	in.DescriberPreset = "HIGH"
	in.Upright = true
	rec, err := b.Features(in)
	require.NoError(t, err)
	assert.False(t, rec.Restored())
	assert.Equal(t, describer.Config{
		Method:  options.DescriberAKAZEFloat,
		Preset:  options.PresetHigh,
		Upright: true,
	}, rec.Describer())
	assert.True(t, workdir.IsDir(mfs, "/work/matches"))
}

func TestFeaturesRestore(t *testing.T) {
	mfs := memFS(t, "/work/matches")
	saved := describer.Config{Method: options.DescriberAKAZEMLDB, Preset: options.PresetUltra}
	require.NoError(t, describer.Save(mfs, "/work/matches", saved))
	b, _ := testBuilder(t, mfs)

	in := featuresInputs()
	in.DescriberMethod = "SIFT"
	rec, err := b.Features(in)
	require.NoError(t, err)
	assert.True(t, rec.Restored())
	assert.Equal(t, saved, rec.Describer())

	in.Force = true
	rec, err = b.Features(in)
	require.NoError(t, err)
	assert.False(t, rec.Restored())
	assert.Equal(t, options.DescriberSIFT, rec.Describer().Method)

	in.Force = false
	in.DescriberPreset = "BOGUS"
	rec, err = b.Features(in)
	require.NoError(t, err, "restored runs ignore preset input")
	assert.Equal(t, options.PresetUltra, rec.Describer().Preset)
}

func TestFeaturesRestoreCorrupt(t *testing.T) {
	mfs := memFS(t, "/work/matches")
	require.NoError(t, mfs.WriteFile("/work/matches/image_describer.json", []byte(`{"image_describer":{"method":"ORB"}}`), workdir.DefaultFilePerms))
	b, _ := testBuilder(t, mfs)

	_, err := b.Features(featuresInputs())
	requireValidationError(t, err, StageFeatures, "image_describer")
	assert.True(t, errors.Is(err, mvgerrors.ErrDescriberCorrupt))
}

func TestFeaturesChecks(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*FeaturesInputs)
		param  string
	}{
		{"missing input", func(in *FeaturesInputs) { in.InputFile = "" }, "input_file"},
		{"missing outdir", func(in *FeaturesInputs) { in.OutputDir = "" }, "outdir"},
		{"unknown method", func(in *FeaturesInputs) { in.DescriberMethod = "ORB" }, "describerMethod"},
		{"unknown preset", func(in *FeaturesInputs) { in.DescriberPreset = "EXTREME" }, "describerPreset"},
		{"negative threads", func(in *FeaturesInputs) { in.NumThreads = -1 }, "numThreads"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := testBuilder(t, memFS(t))
			in := featuresInputs()
			tc.mutate(&in)
			rec, err := b.Features(in)
			requireValidationError(t, err, StageFeatures, tc.param)
			assert.Equal(t, FeaturesRecord{}, rec)
		})
	}
}

func listingInputs() ListingInputs {
	in := DefaultListingInputs()
	in.ImageDir = "/data/images"
	in.OutputDir = "/work/listing"
	return in
}

func TestListing(t *testing.T) {
	mfs := memFS(t, "/data/images")
	b, _ := testBuilder(t, mfs)

	rec, err := b.Listing(listingInputs())
	require.NoError(t, err)

	want := ListingRecord{
		imageDir:         "/data/images",
		outputDir:        "/work/listing",
		focal:            DefaultFocal,
		camera:           options.CameraPinholeRadial3,
		groupCameraModel: true,
		priorWeights:     options.DefaultPriorWeights,
		gps:              options.GPSToECEF,
	}
	if diff := cmp.Diff(want, rec, cmp.AllowUnexported(ListingRecord{})); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	_, known := rec.Focal()
	assert.False(t, known)
	assert.Equal(t, "/work/listing/sfm_data.json", rec.SfMDataPath())
	assert.True(t, workdir.IsDir(mfs, "/work/listing"))
}

func TestListingIntrinsics(t *testing.T) {
	mfs := memFS(t, "/data/images")
	b, _ := testBuilder(t, mfs)

	in := listingInputs()
	in.KMatrix = "2000;0;960;0;2000;540;0;0;1"
	in.UsePosePrior = true
	in.PriorWeights = "1.0;1.0;0.5"
	in.GPSConversion = 1
	rec, err := b.Listing(in)
	require.NoError(t, err)

	focal, known := rec.Focal()
	assert.True(t, known)
	assert.Equal(t, 2000.0, focal)
	k, ok := rec.KMatrix()
	assert.True(t, ok)
	assert.Equal(t, options.KMatrix{Focal: 2000, PPX: 960, PPY: 540}, k)
	assert.Equal(t, options.PriorWeights{1, 1, 0.5}, rec.PriorWeights())
	assert.Equal(t, options.GPSToUTM, rec.GPS())

	in = listingInputs()
	in.Focal = 1500
	rec, err = b.Listing(in)
	require.NoError(t, err)
	focal, known = rec.Focal()
	assert.True(t, known)
	assert.Equal(t, 1500.0, focal)
}

func TestListingChecks(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*ListingInputs)
		param  string
	}{
		{"missing image dir", func(in *ListingInputs) { in.ImageDir = "" }, "imageDirectory"},
		{"absent image dir", func(in *ListingInputs) { in.ImageDir = "/data/nothing" }, "imageDirectory"},
		{"missing output dir", func(in *ListingInputs) { in.OutputDir = "" }, "outputDirectory"},
		{"camera marker", func(in *ListingInputs) { in.CameraModel = 6 }, "camera_model"},
		{"gps 3", func(in *ListingInputs) { in.GPSConversion = 3 }, "gps_to_xyz_method"},
		{"short K", func(in *ListingInputs) { in.KMatrix = "1;0;1" }, "intrinsics"},
		{"focal and K", func(in *ListingInputs) { in.Focal, in.KMatrix = 1000, "1;0;1;0;1;1;0;0;1" }, "focal"},
		{"missing sensor db", func(in *ListingInputs) { in.SensorWidthDatabase = "/data/sensor_width.txt" }, "sensorWidthDatabase"},
		{"bad weights", func(in *ListingInputs) { in.UsePosePrior, in.PriorWeights = true, "1;1" }, "prior_weights"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mfs := memFS(t, "/data/images")
			b, _ := testBuilder(t, mfs)
			in := listingInputs()
			tc.mutate(&in)
			rec, err := b.Listing(in)
			requireValidationError(t, err, StageListing, tc.param)
			assert.Equal(t, ListingRecord{}, rec)
			assert.False(t, mfs.Exists("/work/listing"))
		})
	}

	t.Run("bad weights ignored without priors", func(t *testing.T) {
		b, _ := testBuilder(t, memFS(t, "/data/images"))
		in := listingInputs()
		in.PriorWeights = "1;1"
		_, err := b.Listing(in)
		require.NoError(t, err)
	})
}

func TestPairGeneration(t *testing.T) {
	assert.Equal(t, []Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, ExhaustivePairs(4))
	assert.Empty(t, ExhaustivePairs(1))
	assert.Len(t, ExhaustivePairs(10), 45)

	assert.Equal(t, []Pair{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}, ContiguousPairs(4, 2))
	assert.Equal(t, []Pair{{0, 1}, {1, 2}}, ContiguousPairs(3, 1))
	assert.Equal(t, ExhaustivePairs(5), ContiguousPairs(5, 10))
	assert.Empty(t, ContiguousPairs(5, 0))
	assert.Equal(t, ExhaustivePairs(4), ContiguousPairs(4, math.MaxInt))

	var buf bytes.Buffer
	require.NoError(t, WritePairs(&buf, ContiguousPairs(3, 1)))
	assert.Equal(t, "0 1\n1 2\n", buf.String())
}

func TestPairs(t *testing.T) {
	b, _ := testBuilder(t, memFS(t))

	in := DefaultPairsInputs()
	in.InputFile = "/work/sfm_data.json"
	in.OutputFile = "/work/pairs.txt"
	rec, err := b.Pairs(in)
	require.NoError(t, err)
	assert.Equal(t, options.PairModeExhaustive, rec.Mode())
	assert.Len(t, rec.Generate(4), 6)

	in.PairMode = "CONTIGUOUS"
	_, err = b.Pairs(in)
	requireValidationError(t, err, StagePairs, "contiguous_count")

	in.ContiguousCount = 1
	rec, err = b.Pairs(in)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{0, 1}, {1, 2}}, rec.Generate(3))

	in.PairMode = "contiguous"
	_, err = b.Pairs(in)
	requireValidationError(t, err, StagePairs, "pair_mode")

	in = DefaultPairsInputs()
	in.InputFile = "/work/sfm_data.json"
	_, err = b.Pairs(in)
	requireValidationError(t, err, StagePairs, "output_file")
}
