package plan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	mvgerrors "github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

const pipelinePlan = `
name: castle
steps:
  - id: listing
    stage: listing
    args:
      imageDirectory: /data/images
      outputDirectory: /work
  - stage: features
    args:
      input_file: /work/sfm_data.json
      outdir: /work/matches
      describerPreset: HIGH
  - stage: pairs
    args:
      input_file: /work/sfm_data.json
      output_file: /work/matches/pairs.txt
  - stage: matching
    args:
      input_file: /work/sfm_data.json
      output_file: /work/matches/matches.putative.bin
      ratio: 0.6
  - stage: geometric_filter
    args:
      input_file: /work/sfm_data.json
      matches: /work/matches/matches.putative.bin
      output_file: /work/matches/matches.e.bin
      geometric_model: e
  - stage: sfm
    args:
      input_file: /work/sfm_data.json
      match_dir: /work/matches
      output_dir: /work/reconstruction
      sfm_engine: GLOBAL
`

func newRunner(t *testing.T, fsys workdir.FileSystem) *Runner {
	t.Helper()
	logger := hclog.New(&hclog.LoggerOptions{Name: t.Name(), Level: hclog.Trace})
	return NewRunner(stage.NewBuilder(fsys, logger, stage.DefaultSettings()), logger, 0)
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(pipelinePlan))
	require.NoError(t, err)
	assert.Equal(t, "castle", p.Name)
	require.Len(t, p.Steps, 6)
	assert.Equal(t, "listing", p.Steps[0].ID)
	assert.Equal(t, "2-features", p.Steps[1].ID)
	assert.Equal(t, stage.StageSfM, p.Steps[5].Stage)
	assert.Equal(t, "/work/matches", p.Steps[3].outputDir())
	assert.Equal(t, "/work/reconstruction", p.Steps[5].outputDir())
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"not yaml", "steps: [\n"},
		{"no steps", "name: empty\n"},
		{"unknown stage", "steps:\n  - stage: densify\n"},
		{"duplicate id", "steps:\n  - id: a\n    stage: pairs\n  - id: a\n    stage: sfm\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, mvgerrors.ErrPlanInvalid))
		})
	}
}

func TestValidatePipeline(t *testing.T) {
	mfs := workdir.NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("/data/images", workdir.DefaultDirPerms))

	p, err := Parse([]byte(pipelinePlan))
	require.NoError(t, err)

	report, err := newRunner(t, mfs).Validate(context.Background(), p)
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)

	records := report.Records()
	require.Len(t, records, 6)
	for i, rec := range records {
		assert.Equal(t, p.Steps[i].Stage, rec.Stage())
	}

	features := records[1].(stage.FeaturesRecord)
	assert.Equal(t, options.PresetHigh, features.Describer().Preset)
	assert.Equal(t, options.DescriberSIFT, features.Describer().Method)

	matching := records[3].(stage.MatchingRecord)
	assert.Equal(t, 0.6, matching.Ratio())
	assert.Equal(t, options.MatcherFastCascadeHashingL2, matching.Matcher())

	filter := records[4].(stage.GeometricFilterRecord)
	assert.Equal(t, options.GeometricEssential, filter.Model())

	sfm := records[5].(stage.SfMRecord)
	assert.Equal(t, options.EngineGlobal, sfm.Engine())
	assert.True(t, workdir.IsDir(mfs, "/work/reconstruction"))
}

func TestValidateCollectsFailures(t *testing.T) {
	mfs := workdir.NewMemoryFileSystem()
	p, err := Parse([]byte(`
steps:
  - id: bad-ratio
    stage: matching
    args: {input_file: /w/sfm_data.json, output_file: /w/m/matches.bin, ratio: 1.5}
  - id: good
    stage: pairs
    args: {input_file: /w/sfm_data.json, output_file: /w/pairs.txt}
  - id: bad-graph
    stage: sfm
    args: {input_file: /w/sfm_data.json, output_dir: /w/out, graph_simplification_value: 1}
  - id: bad-args
    stage: features
    args: {numThreads: many}
`))
	require.NoError(t, err)

	report, err := newRunner(t, mfs).Validate(context.Background(), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mvgerrors.ErrPlanInvalid))
	assert.True(t, errors.Is(err, mvgerrors.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "bad-ratio")
	assert.Contains(t, err.Error(), "bad-graph")
	assert.Contains(t, err.Error(), "bad-args")
	assert.NotContains(t, err.Error(), "step good")

	assert.Nil(t, report.Records())
	assert.NoError(t, report.Results[1].Err)
	assert.NotNil(t, report.Results[1].Record)
	assert.Nil(t, report.Results[0].Record)

	var verr *stage.ValidationError
	require.True(t, errors.As(report.Results[2].Err, &verr))
	assert.Equal(t, "graph_simplification_value", verr.Parameter)
	assert.False(t, mfs.Exists("/w/out"))
}

func TestValidateSharedOutputDirectory(t *testing.T) {
	doc := "steps:\n"
	for i := 0; i < 16; i++ {
		doc += fmt.Sprintf("  - id: sfm-%02d\n    stage: sfm\n    args: {input_file: /w/sfm_data.json, output_dir: /w/shared/out}\n", i)
	}
	p, err := Parse([]byte(doc))
	require.NoError(t, err)

	mfs := workdir.NewMemoryFileSystem()
	report, err := NewRunner(stage.NewBuilder(mfs, nil, stage.DefaultSettings()), nil, 8).Validate(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, report.Records(), 16)
	assert.Equal(t, "sfm-15", report.Results[15].ID)
	assert.True(t, workdir.IsDir(mfs, "/w/shared/out"))
}

func TestValidateCanceled(t *testing.T) {
	p, err := Parse([]byte(pipelinePlan))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newRunner(t, workdir.NewMemoryFileSystem()).Validate(ctx, p)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pipelinePlan), 0o644))

	p, err := NewFileLoader(nil, path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, p.Steps, 6)

	_, err = NewFileLoader(nil, filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateStepArgumentForms(t *testing.T) {
	testCases := []struct {
		name  string
		step  string
		param string
		check func(t *testing.T, rec stage.Record)
	}{
		{
			name:  "preemptive count zero rejected",
			step:  "stage: matching\n    args: {input_file: /w/sfm_data.json, output_file: /w/m/matches.bin, preemptive_feature_count: 0}",
			param: "preemptive_feature_count",
		},
		{
			name: "preemptive count enables preemptive matching",
			step: "stage: matching\n    args: {input_file: /w/sfm_data.json, output_file: /w/m/matches.bin, preemptive_feature_count: 500}",
			check: func(t *testing.T, rec stage.Record) {
				count, used := rec.(stage.MatchingRecord).Preemptive()
				assert.True(t, used)
				assert.Equal(t, 500, count)
			},
		},
		{
			name: "preemptive off without count",
			step: "stage: matching\n    args: {input_file: /w/sfm_data.json, output_file: /w/m/matches.bin}",
			check: func(t *testing.T, rec stage.Record) {
				_, used := rec.(stage.MatchingRecord).Preemptive()
				assert.False(t, used)
			},
		},
		{
			name: "group camera model as flag integer",
			step: "stage: listing\n    args: {imageDirectory: /data/images, outputDirectory: /w, group_camera_model: 0}",
			check: func(t *testing.T, rec stage.Record) {
				assert.False(t, rec.(stage.ListingRecord).GroupCameraModel())
			},
		},
		{
			name: "group camera model as boolean",
			step: "stage: listing\n    args: {imageDirectory: /data/images, outputDirectory: /w, group_camera_model: true}",
			check: func(t *testing.T, rec stage.Record) {
				assert.True(t, rec.(stage.ListingRecord).GroupCameraModel())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mfs := workdir.NewMemoryFileSystem()
			require.NoError(t, mfs.MkdirAll("/data/images", workdir.DefaultDirPerms))

			p, err := Parse([]byte("steps:\n  - " + tc.step + "\n"))
			require.NoError(t, err)

			report, err := newRunner(t, mfs).Validate(context.Background(), p)
			if tc.param != "" {
				require.Error(t, err)
				var verr *stage.ValidationError
				require.True(t, errors.As(report.Results[0].Err, &verr))
				assert.Equal(t, tc.param, verr.Parameter)
				return
			}
			require.NoError(t, err)
			tc.check(t, report.Records()[0])
		})
	}
}
