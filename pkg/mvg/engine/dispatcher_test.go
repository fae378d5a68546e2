package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	mvgerrors "github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

type fakeScene struct{ views int }

func (f fakeScene) ViewCount(context.Context, string) (int, error) { return f.views, nil }

type fakeRegions struct {
	dir       string
	kind      options.RegionKind
	cacheSize int
}

func (f *fakeRegions) Load(_ context.Context, _, dir string, kind options.RegionKind, cacheSize int) error {
	f.dir, f.kind, f.cacheSize = dir, kind, cacheSize
	return nil
}

func (f *fakeRegions) Regions(uint32) (options.RegionKind, error) { return f.kind, nil }

type fakeMatcher struct {
	got stage.MatchingRecord
}

func (f *fakeMatcher) Match(_ context.Context, rec stage.MatchingRecord, _ RegionsProvider) error {
	f.got = rec
	return nil
}

type fakeEngine struct {
	calls int
}

func (f *fakeEngine) Reconstruct(context.Context, stage.SfMRecord) error {
	f.calls++
	return nil
}

type fakeGraph struct {
	paths []string
}

func (f *fakeGraph) ExportAdjacency(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return errors.New("svg backend missing")
}

func newBuilder(t *testing.T, fsys workdir.FileSystem) *stage.Builder {
	t.Helper()
	logger := hclog.New(&hclog.LoggerOptions{Name: t.Name(), Level: hclog.Trace})
	return stage.NewBuilder(fsys, logger, stage.DefaultSettings())
}

func TestDispatchUnavailable(t *testing.T) {
	mfs := workdir.NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("/work/matches", workdir.DefaultDirPerms))
	b := newBuilder(t, mfs)

	in := stage.DefaultSfMInputs()
	in.InputFile = "/work/sfm_data.json"
	in.OutputDir = "/work/out"
	rec, err := b.SfM(in)
	require.NoError(t, err)

	d := NewDispatcher(Collaborators{}, mfs, nil)
	err = d.Dispatch(context.Background(), rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mvgerrors.ErrEngineUnavailable))

	eng := &fakeEngine{}
	d = NewDispatcher(Collaborators{Engine: eng}, mfs, nil)
	require.NoError(t, d.Dispatch(context.Background(), rec))
	assert.Equal(t, 1, eng.calls)
}

func TestDispatchMatching(t *testing.T) {
	mfs := workdir.NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("/work/matches", workdir.DefaultDirPerms))
	b := newBuilder(t, mfs)

	in := stage.DefaultMatchingInputs()
	in.InputFile = "/work/sfm_data.json"
	in.OutputFile = "/work/matches/matches.putative.bin"
	in.CacheSize = 32
	rec, err := b.Matching(in)
	require.NoError(t, err)

	regions := &fakeRegions{}
	matcher := &fakeMatcher{}
	graph := &fakeGraph{}
	d := NewDispatcher(Collaborators{Regions: regions, Matcher: matcher, Graph: graph}, mfs, nil)

	require.NoError(t, d.Dispatch(context.Background(), rec), "graph export failures are not fatal")
	assert.Equal(t, "/work/matches", regions.dir)
	assert.Equal(t, 32, regions.cacheSize)
	assert.Equal(t, options.MatcherFastCascadeHashingL2, matcher.got.Matcher())
	assert.Equal(t, []string{"/work/matches/PutativeAdjacencyMatrix.svg"}, graph.paths)

	d = NewDispatcher(Collaborators{Matcher: matcher}, mfs, nil)
	assert.True(t, errors.Is(d.Dispatch(context.Background(), rec), mvgerrors.ErrEngineUnavailable))
}

func TestDispatchPairs(t *testing.T) {
	mfs := workdir.NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("/work", workdir.DefaultDirPerms))
	b := newBuilder(t, mfs)

	in := stage.DefaultPairsInputs()
	in.InputFile = "/work/sfm_data.json"
	in.OutputFile = "/work/pairs.txt"
	in.PairMode = "CONTIGUOUS"
	in.ContiguousCount = 2
	rec, err := b.Pairs(in)
	require.NoError(t, err)

	d := NewDispatcher(Collaborators{}, mfs, nil)
	assert.True(t, errors.Is(d.Dispatch(context.Background(), rec), mvgerrors.ErrEngineUnavailable))

	d = NewDispatcher(Collaborators{Scene: fakeScene{views: 4}}, mfs, nil)
	require.NoError(t, d.Dispatch(context.Background(), rec))

	data, err := mfs.ReadFile("/work/pairs.txt")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n0 2\n1 2\n1 3\n2 3\n", string(data))
}

func TestDispatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(Collaborators{Engine: &fakeEngine{}}, nil, nil)
	err := d.Dispatch(ctx, stage.SfMRecord{})
	assert.True(t, errors.Is(err, context.Canceled))
}
