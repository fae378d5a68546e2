package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// Collaborators are the engines a host provides. Any field may be nil.
type Collaborators struct {
	Lister   SceneLister
	Features FeatureExtractor
	Scene    SceneReader
	Regions  RegionsProvider
	Matcher  Matcher
	Filter   GeometricFilter
	Engine   ReconstructionEngine
	Graph    GraphExporter
}

// Dispatcher hands stage records to the registered collaborators.
type Dispatcher struct {
	c      Collaborators
	fs     workdir.FileSystem
	logger hclog.Logger
}

// NewDispatcher creates a Dispatcher. A nil filesystem uses the OS and a nil
// logger discards output.
func NewDispatcher(c Collaborators, fsys workdir.FileSystem, logger hclog.Logger) *Dispatcher {
	if fsys == nil {
		fsys = workdir.OSFileSystem{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Dispatcher{c: c, fs: fsys, logger: logger}
}

func unavailable(name stage.Name, what string) error {
	return fmt.Errorf("%w: %s stage needs a %s", errors.ErrEngineUnavailable, name, what)
}

// Dispatch runs rec on its collaborator.
func (d *Dispatcher) Dispatch(ctx context.Context, rec stage.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.logger.Debug("🚀 Dispatching stage", "stage", rec.Stage())

	switch r := rec.(type) {
	case stage.ListingRecord:
		if d.c.Lister == nil {
			return unavailable(r.Stage(), "scene lister")
		}
		return d.c.Lister.ListImages(ctx, r)

	case stage.FeaturesRecord:
		if d.c.Features == nil {
			return unavailable(r.Stage(), "feature extractor")
		}
		return d.c.Features.ComputeFeatures(ctx, r)

	case stage.PairsRecord:
		return d.pairs(ctx, r)

	case stage.MatchingRecord:
		if d.c.Regions == nil || d.c.Matcher == nil {
			return unavailable(r.Stage(), "regions provider and matcher")
		}
		if err := d.c.Regions.Load(ctx, r.InputFile(), r.MatchesDir(), r.Regions(), r.CacheSize()); err != nil {
			return fmt.Errorf("failed to load regions from %s: %w", r.MatchesDir(), err)
		}
		if err := d.c.Matcher.Match(ctx, r, d.c.Regions); err != nil {
			return err
		}
		return d.exportGraph(ctx, r.AdjacencyMatrixPath())

	case stage.GeometricFilterRecord:
		if d.c.Regions == nil || d.c.Filter == nil {
			return unavailable(r.Stage(), "regions provider and geometric filter")
		}
		if err := d.c.Regions.Load(ctx, r.InputFile(), r.MatchesDir(), options.RegionsUnknown, r.CacheSize()); err != nil {
			return fmt.Errorf("failed to load regions from %s: %w", r.MatchesDir(), err)
		}
		if err := d.c.Filter.Filter(ctx, r, d.c.Regions); err != nil {
			return err
		}
		return d.exportGraph(ctx, r.AdjacencyMatrixPath())

	case stage.SfMRecord:
		if d.c.Engine == nil {
			return unavailable(r.Stage(), "reconstruction engine")
		}
		return d.c.Engine.Reconstruct(ctx, r)

	default:
		return fmt.Errorf("%w: unsupported record %T", errors.ErrEngineUnavailable, rec)
	}
}

// pairs generates the pair list from the scene view count and writes it.
func (d *Dispatcher) pairs(ctx context.Context, r stage.PairsRecord) error {
	if d.c.Scene == nil {
		return unavailable(r.Stage(), "scene reader")
	}
	n, err := d.c.Scene.ViewCount(ctx, r.InputFile())
	if err != nil {
		return fmt.Errorf("failed to read scene %s: %w", r.InputFile(), err)
	}

	pairs := r.Generate(n)
	var buf bytes.Buffer
	if err := stage.WritePairs(&buf, pairs); err != nil {
		return err
	}
	if err := d.fs.WriteFile(r.OutputFile(), buf.Bytes(), workdir.DefaultFilePerms); err != nil {
		return fmt.Errorf("failed to save pairs to %s: %w", r.OutputFile(), err)
	}
	d.logger.Info("💾 Saved pairs", "output_file", r.OutputFile(), "views", n, "pairs", len(pairs))
	return nil
}

// exportGraph is optional: without an exporter nothing is written.
func (d *Dispatcher) exportGraph(ctx context.Context, path string) error {
	if d.c.Graph == nil {
		return nil
	}
	if err := d.c.Graph.ExportAdjacency(ctx, path); err != nil {
		d.logger.Warn("⚠️ Failed to export view graph", "path", path, "error", err)
	}
	return nil
}
