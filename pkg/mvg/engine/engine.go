// Package engine declares the collaborators that execute a validated stage
// configuration and dispatches records to them.
//
// None of the collaborators are implemented here. A host registers the ones
// it provides; dispatching a record whose collaborator is missing reports
// errors.ErrEngineUnavailable.
package engine

import (
	"context"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// SceneLister builds the initial scene description from an image directory.
type SceneLister interface {
	ListImages(ctx context.Context, rec stage.ListingRecord) error
}

// FeatureExtractor computes and stores the regions of every view.
type FeatureExtractor interface {
	ComputeFeatures(ctx context.Context, rec stage.FeaturesRecord) error
}

// SceneReader reads serialized scene descriptions.
type SceneReader interface {
	ViewCount(ctx context.Context, sfmDataPath string) (int, error)
}

// RegionsProvider serves per-view regions keyed by view id, keeping at most
// cacheSize views in memory. A cacheSize of 0 keeps every view.
type RegionsProvider interface {
	Load(ctx context.Context, sfmDataPath, matchesDir string, kind options.RegionKind, cacheSize int) error
	Regions(viewID uint32) (options.RegionKind, error)
}

// Matcher computes putative matches with the record's matcher and ratio.
type Matcher interface {
	Match(ctx context.Context, rec stage.MatchingRecord, regions RegionsProvider) error
}

// GeometricFilter keeps the matches consistent with the record's geometric
// model, optionally refining them with guided matching.
type GeometricFilter interface {
	Filter(ctx context.Context, rec stage.GeometricFilterRecord, regions RegionsProvider) error
}

// ReconstructionEngine runs the record's SfM engine with its refinement
// masks.
type ReconstructionEngine interface {
	Reconstruct(ctx context.Context, rec stage.SfMRecord) error
}

// GraphExporter writes a view graph visualization.
type GraphExporter interface {
	ExportAdjacency(ctx context.Context, path string) error
}
