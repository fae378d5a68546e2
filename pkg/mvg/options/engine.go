package options

// SfMEngine selects the reconstruction pipeline.
type SfMEngine int

const (
	EngineInvalid       SfMEngine = iota
	EngineIncremental             // Views added sequentially to a two view seed
	EngineIncrementalV2           // Views added sequentially to a 2 or N view seed
	EngineGlobal                  // Global rotation then translation averaging
	EngineStellar                 // Local n-uplet refinement followed by global SfM
)

// DefaultEngine is the engine used when none is requested.
const DefaultEngine = EngineIncremental

var namedEngines = map[string]SfMEngine{
	"INCREMENTAL":   EngineIncremental,
	"INCREMENTALV2": EngineIncrementalV2,
	"GLOBAL":        EngineGlobal,
	"STELLAR":       EngineStellar,
}

// ParseSfMEngine resolves an engine name. Matching is case-sensitive.
func ParseSfMEngine(s string) SfMEngine {
	if e, ok := namedEngines[s]; ok {
		return e
	}
	return EngineInvalid
}

// String returns the engine name.
func (e SfMEngine) String() string {
	switch e {
	case EngineIncremental:
		return "INCREMENTAL"
	case EngineIncrementalV2:
		return "INCREMENTALV2"
	case EngineGlobal:
		return "GLOBAL"
	case EngineStellar:
		return "STELLAR"
	default:
		return "INVALID"
	}
}

// SceneInitializer selects how an INCREMENTALV2 reconstruction is seeded.
type SceneInitializer int

const (
	InitializerInvalid       SceneInitializer = iota
	InitializerExistingPoses                  // Poses already present in the scene
	InitializerMaxPair                        // Pair with the most matches
	InitializerAutoPair                       // Pair selected automatically
	InitializerStellar                        // Stellar reconstruction seed
)

// DefaultInitializer is the initializer used when none is requested.
const DefaultInitializer = InitializerStellar

var namedInitializers = map[string]SceneInitializer{
	"EXISTING_POSE": InitializerExistingPoses,
	"MAX_PAIR":      InitializerMaxPair,
	"AUTO_PAIR":     InitializerAutoPair,
	"STELLAR":       InitializerStellar,
}

// ParseSceneInitializer resolves an initializer name. Matching is case-sensitive.
func ParseSceneInitializer(s string) SceneInitializer {
	if i, ok := namedInitializers[s]; ok {
		return i
	}
	return InitializerInvalid
}

// String returns the initializer name.
func (i SceneInitializer) String() string {
	switch i {
	case InitializerExistingPoses:
		return "EXISTING_POSE"
	case InitializerMaxPair:
		return "MAX_PAIR"
	case InitializerAutoPair:
		return "AUTO_PAIR"
	case InitializerStellar:
		return "STELLAR"
	default:
		return "INVALID"
	}
}

// GraphSimplification selects the pose graph reduction of the stellar engine.
// GraphSimplificationNone is a legal choice and is distinct from the invalid value.
type GraphSimplification int

const (
	GraphSimplificationInvalid GraphSimplification = iota
	GraphSimplificationNone                        // Keep the full graph
	GraphSimplificationMSTX                        // Minimum spanning tree, X times
	GraphSimplificationStarX                       // Star sub-graphs, X times
)

// DefaultGraphSimplification is the strategy used when none is requested.
const DefaultGraphSimplification = GraphSimplificationMSTX

var namedSimplifications = map[string]GraphSimplification{
	"NONE":   GraphSimplificationNone,
	"MST_X":  GraphSimplificationMSTX,
	"STAR_X": GraphSimplificationStarX,
}

// ParseGraphSimplification resolves a strategy name. Matching is case-sensitive.
func ParseGraphSimplification(s string) GraphSimplification {
	if g, ok := namedSimplifications[s]; ok {
		return g
	}
	return GraphSimplificationInvalid
}

// String returns the strategy name.
func (g GraphSimplification) String() string {
	switch g {
	case GraphSimplificationNone:
		return "NONE"
	case GraphSimplificationMSTX:
		return "MST_X"
	case GraphSimplificationStarX:
		return "STAR_X"
	default:
		return "INVALID"
	}
}
