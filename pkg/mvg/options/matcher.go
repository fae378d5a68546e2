package options

// MatcherType selects the nearest neighbour strategy of the matching stage.
type MatcherType int

const (
	MatcherNone                 MatcherType = iota // Unrecognized input
	MatcherAuto                                    // Chosen from the regions type
	MatcherBruteForceL2                            // L2 brute force
	MatcherANNL2                                   // L2 approximate nearest neighbour
	MatcherCascadeHashingL2                        // L2 cascade hashing
	MatcherHNSWL2                                  // L2 hierarchical navigable small world
	MatcherHNSWL1                                  // L1 HNSW for quantized histograms
	MatcherBruteForceHamming                       // Hamming brute force
	MatcherHNSWHamming                             // Hamming HNSW
	MatcherFastCascadeHashingL2                    // L2 cascade hashing on pre-hashed regions
)

// DefaultMatcher is used for automatic selection when the regions type is
// scalar or not known.
const DefaultMatcher = MatcherFastCascadeHashingL2

var namedMatchers = map[string]MatcherType{
	"AUTO":                 MatcherAuto,
	"BRUTEFORCEL2":         MatcherBruteForceL2,
	"ANNL2":                MatcherANNL2,
	"CASCADEHASHINGL2":     MatcherCascadeHashingL2,
	"HNSWL2":               MatcherHNSWL2,
	"HNSWL1":               MatcherHNSWL1,
	"BRUTEFORCEHAMMING":    MatcherBruteForceHamming,
	"HNSWHAMMING":          MatcherHNSWHamming,
	"FASTCASCADEHASHINGL2": MatcherFastCascadeHashingL2,
}

// ParseMatcherType resolves a matcher token. Matching is case-sensitive.
func ParseMatcherType(s string) MatcherType {
	if m, ok := namedMatchers[s]; ok {
		return m
	}
	return MatcherNone
}

// ResolveAuto replaces MatcherAuto with a concrete matcher for the regions
// kind. Other values are returned unchanged.
func ResolveAuto(m MatcherType, kind RegionKind) MatcherType {
	if m != MatcherAuto {
		return m
	}
	if kind == RegionsBinary {
		return MatcherHNSWHamming
	}
	return DefaultMatcher
}

// Metric returns the distance the matcher computes.
func (m MatcherType) Metric() Metric {
	switch m {
	case MatcherBruteForceL2, MatcherANNL2, MatcherCascadeHashingL2,
		MatcherHNSWL2, MatcherFastCascadeHashingL2:
		return MetricL2
	case MatcherHNSWL1:
		return MetricL1
	case MatcherBruteForceHamming, MatcherHNSWHamming:
		return MetricHamming
	default:
		return MetricUnknown
	}
}

// String returns the command line token of the matcher.
func (m MatcherType) String() string {
	switch m {
	case MatcherAuto:
		return "AUTO"
	case MatcherBruteForceL2:
		return "BRUTEFORCEL2"
	case MatcherANNL2:
		return "ANNL2"
	case MatcherCascadeHashingL2:
		return "CASCADEHASHINGL2"
	case MatcherHNSWL2:
		return "HNSWL2"
	case MatcherHNSWL1:
		return "HNSWL1"
	case MatcherBruteForceHamming:
		return "BRUTEFORCEHAMMING"
	case MatcherHNSWHamming:
		return "HNSWHAMMING"
	case MatcherFastCascadeHashingL2:
		return "FASTCASCADEHASHINGL2"
	default:
		return "NONE"
	}
}
