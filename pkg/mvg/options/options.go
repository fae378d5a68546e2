// Package options defines the closed choice spaces of every pipeline stage and
// the resolvers that map user input onto them.
//
// Resolvers are total: any input maps either to a member of the axis or to the
// axis' single invalid value. Callers validate the result afterwards (see
// package validate); a resolver never fails.
package options

// RegionKind describes the descriptor family produced by an image describer.
type RegionKind int

const (
	RegionsUnknown RegionKind = iota // No describer information available
	RegionsScalar                    // Floating point / histogram descriptors
	RegionsBinary                    // Bit-string descriptors
)

// String returns the token persisted in image_describer.json.
func (k RegionKind) String() string {
	switch k {
	case RegionsScalar:
		return "scalar"
	case RegionsBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseRegionKind is the inverse of RegionKind.String.
func ParseRegionKind(s string) RegionKind {
	switch s {
	case "scalar":
		return RegionsScalar
	case "binary":
		return RegionsBinary
	default:
		return RegionsUnknown
	}
}

// Metric is the descriptor distance a matcher computes.
type Metric int

const (
	MetricUnknown Metric = iota
	MetricL2
	MetricL1
	MetricHamming
)

// Accepts reports whether descriptors of the given kind can be compared with m.
// An unknown region kind accepts every metric.
func (m Metric) Accepts(kind RegionKind) bool {
	switch kind {
	case RegionsScalar:
		return m == MetricL1 || m == MetricL2
	case RegionsBinary:
		return m == MetricHamming
	default:
		return true
	}
}

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricL1:
		return "L1"
	case MetricHamming:
		return "Hamming"
	default:
		return "unknown"
	}
}
