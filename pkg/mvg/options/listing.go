package options

// PairMode selects how candidate image pairs are generated.
type PairMode int

const (
	PairModeInvalid    PairMode = iota
	PairModeExhaustive          // Every unordered pair of views
	PairModeContiguous          // Each view with its next N neighbours (video)
)

// DefaultPairMode is the mode used when none is requested.
const DefaultPairMode = PairModeExhaustive

// ParsePairMode resolves a pair mode name. Matching is case-sensitive.
func ParsePairMode(s string) PairMode {
	switch s {
	case "EXHAUSTIVE":
		return PairModeExhaustive
	case "CONTIGUOUS":
		return PairModeContiguous
	default:
		return PairModeInvalid
	}
}

// String returns the mode name.
func (m PairMode) String() string {
	switch m {
	case PairModeExhaustive:
		return "EXHAUSTIVE"
	case PairModeContiguous:
		return "CONTIGUOUS"
	default:
		return "INVALID"
	}
}

// GPSConversion selects the coordinate system GPS priors are converted to.
type GPSConversion int

const (
	GPSInvalid GPSConversion = -1
	GPSToECEF  GPSConversion = 0
	GPSToUTM   GPSConversion = 1

	DefaultGPSConversion = GPSToECEF
)

// GPSConversionFromInt resolves a command line conversion index.
func GPSConversionFromInt(n int) GPSConversion {
	switch g := GPSConversion(n); g {
	case GPSToECEF, GPSToUTM:
		return g
	default:
		return GPSInvalid
	}
}

// String returns the coordinate system name.
func (g GPSConversion) String() string {
	switch g {
	case GPSToECEF:
		return "ECEF"
	case GPSToUTM:
		return "UTM"
	default:
		return "INVALID"
	}
}
