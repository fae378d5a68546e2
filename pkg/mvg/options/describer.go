package options

// DescriberMethod is the image describer used by the feature stage.
type DescriberMethod int

const (
	DescriberInvalid     DescriberMethod = iota
	DescriberSIFT                        // SIFT
	DescriberSIFTAnatomy                 // SIFT anatomy implementation
	DescriberAKAZEFloat                  // AKAZE with floating point descriptors
	DescriberAKAZEMLDB                   // AKAZE with binary descriptors
)

// DefaultDescriber is the describer used when none is requested.
const DefaultDescriber = DescriberSIFT

var namedDescribers = map[string]DescriberMethod{
	"SIFT":         DescriberSIFT,
	"SIFT_ANATOMY": DescriberSIFTAnatomy,
	"AKAZE_FLOAT":  DescriberAKAZEFloat,
	"AKAZE_MLDB":   DescriberAKAZEMLDB,
}

// ParseDescriberMethod resolves a describer name. Matching is case-sensitive.
func ParseDescriberMethod(s string) DescriberMethod {
	if d, ok := namedDescribers[s]; ok {
		return d
	}
	return DescriberInvalid
}

// Regions returns the descriptor family the describer produces.
func (d DescriberMethod) Regions() RegionKind {
	switch d {
	case DescriberSIFT, DescriberSIFTAnatomy, DescriberAKAZEFloat:
		return RegionsScalar
	case DescriberAKAZEMLDB:
		return RegionsBinary
	default:
		return RegionsUnknown
	}
}

// String returns the describer name.
func (d DescriberMethod) String() string {
	switch d {
	case DescriberSIFT:
		return "SIFT"
	case DescriberSIFTAnatomy:
		return "SIFT_ANATOMY"
	case DescriberAKAZEFloat:
		return "AKAZE_FLOAT"
	case DescriberAKAZEMLDB:
		return "AKAZE_MLDB"
	default:
		return "INVALID"
	}
}

// DescriberPreset controls the density and cost of feature extraction.
type DescriberPreset int

const (
	PresetUnrecognized DescriberPreset = -1
	PresetNormal       DescriberPreset = 0
	PresetHigh         DescriberPreset = 1
	PresetUltra        DescriberPreset = 2 // Can take a long time
)

// DefaultPreset is the preset used when none is requested.
const DefaultPreset = PresetNormal

// ParseDescriberPreset resolves a preset name. Matching is case-sensitive.
func ParseDescriberPreset(s string) DescriberPreset {
	switch s {
	case "NORMAL":
		return PresetNormal
	case "HIGH":
		return PresetHigh
	case "ULTRA":
		return PresetUltra
	default:
		return PresetUnrecognized
	}
}

// String returns the preset name.
func (p DescriberPreset) String() string {
	switch p {
	case PresetNormal:
		return "NORMAL"
	case PresetHigh:
		return "HIGH"
	case PresetUltra:
		return "ULTRA"
	default:
		return "UNRECOGNIZED"
	}
}
