package options

// TriangulationMethod selects the multi-view triangulation solver.
type TriangulationMethod int

const (
	TriangulationInvalid                      TriangulationMethod = 0
	TriangulationDirectLinearTransform        TriangulationMethod = 1
	TriangulationL1Angular                    TriangulationMethod = 2
	TriangulationLInfinityAngular             TriangulationMethod = 3
	TriangulationInverseDepthWeightedMidpoint TriangulationMethod = 4
	TriangulationDefault                      TriangulationMethod = 5

	// Inclusive bounds of the legal range.
	TriangulationFirst = TriangulationDirectLinearTransform
	TriangulationLast  = TriangulationDefault
)

// TriangulationFromInt resolves a command line triangulation index.
func TriangulationFromInt(n int) TriangulationMethod {
	t := TriangulationMethod(n)
	if t < TriangulationFirst || t > TriangulationLast {
		return TriangulationInvalid
	}
	return t
}

// String returns the solver name.
func (t TriangulationMethod) String() string {
	switch t {
	case TriangulationDirectLinearTransform:
		return "DIRECT_LINEAR_TRANSFORM"
	case TriangulationL1Angular:
		return "L1_ANGULAR"
	case TriangulationLInfinityAngular:
		return "LINFINITY_ANGULAR"
	case TriangulationInverseDepthWeightedMidpoint:
		return "INVERSE_DEPTH_WEIGHTED_MIDPOINT"
	case TriangulationDefault:
		return "DEFAULT"
	default:
		return "INVALID"
	}
}

// ResectionMethod selects the absolute pose solver used when adding views.
type ResectionMethod int

const (
	ResectionInvalid            ResectionMethod = -1
	ResectionDLT6Points         ResectionMethod = 0 // Ignores intrinsic data
	ResectionP3PKeCVPR17        ResectionMethod = 1
	ResectionP3PKneipCVPR11     ResectionMethod = 2
	ResectionP3PNordbergECCV18  ResectionMethod = 3
	ResectionUP2PKukelovaACCV10 ResectionMethod = 4 // Two points, upright camera

	ResectionFirst   = ResectionDLT6Points
	ResectionLast    = ResectionUP2PKukelovaACCV10
	DefaultResection = ResectionP3PKeCVPR17
)

// ResectionFromInt resolves a command line resection index.
func ResectionFromInt(n int) ResectionMethod {
	r := ResectionMethod(n)
	if r < ResectionFirst || r > ResectionLast {
		return ResectionInvalid
	}
	return r
}

// String returns the solver name.
func (r ResectionMethod) String() string {
	switch r {
	case ResectionDLT6Points:
		return "DLT_6POINTS"
	case ResectionP3PKeCVPR17:
		return "P3P_KE_CVPR17"
	case ResectionP3PKneipCVPR11:
		return "P3P_KNEIP_CVPR11"
	case ResectionP3PNordbergECCV18:
		return "P3P_NORDBERG_ECCV18"
	case ResectionUP2PKukelovaACCV10:
		return "UP2P_KUKELOVA_ACCV10"
	default:
		return "INVALID"
	}
}

// RotationAveraging selects the global rotation averaging solver.
type RotationAveraging int

const (
	RotationAveragingInvalid RotationAveraging = 0
	RotationAveragingL1      RotationAveraging = 1
	RotationAveragingL2      RotationAveraging = 2

	RotationAveragingFirst   = RotationAveragingL1
	RotationAveragingLast    = RotationAveragingL2
	DefaultRotationAveraging = RotationAveragingL2
)

// RotationAveragingFromInt resolves a command line rotation averaging index.
func RotationAveragingFromInt(n int) RotationAveraging {
	r := RotationAveraging(n)
	if r < RotationAveragingFirst || r > RotationAveragingLast {
		return RotationAveragingInvalid
	}
	return r
}

// String returns the method name.
func (r RotationAveraging) String() string {
	switch r {
	case RotationAveragingL1:
		return "ROTATION_AVERAGING_L1"
	case RotationAveragingL2:
		return "ROTATION_AVERAGING_L2"
	default:
		return "INVALID"
	}
}

// TranslationAveraging selects the global translation averaging solver.
type TranslationAveraging int

const (
	TranslationAveragingInvalid   TranslationAveraging = 0
	TranslationAveragingL1        TranslationAveraging = 1
	TranslationAveragingL2Chordal TranslationAveraging = 2
	TranslationAveragingSoftL1    TranslationAveraging = 3
	TranslationAveragingLiGT      TranslationAveraging = 4 // Patented, build opt-in

	TranslationAveragingFirst   = TranslationAveragingL1
	TranslationAveragingLast    = TranslationAveragingLiGT
	DefaultTranslationAveraging = TranslationAveragingSoftL1
)

// TranslationAveragingFromInt resolves a command line translation averaging index.
func TranslationAveragingFromInt(n int) TranslationAveraging {
	t := TranslationAveraging(n)
	if t < TranslationAveragingFirst || t > TranslationAveragingLast {
		return TranslationAveragingInvalid
	}
	return t
}

// String returns the method name.
func (t TranslationAveraging) String() string {
	switch t {
	case TranslationAveragingL1:
		return "TRANSLATION_AVERAGING_L1"
	case TranslationAveragingL2Chordal:
		return "TRANSLATION_AVERAGING_L2_DISTANCE_CHORDAL"
	case TranslationAveragingSoftL1:
		return "TRANSLATION_AVERAGING_SOFTL1"
	case TranslationAveragingLiGT:
		return "TRANSLATION_LIGT"
	default:
		return "INVALID"
	}
}
