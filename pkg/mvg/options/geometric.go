package options

// GeometricModel is the robust model used to filter putative matches.
type GeometricModel int

const (
	GeometricInvalid          GeometricModel = -1
	GeometricFundamental      GeometricModel = 0
	GeometricEssential        GeometricModel = 1
	GeometricHomography       GeometricModel = 2
	GeometricEssentialAngular GeometricModel = 3
	GeometricEssentialOrtho   GeometricModel = 4
	GeometricEssentialUpright GeometricModel = 5
)

// DefaultGeometricModel is the model used when none is requested.
const DefaultGeometricModel = GeometricFundamental

// ParseGeometricModel resolves the one letter model code. Codes are
// case-sensitive: "f" is the fundamental matrix, "F" is unrecognized.
func ParseGeometricModel(s string) GeometricModel {
	switch s {
	case "f":
		return GeometricFundamental
	case "e":
		return GeometricEssential
	case "h":
		return GeometricHomography
	case "a":
		return GeometricEssentialAngular
	case "u":
		return GeometricEssentialUpright
	case "o":
		return GeometricEssentialOrtho
	default:
		return GeometricInvalid
	}
}

// Code returns the command line letter of the model.
func (g GeometricModel) Code() string {
	switch g {
	case GeometricFundamental:
		return "f"
	case GeometricEssential:
		return "e"
	case GeometricHomography:
		return "h"
	case GeometricEssentialAngular:
		return "a"
	case GeometricEssentialUpright:
		return "u"
	case GeometricEssentialOrtho:
		return "o"
	default:
		return ""
	}
}

// String returns the model name.
func (g GeometricModel) String() string {
	switch g {
	case GeometricFundamental:
		return "FUNDAMENTAL_MATRIX"
	case GeometricEssential:
		return "ESSENTIAL_MATRIX"
	case GeometricHomography:
		return "HOMOGRAPHY_MATRIX"
	case GeometricEssentialAngular:
		return "ESSENTIAL_MATRIX_ANGULAR"
	case GeometricEssentialOrtho:
		return "ESSENTIAL_MATRIX_ORTHO"
	case GeometricEssentialUpright:
		return "ESSENTIAL_MATRIX_UPRIGHT"
	default:
		return "INVALID"
	}
}
