package options

// CameraModel is the intrinsic model assigned to views with unknown intrinsics.
//
// The pinhole family is framed by CameraPinholeStart and CameraPinholeEnd; the
// markers delimit the range and are never a valid selection themselves.
type CameraModel int

const (
	CameraInvalid        CameraModel = -1
	CameraPinholeStart   CameraModel = 0
	CameraPinhole        CameraModel = 1
	CameraPinholeRadial1 CameraModel = 2
	CameraPinholeRadial3 CameraModel = 3
	CameraPinholeBrown   CameraModel = 4 // Radial 3 + tangential 2
	CameraPinholeFisheye CameraModel = 5
	CameraPinholeEnd     CameraModel = 6
	CameraSpherical      CameraModel = 7
)

// DefaultCameraModel is the model used when none is requested.
const DefaultCameraModel = CameraPinholeRadial3

// CameraModelFromInt resolves a command line camera model index.
func CameraModelFromInt(n int) CameraModel {
	c := CameraModel(n)
	if c.IsPinhole() || c.IsSpherical() {
		return c
	}
	return CameraInvalid
}

// IsPinhole reports whether c lies strictly between the pinhole markers.
func (c CameraModel) IsPinhole() bool {
	return c > CameraPinholeStart && c < CameraPinholeEnd
}

// IsSpherical reports whether c is the spherical model.
func (c CameraModel) IsSpherical() bool {
	return c == CameraSpherical
}

// String returns the model name.
func (c CameraModel) String() string {
	switch c {
	case CameraPinholeStart:
		return "PINHOLE_CAMERA_START"
	case CameraPinhole:
		return "PINHOLE_CAMERA"
	case CameraPinholeRadial1:
		return "PINHOLE_CAMERA_RADIAL1"
	case CameraPinholeRadial3:
		return "PINHOLE_CAMERA_RADIAL3"
	case CameraPinholeBrown:
		return "PINHOLE_CAMERA_BROWN"
	case CameraPinholeFisheye:
		return "PINHOLE_CAMERA_FISHEYE"
	case CameraPinholeEnd:
		return "PINHOLE_CAMERA_END"
	case CameraSpherical:
		return "CAMERA_SPHERICAL"
	default:
		return "INVALID"
	}
}
