package options

import (
	"strconv"
	"strings"
)

// KMatrix holds the entries of a 3x3 intrinsic matrix that describe a
// pinhole camera: focal length and principal point, all in pixels.
type KMatrix struct {
	Focal float64
	PPX   float64
	PPY   float64
}

// ParseKMatrix parses "f;0;ppx;0;f;ppy;0;0;1", the row-major matrix as nine
// semicolon separated numbers.
func ParseKMatrix(s string) (KMatrix, bool) {
	values, ok := parseFloats(s, 9)
	if !ok {
		return KMatrix{}, false
	}
	return KMatrix{Focal: values[0], PPX: values[2], PPY: values[5]}, true
}

// PriorWeights are the per-axis weights of pose position priors.
type PriorWeights [3]float64

// DefaultPriorWeights weight every axis equally.
var DefaultPriorWeights = PriorWeights{1.0, 1.0, 1.0}

// ParsePriorWeights parses "wx;wy;wz".
func ParsePriorWeights(s string) (PriorWeights, bool) {
	values, ok := parseFloats(s, 3)
	if !ok {
		return PriorWeights{}, false
	}
	return PriorWeights{values[0], values[1], values[2]}, true
}

func parseFloats(s string, n int) ([]float64, bool) {
	parts := strings.Split(s, ";")
	if len(parts) != n {
		return nil, false
	}

	values := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
