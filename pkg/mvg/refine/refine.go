// Package refine holds the bundle adjustment refinement masks.
//
// A mask is a set over a fixed flag universe. Masks are parsed from
// "|"-joined flag names, e.g. "ADJUST_FOCAL_LENGTH|ADJUST_DISTORTION".
// The zero mask is never a legal selection.
package refine

import (
	"strings"
)

// IntrinsicParams selects the camera intrinsics refined by bundle adjustment.
type IntrinsicParams uint32

const (
	IntrinsicNone                 IntrinsicParams = 1
	IntrinsicAdjustFocalLength    IntrinsicParams = 2
	IntrinsicAdjustPrincipalPoint IntrinsicParams = 4
	IntrinsicAdjustDistortion     IntrinsicParams = 8

	IntrinsicAdjustAll = IntrinsicAdjustFocalLength | IntrinsicAdjustPrincipalPoint | IntrinsicAdjustDistortion
)

// IntrinsicAdjustFlags lists the adjust flags whose union is IntrinsicAdjustAll.
var IntrinsicAdjustFlags = []IntrinsicParams{
	IntrinsicAdjustFocalLength,
	IntrinsicAdjustPrincipalPoint,
	IntrinsicAdjustDistortion,
}

var namedIntrinsics = map[string]IntrinsicParams{
	"NONE":                   IntrinsicNone,
	"ADJUST_FOCAL_LENGTH":    IntrinsicAdjustFocalLength,
	"ADJUST_PRINCIPAL_POINT": IntrinsicAdjustPrincipalPoint,
	"ADJUST_DISTORTION":      IntrinsicAdjustDistortion,
	"ADJUST_ALL":             IntrinsicAdjustAll,
}

// ParseIntrinsic parses a "|"-joined intrinsic flag list. Unknown flags or an
// empty list yield the zero mask.
func ParseIntrinsic(flags string) IntrinsicParams {
	bits, ok := parseMask(flags, func(name string) (uint32, bool) {
		v, ok := namedIntrinsics[name]
		return uint32(v), ok
	})
	if !ok {
		return 0
	}
	return IntrinsicParams(bits)
}

// Combine returns the union of p and other.
func (p IntrinsicParams) Combine(other IntrinsicParams) IntrinsicParams {
	return p | other
}

// Has reports whether every bit of flag is set in p.
func (p IntrinsicParams) Has(flag IntrinsicParams) bool {
	return flag != 0 && p&flag == flag
}

// Equals reports whether p and other select the same flags.
func (p IntrinsicParams) Equals(other IntrinsicParams) bool {
	return p == other
}

// IsNoneExclusive reports whether the NONE flag, if present, stands alone.
func (p IntrinsicParams) IsNoneExclusive() bool {
	return !p.Has(IntrinsicNone) || p == IntrinsicNone
}

// String returns the canonical pipe-joined flag names.
func (p IntrinsicParams) String() string {
	var names []string
	if p.Has(IntrinsicNone) {
		names = append(names, "NONE")
	}
	if p.Has(IntrinsicAdjustAll) {
		names = append(names, "ADJUST_ALL")
	} else {
		if p.Has(IntrinsicAdjustFocalLength) {
			names = append(names, "ADJUST_FOCAL_LENGTH")
		}
		if p.Has(IntrinsicAdjustPrincipalPoint) {
			names = append(names, "ADJUST_PRINCIPAL_POINT")
		}
		if p.Has(IntrinsicAdjustDistortion) {
			names = append(names, "ADJUST_DISTORTION")
		}
	}
	if len(names) == 0 {
		return "INVALID"
	}
	return strings.Join(names, "|")
}

// ExtrinsicParams selects the camera poses refined by bundle adjustment.
type ExtrinsicParams uint32

const (
	ExtrinsicNone              ExtrinsicParams = 1
	ExtrinsicAdjustRotation    ExtrinsicParams = 2
	ExtrinsicAdjustTranslation ExtrinsicParams = 4

	ExtrinsicAdjustAll = ExtrinsicAdjustRotation | ExtrinsicAdjustTranslation
)

// ExtrinsicAdjustFlags lists the adjust flags whose union is ExtrinsicAdjustAll.
var ExtrinsicAdjustFlags = []ExtrinsicParams{
	ExtrinsicAdjustRotation,
	ExtrinsicAdjustTranslation,
}

var namedExtrinsics = map[string]ExtrinsicParams{
	"NONE":               ExtrinsicNone,
	"ADJUST_ROTATION":    ExtrinsicAdjustRotation,
	"ADJUST_TRANSLATION": ExtrinsicAdjustTranslation,
	"ADJUST_ALL":         ExtrinsicAdjustAll,
}

// ParseExtrinsic parses a "|"-joined extrinsic flag list. Unknown flags or an
// empty list yield the zero mask.
func ParseExtrinsic(flags string) ExtrinsicParams {
	bits, ok := parseMask(flags, func(name string) (uint32, bool) {
		v, ok := namedExtrinsics[name]
		return uint32(v), ok
	})
	if !ok {
		return 0
	}
	return ExtrinsicParams(bits)
}

// Combine returns the union of p and other.
func (p ExtrinsicParams) Combine(other ExtrinsicParams) ExtrinsicParams {
	return p | other
}

// Has reports whether every bit of flag is set in p.
func (p ExtrinsicParams) Has(flag ExtrinsicParams) bool {
	return flag != 0 && p&flag == flag
}

// Equals reports whether p and other select the same flags.
func (p ExtrinsicParams) Equals(other ExtrinsicParams) bool {
	return p == other
}

// IsNoneExclusive reports whether the NONE flag, if present, stands alone.
func (p ExtrinsicParams) IsNoneExclusive() bool {
	return !p.Has(ExtrinsicNone) || p == ExtrinsicNone
}

// String returns the canonical pipe-joined flag names.
func (p ExtrinsicParams) String() string {
	var names []string
	if p.Has(ExtrinsicNone) {
		names = append(names, "NONE")
	}
	if p.Has(ExtrinsicAdjustAll) {
		names = append(names, "ADJUST_ALL")
	} else {
		if p.Has(ExtrinsicAdjustRotation) {
			names = append(names, "ADJUST_ROTATION")
		}
		if p.Has(ExtrinsicAdjustTranslation) {
			names = append(names, "ADJUST_TRANSLATION")
		}
	}
	if len(names) == 0 {
		return "INVALID"
	}
	return strings.Join(names, "|")
}

// parseMask ORs the bits of every "|"-separated name. It fails on an empty
// list, an empty element or an unknown name.
func parseMask(flags string, lookup func(string) (uint32, bool)) (uint32, bool) {
	flags = strings.TrimSpace(flags)
	if flags == "" {
		return 0, false
	}

	var bits uint32
	for _, part := range strings.Split(flags, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		v, ok := lookup(part)
		if !ok {
			return 0, false
		}
		bits |= v
	}
	return bits, true
}
