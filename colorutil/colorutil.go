// Package colorutil parses hex color triplets into color values.
package colorutil

import (
	"errors"
	"image/color"
	"regexp"
	"strconv"
)

// ErrNoMatch is returned when the input is not a 6-digit hex triplet.
var ErrNoMatch = errors.New("colorutil: no hex color match")

var hexTriplet = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ParseHex converts a "#rrggbb" string (the '#' is optional, case doesn't
// matter) into a fully opaque color. Anything else yields ErrNoMatch.
func ParseHex(s string) (color.NRGBA, error) {
	m := hexTriplet.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{}, ErrNoMatch
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return color.NRGBA{}, ErrNoMatch
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// MustParseHex is ParseHex for compile-time constants; it panics on bad input.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic("colorutil: bad hex triplet " + strconv.Quote(s))
	}
	return c
}
