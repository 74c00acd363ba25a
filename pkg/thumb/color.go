package thumb

import (
	"fmt"
	"image/color"
)

// RGB is an accent color with 8-bit channels. Using uint8 channels makes the
// [0, 255] range part of the type; arithmetic that could leave the range goes
// through clampChannel before conversion back.
type RGB struct {
	R uint8 `json:"r" toml:"r"`
	G uint8 `json:"g" toml:"g"`
	B uint8 `json:"b" toml:"b"`
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String renders the color as "r,g,b", the form used in cache key IDs.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Brightness factors for the hover animation frames.
const (
	brightFactor = 1.05
	darkFactor   = 0.92
)

// Brighten scales each channel by factor, floors to an integer, and clamps
// to [0, 255]. Factors above 1 lighten, below 1 darken.
func Brighten(c RGB, factor float64) RGB {
	return RGB{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}
}

// Variants derives the three hover-cycle colors from one accent color:
// the base, a slightly brighter frame, and a slightly darker frame.
func Variants(c RGB) [3]RGB {
	return [3]RGB{c, Brighten(c, brightFactor), Brighten(c, darkFactor)}
}

func clampChannel(v float64) uint8 {
	n := int(v)
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}
