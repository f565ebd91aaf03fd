package harmony

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Relative converts an absolute RGB color to relative form by dividing each
// channel by 255. Results are rounded to 4 decimal places.
func (c RGB) Relative() RelRGB {
	const base = 255.0
	return RelRGB{
		R: roundTo(float64(c.R)/base, 4),
		G: roundTo(float64(c.G)/base, 4),
		B: roundTo(float64(c.B)/base, 4),
	}
}

// Absolute converts a relative RGB color back to 8-bit channels. Each
// channel is multiplied by 255, rounded half to even, and clamped to 0-255.
func (c RelRGB) Absolute() RGB {
	return RGB{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
	}
}

func toByte(v float64) uint8 {
	n := math.RoundToEven(v * 255)
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Relative converts an absolute HSL color to relative form: hue / 360,
// saturation / 100, lightness / 100, each rounded to 4 decimal places.
//
// No range checks are made; a hue of 720 becomes 2.0.
func (c HSL) Relative() RelHSL {
	return RelHSL{
		H: roundTo(float64(c.H)/360.0, 4),
		S: roundTo(float64(c.S)/100.0, 4),
		L: roundTo(float64(c.L)/100.0, 4),
	}
}

// Absolute converts a relative HSL color to degrees and percent.
//
// Hue and saturation keep 2 decimal places; lightness is rounded to a whole
// percent.
func (c RelHSL) Absolute() HSL {
	return HSL{
		H: Degrees(roundTo(c.H*360, 2)),
		S: Percent(roundTo(c.S*100, 2)),
		L: Percent(math.RoundToEven(c.L * 100)),
	}
}

// RGBToHSL converts an absolute RGB color to absolute HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to relative form (4 decimal places)
//  2. Lightness is (max + min) / 2 of the channels
//  3. Equal max and min is achromatic: hue and saturation are 0
//  4. Otherwise saturation depends on lightness and hue on which channel is max
//  5. Convert the result back to degrees and percent
//
// Example:
//
//	harmony.RGBToHSL(harmony.RGB{R: 217, G: 130, B: 43}) // hsl(30, 69.6%, 51%)
func RGBToHSL(c RGB) HSL {
	rel := c.Relative()
	_, s, l := colorful.Color{R: rel.R, G: rel.G, B: rel.B}.Hsl()
	return RelHSL{H: hueTurns(rel), S: s, L: l}.Absolute()
}

// hueTurns returns the hue of c as a fraction of a full turn in [0,1).
//
// It works from each channel's distance to the maximum, the usual HLS
// formulation. Computing in degrees instead rounds differently at two
// decimal places for a fraction of colors.
func hueTurns(c RelRGB) float64 {
	max := math.Max(math.Max(c.R, c.G), c.B)
	min := math.Min(math.Min(c.R, c.G), c.B)
	if max == min {
		return 0
	}
	span := max - min
	rc := (max - c.R) / span
	gc := (max - c.G) / span
	bc := (max - c.B) / span

	var h float64
	switch max {
	case c.R:
		h = bc - gc
	case c.G:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	return floorMod(h/6.0, 1)
}

// HSLToRGB converts an absolute HSL color to absolute RGB.
//
// The color is first reduced to relative form, passed through the standard
// HSL to RGB transform, and each channel is rounded to the nearest integer.
// Hues outside [0,360) are wrapped before the transform.
func HSLToRGB(c HSL) RGB {
	rel := c.Relative()
	h := floorMod(rel.H, 1) * 360
	out := colorful.Hsl(h, rel.S, rel.L)
	return RelRGB{R: out.R, G: out.G, B: out.B}.Absolute()
}
