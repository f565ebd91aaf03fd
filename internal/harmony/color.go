package harmony

import (
	"fmt"
	"math"
	"strconv"
)

// RGB represents an absolute RGB color with 8-bit components.
//
// Each component ranges from 0 to 255. The uint8 fields make out-of-range
// channels unrepresentable, so Hex always produces a well-formed string.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RelRGB represents a relative RGB color with components in 0.0-1.0.
type RelRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Degrees is a hue angle on the color wheel.
type Degrees float64

// Wrap folds the angle into [0,360). Negative angles wrap upward, so -30
// becomes 330.
func (d Degrees) Wrap() Degrees {
	return Degrees(floorMod(float64(d), 360))
}

// Percent is a saturation or lightness value.
type Percent float64

// Clamp bounds the value into [0,100].
func (p Percent) Clamp() Percent {
	return Percent(math.Max(0, math.Min(100, float64(p))))
}

// Wrap folds the value into [0,100) with floored modulo, so 105 becomes 5
// and -5 becomes 95.
func (p Percent) Wrap() Percent {
	return Percent(floorMod(float64(p), 100))
}

// HSL represents an absolute color in HSL (Hue, Saturation, Lightness) space.
//
//   - H: 0-360 degrees (0=red, 120=green, 240=blue)
//   - S: 0-100 percent (0=gray, 100=vivid)
//   - L: 0-100 percent (0=black, 50=normal, 100=white)
//
// Struct literals are not normalized. Use NewHSL to apply the range policy.
type HSL struct {
	H Degrees `json:"h"`
	S Percent `json:"s"`
	L Percent `json:"l"`
}

// NewHSL builds an HSL color with the hue wrapped into [0,360) and the
// saturation and lightness clamped into [0,100].
func NewHSL(h, s, l float64) HSL {
	return HSL{
		H: Degrees(h).Wrap(),
		S: Percent(s).Clamp(),
		L: Percent(l).Clamp(),
	}
}

// String formats the color as "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", float64(c.H), float64(c.S), float64(c.L))
}

// RelHSL represents a relative HSL color with components in 0.0-1.0.
type RelHSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBA implements color.Color so an RGB value can be handed directly to
// image drawing code. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// floorMod returns x mod m with the sign of m, matching the behavior of
// modulo on a circle rather than Go's truncated remainder.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// -1e-17 + 360 rounds to 360 in float64.
	if r >= m {
		r = 0
	}
	return r
}

// roundTo rounds x to the given number of decimal places. Rounding is done
// on the exact decimal value of x with ties to even, so 2.675, stored just
// below, becomes 2.67 even though 2.675*100 is exactly 267.5.
func roundTo(x float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}
