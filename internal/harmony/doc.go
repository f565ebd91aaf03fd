// Package harmony implements color format conversions and color harmony rules.
//
// The package is a set of pure functions over small value types. Nothing is
// cached and nothing is mutated, so every function is safe for concurrent use.
//
// # Color Representation
//
// Each color space has an absolute and a relative encoding, and each encoding
// has its own type so they cannot be mixed by accident:
//   - RGB: 8-bit channels (0-255)
//   - RelRGB: channels as fractions (0.0-1.0)
//   - HSL: Hue in degrees (0-360), Saturation and Lightness in percent (0-100)
//   - RelHSL: all three components as fractions (0.0-1.0)
//   - Hex strings: "#rrggbb", case-insensitive on input, lowercase on output
//
// # Range Policy
//
// Hue always wraps modulo 360. Saturation and lightness are clamped into
// [0,100] when a color is built with NewHSL, but the monochromatic generators
// (Saturate, Desaturate, Lighter, Darker, Mono) step them with modulo 100
// arithmetic, so a step past either end wraps around to the other side.
//
// # Harmonies
//
// Harmony generators take an absolute HSL color and return the derived colors
// only; the base color is never included in the result:
//   - Complementary: +180
//   - SplitComplementary: +150, +210
//   - Analogous: +30, -30 (and +60, -60 for four colors)
//   - Triadic: +120, +240
//   - Tetradic: +90, +180, +270
//   - DoubleComplementary: the complements of two independent colors
//
// # Error Handling
//
// ParseHex is the only function that can fail. It returns an error wrapping
// ErrInvalidFormat when the input is not shaped like "#rrggbb". All numeric
// functions are total and never return errors.
package harmony
