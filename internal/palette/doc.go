// Package palette assembles harmony results into ready-to-display palettes.
//
// Where package harmony works on bare HSL values, this package takes a base
// color, runs one of the named harmony schemes over it, and reports every
// color in all supported formats so clients never have to convert anything
// themselves.
//
// # Schemes
//
// Build accepts the following scheme names:
//   - complementary: 1 derived color
//   - split-complementary: 2 derived colors
//   - analogous: 2 derived colors (4 with Options.AnalogousCount = 4)
//   - analogous-4: 4 derived colors
//   - triadic: 2 derived colors
//   - tetradic: 3 derived colors
//   - double-complementary: complements of the base and Options.Second
//   - monochromatic: 4 lightness variants
//
// # Color Representation
//
// Each color is returned as a ColorResult:
//   - Hex: "#rrggbb" (lowercase)
//   - RGB: 8-bit components (0-255)
//   - RelRGB: components as fractions (0-1)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - RelHSL: components as fractions (0-1)
//
// # Swatches
//
// RenderSwatch draws a palette as a strip of square tiles and returns it as
// a base64-encoded PNG, so MCP clients that can show images get a visual
// preview alongside the numbers.
package palette
