package palette

import (
	"fmt"

	"github.com/ironsheep/color-harmony-mcp/internal/harmony"
)

// Scheme names a harmony rule.
type Scheme string

// Supported schemes.
const (
	Complementary       Scheme = "complementary"
	SplitComplementary  Scheme = "split-complementary"
	Analogous           Scheme = "analogous"
	Analogous4          Scheme = "analogous-4"
	Triadic             Scheme = "triadic"
	Tetradic            Scheme = "tetradic"
	DoubleComplementary Scheme = "double-complementary"
	Monochromatic       Scheme = "monochromatic"
)

// Schemes lists every scheme in a stable order.
var Schemes = []Scheme{
	Complementary,
	SplitComplementary,
	Analogous,
	Analogous4,
	Triadic,
	Tetradic,
	DoubleComplementary,
	Monochromatic,
}

// Adjustment names a single-step monochromatic change.
type Adjustment string

// Supported adjustments.
const (
	Saturate   Adjustment = "saturate"
	Desaturate Adjustment = "desaturate"
	Lighter    Adjustment = "lighter"
	Darker     Adjustment = "darker"
)

// ColorResult contains a color value in multiple representations.
//
// This struct provides the same color in five formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components
//   - RelRGB: Normalized components for color math
//   - HSL: Perceptual color space for intuitive color operations
//   - RelHSL: Normalized HSL
type ColorResult struct {
	Hex    string         `json:"hex"`
	RGB    harmony.RGB    `json:"rgb"`
	RelRGB harmony.RelRGB `json:"rgb_relative"`
	HSL    harmony.HSL    `json:"hsl"`
	RelHSL harmony.RelHSL `json:"hsl_relative"`
}

// FromRGB describes an RGB color. The HSL fields are derived with
// harmony.RGBToHSL.
func FromRGB(c harmony.RGB) ColorResult {
	hsl := harmony.RGBToHSL(c)
	return ColorResult{
		Hex:    c.Hex(),
		RGB:    c,
		RelRGB: c.Relative(),
		HSL:    hsl,
		RelHSL: hsl.Relative(),
	}
}

// FromHSL describes an HSL color. The HSL fields keep the exact input so
// generated harmonies are reported without a lossy round trip through RGB.
func FromHSL(c harmony.HSL) ColorResult {
	rgb := harmony.HSLToRGB(c)
	return ColorResult{
		Hex:    rgb.Hex(),
		RGB:    rgb,
		RelRGB: rgb.Relative(),
		HSL:    c,
		RelHSL: c.Relative(),
	}
}

// Describe parses a "#rrggbb" string and reports it in every format.
func Describe(hex string) (*ColorResult, error) {
	c, err := harmony.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	result := FromRGB(c)
	return &result, nil
}

// Options tunes Build.
type Options struct {
	// Step is the lightness step for the monochromatic scheme.
	// Zero means harmony.DefaultStep.
	Step float64

	// AnalogousCount selects 2 or 4 colors for the analogous scheme.
	// Zero means 2.
	AnalogousCount int

	// Second is the other base color for the double-complementary scheme.
	Second *harmony.RGB
}

// Palette is a base color plus the colors derived from it by a scheme.
type Palette struct {
	Scheme Scheme        `json:"scheme"`
	Base   ColorResult   `json:"base"`
	Second *ColorResult  `json:"second,omitempty"`
	Colors []ColorResult `json:"colors"`
}

// All returns the base color followed by the derived colors, and the second
// base color last when present.
func (p *Palette) All() []harmony.RGB {
	out := make([]harmony.RGB, 0, len(p.Colors)+2)
	out = append(out, p.Base.RGB)
	for _, c := range p.Colors {
		out = append(out, c.RGB)
	}
	if p.Second != nil {
		out = append(out, p.Second.RGB)
	}
	return out
}

// Build runs scheme over base and returns the resulting palette.
//
// Returns an error for an unknown scheme, or for double-complementary when
// opts.Second is nil.
func Build(scheme Scheme, base harmony.RGB, opts Options) (*Palette, error) {
	hsl := harmony.RGBToHSL(base)

	step := opts.Step
	if step == 0 {
		step = harmony.DefaultStep
	}

	var derived []harmony.HSL
	var second *ColorResult

	switch scheme {
	case Complementary:
		derived = []harmony.HSL{harmony.Complementary(hsl)}
	case SplitComplementary:
		pair := harmony.SplitComplementary(hsl)
		derived = pair[:]
	case Analogous:
		n := opts.AnalogousCount
		if n == 0 {
			n = 2
		}
		derived = harmony.Analogous(hsl, n)
	case Analogous4:
		derived = harmony.Analogous(hsl, 4)
	case Triadic:
		tri := harmony.Triadic(hsl)
		derived = tri[:]
	case Tetradic:
		tet := harmony.Tetradic(hsl)
		derived = tet[:]
	case DoubleComplementary:
		if opts.Second == nil {
			return nil, fmt.Errorf("scheme %s requires a second color", scheme)
		}
		s := FromRGB(*opts.Second)
		second = &s
		pair := harmony.DoubleComplementary(hsl, s.HSL)
		derived = pair[:]
	case Monochromatic:
		tones := harmony.Mono(hsl, step)
		derived = tones[:]
	default:
		return nil, fmt.Errorf("unknown scheme: %s", scheme)
	}

	colors := make([]ColorResult, 0, len(derived))
	for _, c := range derived {
		colors = append(colors, FromHSL(c))
	}

	return &Palette{
		Scheme: scheme,
		Base:   FromRGB(base),
		Second: second,
		Colors: colors,
	}, nil
}

// Adjust applies a single monochromatic step of pct percent to base.
// Zero pct means harmony.DefaultStep.
func Adjust(base harmony.RGB, adj Adjustment, pct float64) (*ColorResult, error) {
	if pct == 0 {
		pct = harmony.DefaultStep
	}
	hsl := harmony.RGBToHSL(base)

	var out harmony.HSL
	switch adj {
	case Saturate:
		out = harmony.Saturate(hsl, pct)
	case Desaturate:
		out = harmony.Desaturate(hsl, pct)
	case Lighter:
		out = harmony.Lighter(hsl, pct)
	case Darker:
		out = harmony.Darker(hsl, pct)
	default:
		return nil, fmt.Errorf("unknown adjustment: %s", adj)
	}

	result := FromHSL(out)
	return &result, nil
}
