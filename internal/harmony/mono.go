package harmony

// DefaultStep is the percent step used by the monochromatic generators when
// the caller has no preference.
const DefaultStep = 10

// Saturate raises saturation by pct, wrapping modulo 100.
func Saturate(c HSL, pct float64) HSL {
	c.S = (c.S + Percent(pct)).Wrap()
	return c
}

// Desaturate lowers saturation by pct, wrapping modulo 100.
func Desaturate(c HSL, pct float64) HSL {
	c.S = (c.S - Percent(pct)).Wrap()
	return c
}

// Lighter raises lightness by pct, wrapping modulo 100.
func Lighter(c HSL, pct float64) HSL {
	c.L = (c.L + Percent(pct)).Wrap()
	return c
}

// Darker lowers lightness by pct, wrapping modulo 100.
func Darker(c HSL, pct float64) HSL {
	c.L = (c.L - Percent(pct)).Wrap()
	return c
}

// Mono returns four tones of c: one and two steps lighter, then one and two
// steps darker.
//
// Lightness wraps rather than saturating at 0 or 100, so for large steps
// (pct >= 50) or colors already near either end a "lighter" tone can come
// out darker than c and vice versa.
func Mono(c HSL, pct float64) [4]HSL {
	return [4]HSL{
		Lighter(c, pct),
		Lighter(c, 2*pct),
		Darker(c, pct),
		Darker(c, 2*pct),
	}
}
