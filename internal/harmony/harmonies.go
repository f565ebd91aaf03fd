package harmony

// Hue offsets, in degrees, used by the harmony generators.
const (
	complementOffset = 180
	splitOffset      = 30
	analogousOffset  = 30
	triadOffset      = 120
	squareOffset     = 90
)

// rotate returns c with its hue turned by delta degrees. Saturation and
// lightness are copied unchanged.
func rotate(c HSL, delta float64) HSL {
	return HSL{
		H: Degrees(float64(c.H) + delta).Wrap(),
		S: c.S,
		L: c.L,
	}
}

// Complementary returns the color opposite c on the color wheel (+180).
func Complementary(c HSL) HSL {
	return rotate(c, complementOffset)
}

// SplitComplementary returns the two colors adjacent to the complement of c,
// at +150 and +210 degrees.
func SplitComplementary(c HSL) [2]HSL {
	return [2]HSL{
		rotate(c, complementOffset-splitOffset),
		rotate(c, complementOffset+splitOffset),
	}
}

// Analogous returns the neighbors of c on the color wheel.
//
// With n == 4 the result is the hues at +30, -30, +60 and -60 degrees. Any
// other n yields the two closest neighbors, +30 and -30.
func Analogous(c HSL, n int) []HSL {
	out := []HSL{
		rotate(c, analogousOffset),
		rotate(c, -analogousOffset),
	}
	if n == 4 {
		out = append(out,
			rotate(c, 2*analogousOffset),
			rotate(c, -2*analogousOffset),
		)
	}
	return out
}

// Triadic returns the two colors that, together with c, split the color
// wheel into three equal parts (+120, +240).
func Triadic(c HSL) [2]HSL {
	return [2]HSL{
		rotate(c, triadOffset),
		rotate(c, 2*triadOffset),
	}
}

// Tetradic returns the three colors that, together with c, form a square on
// the color wheel (+90, +180, +270).
func Tetradic(c HSL) [3]HSL {
	return [3]HSL{
		rotate(c, squareOffset),
		rotate(c, 2*squareOffset),
		rotate(c, 3*squareOffset),
	}
}

// DoubleComplementary returns the complements of two independently chosen
// colors. The inputs are not related to each other in any way, so this is a
// pairing of two complementary harmonies rather than a rectangle harmony
// derived from a single base.
func DoubleComplementary(c1, c2 HSL) [2]HSL {
	return [2]HSL{
		Complementary(c1),
		Complementary(c2),
	}
}
