package harmony

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned when a string is not a "#rrggbb" hex color.
var ErrInvalidFormat = errors.New("hexadecimal color string must be formatted as #rrggbb")

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsColor reports whether s is a seven character hex color of the form
// "#rrggbb". Letters may be upper or lower case. Short forms such as "#fff"
// and strings without the leading '#' are rejected.
func IsColor(s string) bool {
	if len(s) != 7 {
		return false
	}
	return hexColorPattern.MatchString(s)
}

// ParseHex converts a "#rrggbb" string into an absolute RGB color.
//
// Returns an error wrapping ErrInvalidFormat if IsColor(s) is false.
func ParseHex(s string) (RGB, error) {
	if !IsColor(s) {
		return RGB{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}
