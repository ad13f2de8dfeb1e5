package lindraw

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a 24-bit RGB color stored as 0xRRGGBB.
// It implements image/color.Color, always fully opaque.
type Color uint32

// DefaultColor is the color every turtle starts with
const DefaultColor Color = 0x000000

func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the six lowercase hex digits of c, without prefix
func (c Color) Hex() string {
	return fmt.Sprintf("%06x", uint32(c)&0xffffff)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

const hexDigits = "0123456789abcdefABCDEF"

// ParseColor parses a literal made of exactly six hex digits, such as "ff8000".
func ParseColor(literal string) (Color, error) {
	if len(literal) != 6 {
		return 0, errors.Wrapf(ErrInvalidColor, "%q is not 6 hex digits", literal)
	}
	// colorful scans with fmt, which tolerates signs and spaces
	if strings.Trim(literal, hexDigits) != "" {
		return 0, errors.Wrapf(ErrInvalidColor, "%q is not 6 hex digits", literal)
	}
	parsed, err := colorful.Hex("#" + literal)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidColor, "%q: %v", literal, err)
	}
	return RGB(parsed.RGB255()), nil
}
