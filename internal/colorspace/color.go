package colorspace

import (
	"fmt"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

// Color is an immutable color value with equivalent Hex, RGB and HSL
// representations.
//
// Construct it with FromHex, FromRGB or FromHSL; the other representations
// are derived immediately. Adjustment methods return new values.
type Color struct {
	rgb RGB
	hsl HSL // unrounded
}

// ColorInfo is the serializable view of a Color.
type ColorInfo struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
	HSV HSV    `json:"hsv"`
}

// FromHex builds a Color from a 3- or 6-digit hex string.
func FromHex(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}
	return fromRGB(rgb), nil
}

// FromRGB builds a Color from 8-bit components.
func FromRGB(r, g, b int) (Color, error) {
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, errors.OutOfRange("rgb(%d, %d, %d) exceeds [0,255]", r, g, b)
		}
	}
	return fromRGB(RGB{R: r, G: g, B: b}), nil
}

func fromRGB(rgb RGB) Color {
	return Color{rgb: rgb, hsl: rgbToHSL(rgb.R, rgb.G, rgb.B)}
}

// FromHSL builds a Color from hue (0-360), saturation (0-1) and
// lightness (0-1). A hue of 360 is stored as 0.
func FromHSL(h, s, l float64) (Color, error) {
	rgb, err := HSLToRGB(h, s, l)
	if err != nil {
		return Color{}, err
	}
	if h == 360 {
		h = 0
	}
	return Color{rgb: rgb, hsl: HSL{H: h, S: s, L: l}}, nil
}

// MustHex is FromHex for package-level literals. It panics on malformed
// input.
func MustHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb" in lower case.
func (c Color) Hex() string {
	return "#" + RGBToHex(c.rgb.R, c.rgb.G, c.rgb.B)
}

// RGB returns the 8-bit components.
func (c Color) RGB() RGB {
	return c.rgb
}

// HSL returns the rounded HSL form: integer hue, two-decimal saturation
// and lightness.
func (c Color) HSL() HSL {
	return roundHSL(c.hsl)
}

// HSV returns the HSV form with saturation on the 0-100 scale.
func (c Color) HSV() HSV {
	return RGBToHSV(c.rgb.R, c.rgb.G, c.rgb.B)
}

// Lightness returns the unrounded HSL lightness.
func (c Color) Lightness() float64 {
	return c.hsl.L
}

// Info returns every representation of c.
func (c Color) Info() ColorInfo {
	return ColorInfo{
		Hex: c.Hex(),
		RGB: c.RGB(),
		HSL: c.HSL(),
		HSV: c.HSV(),
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// GoString makes test failure output readable.
func (c Color) GoString() string {
	hsl := c.HSL()
	return fmt.Sprintf("colorspace.Color{%s hsl(%g, %g, %g)}", c.Hex(), hsl.H, hsl.S, hsl.L)
}
