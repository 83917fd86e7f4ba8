package colorspace

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb.R) / 255,
		G: float64(c.rgb.G) / 255,
		B: float64(c.rgb.B) / 255,
	}
}

// NRGBA returns c as an opaque image/color value for raster drawing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.rgb.R), G: uint8(c.rgb.G), B: uint8(c.rgb.B), A: 255}
}

// FromImageColor converts any image/color value, ignoring alpha.
func FromImageColor(src color.Color) Color {
	cf, _ := colorful.MakeColor(src)
	r, g, b := cf.Clamped().RGB255()
	return fromRGB(RGB{R: int(r), G: int(g), B: int(b)})
}

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
func (c Color) RelativeLuminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1
// (identical luminance) to 21 (black on white). The order of the
// arguments does not matter.
func ContrastRatio(a, b Color) float64 {
	la, lb := a.RelativeLuminance(), b.RelativeLuminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Distance returns the CIEDE2000 perceptual distance between a and b.
// Values below about 0.01 are indistinguishable.
func Distance(a, b Color) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful())
}
