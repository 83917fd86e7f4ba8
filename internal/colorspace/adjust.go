package colorspace

import "math"

// Default lightness values for avatar color pairs.
const (
	DefaultDarkLightness  = 0.35
	DefaultLightLightness = 0.8
)

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// WithLightness returns c with its HSL lightness replaced by l, clamped to
// [0,1]. Hue and saturation are kept.
func (c Color) WithLightness(l float64) Color {
	l = Clamp(l, 0, 1)
	rgb, ok := hslToRGB(c.hsl.H, c.hsl.S, l)
	if !ok {
		// hsl was validated on construction
		return c
	}
	return Color{rgb: rgb, hsl: HSL{H: c.hsl.H, S: c.hsl.S, L: l}}
}

// Brighten raises lightness by amount percent (amount/100), clamped to 1.
func (c Color) Brighten(amount float64) Color {
	if amount == 0 {
		return c
	}
	return c.WithLightness(c.hsl.L + amount/100)
}

// Darken lowers lightness by amount percent (amount/100), clamped to 0.
func (c Color) Darken(amount float64) Color {
	if amount == 0 {
		return c
	}
	return c.WithLightness(c.hsl.L - amount/100)
}

// Brighten is the function form of Color.Brighten.
func Brighten(c Color, amount float64) Color {
	return c.Brighten(amount)
}

// Darken is the function form of Color.Darken.
func Darken(c Color, amount float64) Color {
	return c.Darken(amount)
}

// Pair derives a dark and a light color sharing c's hue and saturation.
//
// The hue is taken in whole degrees so that a pair computed from a color
// and from its rounded HSL report are the same. Lightness values are
// clamped to [0,1].
func Pair(c Color, darkLightness, lightLightness float64) (dark, light Color) {
	hue := math.Round(c.hsl.H)
	if hue >= 360 {
		hue -= 360
	}
	base := Color{rgb: c.rgb, hsl: HSL{H: hue, S: c.hsl.S, L: c.hsl.L}}
	return base.WithLightness(darkLightness), base.WithLightness(lightLightness)
}

// DefaultPair is Pair with the default avatar lightness values.
func DefaultPair(c Color) (dark, light Color) {
	return Pair(c, DefaultDarkLightness, DefaultLightLightness)
}

// ColorSet returns a dark and a light variant of c without fixing their
// lightness: a color at or below half lightness is kept as the dark
// variant and brightened by 50 for the light one, otherwise it is kept as
// the light variant and darkened by 50.
func ColorSet(c Color) (dark, light Color) {
	if c.hsl.L <= 0.5 {
		return c, c.Brighten(50)
	}
	return c.Darken(50), c
}
