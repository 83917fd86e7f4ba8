package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

// RGB represents a color with 8-bit components.
//
// Each component ranges from 0 to 255. Components are plain ints so that
// out-of-range input can be detected instead of silently wrapping.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-1 (0=gray, 1=vivid)
	L float64 `json:"l"` // Lightness: 0-1 (0=black, 0.5=normal, 1=white)
}

// HSV represents a color in HSV (Hue, Saturation, Value) color space.
//
// Saturation is reported on a 0-100 scale, unlike HSL.S.
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value/brightness: 0-1
}

// HexToRGB converts a hex color string to RGB components.
//
// Parameters:
//   - hex: 3 or 6 hex digits, with or without a leading "#". The 3-digit
//     form duplicates each digit, so "F0A" is read as "FF00AA".
//
// Returns:
//   - RGB: The decoded components.
//   - error: ErrInvalidFormat if the length is not 3 or 6 or the string
//     contains non-hex characters.
func HexToRGB(hex string) (RGB, error) {
	digits := strings.ReplaceAll(hex, "#", "")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, errors.InvalidFormat("invalid hex color %q: want 3 or 6 hex digits", hex)
	}
	for _, ch := range digits {
		if !isHexDigit(ch) {
			return RGB{}, errors.InvalidFormat("invalid hex color %q: non-hex character %q", hex, ch)
		}
	}

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrap(err, errors.CodeInvalidFormat, fmt.Sprintf("invalid hex color %q", hex))
	}

	return RGB{
		R: int(0xFF & (val >> 16)),
		G: int(0xFF & (val >> 8)),
		B: int(0xFF & val),
	}, nil
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// RGBToHex converts RGB components to a 6-digit lower-case hex string
// without the "#" prefix. Components are clamped to 0-255 first so the
// result always has exactly two digits per channel.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// RGBToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion:
//  1. Normalizes RGB to the 0-1 range
//  2. Finds max, min, chroma (max-min) and value (max)
//  3. Computes hue from the channel holding the max
//  4. Computes lightness as (max+min)/2 and saturation from chroma
//
// An achromatic input (chroma 0) returns (0, 0, value) without evaluating
// the saturation formula, which would divide by zero for black and white.
//
// Returns HSL with hue rounded to whole degrees and saturation and
// lightness rounded to two decimals.
func RGBToHSL(r, g, b int) HSL {
	hsl := rgbToHSL(r, g, b)
	return roundHSL(hsl)
}

// rgbToHSL is the unrounded conversion used by Color.
func rgbToHSL(r, g, b int) HSL {
	c := chromaOf(r, g, b)
	if c.chroma == 0 {
		return HSL{H: 0, S: 0, L: c.value}
	}

	lightness := (c.max + c.min) / 2
	saturation := c.chroma / (1 - math.Abs(2*c.value-c.chroma-1))

	return HSL{H: c.hue, S: saturation, L: lightness}
}

// RGBToHSV converts 8-bit RGB values to HSV color space.
//
// Saturation is chroma/max scaled to 0-100. Hue and value are not rounded.
// An achromatic input returns (0, 0, value).
func RGBToHSV(r, g, b int) HSV {
	c := chromaOf(r, g, b)
	if c.chroma == 0 {
		return HSV{H: 0, S: 0, V: c.value}
	}

	return HSV{
		H: c.hue,
		S: c.chroma / c.max * 100,
		V: c.value,
	}
}

// HSVToRGB converts an HSV color to RGB components.
//
// Parameters:
//   - h: Hue in degrees, 0-360 inclusive (360 is the same hue as 0).
//   - s: Saturation, 0-1. Note this is the 0-1 scale, not the 0-100 scale
//     RGBToHSV reports.
//   - v: Value, 0-1.
//
// Returns:
//   - RGB: Components rounded to the nearest integer.
//   - error: ErrOutOfRange if any parameter exceeds its range;
//     ErrComputation if no hue sector matched (NaN input).
func HSVToRGB(h, s, v float64) (RGB, error) {
	if h < 0 || h > 360 || s < 0 || s > 1 || v < 0 || v > 1 {
		return RGB{}, errors.OutOfRange("hsv(%g, %g, %g) exceeds h∈[0,360], s∈[0,1], v∈[0,1]", h, s, v)
	}

	chroma := v * s
	r, g, b, ok := sectorComponents(h, chroma)
	if !ok {
		return RGB{}, errors.Computation("rgb calculation not possible for hsv(%g, %g, %g)", h, s, v)
	}

	m := v - chroma
	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}, nil
}

// HSLToRGB converts an HSL color to RGB components.
//
// Parameters:
//   - h: Hue in degrees, 0-360 inclusive (360 is the same hue as 0).
//   - s: Saturation, 0-1.
//   - l: Lightness, 0-1.
//
// Returns:
//   - RGB: Components rounded to the nearest integer.
//   - error: ErrOutOfRange if any parameter exceeds its range;
//     ErrComputation if no hue sector matched (NaN input).
func HSLToRGB(h, s, l float64) (RGB, error) {
	if h < 0 || h > 360 || s < 0 || s > 1 || l < 0 || l > 1 {
		return RGB{}, errors.OutOfRange("hsl(%g, %g, %g) exceeds h∈[0,360], s∈[0,1], l∈[0,1]", h, s, l)
	}

	rgb, ok := hslToRGB(h, s, l)
	if !ok {
		return RGB{}, errors.Computation("rgb calculation not possible for hsl(%g, %g, %g)", h, s, l)
	}
	return rgb, nil
}

// hslToRGB performs the sector decomposition without range checks.
func hslToRGB(h, s, l float64) (RGB, bool) {
	chroma := (1 - math.Abs(2*l-1)) * s
	r, g, b, ok := sectorComponents(h, chroma)
	if !ok {
		return RGB{}, false
	}

	m := l - chroma/2
	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}, true
}

// sectorComponents splits chroma across channels for the 60° sector that
// holds hue. The second-largest component is chroma*(1-|h' mod 2 - 1|).
func sectorComponents(hue, chroma float64) (r, g, b float64, ok bool) {
	if hue == 360 {
		hue = 0
	}
	hueNormalized := hue / 60
	hMod2 := hueNormalized - 2*math.Floor(hueNormalized/2)
	second := chroma * (1 - math.Abs(hMod2-1))

	switch {
	case 0 <= hueNormalized && hueNormalized < 1:
		return chroma, second, 0, true
	case 1 <= hueNormalized && hueNormalized < 2:
		return second, chroma, 0, true
	case 2 <= hueNormalized && hueNormalized < 3:
		return 0, chroma, second, true
	case 3 <= hueNormalized && hueNormalized < 4:
		return 0, second, chroma, true
	case 4 <= hueNormalized && hueNormalized < 5:
		return second, 0, chroma, true
	case 5 <= hueNormalized && hueNormalized < 6:
		return chroma, 0, second, true
	}
	return 0, 0, 0, false
}

// chromaParts holds the intermediate values shared by the HSL and HSV
// conversions.
type chromaParts struct {
	max, min float64
	chroma   float64
	value    float64
	hue      float64 // degrees in [0,360)
}

func chromaOf(r, g, b int) chromaParts {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	c := chromaParts{max: maxC, min: minC, chroma: maxC - minC, value: maxC}

	switch {
	case c.chroma == 0:
		c.hue = 0
	case maxC == rf:
		c.hue = 60 * ((gf - bf) / c.chroma)
	case maxC == gf:
		c.hue = 60 * (2 + (bf-rf)/c.chroma)
	default:
		c.hue = 60 * (4 + (rf-gf)/c.chroma)
	}

	if c.hue < 0 {
		c.hue += 360
	}
	return c
}

func roundHSL(hsl HSL) HSL {
	h := math.Round(hsl.H)
	if h >= 360 {
		h -= 360
	}
	return HSL{
		H: h,
		S: roundTo(hsl.S, 2),
		L: roundTo(hsl.L, 2),
	}
}

// roundTo rounds half away from zero to the given number of decimals.
// The scaled value is first cut to 15 significant digits so that a decimal
// half such as 0.875, computed as 0.87499999999999989, still rounds up.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(v*p, 'g', 15, 64), 64)
	if err != nil {
		scaled = v * p
	}
	return math.Round(scaled) / p
}

func toChannel(v float64) int {
	return clampChannel(int(math.Round(v * 255)))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
