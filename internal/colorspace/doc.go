// Package colorspace provides the color arithmetic behind avatar coloring.
//
// It converts between Hex, RGB, HSL and HSV representations, adjusts
// lightness, and derives the dark/light color pairs used to put foreground
// text on a background shape. All functions are pure; Color values are
// immutable and safe to share between goroutines.
//
// # Scales
//
// The conversions keep the conventions of the color contract they serve:
//   - Hex: 6 lower-case digits, "#" prefix only on Color.Hex output
//   - RGB: integers 0-255
//   - HSL: hue 0-360 degrees, saturation 0-1, lightness 0-1
//   - HSV: hue 0-360 degrees, saturation 0-100, value 0-1
//
// HSV saturation is on a 0-100 scale while HSL saturation is on 0-1. Both
// are part of the published contract and are kept as they are.
//
// # Rounding
//
// RGBToHSL reports hue rounded to whole degrees and saturation/lightness
// rounded to two decimals. Color keeps the unrounded HSL internally so that
// adjustments by zero are exact identities, and reports the rounded form
// from Color.HSL.
//
// # Error Handling
//
// Functions return errors from the internal/errors package:
//   - ErrInvalidFormat for malformed hex strings
//   - ErrOutOfRange for HSL/HSV/RGB components outside their domains
//   - ErrComputation when no hue sector matches, which only a NaN input can
//     trigger
package colorspace
