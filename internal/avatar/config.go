package avatar

import (
	"strings"

	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/pixelmatrix"
)

// Defaults shared by every avatar variant.
const (
	DefaultSize                = 100
	DefaultBackgroundLightness = colorspace.DefaultLightLightness
	DefaultForegroundLightness = colorspace.DefaultDarkLightness
	DefaultFontFamily          = "Segoe UI, Helvetica, sans-serif"
	DefaultFontWeight          = "normal"
)

// Text position of the initials, as SVG lengths.
const (
	TextX = "50%"
	TextY = "55%"
)

// Form is the outline shape of an initials avatar.
type Form int

const (
	FormCircle Form = iota
	FormSquare
	FormHexagon
)

var formNames = map[Form]string{
	FormCircle:  "circle",
	FormSquare:  "square",
	FormHexagon: "hexagon",
}

// String returns the lower-case form name.
func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseForm reads a form name, ignoring case and surrounding space. The
// empty string selects FormCircle.
func ParseForm(s string) (Form, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormCircle, nil
	}
	for form, n := range formNames {
		if n == name {
			return form, nil
		}
	}
	return FormCircle, errors.Validation("unknown form %q: want circle, square or hexagon", s)
}

// Config holds the settings consumed by renderers.
type Config struct {
	// Size is the edge length of the output in pixels.
	Size int
	// FontFamily is the CSS font-family of the initials. Empty or "0"
	// selects DefaultFontFamily.
	FontFamily string
	// FontPath names a font file for the family. It is carried for callers
	// that embed fonts and is not written into the document.
	FontPath string
	// FontWeight is the CSS font-weight of the initials.
	FontWeight string
	// FontSize overrides the derived initials size when positive.
	FontSize int
	// Form is the initials outline.
	Form Form
	// Rotation turns the hexagon outline, in degrees.
	Rotation float64
	// Symmetric selects the mirrored identicon layout.
	Symmetric bool
	// Pixels is the identicon grid edge length.
	Pixels int
	// ColorOffset is where the 6-character seed color starts in the hash.
	ColorOffset int

	backgroundLightness float64
	foregroundLightness float64
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Size:                DefaultSize,
		FontWeight:          DefaultFontWeight,
		Form:                FormCircle,
		Symmetric:           true,
		Pixels:              pixelmatrix.DefaultPixels,
		backgroundLightness: DefaultBackgroundLightness,
		foregroundLightness: DefaultForegroundLightness,
	}
}

// BackgroundLightness returns the lightness of the outline color.
func (c *Config) BackgroundLightness() float64 {
	return c.backgroundLightness
}

// SetBackgroundLightness sets the outline lightness, clamped to [0,1].
func (c *Config) SetBackgroundLightness(l float64) {
	c.backgroundLightness = colorspace.Clamp(l, 0, 1)
}

// ForegroundLightness returns the lightness of the text color.
func (c *Config) ForegroundLightness() float64 {
	return c.foregroundLightness
}

// SetForegroundLightness sets the text lightness, clamped to [0,1].
func (c *Config) SetForegroundLightness(l float64) {
	c.foregroundLightness = colorspace.Clamp(l, 0, 1)
}

// SetFont sets the family and file path together.
func (c *Config) SetFont(family, path string) {
	c.FontFamily = family
	c.FontPath = path
}

// ResolvedFontFamily returns FontFamily, or DefaultFontFamily when it is
// empty or "0".
func (c *Config) ResolvedFontFamily() string {
	if c.FontFamily == "" || c.FontFamily == "0" {
		return DefaultFontFamily
	}
	return c.FontFamily
}

// ResolvedFontWeight returns FontWeight, or DefaultFontWeight when empty.
func (c *Config) ResolvedFontWeight() string {
	if c.FontWeight == "" {
		return DefaultFontWeight
	}
	return c.FontWeight
}
