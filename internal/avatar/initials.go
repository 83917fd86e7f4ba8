package avatar

import (
	"fmt"

	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/geometry"
	"github.com/ironsheep/avatar-tools-mcp/internal/identity"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

// Renderable is an avatar that can be drawn as an SVG document.
type Renderable interface {
	Render() (*svg.Document, error)
}

// SeedColor returns the color at offset in the identity hash.
//
// Returns:
//   - colorspace.Color: The seed color.
//   - error: ErrOutOfRange when the offset leaves fewer than six hash
//     characters.
func SeedColor(id identity.Identity, offset int) (colorspace.Color, error) {
	hex := id.HexColor(offset)
	if len(hex) != identity.HexColorLength {
		return colorspace.Color{}, errors.OutOfRange("color offset %d leaves %q, want %d hash characters",
			offset, hex, identity.HexColorLength)
	}
	return colorspace.FromHex(hex)
}

// InitialsAvatar draws an identity's initials over a colored outline.
type InitialsAvatar struct {
	Config
	identity identity.Identity
}

// NewInitials creates an initials avatar for id.
func NewInitials(id identity.Identity, cfg Config) *InitialsAvatar {
	return &InitialsAvatar{Config: cfg, identity: id}
}

// Identity returns the identity being drawn.
func (a *InitialsAvatar) Identity() identity.Identity {
	return a.identity
}

// Colors returns the text (dark) and outline (light) colors.
func (a *InitialsAvatar) Colors() (text, background colorspace.Color, err error) {
	seed, err := SeedColor(a.identity, a.ColorOffset)
	if err != nil {
		return colorspace.Color{}, colorspace.Color{}, err
	}
	text, background = colorspace.Pair(seed, a.ForegroundLightness(), a.BackgroundLightness())
	return text, background, nil
}

// EffectiveFontSize returns FontSize when set, otherwise the size derived
// from the canvas and the number of initials.
func (a *InitialsAvatar) EffectiveFontSize() int {
	if a.FontSize > 0 {
		return a.FontSize
	}
	return geometry.FontSizeFor(a.Size, a.identity.Initials())
}

// Render builds the outline and text nodes.
func (a *InitialsAvatar) Render() (*svg.Document, error) {
	text, background, err := a.Colors()
	if err != nil {
		return nil, fmt.Errorf("initials colors: %w", err)
	}

	outline, err := a.outline(background.Hex())
	if err != nil {
		return nil, err
	}

	doc := svg.New(a.Size)
	doc.Add(outline, svg.Text{
		X:          TextX,
		Y:          TextY,
		Content:    a.identity.Initials(),
		Fill:       text.Hex(),
		FontFamily: a.ResolvedFontFamily(),
		FontWeight: a.ResolvedFontWeight(),
		FontSize:   a.EffectiveFontSize(),
	})
	return doc, nil
}

func (a *InitialsAvatar) outline(fill string) (svg.Node, error) {
	switch a.Form {
	case FormCircle:
		return svg.CircleFrom(geometry.CircleFor(a.Size), fill), nil
	case FormSquare:
		return svg.RectFrom(geometry.SquareFor(a.Size), fill), nil
	case FormHexagon:
		return svg.Polygon{Points: geometry.HexagonFor(a.Size, a.Rotation), Fill: fill}, nil
	}
	return nil, errors.Validation("unknown form %d", int(a.Form))
}

// HTML returns the SVG markup, or an <img> tag with a data URI when base64
// is set.
func (a *InitialsAvatar) HTML(base64 bool) (string, error) {
	doc, err := a.Render()
	if err != nil {
		return "", err
	}
	return doc.HTML(base64), nil
}

// Base64 returns the document as a data URI.
func (a *InitialsAvatar) Base64() (string, error) {
	doc, err := a.Render()
	if err != nil {
		return "", err
	}
	return doc.Base64(), nil
}
