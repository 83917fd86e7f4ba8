package avatar

import (
	"fmt"

	"github.com/ironsheep/avatar-tools-mcp/internal/identity"
	"github.com/ironsheep/avatar-tools-mcp/internal/pixelmatrix"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

// Identicon draws the pixel matrix of an identity as colored squares.
type Identicon struct {
	Config
	identity identity.Identity
}

// NewIdenticon creates an identicon for id.
func NewIdenticon(id identity.Identity, cfg Config) *Identicon {
	return &Identicon{Config: cfg, identity: id}
}

// Identity returns the identity being drawn.
func (a *Identicon) Identity() identity.Identity {
	return a.identity
}

// Matrix returns the cell pattern. The symmetric layout reads the MD5
// digest; the raw layout reads the longer SHA-256 extension of it.
func (a *Identicon) Matrix() pixelmatrix.Matrix {
	if a.Symmetric {
		return pixelmatrix.Symmetric(a.identity.Hash(), a.Pixels)
	}
	return pixelmatrix.Asymmetric(a.identity.ExtendedHash(), a.Pixels)
}

// Render emits one square per filled cell, in row order.
func (a *Identicon) Render() (*svg.Document, error) {
	seed, err := SeedColor(a.identity, a.ColorOffset)
	if err != nil {
		return nil, fmt.Errorf("identicon color: %w", err)
	}
	fill := seed.Hex()

	doc := svg.New(a.Size)
	matrix := a.Matrix()
	if matrix.Size() == 0 {
		return doc, nil
	}

	cell := float64(a.Size) / float64(a.Pixels)
	for y, row := range matrix {
		for x, filled := range row {
			if !filled {
				continue
			}
			doc.Add(svg.Rect{
				X:      float64(x) * cell,
				Y:      float64(y) * cell,
				Width:  cell,
				Height: cell,
				Fill:   fill,
			})
		}
	}
	return doc, nil
}

// HTML returns the SVG markup, or an <img> tag with a data URI when base64
// is set.
func (a *Identicon) HTML(base64 bool) (string, error) {
	doc, err := a.Render()
	if err != nil {
		return "", err
	}
	return doc.HTML(base64), nil
}

// Base64 returns the document as a data URI.
func (a *Identicon) Base64() (string, error) {
	doc, err := a.Render()
	if err != nil {
		return "", err
	}
	return doc.Base64(), nil
}
