package avatar

import (
	"strings"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/identity"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

// Avatar selects a variant by Kind and renders it for a name or email.
type Avatar struct {
	// Config applies to the rendered variants; Gravatar links use only
	// Size.
	Config Config

	kind     Kind
	identity identity.Identity
	email    string
}

// New creates an avatar of the given kind with the default configuration.
//
// Parameters:
//   - kind: The variant.
//   - name: The identity text for initials and identicons.
//   - email: The address for Gravatar kinds.
//
// Returns:
//   - *Avatar: The avatar.
//   - error: ErrValidation for an unknown kind; ErrUnsupportedCombination
//     for a Gravatar kind without an email.
func New(kind Kind, name, email string) (*Avatar, error) {
	if !kind.valid() {
		return nil, errors.Validation("unknown avatar kind %d", int(kind))
	}
	if kind.IsGravatar() && strings.TrimSpace(email) == "" {
		return nil, errors.UnsupportedCombination("%s avatar needs an email address", kind)
	}
	return &Avatar{
		Config:   DefaultConfig(),
		kind:     kind,
		identity: identity.New(name),
		email:    email,
	}, nil
}

// Kind returns the variant.
func (a *Avatar) Kind() Kind {
	return a.kind
}

// Identity returns the identity behind the name.
func (a *Avatar) Identity() identity.Identity {
	return a.identity
}

// Renderer returns the SVG renderer of the variant.
func (a *Avatar) Renderer() (Renderable, error) {
	switch a.kind {
	case KindInitials:
		return NewInitials(a.identity, a.Config), nil
	case KindIdenticonLarvatar:
		return NewIdenticon(a.identity, a.Config), nil
	}
	return nil, errors.UnsupportedCombination("%s avatars are links, not documents", a.kind)
}

// Render draws the avatar. Gravatar kinds return ErrUnsupportedCombination.
func (a *Avatar) Render() (*svg.Document, error) {
	r, err := a.Renderer()
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// Gravatar returns the link builder for Gravatar kinds.
func (a *Avatar) Gravatar() (*Gravatar, error) {
	if !a.kind.IsGravatar() {
		return nil, errors.UnsupportedCombination("%s avatars are not served by Gravatar", a.kind)
	}
	g := NewGravatar(a.email)
	g.Kind = a.kind
	g.Size = a.Config.Size
	return g, nil
}

// HTML returns markup for the avatar. Rendered kinds return the SVG, or an
// <img> tag with a data URI when base64 is set. Gravatar kinds always
// return an <img> tag pointing at the service.
func (a *Avatar) HTML(base64 bool) (string, error) {
	if a.kind.IsGravatar() {
		g, err := a.Gravatar()
		if err != nil {
			return "", err
		}
		return g.HTML()
	}

	doc, err := a.Render()
	if err != nil {
		return "", err
	}
	return doc.HTML(base64), nil
}

// Base64 returns the rendered document as a data URI. Gravatar kinds have
// no document and return ErrUnsupportedCombination.
func (a *Avatar) Base64() (string, error) {
	doc, err := a.Render()
	if err != nil {
		return "", err
	}
	return doc.Base64(), nil
}
