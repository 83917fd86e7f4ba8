package avatar

import (
	"strconv"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/identity"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

// GravatarBaseURL is the image endpoint of the Gravatar service.
const GravatarBaseURL = "https://www.gravatar.com/avatar/"

// Gravatar builds links to the Gravatar image of an email address.
type Gravatar struct {
	// Kind is the default image Gravatar serves for unknown addresses.
	Kind Kind
	// Size is the requested edge length in pixels.
	Size int

	email string
	hash  string
}

// NewGravatar creates a Gravatar link for email with the mystery-person
// default image at DefaultSize.
func NewGravatar(email string) *Gravatar {
	return &Gravatar{
		Kind:  KindMysteryPerson,
		Size:  DefaultSize,
		email: email,
		hash:  identity.EmailHash(email),
	}
}

// Email returns the address as given.
func (g *Gravatar) Email() string {
	return g.email
}

// Hash returns the digest of the normalized address.
func (g *Gravatar) Hash() string {
	return g.hash
}

// URL returns the image link.
//
// Returns:
//   - string: GravatarBaseURL + digest + query. The plain Gravatar kind
//     uses "?d=&s={size}"; default-image kinds use "?d={kind}&f=y&s={size}".
//   - error: ErrUnsupportedCombination for kinds the service does not
//     render (initials and the local identicon).
func (g *Gravatar) URL() (string, error) {
	query, err := g.query()
	if err != nil {
		return "", err
	}
	return GravatarBaseURL + g.hash + query, nil
}

func (g *Gravatar) query() (string, error) {
	size := "&s=" + strconv.Itoa(g.Size)
	switch {
	case g.Kind == KindGravatar:
		return "?d=" + size, nil
	case g.Kind.IsGravatar():
		return "?d=" + g.Kind.String() + "&f=y" + size, nil
	}
	return "", errors.UnsupportedCombination("%s avatars are not served by Gravatar", g.Kind)
}

// HTML returns an <img> tag pointing at URL.
func (g *Gravatar) HTML() (string, error) {
	link, err := g.URL()
	if err != nil {
		return "", err
	}
	return svg.ImgTag(link), nil
}
