// Package avatar composes identity hashing, color derivation, pixel
// matrices and outline geometry into renderable avatars.
//
// Three variants exist:
//   - InitialsAvatar: a colored circle, square or hexagon with the
//     identity's initials on top
//   - Identicon: a grid of colored squares driven by the identity hash
//   - Gravatar: a link to the Gravatar service for an email address
//
// InitialsAvatar and Identicon implement Renderable and produce an
// svg.Document. Gravatar only builds a URL; no request is ever made.
//
// Avatar is the facade over all three, selected by Kind.
//
// # Configuration
//
// Config carries the settings shared by the variants. Lightness setters
// clamp to [0,1]. Size and pixel count are taken as given: zero or
// negative values produce degenerate output rather than errors.
//
// # Thread Safety
//
// Renderers hold no shared state. A renderer and its Config must not be
// mutated while another goroutine renders with them.
package avatar
