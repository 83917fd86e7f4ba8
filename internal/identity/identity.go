// Package identity derives stable hashes, initials and seed colors from
// free-text identities such as a person's name or email address.
//
// An Identity is immutable: the digest and name tokens are computed once in
// New and every accessor returns values derived from them.
package identity

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

// HexColorLength is the number of hash characters that make a color.
const HexColorLength = 6

// Identity wraps the raw text of a name and its derived values.
type Identity struct {
	text   string
	hash   string
	tokens []string
}

// New creates an Identity from raw text. The text is used as given; see
// Parse for boundary validation.
func New(text string) Identity {
	return Identity{
		text:   text,
		hash:   Hash(text),
		tokens: strings.Split(text, " "),
	}
}

// Parse validates text received from outside the process and returns its
// Identity. Text must be valid UTF-8; it is not trimmed or case folded, so
// that the same name always produces the same avatar.
func Parse(text string) (Identity, error) {
	if !utf8.ValidString(text) {
		return Identity{}, errors.InvalidFormat("identity %q is not valid UTF-8", text)
	}
	return New(text), nil
}

// Text returns the raw text.
func (id Identity) Text() string {
	return id.text
}

// Hash returns the 32-character lower-case MD5 digest of the text.
func (id Identity) Hash() string {
	return id.hash
}

// ExtendedHash returns the 64-character SHA-256 digest of Hash. It feeds
// the raw identicon pattern, which needs more cells than Hash has digits.
func (id Identity) ExtendedHash() string {
	sum := sha256.Sum256([]byte(id.hash))
	return hex.EncodeToString(sum[:])
}

// Tokens returns the text split on ASCII spaces. Empty segments from
// repeated spaces are kept.
func (id Identity) Tokens() []string {
	out := make([]string, len(id.tokens))
	copy(out, id.tokens)
	return out
}

// Initials returns the first code point of every non-empty token.
func (id Identity) Initials() string {
	var b strings.Builder
	for _, token := range id.tokens {
		if r, size := utf8.DecodeRuneInString(token); size > 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HexColor returns the HexColorLength characters of Hash starting at
// offset, without a "#" prefix. Offsets near or past the end of the
// digest yield a shorter, possibly empty, string. Offsets are counted from
// the start only: a negative offset yields the empty string rather than
// counting back from the end.
func (id Identity) HexColor(offset int) string {
	return slice(id.hash, offset, HexColorLength)
}

// Hash returns the lower-case hex MD5 digest of text.
func Hash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Initials is New(text).Initials().
func Initials(text string) string {
	return New(text).Initials()
}

// HexColor is New(text).HexColor(offset).
func HexColor(text string, offset int) string {
	return New(text).HexColor(offset)
}

// EmailHash returns the digest Gravatar addresses an email by: MD5 of the
// trimmed, lower-cased address.
func EmailHash(email string) string {
	return Hash(strings.ToLower(strings.TrimSpace(email)))
}

func slice(s string, offset, length int) string {
	if offset < 0 || offset >= len(s) {
		return ""
	}
	end := offset + length
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end]
}
