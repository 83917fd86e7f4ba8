package avatar

import (
	"strings"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

// Kind selects an avatar variant. The integer values are stable.
type Kind int

const (
	KindInitials          Kind = 0
	KindGravatar          Kind = 1 // Gravatar with its own default image
	KindMysteryPerson     Kind = 2
	KindIdenticon         Kind = 3 // Gravatar-hosted identicon
	KindMonsterID         Kind = 4
	KindWavatar           Kind = 5
	KindRetro             Kind = 6
	KindRobohash          Kind = 7
	KindIdenticonLarvatar Kind = 8 // locally rendered identicon
)

var kindNames = []string{
	KindInitials:          "initials",
	KindGravatar:          "gravatar",
	KindMysteryPerson:     "mp",
	KindIdenticon:         "identicon",
	KindMonsterID:         "monsterid",
	KindWavatar:           "wavatar",
	KindRetro:             "retro",
	KindRobohash:          "robohash",
	KindIdenticonLarvatar: "identicon-larvatar",
}

// Kinds lists every kind in value order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// KindNames lists every kind name in value order.
func KindNames() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames)
	return out
}

// String returns the kind name.
func (k Kind) String() string {
	if k.valid() {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// IsGravatar reports whether k is served by the Gravatar service.
func (k Kind) IsGravatar() bool {
	return k.valid() && k != KindInitials && k != KindIdenticonLarvatar
}

// ParseKind reads a kind name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindInitials, errors.Validation("unknown avatar kind %q: want one of %s", s, strings.Join(kindNames, ", "))
}
