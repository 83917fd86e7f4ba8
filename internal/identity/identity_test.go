package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

func TestHash(t *testing.T) {
	assert.Equal(t, "9c356468df3cc00c20f9b91bef618e67", Hash("Test Name"))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Hash(""))
	assert.Equal(t, Hash("Test Name"), New("Test Name").Hash())
	assert.Len(t, New("anything").Hash(), 32)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"two names", "Test Name", "TN"},
		{"single name", "Madonna", "M"},
		{"three names", "Anna Maria Lopez", "AML"},
		{"accented", "Jöhn Dœ", "JD"},
		{"accented first letter", "Émile Zola", "ÉZ"},
		{"cjk", "鸡藕和讷 兜鹅", "鸡兜"},
		{"repeated spaces", "Test  Name", "TN"},
		{"leading space", " Test", "T"},
		{"empty", "", ""},
		{"lower case kept", "test name", "tn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.text))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"Test", "Name"}, New("Test Name").Tokens())
	assert.Equal(t, []string{"Test", "", "Name"}, New("Test  Name").Tokens())
	assert.Equal(t, []string{""}, New("").Tokens())

	id := New("Test Name")
	tokens := id.Tokens()
	tokens[0] = "Changed"
	assert.Equal(t, "TN", id.Initials(), "tokens are copied")
}

func TestHexColor(t *testing.T) {
	id := New("Test Name")

	tests := []struct {
		offset int
		want   string
	}{
		{0, "9c3564"},
		{2, "356468"},
		{26, "618e67"},
		{28, "8e67"},
		{31, "7"},
		{32, ""},
		{100, ""},
		{-1, ""},
		{-6, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, id.HexColor(tt.offset), "offset %d", tt.offset)
	}
	assert.Equal(t, "9c3564", HexColor("Test Name", 0))
}

func TestExtendedHash(t *testing.T) {
	id := New("Test Name")
	ext := id.ExtendedHash()

	assert.Len(t, ext, 64)
	assert.Equal(t, ext, New("Test Name").ExtendedHash())
	assert.NotEqual(t, ext, New("Test Nam").ExtendedHash())
}

func TestEmailHash(t *testing.T) {
	const want = "b58996c504c5638798eb6b511e6f49af"
	assert.Equal(t, want, EmailHash("user@example.com"))
	assert.Equal(t, want, EmailHash("  User@Example.COM \n"))
}

func TestParse(t *testing.T) {
	id, err := Parse("Test Name")
	require.NoError(t, err)
	assert.Equal(t, New("Test Name"), id)
	assert.Equal(t, "Test Name", id.Text())

	_, err = Parse("bad \xff name")
	assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
}
