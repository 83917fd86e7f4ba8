package server

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
)

const (
	testName     = "Test Name"
	testNameHash = "9c356468df3cc00c20f9b91bef618e67"
	testEmail    = "user@example.com"
	testEmailMD5 = "b58996c504c5638798eb6b511e6f49af"
)

func requireToolError(t *testing.T, result *mcp.CallToolResult) {
	t.Helper()
	require.True(t, result.IsError, "expected a tool error")
	require.NotEmpty(t, result.Content)
}

func TestAvatarInitials(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "avatar_initials", map[string]any{"name": testName})
	require.False(t, result.IsError)

	out := decodeStructuredContent[InitialsResult](t, result.StructuredContent)
	assert.Equal(t, "TN", out.Initials)
	assert.Equal(t, testNameHash, out.Hash)
	assert.Equal(t, "#852d55", out.TextColor)
	assert.Equal(t, "#e5b3c9", out.BackgroundColor)
	assert.Equal(t, 50, out.FontSize)
	assert.Equal(t, 100, out.Size)
	assert.Contains(t, out.SVG, `<circle cx="50" cy="50" r="50" style="fill: #e5b3c9" />`)
	assert.Contains(t, out.SVG, ">TN</text>")
	assert.True(t, strings.HasPrefix(out.DataURI, "data:image/svg+xml;base64,"))
	assert.Equal(t, out.SVG, out.HTML)
}

func TestAvatarInitials_Options(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "avatar_initials", map[string]any{
		"name":   testName,
		"base64": true,
		"options": map[string]any{
			"size":        500,
			"form":        "square",
			"font_family": "Roboto",
		},
	})
	require.False(t, result.IsError)

	out := decodeStructuredContent[InitialsResult](t, result.StructuredContent)
	assert.Equal(t, 250, out.FontSize)
	assert.Equal(t, 500, out.Size)
	assert.Contains(t, out.SVG, "<rect")
	assert.Contains(t, out.SVG, "Roboto")
	assert.NotContains(t, out.SVG, "Segoe UI")
	assert.True(t, strings.HasPrefix(out.HTML, `<img src="data:image/svg+xml;base64,`))
}

func TestAvatarInitials_Errors(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	tests := []struct {
		name    string
		options map[string]any
	}{
		{"unknown form", map[string]any{"form": "star"}},
		{"negative size", map[string]any{"size": -1}},
		{"offset past digest", map[string]any{"color_offset": 30}},
		{"negative offset", map[string]any{"color_offset": -1}},
		{"too many pixels", map[string]any{"pixels": 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, "avatar_initials", map[string]any{
				"name":    testName,
				"options": tt.options,
			})
			requireToolError(t, result)
		})
	}
}

func TestAvatarIdenticon(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "avatar_identicon", map[string]any{"name": testName})
	require.False(t, result.IsError)

	out := decodeStructuredContent[IdenticonResult](t, result.StructuredContent)
	assert.Equal(t, testNameHash, out.Hash)
	assert.Equal(t, "#9c3564", out.Color)
	assert.True(t, out.Symmetric)
	assert.Equal(t, []string{"11011", "11011", "11111", "10101", "10001"}, out.Rows)
	assert.Equal(t, 18, out.Filled)
	assert.Equal(t, 18, strings.Count(out.SVG, "<rect"))
}

func TestAvatarIdenticon_Asymmetric(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "avatar_identicon", map[string]any{
		"name":    testName,
		"options": map[string]any{"symmetric": false},
	})
	require.False(t, result.IsError)

	out := decodeStructuredContent[IdenticonResult](t, result.StructuredContent)
	assert.False(t, out.Symmetric)
	assert.Equal(t, []string{"11111", "10111", "01111", "01101", "10000"}, out.Rows)
}

func TestAvatarGravatar(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	tests := []struct {
		name    string
		args    map[string]any
		wantURL string
	}{
		{
			"server default type",
			map[string]any{"email": testEmail},
			"https://www.gravatar.com/avatar/" + testEmailMD5 + "?d=mp&f=y&s=100",
		},
		{
			"plain gravatar",
			map[string]any{"email": testEmail, "type": "gravatar"},
			"https://www.gravatar.com/avatar/" + testEmailMD5 + "?d=&s=100",
		},
		{
			"retro with size",
			map[string]any{"email": " User@Example.com ", "type": "retro", "size": 64},
			"https://www.gravatar.com/avatar/" + testEmailMD5 + "?d=retro&f=y&s=64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, "avatar_gravatar", tt.args)
			require.False(t, result.IsError)

			out := decodeStructuredContent[GravatarResult](t, result.StructuredContent)
			assert.Equal(t, testEmailMD5, out.Hash)
			assert.Equal(t, tt.wantURL, out.URL)
			assert.Equal(t, `<img src="`+tt.wantURL+`" />`, out.HTML)
		})
	}
}

func TestAvatarGravatar_Errors(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	tests := []struct {
		name string
		args map[string]any
	}{
		{"blank email", map[string]any{"email": "  "}},
		{"local kind", map[string]any{"email": testEmail, "type": "initials"}},
		{"unknown kind", map[string]any{"email": testEmail, "type": "cartoon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireToolError(t, callTool(t, session, "avatar_gravatar", tt.args))
		})
	}
}

func TestAvatarRender(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	t.Run("initials", func(t *testing.T) {
		result := callTool(t, session, "avatar_render", map[string]any{"kind": "initials", "name": testName})
		require.False(t, result.IsError)

		out := decodeStructuredContent[RenderResult](t, result.StructuredContent)
		assert.Equal(t, "initials", out.Kind)
		assert.Contains(t, out.HTML, "<svg")
		assert.True(t, strings.HasPrefix(out.DataURI, "data:image/svg+xml;base64,"))
	})

	t.Run("identicon", func(t *testing.T) {
		result := callTool(t, session, "avatar_render", map[string]any{
			"kind":   "identicon-larvatar",
			"name":   testName,
			"base64": true,
		})
		require.False(t, result.IsError)

		out := decodeStructuredContent[RenderResult](t, result.StructuredContent)
		assert.True(t, strings.HasPrefix(out.HTML, "<img "))
	})

	t.Run("gravatar kind", func(t *testing.T) {
		result := callTool(t, session, "avatar_render", map[string]any{"kind": "wavatar", "email": testEmail})
		require.False(t, result.IsError)

		out := decodeStructuredContent[RenderResult](t, result.StructuredContent)
		assert.Contains(t, out.HTML, "?d=wavatar&f=y&s=100")
		assert.Empty(t, out.DataURI)
	})

	t.Run("gravatar kind without email", func(t *testing.T) {
		requireToolError(t, callTool(t, session, "avatar_render", map[string]any{"kind": "mp", "name": testName}))
	})

	t.Run("unknown kind", func(t *testing.T) {
		requireToolError(t, callTool(t, session, "avatar_render", map[string]any{"kind": "sketch", "name": testName}))
	})
}

func TestAvatarRaster(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))
	args := map[string]any{
		"name":         testName,
		"palette_size": 2,
		"options":      map[string]any{"form": "square"},
	}

	result := callTool(t, session, "avatar_raster", args)
	require.False(t, result.IsError)

	out := decodeStructuredContent[RasterResult](t, result.StructuredContent)
	assert.Equal(t, "initials", out.Kind)
	assert.False(t, out.Cached)
	require.NotNil(t, out.Image)
	assert.Equal(t, 100, out.Image.Width)
	assert.Equal(t, 100, out.Image.Height)
	assert.Equal(t, "image/png", out.Image.MimeType)
	assert.NotEmpty(t, out.Image.ImageBase64)
	assert.NotEmpty(t, out.Image.BlurHash)
	require.Len(t, out.Image.Palette, 2)
	assert.Equal(t, "#e0b0c0", out.Image.Palette[0].Color.Hex)

	var sawImage bool
	for _, content := range result.Content {
		if img, ok := content.(*mcp.ImageContent); ok {
			sawImage = true
			assert.Equal(t, "image/png", img.MIMEType)
			assert.NotEmpty(t, img.Data)
		}
	}
	assert.True(t, sawImage, "expected image content")

	again := callTool(t, session, "avatar_raster", args)
	require.False(t, again.IsError)
	cached := decodeStructuredContent[RasterResult](t, again.StructuredContent)
	assert.True(t, cached.Cached)
	assert.Equal(t, out.Image.ImageBase64, cached.Image.ImageBase64)
}

func TestAvatarRaster_IdenticonJPEGWithGrid(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "avatar_raster", map[string]any{
		"kind":    "identicon-larvatar",
		"name":    testName,
		"format":  "jpg",
		"grid":    true,
		"options": map[string]any{"size": 128},
	})
	require.False(t, result.IsError)

	out := decodeStructuredContent[RasterResult](t, result.StructuredContent)
	assert.Equal(t, "identicon-larvatar", out.Kind)
	assert.Equal(t, "image/jpeg", out.Image.MimeType)
	assert.Equal(t, 128, out.Image.Width)
}

func TestAvatarRaster_Errors(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	tests := []struct {
		name string
		args map[string]any
	}{
		{"over the size limit", map[string]any{"name": testName, "options": map[string]any{"size": 4096}}},
		{"gravatar kind", map[string]any{"name": testName, "kind": "mp"}},
		{"grid on initials", map[string]any{"name": testName, "grid": true}},
		{"unknown format", map[string]any{"name": testName, "format": "gif"}},
		{"bad quality", map[string]any{"name": testName, "format": "jpeg", "quality": 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireToolError(t, callTool(t, session, "avatar_raster", tt.args))
		})
	}
}

func TestIdentityInspect(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "identity_inspect", map[string]any{
		"text":         testName,
		"email":        testEmail,
		"color_offset": 26,
	})
	require.False(t, result.IsError)

	out := decodeStructuredContent[IdentityResult](t, result.StructuredContent)
	assert.Equal(t, testName, out.Text)
	assert.Equal(t, testNameHash, out.Hash)
	assert.Equal(t, "fdacb60b852f6551a53d50432a282a13fcef643c78ee9aa9c074e1c86d97e63d", out.ExtendedHash)
	assert.Equal(t, []string{"Test", "Name"}, out.Tokens)
	assert.Equal(t, "TN", out.Initials)
	assert.Equal(t, "618e67", out.SeedColor)
	assert.Equal(t, testEmailMD5, out.EmailHash)
}

func TestColorConvert(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	tests := []struct {
		name  string
		color string
	}{
		{"hex", "#9c3564"},
		{"hex without prefix", "9C3564"},
		{"rgb", "rgb(156, 53, 100)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, "color_convert", map[string]any{"color": tt.color})
			require.False(t, result.IsError)

			out := decodeStructuredContent[ColorConvertResult](t, result.StructuredContent)
			assert.Equal(t, "#9c3564", out.Color.Hex)
			assert.Equal(t, 156, out.Color.RGB.R)
			assert.Equal(t, 53, out.Color.RGB.G)
			assert.Equal(t, 100, out.Color.RGB.B)
			assert.Greater(t, out.Luminance, 0.0)
			assert.Less(t, out.Luminance, 1.0)
		})
	}
}

func TestColorConvert_Adjust(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "color_convert", map[string]any{"color": "#808080", "brighten": 100})
	require.False(t, result.IsError)
	out := decodeStructuredContent[ColorConvertResult](t, result.StructuredContent)
	assert.Equal(t, "#ffffff", out.Color.Hex)

	requireToolError(t, callTool(t, session, "color_convert", map[string]any{"color": "not-a-color"}))
	requireToolError(t, callTool(t, session, "color_convert", map[string]any{"color": "#808080", "darken": -5}))
}

func TestColorPair(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "color_pair", map[string]any{"color": "#9c3564"})
	require.False(t, result.IsError)

	out := decodeStructuredContent[ColorPairResult](t, result.StructuredContent)
	assert.Equal(t, "#852d55", out.Dark.Hex)
	assert.Equal(t, "#e5b3c9", out.Light.Hex)
	assert.Greater(t, out.ContrastRatio, 1.0)
	assert.Greater(t, out.Distance, 0.0)
}

func TestColorPair_Set(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	result := callTool(t, session, "color_pair", map[string]any{"color": "#9c3564", "mode": "set"})
	require.False(t, result.IsError)

	// Lightness 0.41 is on the dark side, so the seed is kept as dark.
	out := decodeStructuredContent[ColorPairResult](t, result.StructuredContent)
	assert.Equal(t, "#9c3564", out.Dark.Hex)

	requireToolError(t, callTool(t, session, "color_pair", map[string]any{
		"color":          "#9c3564",
		"mode":           "set",
		"dark_lightness": 0.2,
	}))
	requireToolError(t, callTool(t, session, "color_pair", map[string]any{"color": "#9c3564", "mode": "triad"}))
}

func TestPixelMatrix(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{
			"symmetric from text",
			map[string]any{"text": testName},
			[]string{"11011", "11011", "11111", "10101", "10001"},
		},
		{
			"symmetric from hash",
			map[string]any{"hash": strings.ToUpper(testNameHash), "pixels": 7},
			[]string{"1100011", "1001001", "1011101", "0101010", "1000001", "0001000", "1011101"},
		},
		{
			"asymmetric from text",
			map[string]any{"text": testName, "symmetric": false},
			[]string{"11111", "10111", "01111", "01101", "10000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, "pixel_matrix", tt.args)
			require.False(t, result.IsError)

			out := decodeStructuredContent[PixelMatrixResult](t, result.StructuredContent)
			assert.Equal(t, tt.want, out.Rows)
			assert.Equal(t, len(tt.want), out.Pixels)
		})
	}
}

func TestPixelMatrix_Errors(t *testing.T) {
	session := connect(t, New(testConfig(), testLogger()))

	requireToolError(t, callTool(t, session, "pixel_matrix", map[string]any{"hash": "xyz"}))
	requireToolError(t, callTool(t, session, "pixel_matrix", map[string]any{"text": testName, "hash": testNameHash}))
	requireToolError(t, callTool(t, session, "pixel_matrix", map[string]any{"text": testName, "pixels": -2}))
}

func TestAvatarConfig(t *testing.T) {
	s := New(testConfig(), testLogger())

	light := 0.9
	symmetric := false
	cfg, err := s.avatarConfig(RenderOptions{
		Size:                64,
		BackgroundLightness: &light,
		Form:                "Hexagon",
		Rotation:            30,
		Symmetric:           &symmetric,
		Pixels:              7,
		ColorOffset:         2,
	})
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Size)
	assert.Equal(t, 0.9, cfg.BackgroundLightness())
	assert.Equal(t, 0.35, cfg.ForegroundLightness())
	assert.Equal(t, "hexagon", cfg.Form.String())
	assert.Equal(t, 30.0, cfg.Rotation)
	assert.False(t, cfg.Symmetric)
	assert.Equal(t, 7, cfg.Pixels)
	assert.Equal(t, 2, cfg.ColorOffset)

	_, err = s.avatarConfig(RenderOptions{ColorOffset: -1})
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))
	_, err = s.avatarConfig(RenderOptions{Form: "oval"})
	assert.True(t, errors.Is(err, errors.ErrValidation))
}
