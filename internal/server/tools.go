package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
	"github.com/ironsheep/avatar-tools-mcp/internal/imaging"
)

// RenderOptions overrides the server's avatar defaults for one call.
type RenderOptions struct {
	Size                int      `json:"size,omitempty" jsonschema:"edge length in pixels, default from server configuration"`
	BackgroundLightness *float64 `json:"background_lightness,omitempty" jsonschema:"outline lightness 0-1, default 0.8"`
	ForegroundLightness *float64 `json:"foreground_lightness,omitempty" jsonschema:"text lightness 0-1, default 0.35"`
	FontFamily          string   `json:"font_family,omitempty" jsonschema:"CSS font-family of the initials"`
	FontWeight          string   `json:"font_weight,omitempty" jsonschema:"CSS font-weight of the initials"`
	FontSize            int      `json:"font_size,omitempty" jsonschema:"initials font size, derived from size when 0"`
	Form                string   `json:"form,omitempty" jsonschema:"initials outline: circle, square or hexagon"`
	Rotation            float64  `json:"rotation,omitempty" jsonschema:"hexagon rotation in degrees"`
	Symmetric           *bool    `json:"symmetric,omitempty" jsonschema:"mirror the identicon pattern, default true"`
	Pixels              int      `json:"pixels,omitempty" jsonschema:"identicon grid edge length, default 5"`
	ColorOffset         int      `json:"color_offset,omitempty" jsonschema:"start of the 6-character seed color in the hash"`
}

// InitialsInput is the input of avatar_initials.
type InitialsInput struct {
	Name    string        `json:"name" jsonschema:"name the initials and colors are derived from"`
	Base64  bool          `json:"base64,omitempty" jsonschema:"return the html as an img tag with a data URI"`
	Options RenderOptions `json:"options,omitempty" jsonschema:"rendering overrides"`
}

// InitialsResult is the output of avatar_initials.
type InitialsResult struct {
	Initials        string `json:"initials" jsonschema:"initials drawn on the avatar"`
	Hash            string `json:"hash" jsonschema:"MD5 digest of the name"`
	TextColor       string `json:"text_color" jsonschema:"initials color"`
	BackgroundColor string `json:"background_color" jsonschema:"outline color"`
	FontSize        int    `json:"font_size" jsonschema:"initials font size"`
	Size            int    `json:"size" jsonschema:"edge length in pixels"`
	SVG             string `json:"svg" jsonschema:"SVG document"`
	DataURI         string `json:"data_uri" jsonschema:"base64 data URI of the SVG"`
	HTML            string `json:"html" jsonschema:"markup for embedding"`
}

// IdenticonInput is the input of avatar_identicon.
type IdenticonInput struct {
	Name    string        `json:"name" jsonschema:"name the pattern and color are derived from"`
	Base64  bool          `json:"base64,omitempty" jsonschema:"return the html as an img tag with a data URI"`
	Options RenderOptions `json:"options,omitempty" jsonschema:"rendering overrides"`
}

// IdenticonResult is the output of avatar_identicon.
type IdenticonResult struct {
	Hash      string   `json:"hash" jsonschema:"MD5 digest of the name"`
	Color     string   `json:"color" jsonschema:"cell color"`
	Symmetric bool     `json:"symmetric" jsonschema:"whether the pattern is mirrored"`
	Rows      []string `json:"rows" jsonschema:"pixel matrix, one string of 1 and 0 per row"`
	Filled    int      `json:"filled" jsonschema:"number of filled cells"`
	Size      int      `json:"size" jsonschema:"edge length in pixels"`
	SVG       string   `json:"svg" jsonschema:"SVG document"`
	DataURI   string   `json:"data_uri" jsonschema:"base64 data URI of the SVG"`
	HTML      string   `json:"html" jsonschema:"markup for embedding"`
}

// GravatarInput is the input of avatar_gravatar.
type GravatarInput struct {
	Email string `json:"email" jsonschema:"email address of the Gravatar account"`
	Type  string `json:"type,omitempty" jsonschema:"default image: gravatar, mp, identicon, monsterid, wavatar, retro or robohash"`
	Size  int    `json:"size,omitempty" jsonschema:"edge length in pixels"`
}

// GravatarResult is the output of avatar_gravatar.
type GravatarResult struct {
	Hash string `json:"hash" jsonschema:"MD5 digest of the normalized email"`
	Type string `json:"type" jsonschema:"default image type"`
	Size int    `json:"size" jsonschema:"edge length in pixels"`
	URL  string `json:"url" jsonschema:"image link"`
	HTML string `json:"html" jsonschema:"img tag"`
}

// RenderInput is the input of avatar_render.
type RenderInput struct {
	Kind    string        `json:"kind" jsonschema:"avatar kind: initials, identicon-larvatar or a Gravatar type"`
	Name    string        `json:"name,omitempty" jsonschema:"name for initials and identicons"`
	Email   string        `json:"email,omitempty" jsonschema:"email for Gravatar kinds"`
	Base64  bool          `json:"base64,omitempty" jsonschema:"return rendered kinds as an img tag with a data URI"`
	Options RenderOptions `json:"options,omitempty" jsonschema:"rendering overrides"`
}

// RenderResult is the output of avatar_render.
type RenderResult struct {
	Kind    string `json:"kind" jsonschema:"avatar kind"`
	HTML    string `json:"html" jsonschema:"markup for embedding"`
	DataURI string `json:"data_uri,omitempty" jsonschema:"base64 data URI, rendered kinds only"`
}

// RasterInput is the input of avatar_raster.
type RasterInput struct {
	Kind        string        `json:"kind,omitempty" jsonschema:"initials (default) or identicon-larvatar"`
	Name        string        `json:"name" jsonschema:"name the avatar is derived from"`
	Format      string        `json:"format,omitempty" jsonschema:"png (default) or jpeg"`
	Quality     int           `json:"quality,omitempty" jsonschema:"JPEG quality 1-100, default 90"`
	PaletteSize int           `json:"palette_size,omitempty" jsonschema:"number of dominant colors to report"`
	Grid        bool          `json:"grid,omitempty" jsonschema:"overlay the identicon cell grid"`
	Options     RenderOptions `json:"options,omitempty" jsonschema:"rendering overrides"`
}

// RasterResult is the output of avatar_raster.
type RasterResult struct {
	Kind   string                `json:"kind" jsonschema:"avatar kind"`
	Cached bool                  `json:"cached" jsonschema:"whether the image came from the render cache"`
	Image  *imaging.ExportResult `json:"image" jsonschema:"encoded image"`
}

// IdentityInput is the input of identity_inspect.
type IdentityInput struct {
	Text        string `json:"text" jsonschema:"name to hash"`
	Email       string `json:"email,omitempty" jsonschema:"optional email to hash for Gravatar"`
	ColorOffset int    `json:"color_offset,omitempty" jsonschema:"start of the seed color in the hash"`
}

// IdentityResult is the output of identity_inspect.
type IdentityResult struct {
	Text         string   `json:"text" jsonschema:"name as given"`
	Hash         string   `json:"hash" jsonschema:"MD5 digest"`
	ExtendedHash string   `json:"extended_hash" jsonschema:"SHA-256 extension read by raw identicons"`
	Tokens       []string `json:"tokens" jsonschema:"name split on spaces"`
	Initials     string   `json:"initials" jsonschema:"first character of each token"`
	SeedColor    string   `json:"seed_color" jsonschema:"6-character hash slice at color_offset"`
	EmailHash    string   `json:"email_hash,omitempty" jsonschema:"Gravatar digest of the email"`
}

// ColorConvertInput is the input of color_convert.
type ColorConvertInput struct {
	Color    string  `json:"color" jsonschema:"#rrggbb, #rgb, rgb(r,g,b) or hsl(h,s,l)"`
	Brighten float64 `json:"brighten,omitempty" jsonschema:"percent to add to the lightness"`
	Darken   float64 `json:"darken,omitempty" jsonschema:"percent to take from the lightness"`
}

// ColorConvertResult is the output of color_convert.
type ColorConvertResult struct {
	Color     colorspace.ColorInfo `json:"color" jsonschema:"color in every representation"`
	Luminance float64              `json:"luminance" jsonschema:"WCAG relative luminance"`
}

// ColorPairInput is the input of color_pair.
type ColorPairInput struct {
	Color          string   `json:"color" jsonschema:"seed color"`
	DarkLightness  *float64 `json:"dark_lightness,omitempty" jsonschema:"lightness of the dark color, default 0.35"`
	LightLightness *float64 `json:"light_lightness,omitempty" jsonschema:"lightness of the light color, default 0.8"`
	Mode           string   `json:"mode,omitempty" jsonschema:"pair (fixed lightness, default) or set (keep the seed and shift by 50)"`
}

// ColorPairResult is the output of color_pair.
type ColorPairResult struct {
	Dark          colorspace.ColorInfo `json:"dark" jsonschema:"dark color"`
	Light         colorspace.ColorInfo `json:"light" jsonschema:"light color"`
	ContrastRatio float64              `json:"contrast_ratio" jsonschema:"WCAG contrast ratio of the pair"`
	Distance      float64              `json:"distance" jsonschema:"CIEDE2000 distance of the pair"`
}

// PixelMatrixInput is the input of pixel_matrix.
type PixelMatrixInput struct {
	Text      string `json:"text,omitempty" jsonschema:"name to hash"`
	Hash      string `json:"hash,omitempty" jsonschema:"hex digest to read instead of hashing text"`
	Pixels    int    `json:"pixels,omitempty" jsonschema:"grid edge length, default 5"`
	Symmetric *bool  `json:"symmetric,omitempty" jsonschema:"mirror the pattern, default true"`
}

// PixelMatrixResult is the output of pixel_matrix.
type PixelMatrixResult struct {
	Hash      string   `json:"hash" jsonschema:"digest the cells were read from"`
	Pixels    int      `json:"pixels" jsonschema:"grid edge length"`
	Symmetric bool     `json:"symmetric" jsonschema:"whether the pattern is mirrored"`
	Rows      []string `json:"rows" jsonschema:"one string of 1 and 0 per row"`
	Filled    int      `json:"filled" jsonschema:"number of filled cells"`
}

// Tool definitions, in the order they are listed to clients.
func avatarInitialsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "avatar_initials",
		Description: "Render an initials avatar for a name as SVG. The colors come from the MD5 digest of the name, so the same name always gets the same avatar.",
	}
}

func avatarIdenticonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "avatar_identicon",
		Description: "Render an identicon for a name as SVG: a grid of colored squares whose pattern and color come from the digest of the name.",
	}
}

func avatarGravatarTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "avatar_gravatar",
		Description: "Build the Gravatar image link and img tag for an email address.",
	}
}

func avatarRenderTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "avatar_render",
		Description: "Render any avatar kind (initials, identicon-larvatar, or a Gravatar type) to embeddable HTML.",
	}
}

func avatarRasterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "avatar_raster",
		Description: "Render an initials avatar or identicon as a PNG or JPEG image with a BlurHash placeholder and its dominant colors.",
	}
}

func identityInspectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "identity_inspect",
		Description: "Show the digest, initials, tokens and seed color derived from a name, and the Gravatar digest of an email.",
	}
}

func colorConvertTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "color_convert",
		Description: "Convert a color between hex, RGB, HSL and HSV, optionally brightening or darkening it first.",
	}
}

func colorPairTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "color_pair",
		Description: "Derive the dark and light colors avatars use from one seed color, with their contrast ratio.",
	}
}

func pixelMatrixTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pixel_matrix",
		Description: "Show the identicon cell pattern of a name or digest as rows of 1 and 0.",
	}
}

// registerTools adds every tool to the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, avatarInitialsTool(), s.handleAvatarInitials)
	mcp.AddTool(s.mcpServer, avatarIdenticonTool(), s.handleAvatarIdenticon)
	mcp.AddTool(s.mcpServer, avatarGravatarTool(), s.handleAvatarGravatar)
	mcp.AddTool(s.mcpServer, avatarRenderTool(), s.handleAvatarRender)
	mcp.AddTool(s.mcpServer, avatarRasterTool(), s.handleAvatarRaster)
	mcp.AddTool(s.mcpServer, identityInspectTool(), s.handleIdentityInspect)
	mcp.AddTool(s.mcpServer, colorConvertTool(), s.handleColorConvert)
	mcp.AddTool(s.mcpServer, colorPairTool(), s.handleColorPair)
	mcp.AddTool(s.mcpServer, pixelMatrixTool(), s.handlePixelMatrix)
}
