package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/avatar-tools-mcp/internal/avatar"
	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/identity"
	"github.com/ironsheep/avatar-tools-mcp/internal/imaging"
	"github.com/ironsheep/avatar-tools-mcp/internal/pixelmatrix"
)

// maxPixels bounds the identicon grid a client may request.
const maxPixels = 64

// logCall records a finished tool call: failures at warn, the rest at
// debug.
func (s *Server) logCall(tool string, err error) {
	if err != nil {
		s.logger.Warn("tool failed", "tool", tool, "code", errors.CodeOf(err), "error", err)
		return
	}
	s.logger.Debug("tool called", "tool", tool)
}

// avatarConfig applies per-call overrides to the server defaults.
func (s *Server) avatarConfig(o RenderOptions) (avatar.Config, error) {
	cfg := s.defaults

	if o.Size < 0 {
		return cfg, errors.Validation("size must not be negative, got %d", o.Size)
	}
	if o.Size > 0 {
		cfg.Size = o.Size
	}
	if o.BackgroundLightness != nil {
		cfg.SetBackgroundLightness(*o.BackgroundLightness)
	}
	if o.ForegroundLightness != nil {
		cfg.SetForegroundLightness(*o.ForegroundLightness)
	}
	if o.FontFamily != "" {
		cfg.FontFamily = o.FontFamily
	}
	if o.FontWeight != "" {
		cfg.FontWeight = o.FontWeight
	}
	if o.FontSize < 0 {
		return cfg, errors.Validation("font_size must not be negative, got %d", o.FontSize)
	}
	if o.FontSize > 0 {
		cfg.FontSize = o.FontSize
	}
	if o.Form != "" {
		form, err := avatar.ParseForm(o.Form)
		if err != nil {
			return cfg, err
		}
		cfg.Form = form
	}
	cfg.Rotation = o.Rotation
	if o.Symmetric != nil {
		cfg.Symmetric = *o.Symmetric
	}
	if o.Pixels < 0 || o.Pixels > maxPixels {
		return cfg, errors.Validation("pixels must be 1-%d, got %d", maxPixels, o.Pixels)
	}
	if o.Pixels > 0 {
		cfg.Pixels = o.Pixels
	}
	if o.ColorOffset < 0 {
		return cfg, errors.OutOfRange("color_offset must not be negative, got %d", o.ColorOffset)
	}
	cfg.ColorOffset = o.ColorOffset
	return cfg, nil
}

// handleAvatarInitials renders an initials avatar.
func (s *Server) handleAvatarInitials(_ context.Context, _ *mcp.CallToolRequest, in InitialsInput) (*mcp.CallToolResult, InitialsResult, error) {
	result, err := s.renderInitials(in)
	s.logCall("avatar_initials", err)
	return nil, result, err
}

func (s *Server) renderInitials(in InitialsInput) (InitialsResult, error) {
	id, err := identity.Parse(in.Name)
	if err != nil {
		return InitialsResult{}, err
	}
	cfg, err := s.avatarConfig(in.Options)
	if err != nil {
		return InitialsResult{}, err
	}

	a := avatar.NewInitials(id, cfg)
	text, background, err := a.Colors()
	if err != nil {
		return InitialsResult{}, err
	}
	doc, err := a.Render()
	if err != nil {
		return InitialsResult{}, err
	}

	return InitialsResult{
		Initials:        id.Initials(),
		Hash:            id.Hash(),
		TextColor:       text.Hex(),
		BackgroundColor: background.Hex(),
		FontSize:        a.EffectiveFontSize(),
		Size:            cfg.Size,
		SVG:             doc.String(),
		DataURI:         doc.Base64(),
		HTML:            doc.HTML(in.Base64),
	}, nil
}

// handleAvatarIdenticon renders an identicon.
func (s *Server) handleAvatarIdenticon(_ context.Context, _ *mcp.CallToolRequest, in IdenticonInput) (*mcp.CallToolResult, IdenticonResult, error) {
	result, err := s.renderIdenticon(in)
	s.logCall("avatar_identicon", err)
	return nil, result, err
}

func (s *Server) renderIdenticon(in IdenticonInput) (IdenticonResult, error) {
	id, err := identity.Parse(in.Name)
	if err != nil {
		return IdenticonResult{}, err
	}
	cfg, err := s.avatarConfig(in.Options)
	if err != nil {
		return IdenticonResult{}, err
	}

	a := avatar.NewIdenticon(id, cfg)
	seed, err := avatar.SeedColor(id, cfg.ColorOffset)
	if err != nil {
		return IdenticonResult{}, err
	}
	doc, err := a.Render()
	if err != nil {
		return IdenticonResult{}, err
	}
	matrix := a.Matrix()

	return IdenticonResult{
		Hash:      id.Hash(),
		Color:     seed.Hex(),
		Symmetric: cfg.Symmetric,
		Rows:      matrix.Rows(),
		Filled:    matrix.Filled(),
		Size:      cfg.Size,
		SVG:       doc.String(),
		DataURI:   doc.Base64(),
		HTML:      doc.HTML(in.Base64),
	}, nil
}

// handleAvatarGravatar builds a Gravatar link.
func (s *Server) handleAvatarGravatar(_ context.Context, _ *mcp.CallToolRequest, in GravatarInput) (*mcp.CallToolResult, GravatarResult, error) {
	result, err := s.gravatarLink(in)
	s.logCall("avatar_gravatar", err)
	return nil, result, err
}

func (s *Server) gravatarLink(in GravatarInput) (GravatarResult, error) {
	if strings.TrimSpace(in.Email) == "" {
		return GravatarResult{}, errors.UnsupportedCombination("gravatar links need an email address")
	}
	if in.Size < 0 {
		return GravatarResult{}, errors.Validation("size must not be negative, got %d", in.Size)
	}

	g := avatar.NewGravatar(in.Email)
	g.Kind = s.cfg.GravatarKind()
	if in.Type != "" {
		kind, err := avatar.ParseKind(in.Type)
		if err != nil {
			return GravatarResult{}, err
		}
		g.Kind = kind
	}
	g.Size = s.defaults.Size
	if in.Size > 0 {
		g.Size = in.Size
	}

	url, err := g.URL()
	if err != nil {
		return GravatarResult{}, err
	}
	html, err := g.HTML()
	if err != nil {
		return GravatarResult{}, err
	}
	return GravatarResult{
		Hash: g.Hash(),
		Type: g.Kind.String(),
		Size: g.Size,
		URL:  url,
		HTML: html,
	}, nil
}

// handleAvatarRender renders any avatar kind through the facade.
func (s *Server) handleAvatarRender(_ context.Context, _ *mcp.CallToolRequest, in RenderInput) (*mcp.CallToolResult, RenderResult, error) {
	result, err := s.renderAny(in)
	s.logCall("avatar_render", err)
	return nil, result, err
}

func (s *Server) renderAny(in RenderInput) (RenderResult, error) {
	kind, err := avatar.ParseKind(in.Kind)
	if err != nil {
		return RenderResult{}, err
	}
	if _, err := identity.Parse(in.Name); err != nil {
		return RenderResult{}, err
	}
	a, err := avatar.New(kind, in.Name, in.Email)
	if err != nil {
		return RenderResult{}, err
	}
	if a.Config, err = s.avatarConfig(in.Options); err != nil {
		return RenderResult{}, err
	}

	html, err := a.HTML(in.Base64)
	if err != nil {
		return RenderResult{}, err
	}
	result := RenderResult{Kind: kind.String(), HTML: html}
	if !kind.IsGravatar() {
		if result.DataURI, err = a.Base64(); err != nil {
			return RenderResult{}, err
		}
	}
	return result, nil
}

// handleAvatarRaster renders an avatar to PNG or JPEG. The image is also
// returned as image content so clients can display it.
func (s *Server) handleAvatarRaster(_ context.Context, _ *mcp.CallToolRequest, in RasterInput) (*mcp.CallToolResult, RasterResult, error) {
	result, err := s.rasterize(in)
	s.logCall("avatar_raster", err)
	if err != nil {
		return nil, RasterResult{}, err
	}

	data, err := base64.StdEncoding.DecodeString(result.Image.ImageBase64)
	if err != nil {
		return nil, RasterResult{}, fmt.Errorf("decode raster image: %w", err)
	}
	summary, err := json.Marshal(result)
	if err != nil {
		return nil, RasterResult{}, fmt.Errorf("encode raster result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.ImageContent{Data: data, MIMEType: result.Image.MimeType},
			&mcp.TextContent{Text: string(summary)},
		},
	}, result, nil
}

func (s *Server) rasterize(in RasterInput) (RasterResult, error) {
	kind := avatar.KindInitials
	if in.Kind != "" {
		var err error
		if kind, err = avatar.ParseKind(in.Kind); err != nil {
			return RasterResult{}, err
		}
	}
	if kind != avatar.KindInitials && kind != avatar.KindIdenticonLarvatar {
		return RasterResult{}, errors.UnsupportedCombination("%s avatars cannot be rasterized", kind)
	}
	if in.Grid && kind != avatar.KindIdenticonLarvatar {
		return RasterResult{}, errors.UnsupportedCombination("grid overlay needs an identicon, got %s", kind)
	}
	if _, err := identity.Parse(in.Name); err != nil {
		return RasterResult{}, err
	}
	format, err := imaging.ParseFormat(in.Format)
	if err != nil {
		return RasterResult{}, err
	}
	if in.PaletteSize < 0 {
		return RasterResult{}, errors.Validation("palette_size must not be negative, got %d", in.PaletteSize)
	}

	a, err := avatar.New(kind, in.Name, "")
	if err != nil {
		return RasterResult{}, err
	}
	if a.Config, err = s.avatarConfig(in.Options); err != nil {
		return RasterResult{}, err
	}
	if a.Config.Size > s.cfg.MaxRasterSize {
		return RasterResult{}, errors.Validation("size %d exceeds the raster limit of %d", a.Config.Size, s.cfg.MaxRasterSize)
	}

	opts := imaging.Options{
		Size:        a.Config.Size,
		Format:      format,
		Quality:     in.Quality,
		PaletteSize: in.PaletteSize,
	}
	if in.Grid {
		opts.GridCells = a.Config.Pixels
	}

	// The key covers every input that changes the image, after defaults.
	normalized := in
	normalized.Kind = kind.String()
	normalized.Format = string(format)
	normalized.Options.Size = a.Config.Size
	key, err := json.Marshal(normalized)
	if err != nil {
		return RasterResult{}, fmt.Errorf("encode cache key: %w", err)
	}

	rendered := false
	image, err := s.cache.Load(string(key), func() (*imaging.ExportResult, error) {
		rendered = true
		doc, err := a.Render()
		if err != nil {
			return nil, err
		}
		return imaging.Export(doc, opts)
	})
	if err != nil {
		return RasterResult{}, err
	}
	return RasterResult{Kind: kind.String(), Cached: !rendered, Image: image}, nil
}

// handleIdentityInspect reports what the avatars derive from a name.
func (s *Server) handleIdentityInspect(_ context.Context, _ *mcp.CallToolRequest, in IdentityInput) (*mcp.CallToolResult, IdentityResult, error) {
	result, err := inspectIdentity(in)
	s.logCall("identity_inspect", err)
	return nil, result, err
}

func inspectIdentity(in IdentityInput) (IdentityResult, error) {
	id, err := identity.Parse(in.Text)
	if err != nil {
		return IdentityResult{}, err
	}
	if in.ColorOffset < 0 {
		return IdentityResult{}, errors.OutOfRange("color_offset must not be negative, got %d", in.ColorOffset)
	}

	result := IdentityResult{
		Text:         id.Text(),
		Hash:         id.Hash(),
		ExtendedHash: id.ExtendedHash(),
		Tokens:       id.Tokens(),
		Initials:     id.Initials(),
		SeedColor:    id.HexColor(in.ColorOffset),
	}
	if in.Email != "" {
		result.EmailHash = identity.EmailHash(in.Email)
	}
	return result, nil
}

// handleColorConvert converts a color between representations.
func (s *Server) handleColorConvert(_ context.Context, _ *mcp.CallToolRequest, in ColorConvertInput) (*mcp.CallToolResult, ColorConvertResult, error) {
	result, err := convertColor(in)
	s.logCall("color_convert", err)
	return nil, result, err
}

func convertColor(in ColorConvertInput) (ColorConvertResult, error) {
	c, err := colorspace.ParseColor(in.Color)
	if err != nil {
		return ColorConvertResult{}, err
	}
	if in.Brighten < 0 || in.Darken < 0 {
		return ColorConvertResult{}, errors.Validation("brighten and darken must not be negative")
	}
	c = c.Brighten(in.Brighten).Darken(in.Darken)
	return ColorConvertResult{
		Color:     c.Info(),
		Luminance: c.RelativeLuminance(),
	}, nil
}

// handleColorPair derives the dark and light colors of a seed.
func (s *Server) handleColorPair(_ context.Context, _ *mcp.CallToolRequest, in ColorPairInput) (*mcp.CallToolResult, ColorPairResult, error) {
	result, err := pairColor(in)
	s.logCall("color_pair", err)
	return nil, result, err
}

func pairColor(in ColorPairInput) (ColorPairResult, error) {
	c, err := colorspace.ParseColor(in.Color)
	if err != nil {
		return ColorPairResult{}, err
	}

	var dark, light colorspace.Color
	switch strings.ToLower(strings.TrimSpace(in.Mode)) {
	case "", "pair":
		darkL := colorspace.DefaultDarkLightness
		if in.DarkLightness != nil {
			darkL = *in.DarkLightness
		}
		lightL := colorspace.DefaultLightLightness
		if in.LightLightness != nil {
			lightL = *in.LightLightness
		}
		dark, light = colorspace.Pair(c, darkL, lightL)
	case "set":
		if in.DarkLightness != nil || in.LightLightness != nil {
			return ColorPairResult{}, errors.UnsupportedCombination("set mode derives its own lightness")
		}
		dark, light = colorspace.ColorSet(c)
	default:
		return ColorPairResult{}, errors.Validation("unknown mode %q: want pair or set", in.Mode)
	}

	return ColorPairResult{
		Dark:          dark.Info(),
		Light:         light.Info(),
		ContrastRatio: colorspace.ContrastRatio(dark, light),
		Distance:      colorspace.Distance(dark, light),
	}, nil
}

// handlePixelMatrix reports the identicon pattern of a name or digest.
func (s *Server) handlePixelMatrix(_ context.Context, _ *mcp.CallToolRequest, in PixelMatrixInput) (*mcp.CallToolResult, PixelMatrixResult, error) {
	result, err := s.matrix(in)
	s.logCall("pixel_matrix", err)
	return nil, result, err
}

func (s *Server) matrix(in PixelMatrixInput) (PixelMatrixResult, error) {
	if in.Text != "" && in.Hash != "" {
		return PixelMatrixResult{}, errors.UnsupportedCombination("give text or hash, not both")
	}
	if in.Pixels < 0 || in.Pixels > maxPixels {
		return PixelMatrixResult{}, errors.Validation("pixels must be 1-%d, got %d", maxPixels, in.Pixels)
	}

	pixels := s.defaults.Pixels
	if in.Pixels > 0 {
		pixels = in.Pixels
	}
	symmetric := s.defaults.Symmetric
	if in.Symmetric != nil {
		symmetric = *in.Symmetric
	}

	hash := strings.ToLower(in.Hash)
	if hash == "" {
		id, err := identity.Parse(in.Text)
		if err != nil {
			return PixelMatrixResult{}, err
		}
		hash = id.Hash()
		if !symmetric {
			hash = id.ExtendedHash()
		}
	}
	for _, ch := range hash {
		if !strings.ContainsRune("0123456789abcdef", ch) {
			return PixelMatrixResult{}, errors.InvalidFormat("hash %q is not hexadecimal", in.Hash)
		}
	}

	m := pixelmatrix.Generate(hash, pixels, symmetric)
	return PixelMatrixResult{
		Hash:      hash,
		Pixels:    pixels,
		Symmetric: symmetric,
		Rows:      m.Rows(),
		Filled:    m.Filled(),
	}, nil
}
