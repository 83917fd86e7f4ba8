package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/bbrks/go-blurhash"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

// Format is a raster encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// DefaultJPEGQuality is used when Options.Quality is zero.
const DefaultJPEGQuality = 90

// blurHashSize bounds the thumbnail BlurHash is computed from; a small
// image gives the same placeholder in a fraction of the time.
const blurHashSize = 32

// ParseFormat reads "png", "jpeg" or "jpg". The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return "", errors.Validation("unsupported raster format %q: want png or jpeg", s)
}

// MIMEType returns the media type of f.
func (f Format) MIMEType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Options controls Export.
type Options struct {
	// Size is the output edge length in pixels. Zero uses the document width.
	Size int
	// Format is the encoding. Empty selects PNG.
	Format Format
	// Quality is the JPEG quality (1-100). Zero selects DefaultJPEGQuality.
	Quality int
	// PaletteSize is the number of dominant colors to report.
	PaletteSize int
	// GridCells overlays a GridCells×GridCells grid when above 1.
	GridCells int
}

// ExportResult contains the encoded avatar.
type ExportResult struct {
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	ImageBase64 string           `json:"image_base64"`
	MimeType    string           `json:"mime_type"`
	BlurHash    string           `json:"blurhash"`
	Palette     []ColorFrequency `json:"palette,omitempty"`
}

// Export rasterizes doc and encodes it.
//
// JPEG has no alpha channel, so JPEG output is composited onto white
// first. The BlurHash (4×3 components) and palette are computed from the
// same composited image that is encoded.
func Export(doc *svg.Document, opts Options) (*ExportResult, error) {
	size := opts.Size
	if size == 0 {
		size = doc.Width
	}
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}

	canvas, err := Rasterize(doc, size)
	if err != nil {
		return nil, err
	}
	if opts.GridCells > 1 {
		canvas = GridOverlay(canvas, opts.GridCells, DefaultGridColor)
	}

	var img image.Image = canvas
	var encoder imgio.Encoder
	switch format {
	case FormatPNG:
		encoder = imgio.PNGEncoder()
	case FormatJPEG:
		quality := opts.Quality
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		if quality < 1 || quality > 100 {
			return nil, errors.Validation("jpeg quality must be 1-100, got %d", quality)
		}
		img = imaging.Overlay(imaging.New(size, size, color.White), canvas, image.Pt(0, 0), 1.0)
		encoder = imgio.JPEGEncoder(quality)
	default:
		return nil, errors.Validation("unsupported raster format %q", format)
	}

	var buf bytes.Buffer
	if err := encoder(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode %s avatar: %w", format, err)
	}

	hash, err := BlurHash(img)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Width:       size,
		Height:      size,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    format.MIMEType(),
		BlurHash:    hash,
		Palette:     DominantColors(img, opts.PaletteSize),
	}, nil
}

// BlurHash returns the 4×3 component BlurHash of img, computed from a
// thumbnail no larger than blurHashSize on either side.
func BlurHash(img image.Image) (string, error) {
	b := img.Bounds()
	if b.Dx() > blurHashSize || b.Dy() > blurHashSize {
		img = imaging.Fit(img, blurHashSize, blurHashSize, imaging.Box)
	}

	hash, err := blurhash.Encode(4, 3, img)
	if err != nil {
		return "", fmt.Errorf("failed to encode blurhash: %w", err)
	}
	return hash, nil
}
