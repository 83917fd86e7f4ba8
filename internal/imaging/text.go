package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontsErr    error
)

func loadFonts() (regular, bold *opentype.Font, err error) {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	return regularFont, boldFont, fontsErr
}

// IsBold reports whether a CSS font-weight selects the bold face.
func IsBold(weight string) bool {
	w := strings.ToLower(strings.TrimSpace(weight))
	switch w {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 600
}

func drawText(dst draw.Image, t svg.Text, scale float64) error {
	if t.Content == "" || t.FontSize <= 0 {
		return nil
	}

	c, err := colorspace.FromHex(t.Fill)
	if err != nil {
		return err
	}

	regular, bold, err := loadFonts()
	if err != nil {
		return fmt.Errorf("failed to parse go fonts: %w", err)
	}
	f := regular
	if IsBold(t.FontWeight) {
		f = bold
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(t.FontSize) * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	b := dst.Bounds()
	x, err := length(t.X, b.Dx(), scale)
	if err != nil {
		return err
	}
	y, err := length(t.Y, b.Dy(), scale)
	if err != nil {
		return err
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
	}

	// text-anchor: middle; dominant-baseline: middle
	metrics := face.Metrics()
	width := d.MeasureString(t.Content)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2,
		Y: fixed.Int26_6(y*64) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(t.Content)
	return nil
}

// length resolves an SVG length against the canvas: percentages are of
// total pixels, plain numbers are document units multiplied by scale.
func length(s string, total int, scale float64) (float64, error) {
	v := strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, errors.Wrap(err, errors.CodeInvalidFormat, "invalid length "+strconv.Quote(s))
		}
		return f * float64(total) / 100, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInvalidFormat, "invalid length "+strconv.Quote(s))
	}
	return f * scale, nil
}
