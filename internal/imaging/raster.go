package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
	"github.com/ironsheep/avatar-tools-mcp/internal/errors"
	"github.com/ironsheep/avatar-tools-mcp/internal/geometry"
	"github.com/ironsheep/avatar-tools-mcp/internal/svg"
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 128

// Rasterize paints doc onto a transparent size×size canvas.
//
// Parameters:
//   - doc: The document to paint. Its width sets the scale factor.
//   - size: Output edge length in pixels. Must be positive.
//
// Returns:
//   - *image.NRGBA: The painted canvas.
//   - error: ErrValidation for a non-positive size or document width;
//     ErrInvalidFormat for a node fill that is not a hex color.
func Rasterize(doc *svg.Document, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Validation("raster size must be positive, got %d", size)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, errors.Validation("document is %dx%d, want a positive size", doc.Width, doc.Height)
	}

	canvas := imaging.New(size, size, color.Transparent)
	scale := float64(size) / float64(doc.Width)

	for _, node := range doc.Nodes {
		var err error
		switch n := node.(type) {
		case svg.Circle:
			err = fillPath(canvas, circlePath(n.CX*scale, n.CY*scale, n.R*scale), n.Fill)
		case svg.Rect:
			err = fillPath(canvas, rectPath(n.X*scale, n.Y*scale, n.Width*scale, n.Height*scale), n.Fill)
		case svg.Polygon:
			points := make([]geometry.Point, len(n.Points))
			for i, p := range n.Points {
				points[i] = geometry.Point{X: p.X * scale, Y: p.Y * scale}
			}
			err = fillPath(canvas, points, n.Fill)
		case svg.Text:
			err = drawText(canvas, n, scale)
		}
		if err != nil {
			return nil, err
		}
	}

	return canvas, nil
}

func fillPath(dst draw.Image, points []geometry.Point, fill string) error {
	if len(points) < 3 {
		return nil
	}
	c, err := colorspace.FromHex(fill)
	if err != nil {
		return err
	}

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c.NRGBA()), image.Point{})
	return nil
}

func circlePath(cx, cy, radius float64) []geometry.Point {
	points := make([]geometry.Point, circleSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points[i] = geometry.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return points
}

func rectPath(x, y, width, height float64) []geometry.Point {
	return []geometry.Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}
