package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultGridColor is a semi-transparent red.
var DefaultGridColor = color.NRGBA{255, 0, 0, 128}

// GridOverlay returns a copy of img with lines drawn on the boundaries of
// a cells×cells grid, for checking an identicon against its pixel matrix.
// Lines are one pixel wide and sit on the first pixel of each cell after
// the first. cells <= 1 returns an unmodified copy.
func GridOverlay(img image.Image, cells int, lineColor color.Color) *image.NRGBA {
	result := imaging.Clone(img)
	if cells <= 1 {
		return result
	}

	bounds := result.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	line := image.NewUniform(lineColor)

	// Draw vertical lines
	for i := 1; i < cells; i++ {
		x := int(math.Round(float64(i) * float64(width) / float64(cells)))
		draw.Draw(result, image.Rect(x, 0, x+1, height), line, image.Point{}, draw.Over)
	}

	// Draw horizontal lines
	for i := 1; i < cells; i++ {
		y := int(math.Round(float64(i) * float64(height) / float64(cells)))
		draw.Draw(result, image.Rect(0, y, width, y+1), line, image.Point{}, draw.Over)
	}

	return result
}
