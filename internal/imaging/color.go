package imaging

import (
	"image"
	"sort"

	"github.com/ironsheep/avatar-tools-mcp/internal/colorspace"
)

// ColorFrequency represents a color and its share of the opaque pixels.
type ColorFrequency struct {
	Color      colorspace.ColorInfo `json:"color"`      // Quantized color
	Percentage float64              `json:"percentage"` // Share of opaque pixels (0-100)
}

// DominantColors returns up to count of the most common colors in img,
// most frequent first.
//
// Pixels with alpha below 50% are skipped so that the transparent corners
// around a circle do not count. Anti-aliased edge pixels are merged into
// their neighbors by quantizing each component to a multiple of 16:
//
//	quantized = (original / 16) * 16
//
// Ties are broken by hex value so that the result is deterministic.
func DominantColors(img image.Image, count int) []ColorFrequency {
	if count <= 0 {
		return nil
	}

	type rgb struct{ r, g, b int }
	counts := make(map[rgb]int)
	total := 0

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			// Un-premultiply and quantize
			key := rgb{
				r: int(r*0xffff/a>>8) / 16 * 16,
				g: int(g*0xffff/a>>8) / 16 * 16,
				b: int(b*0xffff/a>>8) / 16 * 16,
			}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c, err := colorspace.FromRGB(key.r, key.g, key.b)
		if err != nil {
			continue
		}
		colors = append(colors, ColorFrequency{
			Color:      c.Info(),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Color.Hex < colors[j].Color.Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return colors
}
