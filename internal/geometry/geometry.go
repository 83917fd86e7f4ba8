// Package geometry computes the outline shapes and text size of an
// initials avatar. All coordinates are in output pixels with (0,0) at the
// top-left corner.
package geometry

import (
	"math"
	"unicode/utf8"
)

// HexagonSides is the number of corners of the hexagon outline.
const HexagonSides = 6

// Point is a position on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Circle is a circle outline by center and radius.
type Circle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// Rect is an axis-aligned rectangle by top-left corner and extent.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CircleFor returns the circle inscribed in a size×size canvas.
func CircleFor(size int) Circle {
	half := float64(size) / 2
	return Circle{CX: half, CY: half, R: half}
}

// SquareFor returns the rectangle covering a size×size canvas.
func SquareFor(size int) Rect {
	return Rect{X: 0, Y: 0, Width: float64(size), Height: float64(size)}
}

// HexagonFor returns the corners of the hexagon inscribed in a size×size
// canvas. Corner i sits at 60°·i + rotation, measured clockwise from the
// positive x axis since y grows downward.
func HexagonFor(size int, rotation float64) []Point {
	half := float64(size) / 2
	points := make([]Point, HexagonSides)
	for i := range points {
		angle := (60*float64(i) + rotation) * math.Pi / 180
		points[i] = Point{
			X: half*math.Cos(angle) + half,
			Y: half*math.Sin(angle) + half,
		}
	}
	return points
}

// FontSize returns the initials font size for a canvas of the given size:
// floor(size × (0.5 − sin(0.5×length − 1)/5)). Longer initials get a
// smaller font.
func FontSize(size, length int) int {
	scale := 0.5 - math.Sin(0.5*float64(length)-1)/5
	return int(math.Floor(float64(size) * scale))
}

// FontSizeFor is FontSize with the length of initials counted in code
// points.
func FontSizeFor(size int, initials string) int {
	return FontSize(size, utf8.RuneCountInString(initials))
}
