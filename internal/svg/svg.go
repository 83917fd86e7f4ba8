// Package svg assembles avatar shapes into an SVG document and serializes
// it as markup, as a base64 data URI, or as an HTML <img> tag.
//
// The serializer writes a fixed element and attribute order so that the
// same avatar always produces byte-identical output.
package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/avatar-tools-mcp/internal/geometry"
)

const (
	header = `<?xml version="1.0" encoding="utf-8"?>`

	// DataURIPrefix starts the base64 form of a document.
	DataURIPrefix = "data:image/svg+xml;base64,"

	// MIMEType is the media type of serialized documents.
	MIMEType = "image/svg+xml"
)

// Node is a drawable element of a Document.
type Node interface {
	write(b *strings.Builder)
}

// Document is an ordered list of nodes on a Width×Height canvas. Later
// nodes paint over earlier ones.
type Document struct {
	Width  int
	Height int
	Nodes  []Node
}

// New returns an empty size×size document.
func New(size int) *Document {
	return &Document{Width: size, Height: size}
}

// Add appends nodes to the document.
func (d *Document) Add(nodes ...Node) {
	d.Nodes = append(d.Nodes, nodes...)
}

// String serializes the document as SVG markup.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`)
	b.WriteString(` width="`)
	b.WriteString(strconv.Itoa(d.Width))
	b.WriteString(`" height="`)
	b.WriteString(strconv.Itoa(d.Height))
	b.WriteString(`">`)
	for _, n := range d.Nodes {
		n.write(&b)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// Base64 returns the document as a data URI.
func (d *Document) Base64() string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(d.String()))
}

// HTML returns the markup itself, or an <img> tag embedding the data URI
// when base64 is set.
func (d *Document) HTML(base64 bool) string {
	if !base64 {
		return d.String()
	}
	return ImgTag(d.Base64())
}

// ImgTag wraps src in an HTML <img> element. src is written verbatim and
// must not contain a double quote.
func ImgTag(src string) string {
	return `<img src="` + src + `" />`
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R float64
	Fill      string
}

// CircleFrom builds a Circle from outline geometry.
func CircleFrom(c geometry.Circle, fill string) Circle {
	return Circle{CX: c.CX, CY: c.CY, R: c.R, Fill: fill}
}

func (c Circle) write(b *strings.Builder) {
	b.WriteString(`<circle cx="` + number(c.CX) + `" cy="` + number(c.CY) + `" r="` + number(c.R) + `"`)
	writeFill(b, c.Fill)
	b.WriteString(` />`)
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
	Fill                string
}

// RectFrom builds a Rect from outline geometry.
func RectFrom(r geometry.Rect, fill string) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Fill: fill}
}

func (r Rect) write(b *strings.Builder) {
	b.WriteString(`<rect x="` + number(r.X) + `" y="` + number(r.Y) +
		`" width="` + number(r.Width) + `" height="` + number(r.Height) + `"`)
	writeFill(b, r.Fill)
	b.WriteString(` />`)
}

// Polygon is a filled closed polygon.
type Polygon struct {
	Points []geometry.Point
	Fill   string
}

func (p Polygon) write(b *strings.Builder) {
	b.WriteString(`<polygon points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(number(pt.X))
		b.WriteByte(',')
		b.WriteString(number(pt.Y))
	}
	b.WriteString(`"`)
	writeFill(b, p.Fill)
	b.WriteString(` />`)
}

// Text is a centered run of text. X and Y are SVG lengths such as "50%".
type Text struct {
	X, Y       string
	Content    string
	Fill       string
	FontFamily string
	FontWeight string
	FontSize   int
}

func (t Text) write(b *strings.Builder) {
	b.WriteString(`<text x="` + escape(t.X) + `" y="` + escape(t.Y) + `" style="`)
	b.WriteString(escape("fill: " + t.Fill +
		"; text-anchor: middle; dominant-baseline: middle; font-weight: " + t.FontWeight +
		"; font-family: " + t.FontFamily +
		"; font-size: " + strconv.Itoa(t.FontSize) + "px"))
	b.WriteString(`">`)
	b.WriteString(escape(t.Content))
	b.WriteString(`</text>`)
}

func writeFill(b *strings.Builder, fill string) {
	b.WriteString(` style="fill: ` + escape(fill) + `"`)
}

// number formats v with up to 14 significant digits. Values within 1e-9
// of zero print as 0.
func number(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 14, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
