package svg

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/avatar-tools-mcp/internal/geometry"
)

const prefix = `<?xml version="1.0" encoding="utf-8"?><svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="100" height="100">`

func testText() Text {
	return Text{
		X:          "50%",
		Y:          "55%",
		Content:    "TN",
		Fill:       "#852d55",
		FontFamily: "Segoe UI, Helvetica, sans-serif",
		FontWeight: "normal",
		FontSize:   50,
	}
}

func TestDocumentString(t *testing.T) {
	doc := New(100)
	doc.Add(CircleFrom(geometry.CircleFor(100), "#e5b3c9"), testText())

	want := prefix +
		`<circle cx="50" cy="50" r="50" style="fill: #e5b3c9" />` +
		`<text x="50%" y="55%" style="fill: #852d55; text-anchor: middle; dominant-baseline: middle; font-weight: normal; font-family: Segoe UI, Helvetica, sans-serif; font-size: 50px">TN</text>` +
		`</svg>`
	assert.Equal(t, want, doc.String())
}

func TestRectAndPolygon(t *testing.T) {
	doc := New(100)
	doc.Add(RectFrom(geometry.SquareFor(100), "#e5b3c9"))
	assert.Equal(t, prefix+`<rect x="0" y="0" width="100" height="100" style="fill: #e5b3c9" /></svg>`, doc.String())

	doc = New(100)
	doc.Add(Polygon{Points: geometry.HexagonFor(100, 30), Fill: "#e5b3c9"})
	assert.Equal(t,
		prefix+`<polygon points="93.301270189222,75 50,100 6.6987298107781,75 6.6987298107781,25 50,0 93.301270189222,25" style="fill: #e5b3c9" /></svg>`,
		doc.String())
}

func TestFractionalRects(t *testing.T) {
	doc := New(100)
	doc.Add(Rect{X: 100.0 / 3, Y: 0, Width: 100.0 / 3, Height: 100.0 / 3, Fill: "#9c3564"})
	assert.Contains(t, doc.String(), `<rect x="33.333333333333" y="0" width="33.333333333333" height="33.333333333333"`)
}

func TestEmptyDocument(t *testing.T) {
	doc := &Document{Width: 0, Height: 0}
	assert.True(t, strings.HasSuffix(doc.String(), `width="0" height="0"></svg>`))
}

func TestTextIsEscaped(t *testing.T) {
	txt := testText()
	txt.Content = "<&>"
	txt.FontFamily = `"Odd" Font`

	doc := New(100)
	doc.Add(txt)
	out := doc.String()
	assert.Contains(t, out, `>&lt;&amp;&gt;</text>`)
	assert.Contains(t, out, `font-family: &#34;Odd&#34; Font;`)
}

func TestBase64AndHTML(t *testing.T) {
	doc := New(100)
	doc.Add(CircleFrom(geometry.CircleFor(100), "#e5b3c9"))

	uri := doc.Base64()
	require.True(t, strings.HasPrefix(uri, DataURIPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	require.NoError(t, err)
	assert.Equal(t, doc.String(), string(raw))

	assert.Equal(t, doc.String(), doc.HTML(false))
	assert.Equal(t, `<img src="`+uri+`" />`, doc.HTML(true))
}
