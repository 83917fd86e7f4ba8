// Package imaging turns avatar documents into raster images.
//
// Rasterize paints an svg.Document onto an NRGBA canvas: outline shapes
// and identicon cells are filled with an anti-aliasing vector rasterizer
// and initials are drawn with the Go fonts. Export encodes the canvas as
// PNG or JPEG and reports a BlurHash placeholder and the dominant colors
// alongside the base64 image data.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// A document is scaled uniformly to the requested output size, so a
// 100×100 document exported at 256 pixels keeps its proportions.
//
// # Fonts
//
// Text is drawn with Go Regular, or Go Bold when the font weight is "bold"
// or a numeric weight of 600 or more. The document's font family is a CSS
// hint for SVG consumers and does not select a raster font. Code points
// the Go fonts do not cover render as the fallback glyph.
//
// # Thread Safety
//
// RenderCache is safe for concurrent use. Rasterize and Export are
// stateless and can be called concurrently.
//
// # Color Representation
//
// Colors are reported as colorspace.ColorInfo values:
//   - Hex: "#rrggbb" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-1), Lightness (0-1)
package imaging
