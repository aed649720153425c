// Package color parses query-string color tokens into RGBA values.
//
// A token names a color in one of three notations, tried in order:
// numeric channel components joined by a locale list separator
// ("240,248,255"), web-style hex digits ("f0f8ff", with or without a
// leading #), or a color name ("aliceblue"). Parsing never fails:
// anything unintelligible yields the zero Color, which callers treat
// as "no color specified" and replace with their own fallback.
package color

import col "image/color"

// Color is a non-premultiplied RGBA color with 8 bits per channel.
//
// The zero value is the "no color specified" sentinel: Parse returns
// it for empty and malformed input. Colors are compared with ==.
type Color struct {
	R, G, B, A uint8
}

// IsDefault reports whether c is the zero Color sentinel.
func (c Color) IsDefault() bool {
	return c == Color{}
}

// RGBA implements image/color.Color. The returned channels are
// alpha-premultiplied in the range [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// NRGBA returns c as the equivalent standard library color value.
func (c Color) NRGBA() col.NRGBA {
	return col.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex renders c as a lowercase hex string: "#rrggbb" when the color
// is fully opaque, "#rrggbbaa" otherwise. Parse accepts both forms,
// so Parse(c.Hex(), sep) recovers c.
func (c Color) Hex() string {
	if c.A == 255 {
		return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
	}
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
}

// String returns the same form as Hex.
func (c Color) String() string {
	return c.Hex()
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}
