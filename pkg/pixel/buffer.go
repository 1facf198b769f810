// Package pixel provides the raw RGB frame buffer shared by producers and encoders.
package pixel

import (
	"bytes"
	"fmt"
	"sort"
)

// Color is a single 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the lowercase 6-digit hex rendering of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Less reports whether c sorts before o in lexicographic (R,G,B) order.
func (c Color) Less(o Color) bool {
	if c.R != o.R {
		return c.R < o.R
	}
	if c.G != o.G {
		return c.G < o.G
	}
	return c.B < o.B
}

// Buffer is a fixed-dimension grid of RGB byte triples in row-major order.
// It is treated as immutable once handed to the encoding pipeline.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*3
}

// NewBuffer allocates a zeroed (black) buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// PixelCount returns the number of pixels in the buffer.
func (b *Buffer) PixelCount() int {
	return b.Width * b.Height
}

// At returns the color of the pixel at linear (scan order) index i.
func (b *Buffer) At(i int) Color {
	off := i * 3
	return Color{R: b.Pix[off], G: b.Pix[off+1], B: b.Pix[off+2]}
}

// Set assigns the color of the pixel at linear index i.
func (b *Buffer) Set(i int, c Color) {
	off := i * 3
	b.Pix[off] = c.R
	b.Pix[off+1] = c.G
	b.Pix[off+2] = c.B
}

// SetXY assigns the color of the pixel at (x, y).
func (b *Buffer) SetXY(x, y int, c Color) {
	b.Set(y*b.Width+x, c)
}

// Equal reports whether two buffers have identical dimensions and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if o == nil {
		return false
	}
	return b.Width == o.Width && b.Height == o.Height && bytes.Equal(b.Pix, o.Pix)
}

// UniqueColors returns the distinct colors of the buffer, sorted in
// lexicographic (R,G,B) order. The ordering is deterministic so that two
// buffers with the same color set always yield the same sequence, which is
// what makes palette lookups stable across frames.
func (b *Buffer) UniqueColors() []Color {
	seen := make(map[Color]struct{})
	for i, n := 0, b.PixelCount(); i < n; i++ {
		seen[b.At(i)] = struct{}{}
	}
	colors := make([]Color, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Less(colors[j]) })
	return colors
}
