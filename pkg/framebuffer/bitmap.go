// Package framebuffer holds the packed 32-bit pixel buffer shared between
// the renderer and the presentation loop.
package framebuffer

import (
	"image/color"
)

// Bitmap is a width×height buffer of packed 0xAARRGGBB pixels. Rows are
// addressed with a bottom-left origin: y=0 is the bottom row in sampling
// order, stored last so index 0 presents at the top-left of a window.
type Bitmap struct {
	width  int
	height int
	pix    []uint32
}

// NewBitmap creates a zeroed bitmap. Width and height must be positive.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the bitmap width in pixels
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels
func (b *Bitmap) Height() int {
	return b.height
}

// Set writes the low 24 bits of rgb into the pixel at (x, y), preserving
// the destination's high (alpha) byte. Out-of-bounds coordinates have no
// effect and report false.
func (b *Bitmap) Set(x, y int, rgb uint32) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	i := (b.height-y-1)*b.width + x
	b.pix[i] = (b.pix[i] & 0xff000000) | (rgb & 0x00ffffff)
	return true
}

// At returns the packed pixel at (x, y), or false if out of bounds
func (b *Bitmap) At(x, y int) (uint32, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return b.pix[(b.height-y-1)*b.width+x], true
}

// Fill overwrites every pixel with the packed value, alpha byte included
func (b *Bitmap) Fill(argb uint32) {
	for i := range b.pix {
		b.pix[i] = argb
	}
}

// Pix exposes the raw buffer in presentation order. The presentation loop
// owns writes made through this slice after a render completes.
func (b *Bitmap) Pix() []uint32 {
	return b.pix
}

// RGBA converts the buffer to color values in presentation order, forcing
// alpha opaque for display
func (b *Bitmap) RGBA() []color.RGBA {
	out := make([]color.RGBA, len(b.pix))
	for i, p := range b.pix {
		out[i] = color.RGBA{
			R: uint8(p >> 16),
			G: uint8(p >> 8),
			B: uint8(p),
			A: 0xff,
		}
	}
	return out
}
