// Package picture holds a 2-D grid of RGBA pixels and the constructive
// transformations (color, geometric and neighborhood effects) applied on it.
// Every transformation allocates a new Picture and leaves its receiver untouched.
package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrOutOfBounds is returned on any pixel access outside [0, width) x [0, height).
var ErrOutOfBounds = errors.New("picture: pixel out of bounds")

//=============================================================================
// Picture struct and methods
//=============================================================================

// Picture is a rectangular grid of pixels, stored row by row.
// (0, 0) is the top-left corner; x grows to the right and y grows downwards.
// 'workers' is a hint for how many row bands transformations may process
// concurrently; it never changes a result.
type Picture struct {
	pix      []Pixel
	width    int
	height   int
	fileName string
	workers  int
}

// New returns a 'width' x 'height' picture filled with opaque black.
// Negative dimensions are treated as zero.
func New(width, height int) *Picture {
	width, height = max(width, 0), max(height, 0)
	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = Black
	}
	return &Picture{pix: pix, width: width, height: height, workers: 1}
}

// FromImage copies any image.Image into a new picture. The image bounds are
// translated so that their minimum point becomes (0, 0).
func FromImage(img image.Image) *Picture {
	bounds := img.Bounds()
	p := New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p.put(x-bounds.Min.X, y-bounds.Min.Y, pixelFromColor(img.At(x, y)))
		}
	}
	return p
}

// Copy returns a deep copy of the picture; the two evolve independently.
func (p *Picture) Copy() *Picture {
	out := &Picture{
		pix:      make([]Pixel, len(p.pix)),
		width:    p.width,
		height:   p.height,
		fileName: p.fileName,
		workers:  p.workers,
	}
	copy(out.pix, p.pix)
	return out
}

// newLike allocates an empty result picture carrying the receiver's worker hint.
func (p *Picture) newLike(width, height int) *Picture {
	out := New(width, height)
	out.workers = p.workers
	return out
}

// Width returns the number of columns.
func (p *Picture) Width() int { return p.width }

// Height returns the number of rows.
func (p *Picture) Height() int { return p.height }

// FileName returns the file the picture was loaded from, or "" if it was built in memory.
func (p *Picture) FileName() string { return p.fileName }

// SetWorkers sets how many row bands transformations of this picture (and of
// the pictures derived from it) may run concurrently. Values below 1 mean 1.
func (p *Picture) SetWorkers(n int) *Picture {
	p.workers = max(n, 1)
	return p
}

// Workers returns the concurrency hint set with SetWorkers.
func (p *Picture) Workers() int { return p.workers }

func (p *Picture) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Get returns the pixel at ('x', 'y').
func (p *Picture) Get(x, y int) (Pixel, error) {
	if !p.inBounds(x, y) {
		return Pixel{}, p.boundsError(x, y)
	}
	return p.at(x, y), nil
}

// Set overwrites the pixel at ('x', 'y') in place.
func (p *Picture) Set(x, y int, px Pixel) error {
	if !p.inBounds(x, y) {
		return p.boundsError(x, y)
	}
	p.put(x, y, px)
	return nil
}

func (p *Picture) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
}

// at and put skip the bounds check; callers iterate within known bounds.
func (p *Picture) at(x, y int) Pixel {
	return p.pix[y*p.width+x]
}

func (p *Picture) put(x, y int, px Pixel) {
	p.pix[y*p.width+x] = px
}

// Equal reports whether both pictures have the same dimensions and every
// pixel matches on all four channels.
func (p *Picture) Equal(o *Picture) bool {
	if o == nil || p.width != o.width || p.height != o.height {
		return false
	}
	for i := range p.pix {
		if p.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// String describes the picture by file name and dimensions.
func (p *Picture) String() string {
	return fmt.Sprintf("Picture, filename = %s, height = %d, width = %d", p.fileName, p.height, p.width)
}

//=============================================================================
// image.Image implementation, used by the encoders
//=============================================================================

// ColorModel implements image.Image.
func (p *Picture) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (p *Picture) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements image.Image. Points outside the picture are transparent black.
func (p *Picture) At(x, y int) color.Color {
	if !p.inBounds(x, y) {
		return color.NRGBA{}
	}
	px := p.at(x, y)
	return color.NRGBA{px.R, px.G, px.B, px.A}
}

// NRGBA copies the picture into a standard library image.
func (p *Picture) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			px := p.at(x, y)
			img.SetNRGBA(x, y, color.NRGBA{px.R, px.G, px.B, px.A})
		}
	}
	return img
}
