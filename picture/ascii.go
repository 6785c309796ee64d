package picture

import (
	"errors"
	"fmt"
)

// ErrMissingGlyph is returned by ConvertToASCII when its glyph table has a hole.
var ErrMissingGlyph = errors.New("picture: missing ascii glyph")

const (
	// GlyphWidth and GlyphHeight are the size of a glyph bitmap and of the
	// blocks an image is cut into for ASCII rendering.
	GlyphWidth  = 10
	GlyphHeight = 20

	// grayStep is the width of the gray range mapped to each glyph.
	grayStep = 19
)

// Glyph indexes the characters used for ASCII rendering, darkest first.
type Glyph int

const (
	GlyphHash Glyph = iota
	GlyphAt
	GlyphAmpersand
	GlyphDollar
	GlyphPercent
	GlyphBar
	GlyphExclamation
	GlyphSemicolon
	GlyphColon
	GlyphApostrophe
	GlyphGrave
	GlyphDot
	GlyphSpace

	NumGlyphs
)

var glyphNames = [NumGlyphs]string{
	"hash", "at", "ampersand", "dollar", "percent", "bar", "exclamation",
	"semicolon", "colon", "apostrophe", "grave", "dot", "space",
}

// Name returns the resource name of the glyph bitmap, without extension.
func (g Glyph) Name() string {
	if g < 0 || g >= NumGlyphs {
		return fmt.Sprintf("glyph(%d)", int(g))
	}
	return glyphNames[g]
}

// GlyphFor picks the glyph for an average gray value: 0-18 is '#', 19-37 is
// '@', and so on in steps of 19 up to 228-255 which is a space.
func GlyphFor(gray int) Glyph {
	g := Glyph(gray / grayStep)
	switch {
	case g < GlyphHash:
		return GlyphHash
	case g > GlyphSpace:
		return GlyphSpace
	}
	return g
}

// GlyphTable holds one bitmap per glyph. It is loaded once by the caller and
// handed to every ConvertToASCII call of a session.
type GlyphTable [NumGlyphs]*Picture

// Validate returns ErrMissingGlyph if any entry is nil.
func (t *GlyphTable) Validate() error {
	for g, pic := range t {
		if pic == nil {
			return fmt.Errorf("%w: %s", ErrMissingGlyph, Glyph(g).Name())
		}
	}
	return nil
}

// ConvertToASCII renders the picture as ASCII art. The grayscale version of
// the picture is cut into GlyphWidth x GlyphHeight blocks starting at the top
// left (blocks on the right and bottom edges are clipped), and each block is
// replaced with the glyph picked by GlyphFor from its average gray value.
// The result has the same dimensions as the receiver; glyphs are clipped at
// the picture edges, and block pixels a smaller glyph does not cover are white.
func (p *Picture) ConvertToASCII(glyphs GlyphTable) (*Picture, error) {
	if err := glyphs.Validate(); err != nil {
		return nil, err
	}

	gray := p.Grayscale()
	out := p.newLike(p.width, p.height)

	blockRows := (p.height + GlyphHeight - 1) / GlyphHeight
	p.eachRow(blockRows, func(by int) {
		yStart := by * GlyphHeight
		yEnd := min(yStart+GlyphHeight, p.height)

		for xStart := 0; xStart < p.width; xStart += GlyphWidth {
			xEnd := min(xStart+GlyphWidth, p.width)

			sum, n := 0, 0
			for y := yStart; y < yEnd; y++ {
				for x := xStart; x < xEnd; x++ {
					sum += int(gray.at(x, y).R)
					n++
				}
			}

			glyph := glyphs[GlyphFor(sum/n)]
			for y := yStart; y < yEnd; y++ {
				for x := xStart; x < xEnd; x++ {
					gx, gy := x-xStart, y-yStart
					if glyph.inBounds(gx, gy) {
						out.put(x, y, glyph.at(gx, gy))
					} else {
						out.put(x, y, White)
					}
				}
			}
		}
	})
	return out, nil
}
