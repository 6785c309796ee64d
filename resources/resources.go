// Package resources resolves logical picture names (seed images, backgrounds,
// ASCII glyph bitmaps) into decoded pictures.
package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"proj1/picture"
)

// ErrNotFound is returned when no resource exists under the requested name.
var ErrNotFound = errors.New("resources: not found")

// Loader returns the picture stored under a logical name.
type Loader interface {
	Load(name string) (*picture.Picture, error)
}

// Dir loads pictures from files below a directory.
type Dir string

// Load decodes the file 'name' relative to the directory. Missing files fail
// with ErrNotFound and undecodable ones with picture.ErrDecode.
func (d Dir) Load(name string) (*picture.Picture, error) {
	path := filepath.Join(string(d), name)
	p, err := picture.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, err
	}
	slog.Debug("loaded picture", "path", path, "width", p.Width(), "height", p.Height())
	return p, nil
}

// GlyphExt is the file extension of the ASCII glyph bitmaps.
const GlyphExt = ".bmp"

// LoadGlyphs loads the bitmap of every ASCII glyph ("hash.bmp", "at.bmp", ...).
// The table is meant to be loaded once and reused for a whole session.
func LoadGlyphs(l Loader) (picture.GlyphTable, error) {
	var table picture.GlyphTable
	for g := picture.GlyphHash; g < picture.NumGlyphs; g++ {
		p, err := l.Load(g.Name() + GlyphExt)
		if err != nil {
			return picture.GlyphTable{}, fmt.Errorf("glyph %s: %w", g.Name(), err)
		}
		table[g] = p
	}
	return table, nil
}
