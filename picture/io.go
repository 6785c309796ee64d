package picture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var (
	// ErrDecode is returned when a resource holds no decodable bitmap.
	ErrDecode = errors.New("picture: cannot decode image")
	// ErrFormat is returned when saving to an extension with no encoder.
	ErrFormat = errors.New("picture: unsupported image format")
)

// Decode reads a BMP or PNG bitmap from 'r'.
func Decode(r io.Reader) (*Picture, error) {
	// obs: the bmp and png packages register themselves with image.Decode
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromImage(img), nil
}

// Load returns a picture decoded from the file at 'filePath'.
func Load(filePath string) (*Picture, error) {
	inReader, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer inReader.Close()

	p, err := Decode(inReader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	p.fileName = filePath
	return p, nil
}

// Encode writes the picture to 'w' in the given format ("bmp" or "png").
func (p *Picture) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "bmp":
		return bmp.Encode(w, p.NRGBA())
	case "png":
		return png.Encode(w, p.NRGBA())
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Save writes the picture to 'filePath'; the format follows the file extension.
func (p *Picture) Save(filePath string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if format != "bmp" && format != "png" {
		return fmt.Errorf("%w: %s", ErrFormat, filePath)
	}

	outWriter, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err := p.Encode(outWriter, format); err != nil {
		outWriter.Close()
		return err
	}
	return outWriter.Close()
}
