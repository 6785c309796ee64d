package picture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// fromRows builds a picture from rows of pixels; all rows must have the same length.
func fromRows(t *testing.T, rows [][]Pixel) *Picture {
	t.Helper()
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	p := New(width, height)
	for y, row := range rows {
		require.Len(t, row, width, "row %d", y)
		for x, px := range row {
			require.NoError(t, p.Set(x, y, px))
		}
	}
	return p
}

// rowsOf is the inverse of fromRows.
func rowsOf(p *Picture) [][]Pixel {
	rows := make([][]Pixel, p.Height())
	for y := range rows {
		rows[y] = make([]Pixel, p.Width())
		for x := range rows[y] {
			rows[y][x] = p.at(x, y)
		}
	}
	return rows
}

// gradient returns a picture whose pixels are all distinct.
func gradient(width, height int) *Picture {
	p := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p.put(x, y, Pixel{uint8(x * 10), uint8(y * 10), uint8(x + y), uint8(200 + x)})
		}
	}
	return p
}

// opaque drops the alpha channel; 24-bit bitmaps cannot carry it.
func opaque(p *Picture) *Picture {
	return p.mapPixels(func(px Pixel) Pixel { return px.WithAlpha(255) })
}

func requirePixels(t *testing.T, want [][]Pixel, got *Picture) {
	t.Helper()
	if diff := cmp.Diff(want, rowsOf(got)); diff != "" {
		t.Fatalf("pixels mismatch (-want +got):\n%s", diff)
	}
}

// six distinct pixels used as a 3x2 fixture:
//
//	a b c
//	d e f
var (
	pa = Pixel{1, 0, 0, 255}
	pb = Pixel{2, 0, 0, 255}
	pc = Pixel{3, 0, 0, 255}
	pd = Pixel{4, 0, 0, 255}
	pe = Pixel{5, 0, 0, 255}
	pf = Pixel{6, 0, 0, 255}
)

func abcdef(t *testing.T) *Picture {
	return fromRows(t, [][]Pixel{{pa, pb, pc}, {pd, pe, pf}})
}
