package picture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayscale(t *testing.T) {
	p := fromRows(t, [][]Pixel{
		{{255, 0, 0, 255}, {0, 255, 0, 255}},
		{{0, 0, 255, 255}, {255, 255, 255, 255}},
	})
	requirePixels(t, [][]Pixel{
		{{85, 85, 85, 255}, {85, 85, 85, 255}},
		{{85, 85, 85, 255}, {255, 255, 255, 255}},
	}, p.Grayscale())
}

func TestGrayscaleRoundsDownAndKeepsAlpha(t *testing.T) {
	p := fromRows(t, [][]Pixel{{{1, 2, 2, 17}, {10, 20, 31, 0}}})
	requirePixels(t, [][]Pixel{{{1, 1, 1, 17}, {20, 20, 20, 0}}}, p.Grayscale())

	g := gradient(7, 5).Grayscale()
	for _, row := range rowsOf(g) {
		for _, px := range row {
			assert.True(t, px.R == px.G && px.G == px.B, "%v is not gray", px)
		}
	}
}

func TestNegate(t *testing.T) {
	p := fromRows(t, [][]Pixel{{{0, 100, 255, 7}}})
	requirePixels(t, [][]Pixel{{{255, 155, 0, 7}}}, p.Negate())

	g := gradient(6, 4)
	assert.True(t, g.Negate().Negate().Equal(g), "negate is an involution")
}

func TestLightenDarken(t *testing.T) {
	p := fromRows(t, [][]Pixel{{{100, 150, 200, 9}}})
	requirePixels(t, [][]Pixel{{{120, 170, 220, 9}}}, p.Lighten(20))
	requirePixels(t, [][]Pixel{{{80, 130, 180, 9}}}, p.Darken(20))
	assert.True(t, p.Lighten(20).Darken(20).Equal(p), "no clamping, round trip restores the picture")

	assert.True(t, p.Darken(-30).Equal(p.Lighten(30)), "darken by a negative amount lightens")
}

func TestLightenDarkenSaturationIsLossy(t *testing.T) {
	p := fromRows(t, [][]Pixel{{{250, 250, 250, 255}}})
	lighter := p.Lighten(50)
	requirePixels(t, [][]Pixel{{{255, 255, 255, 255}}}, lighter)
	requirePixels(t, [][]Pixel{{{205, 205, 205, 255}}}, lighter.Darken(50))

	requirePixels(t, [][]Pixel{{{0, 0, 0, 255}}}, p.Darken(300))
}

func TestAddChannel(t *testing.T) {
	p := fromRows(t, [][]Pixel{{{250, 10, 10, 255}}})
	requirePixels(t, [][]Pixel{{{255, 10, 10, 255}}}, p.AddRed(10))
	requirePixels(t, [][]Pixel{{{250, 20, 10, 255}}}, p.AddGreen(10))
	requirePixels(t, [][]Pixel{{{250, 10, 0, 255}}}, p.AddBlue(-50))
}

func TestShiftSaturatesOnHugeAmounts(t *testing.T) {
	p := fromRows(t, [][]Pixel{{{1, 100, 200, 255}}})
	requirePixels(t, [][]Pixel{{{255, 255, 255, 255}}}, p.Lighten(math.MaxInt))
	requirePixels(t, [][]Pixel{{{0, 0, 0, 255}}}, p.Lighten(math.MinInt))
	requirePixels(t, [][]Pixel{{{255, 255, 255, 255}}}, p.Darken(math.MinInt))
	requirePixels(t, [][]Pixel{{{0, 0, 0, 255}}}, p.Darken(math.MaxInt))
	requirePixels(t, [][]Pixel{{{255, 100, 200, 255}}}, p.AddRed(math.MaxInt))
	requirePixels(t, [][]Pixel{{{1, 0, 200, 255}}}, p.AddGreen(math.MinInt))
	requirePixels(t, [][]Pixel{{{1, 100, 255, 255}}}, p.AddBlue(math.MaxInt))
}

func TestTransformsLeaveInputUnchanged(t *testing.T) {
	glyphs := testGlyphs()
	for _, workers := range []int{1, 4} {
		p := gradient(23, 41).SetWorkers(workers)
		orig := p.Copy()
		transforms := map[string]func() (*Picture, error){
			"grayscale": func() (*Picture, error) { return p.Grayscale(), nil },
			"negate":    func() (*Picture, error) { return p.Negate(), nil },
			"lighten":   func() (*Picture, error) { return p.Lighten(40), nil },
			"darken":    func() (*Picture, error) { return p.Darken(40), nil },
			"addred":    func() (*Picture, error) { return p.AddRed(40), nil },
			"addgreen":  func() (*Picture, error) { return p.AddGreen(40), nil },
			"addblue":   func() (*Picture, error) { return p.AddBlue(40), nil },
			"rotate":    func() (*Picture, error) { return p.Rotate(1), nil },
			"rotate0":   func() (*Picture, error) { return p.Rotate(0), nil },
			"flip":      func() (*Picture, error) { return p.Flip(ForwardDiagonal), nil },
			"edges":     func() (*Picture, error) { return p.ShowEdges(5), nil },
			"blur":      func() (*Picture, error) { return p.Blur(2), nil },
			"blur0":     func() (*Picture, error) { return p.Blur(0), nil },
			"sharpen":   func() (*Picture, error) { return p.Sharpen(), nil },
			"chromakey": func() (*Picture, error) { return p.ChromaKey(0, 0, solid(30, 30, Black), 60) },
			"bucket":    func() (*Picture, error) { return p.PaintBucket(3, 3, 100, White) },
			"ascii":     func() (*Picture, error) { return p.ConvertToASCII(glyphs) },
		}
		for name, fn := range transforms {
			out, err := fn()
			require.NoError(t, err, name)
			require.NotSame(t, p, out, name)
			assert.True(t, p.Equal(orig), "%s with %d workers modified its input", name, workers)
		}
	}
}
