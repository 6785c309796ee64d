package picture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandsByRow(t *testing.T) {
	assert.Equal(t, []rowBand{{0, 4}, {4, 8}, {8, 10}}, bandsByRow(10, 3))
	assert.Equal(t, []rowBand{{0, 1}, {1, 2}, {2, 2}, {2, 2}}, bandsByRow(2, 4))
	assert.Equal(t, []rowBand{{0, 5}}, bandsByRow(5, 0))
}

// Splitting rows across goroutines must not change any result.
func TestWorkersDoNotChangeResults(t *testing.T) {
	seq := gradient(23, 41)
	par := gradient(23, 41).SetWorkers(4)
	require.Equal(t, 4, par.Workers())

	bg := solid(30, 30, sky)
	transforms := map[string]func(p *Picture) *Picture{
		"grayscale": (*Picture).Grayscale,
		"negate":    (*Picture).Negate,
		"lighten":   func(p *Picture) *Picture { return p.Lighten(33) },
		"rotate1":   func(p *Picture) *Picture { return p.Rotate(1) },
		"rotate2":   func(p *Picture) *Picture { return p.Rotate(2) },
		"flip":      func(p *Picture) *Picture { return p.Flip(ForwardDiagonal) },
		"edges":     func(p *Picture) *Picture { return p.ShowEdges(12) },
		"blur":      func(p *Picture) *Picture { return p.Blur(2) },
		"chromakey": func(p *Picture) *Picture {
			out, err := p.ChromaKey(3, 3, bg, 40)
			require.NoError(t, err)
			return out
		},
		"ascii": func(p *Picture) *Picture {
			out, err := p.ConvertToASCII(testGlyphs())
			require.NoError(t, err)
			return out
		},
	}
	for name, fn := range transforms {
		want, got := fn(seq), fn(par)
		assert.True(t, want.Equal(got), name)
		assert.Equal(t, 4, got.Workers(), "%s keeps the worker hint", name)
	}
}
