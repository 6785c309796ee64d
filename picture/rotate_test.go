package picture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateClockwise(t *testing.T) {
	out := abcdef(t).Rotate(1)
	requirePixels(t, [][]Pixel{
		{pd, pa},
		{pe, pb},
		{pf, pc},
	}, out)
}

func TestRotateCounterClockwise(t *testing.T) {
	out := abcdef(t).Rotate(-1)
	requirePixels(t, [][]Pixel{
		{pc, pf},
		{pb, pe},
		{pa, pd},
	}, out)
}

func TestRotateHalfTurn(t *testing.T) {
	requirePixels(t, [][]Pixel{
		{pf, pe, pd},
		{pc, pb, pa},
	}, abcdef(t).Rotate(2))
}

// The quarter turn sends the source pixel (x, y) to (H-1-y, x). Addressing
// (H-y, x) instead, as the mapping is sometimes written, steps one column past
// the edge of the rotated picture for y = 0.
func TestRotateBoundaryColumn(t *testing.T) {
	p := abcdef(t)
	h := p.Height()
	out := p.Rotate(1)

	got, err := out.Get(h-1-0, 0)
	require.NoError(t, err)
	assert.Equal(t, pa, got)

	_, err = out.Get(h-0, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// counterclockwise: (x, y) goes to (y, W-1-x); (y, W-x) is past the last row
	w := p.Width()
	ccw := p.Rotate(-1)
	got, err = ccw.Get(0, w-1-0)
	require.NoError(t, err)
	assert.Equal(t, pa, got)
	_, err = ccw.Get(0, w-0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRotateComposition(t *testing.T) {
	p := gradient(5, 3)

	assert.True(t, p.Rotate(0).Equal(p))
	assert.True(t, p.Rotate(4).Equal(p))
	assert.True(t, p.Rotate(-8).Equal(p))
	assert.NotSame(t, p, p.Rotate(4))

	step := p
	for i := 0; i < 4; i++ {
		step = step.Rotate(1)
	}
	assert.True(t, step.Equal(p.Rotate(4)))

	assert.True(t, p.Rotate(1).Rotate(1).Equal(p.Rotate(2)))
	assert.True(t, p.Rotate(-1).Equal(p.Rotate(3)))
	assert.True(t, p.Rotate(-5).Equal(p.Rotate(-1)))
	assert.True(t, p.Rotate(6).Equal(p.Rotate(2)))
	assert.True(t, p.Rotate(1).Rotate(-1).Equal(p))
}

func TestRotateSwapsDimensions(t *testing.T) {
	out := New(7, 2).Rotate(3)
	assert.Equal(t, 2, out.Width())
	assert.Equal(t, 7, out.Height())

	empty := New(0, 3).Rotate(1)
	assert.Equal(t, 3, empty.Width())
	assert.Equal(t, 0, empty.Height())
}
