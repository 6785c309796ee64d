package picture

import (
	"errors"
	"fmt"
)

var ErrNoBackground = errors.New("picture: chroma key without a background")

// ChromaKey replaces every pixel whose color distance to the reference pixel
// at ('refX', 'refY') is within 'threshold' with the pixel of 'background' at
// the same position. The distance is truncated to an integer before the
// comparison, so 100.9 is within a threshold of 100.
//
// Both pictures are aligned at (0, 0); the result has the smaller width and
// the smaller height of the two. A nil background is an error.
func (p *Picture) ChromaKey(refX, refY int, background *Picture, threshold int) (*Picture, error) {
	if background == nil {
		return nil, ErrNoBackground
	}
	ref, err := p.Get(refX, refY)
	if err != nil {
		return nil, fmt.Errorf("chroma key reference: %w", err)
	}

	width := min(p.width, background.width)
	height := min(p.height, background.height)

	out := p.newLike(width, height)
	p.eachRow(height, func(y int) {
		for x := 0; x < width; x++ {
			own := p.at(x, y)
			if int(ChannelDistance(ref, own)) <= threshold {
				out.put(x, y, background.at(x, y))
			} else {
				out.put(x, y, own)
			}
		}
	})
	return out, nil
}
