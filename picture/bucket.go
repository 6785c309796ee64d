package picture

import (
	"fmt"
	"image"
)

var neighbours4 = [...]image.Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// PaintBucket flood-fills from ('x', 'y'): every pixel reachable through up,
// down, left and right steps whose color distance to the seed's original color
// is within 'threshold' (truncated to an integer, as in ChromaKey) is painted
// with 'color'. Each pixel is examined at most once.
func (p *Picture) PaintBucket(x, y, threshold int, color Pixel) (*Picture, error) {
	seed, err := p.Get(x, y)
	if err != nil {
		return nil, fmt.Errorf("paint bucket seed: %w", err)
	}

	out := p.Copy()
	matches := func(pt image.Point) bool {
		return int(ChannelDistance(seed, p.at(pt.X, pt.Y))) <= threshold
	}

	start := image.Pt(x, y)
	if !matches(start) {
		return out, nil
	}

	visited := make([]bool, len(p.pix))
	visited[y*p.width+x] = true
	stack := []image.Point{start}

	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.put(pt.X, pt.Y, color)

		for _, d := range neighbours4 {
			next := pt.Add(d)
			if !p.inBounds(next.X, next.Y) {
				continue
			}
			i := next.Y*p.width + next.X
			if visited[i] {
				continue
			}
			// the match test only depends on the source picture, so a
			// rejected pixel never needs a second look
			visited[i] = true
			if matches(next) {
				stack = append(stack, next)
			}
		}
	}
	return out, nil
}
