package picture

// Rotate turns the picture by 'rotations' quarter turns: clockwise when
// positive, counterclockwise when negative. Multiples of four (zero included)
// return a copy.
//
// A clockwise quarter turn sends the source pixel (x, y) to (H-1-y, x) and a
// counterclockwise one to (y, W-1-x), where W and H are the source dimensions.
// The net turn is computed in a single pass.
func (p *Picture) Rotate(rotations int) *Picture {
	turns := rotations % 4
	if turns < 0 {
		// 'k' counterclockwise turns are '4-k' clockwise ones
		turns += 4
	}

	w, h := p.width, p.height
	switch turns {
	case 1:
		return p.remap(h, w, func(x, y int) (int, int) { return y, h - 1 - x })
	case 2:
		return p.remap(w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
	case 3:
		return p.remap(h, w, func(x, y int) (int, int) { return w - 1 - y, x })
	default:
		return p.Copy()
	}
}
