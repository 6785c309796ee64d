package picture

// ShowEdges returns a black and white edge map. A pixel turns black when its
// color distance to the pixel on its left, or to the pixel above it, is larger
// than 'threshold'; otherwise it turns white. Pixels on the first row or
// column only compare with the neighbour they have, so (0, 0) is always white.
func (p *Picture) ShowEdges(threshold int) *Picture {
	limit := float64(threshold)

	out := p.newLike(p.width, p.height)
	p.eachRow(p.height, func(y int) {
		for x := 0; x < p.width; x++ {
			px := p.at(x, y)
			edge := (x > 0 && ChannelDistance(px, p.at(x-1, y)) > limit) ||
				(y > 0 && ChannelDistance(px, p.at(x, y-1)) > limit)
			if edge {
				out.put(x, y, Black)
			} else {
				out.put(x, y, White)
			}
		}
	})
	return out
}
