package picture

// Blur sets every pixel to the mean of the square of side 2*radius+1 centered
// on it. Red, green, blue and alpha are averaged separately (rounded down).
// Positions of the square that fall outside the picture are left out of the
// average instead of counting as zero. A radius below 1 returns a copy.
func (p *Picture) Blur(radius int) *Picture {
	if radius < 1 {
		return p.Copy()
	}
	// a wider window already covers the whole picture
	radius = min(radius, max(p.width, p.height))

	out := p.newLike(p.width, p.height)
	p.eachRow(p.height, func(y int) {
		yStart, yEnd := max(y-radius, 0), min(y+radius, p.height-1)
		for x := 0; x < p.width; x++ {
			xStart, xEnd := max(x-radius, 0), min(x+radius, p.width-1)

			var r, g, b, a, n int
			for yy := yStart; yy <= yEnd; yy++ {
				for xx := xStart; xx <= xEnd; xx++ {
					px := p.at(xx, yy)
					r += int(px.R)
					g += int(px.G)
					b += int(px.B)
					a += int(px.A)
					n++
				}
			}
			out.put(x, y, Pixel{uint8(r / n), uint8(g / n), uint8(b / n), uint8(a / n)})
		}
	})
	return out
}
