package picture

// sharpenKernel is the 3x3 sharpening kernel, row by row.
var sharpenKernel = [9]int{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// Sharpen convolves the color channels with a 3x3 sharpening kernel.
// Neighbours outside the picture count as zero and every channel saturates.
// Alpha is carried through unchanged.
func (p *Picture) Sharpen() *Picture {
	out := p.newLike(p.width, p.height)
	p.eachRow(p.height, func(y int) {
		for x := 0; x < p.width; x++ {
			var r, g, b int
			for i, k := range sharpenKernel {
				xx, yy := x+i%3-1, y+i/3-1
				if k == 0 || !p.inBounds(xx, yy) {
					continue
				}
				px := p.at(xx, yy)
				r += k * int(px.R)
				g += k * int(px.G)
				b += k * int(px.B)
			}
			out.put(x, y, NewPixel(r, g, b, int(p.at(x, y).A)))
		}
	})
	return out
}
