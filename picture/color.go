package picture

import "github.com/samber/lo"

//=============================================================================
// Color transforms: each output pixel depends only on the input pixel at the
// same position. Alpha is always carried through unchanged.
//=============================================================================

// mapPixels applies 'fn' to every pixel and returns the result as a new picture.
func (p *Picture) mapPixels(fn func(Pixel) Pixel) *Picture {
	out := p.newLike(p.width, p.height)
	p.eachRow(p.height, func(y int) {
		for x := 0; x < p.width; x++ {
			out.put(x, y, fn(p.at(x, y)))
		}
	})
	return out
}

// shift adds the given amounts to the color channels of 'px', saturating each.
func shift(px Pixel, dr, dg, db int) Pixel {
	dr, dg, db = bound(dr), bound(dg), bound(db)
	return NewPixel(int(px.R)+dr, int(px.G)+dg, int(px.B)+db, int(px.A))
}

// bound limits a channel offset to [-255, 255]. Anything further saturates
// every channel anyway, and the sum can no longer overflow.
func bound(amount int) int {
	return lo.Clamp(amount, -255, 255)
}

// Grayscale sets the red, green and blue channels of every pixel to their
// mean (rounded down).
func (p *Picture) Grayscale() *Picture {
	return p.mapPixels(func(px Pixel) Pixel {
		avg := uint8(px.Average())
		return Pixel{avg, avg, avg, px.A}
	})
}

// Negate returns the photonegative: every color channel becomes 255 minus its value.
func (p *Picture) Negate() *Picture {
	return p.mapPixels(func(px Pixel) Pixel {
		return Pixel{255 - px.R, 255 - px.G, 255 - px.B, px.A}
	})
}

// Lighten adds 'amount' to every color channel. Negative amounts darken.
func (p *Picture) Lighten(amount int) *Picture {
	return p.mapPixels(func(px Pixel) Pixel {
		return shift(px, amount, amount, amount)
	})
}

// Darken subtracts 'amount' from every color channel. Negative amounts lighten.
func (p *Picture) Darken(amount int) *Picture {
	return p.Lighten(-bound(amount))
}

// AddRed adds 'amount' to the red channel only.
func (p *Picture) AddRed(amount int) *Picture {
	return p.mapPixels(func(px Pixel) Pixel {
		return shift(px, amount, 0, 0)
	})
}

// AddGreen adds 'amount' to the green channel only.
func (p *Picture) AddGreen(amount int) *Picture {
	return p.mapPixels(func(px Pixel) Pixel {
		return shift(px, 0, amount, 0)
	})
}

// AddBlue adds 'amount' to the blue channel only.
func (p *Picture) AddBlue(amount int) *Picture {
	return p.mapPixels(func(px Pixel) Pixel {
		return shift(px, 0, 0, amount)
	})
}
