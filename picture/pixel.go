package picture

import (
	"image/color"
	"math"

	"github.com/samber/lo"
)

// Pixel is a single RGBA sample with 8 bits per channel (non-premultiplied).
type Pixel struct {
	R, G, B, A uint8
}

var (
	Black = Pixel{0, 0, 0, 255}
	White = Pixel{255, 255, 255, 255}
)

// NewPixel builds a pixel from int channel values, saturating each into [0, 255].
func NewPixel(r, g, b, a int) Pixel {
	return Pixel{clamp(r), clamp(g), clamp(b), clamp(a)}
}

// clamp saturates 'c' into the [0, 255] range of a channel.
func clamp(c int) uint8 {
	return uint8(lo.Clamp(c, 0, 255))
}

// WithRed returns a copy of the pixel with its red channel set to 'r' (saturated).
func (p Pixel) WithRed(r int) Pixel {
	p.R = clamp(r)
	return p
}

// WithGreen returns a copy of the pixel with its green channel set to 'g' (saturated).
func (p Pixel) WithGreen(g int) Pixel {
	p.G = clamp(g)
	return p
}

// WithBlue returns a copy of the pixel with its blue channel set to 'b' (saturated).
func (p Pixel) WithBlue(b int) Pixel {
	p.B = clamp(b)
	return p
}

// WithAlpha returns a copy of the pixel with its alpha channel set to 'a' (saturated).
func (p Pixel) WithAlpha(a int) Pixel {
	p.A = clamp(a)
	return p
}

// Average returns the mean of the red, green and blue channels, rounded down.
func (p Pixel) Average() int {
	return (int(p.R) + int(p.G) + int(p.B)) / 3
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{p.R, p.G, p.B, p.A}.RGBA()
}

// ChannelDistance is the euclidean distance between the (R, G, B) triples of
// 'a' and 'b'. Alpha is ignored.
func ChannelDistance(a, b Pixel) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// pixelFromColor converts any color.Color into a non-premultiplied Pixel.
func pixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B, n.A}
}
