package picture

import (
	"golang.org/x/sync/errgroup"
)

// rowBand holds the indexes [YStart, YEnd) of a band of rows.
type rowBand struct {
	YStart int
	YEnd   int
}

// bandsByRow divides 'nRows' rows into at most 'numBands' contiguous bands.
// The last band picks up the remaining rows; trailing bands may be empty.
func bandsByRow(nRows, numBands int) []rowBand {
	if numBands < 1 {
		numBands = 1
	}
	rowsPerBand := (nRows + numBands - 1) / numBands

	bands := make([]rowBand, numBands)
	for i := range bands {
		bands[i].YStart = min(i*rowsPerBand, nRows)
		bands[i].YEnd = min(bands[i].YStart+rowsPerBand, nRows)
	}
	return bands
}

// eachRow calls 'fn' once for every row index in [0, nRows). When the picture
// carries a worker hint above 1 the rows are split into bands processed by
// separate goroutines. 'fn' must only write output rows it was handed.
func (p *Picture) eachRow(nRows int, fn func(y int)) {
	if p.workers <= 1 || nRows < 2 {
		for y := 0; y < nRows; y++ {
			fn(y)
		}
		return
	}

	var g errgroup.Group
	for _, band := range bandsByRow(nRows, p.workers) {
		if band.YStart == band.YEnd {
			continue
		}
		g.Go(func() error {
			for y := band.YStart; y < band.YEnd; y++ {
				fn(y)
			}
			return nil
		})
	}
	// the row functions cannot fail
	_ = g.Wait()
}

// remap builds a 'width' x 'height' picture whose pixel (x, y) is the
// receiver's pixel at src(x, y). Used by the geometric transformations.
func (p *Picture) remap(width, height int, src func(x, y int) (int, int)) *Picture {
	out := p.newLike(width, height)
	p.eachRow(height, func(y int) {
		for x := 0; x < width; x++ {
			sx, sy := src(x, y)
			out.put(x, y, p.at(sx, sy))
		}
	})
	return out
}
