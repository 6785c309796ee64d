package main

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CustomYTicks labels every default tick with two decimals.
type CustomYTicks struct{}

func (CustomYTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = fmt.Sprintf("%.2f", ticks[i].Value)
	}
	return ticks
}

// CustomXTicks shows a tick for every thread count that has a value.
type CustomXTicks struct {
	Threads []int
}

func (t CustomXTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, thread := range t.Threads {
		if float64(thread) >= min && float64(thread) <= max {
			ticks = append(ticks, plot.Tick{Value: float64(thread), Label: fmt.Sprintf("%d", thread)})
		}
	}
	return ticks
}

// dataDirColors keeps the usual data sets on fixed colors; others use the plotutil palette.
var dataDirColors = map[string]color.Color{
	"small":   color.RGBA{R: 0, G: 255, B: 0, A: 255},
	"mixture": color.RGBA{R: 0, G: 0, B: 255, A: 255},
	"big":     color.RGBA{R: 255, G: 0, B: 0, A: 255},
}

// PlotSpeedups draws one line per data directory (speedup by number of threads)
// and saves the graph to 'path'.
func PlotSpeedups(mode string, byDir map[string]map[int]float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("\nEditor speedup graph (%s)", mode)
	p.Title.Padding = vg.Points(20)
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.X.Label.Text = "Number of Threads \n "
	p.Y.Label.Text = "\nSpeedup"
	p.X.Label.Padding = vg.Points(5)
	p.Y.Label.Padding = vg.Points(5)
	p.Add(plotter.NewGrid())
	p.Y.Tick.Marker = CustomYTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	dataDirs := make([]string, 0, len(byDir))
	for dataDir := range byDir {
		dataDirs = append(dataDirs, dataDir)
	}
	sort.Strings(dataDirs)

	threadSet := make(map[int]bool)
	for i, dataDir := range dataDirs {
		byThreads := byDir[dataDir]
		threads := make([]int, 0, len(byThreads))
		for k := range byThreads {
			threads = append(threads, k)
			threadSet[k] = true
		}
		sort.Ints(threads)

		pts := make(plotter.XYs, len(threads))
		for j, k := range threads {
			pts[j].X = float64(k)
			pts[j].Y = byThreads[k]
		}

		c, ok := dataDirColors[dataDir]
		if !ok {
			c = plotutil.Color(i)
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%s/%s: %w", mode, dataDir, err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = c

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("%s/%s: %w", mode, dataDir, err)
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)

		p.Add(line, scatter)
		p.Legend.Add(dataDir, line)
	}

	allThreads := make([]int, 0, len(threadSet))
	for k := range threadSet {
		allThreads = append(allThreads, k)
	}
	sort.Ints(allThreads)
	p.X.Tick.Marker = CustomXTicks{Threads: allThreads}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
