// Package constants holds the default locations and tuning values of the editor.
package constants

const (
	// data layout, relative to the editor's working directory
	InDir           = "../data/in"
	OutDir          = "../data/out"
	GlyphDir        = "../data/glyphs"
	EffectsPathFile = "../data/effects.txt"
	ResultsPath     = "./benchmark/results.txt"

	// threshold used by the "E" effect code
	DefaultEdgeThreshold = 30
)
