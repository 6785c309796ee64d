// Package effects maps the effect strings of an effects file ("grayscale",
// "lighten:20", "chromakey:0,0,beach.bmp,60", ...) to picture transformations.
package effects

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"

	"proj1/constants"
	"proj1/picture"
	"proj1/resources"
)

var (
	ErrUnknownEffect = errors.New("effects: unknown effect")
	ErrBadArgs       = errors.New("effects: bad arguments")
	ErrNoResources   = errors.New("effects: no resource loader")
)

// short names kept from the single letter effect codes of older effects files
var aliases = map[string]string{
	"G": "grayscale",
	"S": "sharpen",
	"B": "blur:1",
	"E": "edges:" + strconv.Itoa(constants.DefaultEdgeThreshold),
}

//=============================================================================
// Env: resources shared by the effects of a run
//=============================================================================

// Env gives effects access to external pictures. Glyphs are loaded at most
// once, on first use, and shared by every effect of the run.
type Env struct {
	Images resources.Loader
	glyphs func() (picture.GlyphTable, error)
}

// NewEnv returns an Env loading backgrounds from 'images' and ASCII glyphs
// from 'glyphs'. Either may be nil when the effects do not need it.
func NewEnv(images, glyphs resources.Loader) *Env {
	env := &Env{Images: images}
	if glyphs != nil {
		env.glyphs = sync.OnceValues(func() (picture.GlyphTable, error) {
			return resources.LoadGlyphs(glyphs)
		})
	}
	return env
}

// Glyphs returns the glyph table of the run.
func (env *Env) Glyphs() (picture.GlyphTable, error) {
	if env == nil || env.glyphs == nil {
		return picture.GlyphTable{}, fmt.Errorf("%w: ascii glyphs", ErrNoResources)
	}
	return env.glyphs()
}

func (env *Env) load(name string) (*picture.Picture, error) {
	if env == nil || env.Images == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoResources, name)
	}
	return env.Images.Load(name)
}

//=============================================================================
// Effect struct and parsing
//=============================================================================

type applyFunc func(p *picture.Picture, env *Env) (*picture.Picture, error)

// Effect is a parsed effect string ready to be applied.
type Effect struct {
	Text  string
	apply applyFunc
}

// Apply runs the effect on 'p' and returns the new picture.
func (e Effect) Apply(p *picture.Picture, env *Env) (*picture.Picture, error) {
	out, err := e.apply(p, env)
	if err != nil {
		return nil, fmt.Errorf("effect %q: %w", e.Text, err)
	}
	return out, nil
}

// Parse turns "name" or "name:arg1,arg2,..." into an Effect.
func Parse(raw string) (Effect, error) {
	raw = strings.TrimSpace(raw)
	expanded := raw
	if alias, ok := aliases[raw]; ok {
		expanded = alias
	}

	name, rawArgs, hasArgs := strings.Cut(expanded, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	var args []string
	if hasArgs {
		args = lo.Map(strings.Split(rawArgs, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}

	build, ok := registry[name]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %q", ErrUnknownEffect, raw)
	}
	apply, err := build(args)
	if err != nil {
		return Effect{}, fmt.Errorf("%q: %w", raw, err)
	}
	return Effect{Text: raw, apply: apply}, nil
}

// ParseAll parses a list of effect strings, stopping at the first bad one.
func ParseAll(texts []string) ([]Effect, error) {
	effects := make([]Effect, len(texts))
	for i, raw := range texts {
		e, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		effects[i] = e
	}
	return effects, nil
}

// ApplyAll applies 'effects' in order, each one on the result of the previous.
func ApplyAll(p *picture.Picture, effects []Effect, env *Env) (*picture.Picture, error) {
	for _, e := range effects {
		out, err := e.Apply(p, env)
		if err != nil {
			return nil, err
		}
		p = out
	}
	return p, nil
}

// WithImages returns a copy of the Env loading backgrounds from 'images'.
// The copy shares the glyph table of the original.
func (env *Env) WithImages(images resources.Loader) *Env {
	out := &Env{Images: images}
	if env != nil {
		out.glyphs = env.glyphs
	}
	return out
}
