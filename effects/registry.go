package effects

import (
	"fmt"
	"strconv"

	"proj1/picture"
)

type builder func(args []string) (applyFunc, error)

var registry = map[string]builder{
	"grayscale": noArgs((*picture.Picture).Grayscale),
	"negate":    noArgs((*picture.Picture).Negate),
	"lighten":   oneInt((*picture.Picture).Lighten),
	"darken":    oneInt((*picture.Picture).Darken),
	"addred":    oneInt((*picture.Picture).AddRed),
	"addgreen":  oneInt((*picture.Picture).AddGreen),
	"addblue":   oneInt((*picture.Picture).AddBlue),
	"rotate":    oneInt((*picture.Picture).Rotate),
	"edges":     oneInt((*picture.Picture).ShowEdges),
	"blur":      oneInt((*picture.Picture).Blur),
	"sharpen":   noArgs((*picture.Picture).Sharpen),
	"flip":      buildFlip,
	"chromakey": buildChromaKey,
	"bucket":    buildBucket,
	"ascii":     buildASCII,
}

// ints parses every argument as an int and checks there are 'least' to 'most' of them.
func ints(args []string, least, most int) ([]int, error) {
	if len(args) < least || len(args) > most {
		return nil, fmt.Errorf("%w: want %d to %d numbers, got %d", ErrBadArgs, least, most, len(args))
	}
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		values[i] = v
	}
	return values, nil
}

func noArgs(fn func(*picture.Picture) *picture.Picture) builder {
	return func(args []string) (applyFunc, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: takes no arguments", ErrBadArgs)
		}
		return func(p *picture.Picture, _ *Env) (*picture.Picture, error) {
			return fn(p), nil
		}, nil
	}
}

func oneInt(fn func(*picture.Picture, int) *picture.Picture) builder {
	return func(args []string) (applyFunc, error) {
		v, err := ints(args, 1, 1)
		if err != nil {
			return nil, err
		}
		return func(p *picture.Picture, _ *Env) (*picture.Picture, error) {
			return fn(p, v[0]), nil
		}, nil
	}
}

// flip:horizontal|vertical|forward|backward
func buildFlip(args []string) (applyFunc, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: flip takes one axis", ErrBadArgs)
	}
	axis, err := picture.ParseAxis(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	return func(p *picture.Picture, _ *Env) (*picture.Picture, error) {
		return p.Flip(axis), nil
	}, nil
}

// chromakey:x,y,background,threshold
func buildChromaKey(args []string) (applyFunc, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("%w: chromakey takes x,y,background,threshold", ErrBadArgs)
	}
	v, err := ints([]string{args[0], args[1], args[3]}, 3, 3)
	if err != nil {
		return nil, err
	}
	background := args[2]
	return func(p *picture.Picture, env *Env) (*picture.Picture, error) {
		bg, err := env.load(background)
		if err != nil {
			return nil, err
		}
		return p.ChromaKey(v[0], v[1], bg, v[2])
	}, nil
}

// bucket:x,y,threshold,r,g,b[,a]
func buildBucket(args []string) (applyFunc, error) {
	v, err := ints(args, 6, 7)
	if err != nil {
		return nil, err
	}
	alpha := 255
	if len(v) == 7 {
		alpha = v[6]
	}
	color := picture.NewPixel(v[3], v[4], v[5], alpha)
	return func(p *picture.Picture, _ *Env) (*picture.Picture, error) {
		return p.PaintBucket(v[0], v[1], v[2], color)
	}, nil
}

func buildASCII(args []string) (applyFunc, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: ascii takes no arguments", ErrBadArgs)
	}
	return func(p *picture.Picture, env *Env) (*picture.Picture, error) {
		glyphs, err := env.Glyphs()
		if err != nil {
			return nil, err
		}
		return p.ConvertToASCII(glyphs)
	}, nil
}
