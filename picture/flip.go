package picture

import (
	"fmt"
	"strings"
)

// Axis is the line a picture is mirrored about by Flip.
type Axis int

const (
	// Horizontal is the horizontal line through the center: top and bottom swap.
	Horizontal Axis = iota + 1
	// Vertical is the vertical line through the center: left and right swap.
	Vertical
	// ForwardDiagonal passes through the north-east and south-west corners.
	ForwardDiagonal
	// BackwardDiagonal passes through the north-west and south-east corners.
	BackwardDiagonal
)

var axisNames = map[Axis]string{
	Horizontal:       "horizontal",
	Vertical:         "vertical",
	ForwardDiagonal:  "forward",
	BackwardDiagonal: "backward",
}

func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis maps "horizontal", "vertical", "forward" and "backward" to an Axis.
func ParseAxis(s string) (Axis, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for axis, name := range axisNames {
		if s == name {
			return axis, nil
		}
	}
	return 0, fmt.Errorf("picture: unknown flip axis %q", s)
}

// Flip mirrors the picture about 'axis'. Diagonal flips transpose the
// dimensions. An unknown axis returns an unmodified copy.
func (p *Picture) Flip(axis Axis) *Picture {
	w, h := p.width, p.height
	switch axis {
	case Horizontal:
		return p.remap(w, h, func(x, y int) (int, int) { return x, h - 1 - y })
	case Vertical:
		return p.remap(w, h, func(x, y int) (int, int) { return w - 1 - x, y })
	case ForwardDiagonal:
		return p.remap(h, w, func(x, y int) (int, int) { return w - 1 - y, h - 1 - x })
	case BackwardDiagonal:
		return p.remap(h, w, func(x, y int) (int, int) { return y, x })
	default:
		return p.Copy()
	}
}
