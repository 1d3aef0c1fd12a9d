package gradient

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/npillmayer/sx/bounded"
	"github.com/npillmayer/sx/color"
)

// Pos is a position within a gradient.
type Pos = bounded.Float[bounded.Unit]

// At is a shortcut for creating a position. It panics if p is not within [0,1].
func At(p float32) Pos {
	return bounded.Must[bounded.Unit](p)
}

var (
	// ErrMissingBoundary is returned if a gradient lacks a point at 0 or at 1.
	ErrMissingBoundary = errors.New("gradient must specify a point at 0 and a point at 1")
	// ErrIncompatibleSpaces is returned when interpolating between colors
	// which normalize to different color spaces.
	ErrIncompatibleSpaces = errors.New("cannot interpolate between incompatible color spaces")
)

// Point is a control point of a gradient.
type Point struct {
	Pos   Pos
	Color color.Color
}

// Gradient is an ordered set of control points. The zero value is not usable;
// create gradients with New or FromPoints.
//
// Gradients are not safe for concurrent modification.
type Gradient struct {
	points []Point // sorted by position, unique
}

// New creates a gradient from low at position 0 to high at position 1.
func New(low, high color.Color) *Gradient {
	return &Gradient{points: []Point{
		{Pos: bounded.Min[bounded.Unit](), Color: low},
		{Pos: bounded.Max[bounded.Unit](), Color: high},
	}}
}

// FromPoints creates a gradient from a set of control points, which may be
// given in any order. If a position occurs more than once, the last point wins.
func FromPoints(points []Point) (*Gradient, error) {
	g := &Gradient{points: make([]Point, 0, len(points))}
	for _, p := range points {
		g.Set(p.Pos, p.Color)
	}
	if len(g.points) < 2 ||
		!g.points[0].Pos.Equal(bounded.Min[bounded.Unit]()) ||
		!g.points[len(g.points)-1].Pos.Equal(bounded.Max[bounded.Unit]()) {
		return nil, ErrMissingBoundary
	}
	return g, nil
}

// findSlot returns the index of the first point ≥ pos, and whether the point
// at this index is located exactly at pos.
func (g *Gradient) findSlot(pos Pos) (bool, int) {
	n := len(g.points)
	inx := sort.Search(n, func(i int) bool {
		return g.points[i].Pos.Compare(pos) >= 0
	})
	return inx < n && g.points[inx].Pos.Equal(pos), inx
}

// Get returns the color at pos. If pos is a control point, its color is
// returned unchanged, otherwise the color is interpolated between the
// neighbouring control points.
func (g *Gradient) Get(pos Pos) (color.Color, error) {
	found, inx := g.findSlot(pos)
	if found {
		return g.points[inx].Color, nil
	}
	return g.interpolate(pos, inx)
}

// interpolate calculates the color at pos, which is located before the point
// at index hi.
func (g *Gradient) interpolate(pos Pos, hi int) (color.Color, error) {
	if hi == 0 || hi >= len(g.points) {
		return nil, ErrMissingBoundary
	}
	low, high := g.points[hi-1], g.points[hi]
	if low.Pos.Equal(high.Pos) || low.Color == high.Color {
		return low.Color, nil
	}
	t := pos.Sub(low.Pos) / high.Pos.Sub(low.Pos)
	tracer().Debugf("interpolating %v at t=%.4f between %v and %v", pos, t, low.Color, high.Color)
	l, err := color.Normalize(low.Color)
	if err != nil {
		return nil, fmt.Errorf("gradient point %v: %w", low.Pos, err)
	}
	h, err := color.Normalize(high.Color)
	if err != nil {
		return nil, fmt.Errorf("gradient point %v: %w", high.Pos, err)
	}
	switch {
	case l.Space == color.SpaceHSLA && h.Space == color.SpaceHSLA:
		var c [4]float32
		for i := range c {
			c[i] = (h.HSLA[i]-l.HSLA[i])*t + l.HSLA[i]
		}
		return color.FromNormalHSLA(c), nil
	case l.Space == color.SpaceRGBA && h.Space == color.SpaceRGBA:
		var c [4]uint8
		for i := range c {
			a, b := float64(l.RGBA[i]), float64(h.RGBA[i])
			c[i] = uint8(math.Round((b-a)*float64(t) + a))
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
	}
	tracer().Errorf("cannot interpolate %s and %s", l.Space, h.Space)
	return nil, fmt.Errorf("%w: %s at %v, %s at %v", ErrIncompatibleSpaces,
		l.Space, low.Pos, h.Space, high.Pos)
}

// Materialize returns the color at pos. If pos is not a control point yet, a new
// control point holding the interpolated color is inserted.
func (g *Gradient) Materialize(pos Pos) (color.Color, error) {
	found, inx := g.findSlot(pos)
	if found {
		return g.points[inx].Color, nil
	}
	c, err := g.interpolate(pos, inx)
	if err != nil {
		return nil, err
	}
	g.insertAt(Point{Pos: pos, Color: c}, inx)
	return c, nil
}

// InflectAt creates a control point at pos, holding the interpolated color.
func (g *Gradient) InflectAt(pos Pos) error {
	_, err := g.Materialize(pos)
	return err
}

// Set sets the color of the control point at pos, creating it if necessary.
func (g *Gradient) Set(pos Pos, c color.Color) {
	found, inx := g.findSlot(pos)
	if found {
		g.points[inx].Color = c
		return
	}
	g.insertAt(Point{Pos: pos, Color: c}, inx)
}

func (g *Gradient) insertAt(p Point, at int) {
	g.points = slices.Insert(g.points, at, p)
}

// Points returns the control points in ascending order of position.
func (g *Gradient) Points() []Point {
	points := make([]Point, len(g.points))
	copy(points, g.points)
	return points
}

// Len returns the number of control points.
func (g *Gradient) Len() int {
	return len(g.points)
}

// Convert re-expresses every control point with fn, e.g. color.AsHSLA. If fn
// fails for any point, g is left unchanged.
func (g *Gradient) Convert(fn func(color.Color) (color.Color, error)) error {
	converted := make([]Point, len(g.points))
	for i, p := range g.points {
		c, err := fn(p.Color)
		if err != nil {
			return fmt.Errorf("gradient point %v: %w", p.Pos, err)
		}
		converted[i] = Point{Pos: p.Pos, Color: c}
	}
	g.points = converted
	return nil
}

// Samples returns n+1 colors, evenly spaced from position 0 to 1.
func (g *Gradient) Samples(n int) ([]color.Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("number of gradient samples must be positive, is %d", n)
	}
	colors := make([]color.Color, 0, n+1)
	for i := 0; i <= n; i++ {
		p := float32(i) / float32(n)
		if i == n {
			p = 1
		}
		c, err := g.Get(At(p))
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
