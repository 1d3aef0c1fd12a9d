package props

import (
	"fmt"
	"slices"
	"strings"
)

// Breakpoint is a named minimum-width threshold, in pixels.
type Breakpoint struct {
	Name  string
	Width int
}

// MediaQuery returns the media query prelude for a breakpoint.
func (bp Breakpoint) MediaQuery() string {
	return fmt.Sprintf("@media (min-width: %dpx)", bp.Width)
}

func (bp Breakpoint) String() string {
	return fmt.Sprintf("%s=%dpx", bp.Name, bp.Width)
}

// Breakpoints is a set of breakpoints, ordered by ascending width. Names are
// unique and stored in kebab case, the form style keys take, so "tabletUp"
// and "tablet-up" name the same breakpoint. The zero value is an empty set.
type Breakpoints struct {
	points []Breakpoint
}

// NewBreakpoints creates a set of breakpoints from pairs of (name, width).
func NewBreakpoints(points ...Breakpoint) *Breakpoints {
	bps := &Breakpoints{}
	for _, bp := range points {
		bps.Set(bp.Name, bp.Width)
	}
	return bps
}

// DefaultBreakpoints returns xs=0, sm=600, md=768, lg=992 and xl=1200.
func DefaultBreakpoints() *Breakpoints {
	return NewBreakpoints(
		Breakpoint{"xs", 0},
		Breakpoint{"sm", 600},
		Breakpoint{"md", 768},
		Breakpoint{"lg", 992},
		Breakpoint{"xl", 1200},
	)
}

// Set sets the width of a breakpoint, adding it if necessary.
func (bps *Breakpoints) Set(name string, width int) {
	name = Kebab(name)
	if i := bps.index(name); i >= 0 {
		bps.points = slices.Delete(bps.points, i, i+1)
	}
	at, _ := slices.BinarySearchFunc(bps.points, width, func(bp Breakpoint, w int) int {
		if bp.Width <= w {
			return -1 // insert after points of equal width
		}
		return 1
	})
	bps.points = slices.Insert(bps.points, at, Breakpoint{Name: name, Width: width})
}

// Get returns the breakpoint with the given name.
func (bps *Breakpoints) Get(name string) (Breakpoint, bool) {
	if bps == nil {
		return Breakpoint{}, false
	}
	if i := bps.index(Kebab(name)); i >= 0 {
		return bps.points[i], true
	}
	return Breakpoint{}, false
}

func (bps *Breakpoints) index(name string) int {
	return slices.IndexFunc(bps.points, func(bp Breakpoint) bool {
		return bp.Name == name
	})
}

// Points returns all breakpoints, ordered by ascending width.
func (bps *Breakpoints) Points() []Breakpoint {
	if bps == nil {
		return nil
	}
	return slices.Clone(bps.points)
}

// Len returns the number of breakpoints.
func (bps *Breakpoints) Len() int {
	if bps == nil {
		return 0
	}
	return len(bps.points)
}

// Clone returns an independent copy of bps.
func (bps *Breakpoints) Clone() *Breakpoints {
	if bps == nil {
		return &Breakpoints{}
	}
	return &Breakpoints{points: slices.Clone(bps.points)}
}

func (bps *Breakpoints) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, bp := range bps.Points() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(bp.String())
	}
	b.WriteByte(']')
	return b.String()
}
