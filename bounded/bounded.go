/*
Package bounded implements floating point values constrained to an inclusive
numeric domain.

Go has no const generics, so the domain of a bounded value is expressed by a
type parameter implementing Domain. The bounds are checked at construction
time; a bounded value which exists is always within its domain:

    pos, ok := bounded.New[bounded.Unit](0.25)   // ok == true
    _, ok = bounded.New[bounded.Unit](1.5)       // ok == false

Bounded values order and compare by their raw magnitude, which makes them
usable as keys of ordered collections.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bounded

import (
	"cmp"
	"math"
	"strconv"
)

// Domain describes an inclusive range [Low,High]. Implementations are
// expected to be zero-sized marker types.
type Domain interface {
	Low() float32
	High() float32
}

// Unit is the domain [0,1].
type Unit struct{}

func (Unit) Low() float32  { return 0 }
func (Unit) High() float32 { return 1 }

// Float is a float32 guaranteed to lie within the bounds of domain D.
// The zero value is D's lower bound only if D includes 0; clients should
// always construct values with New, Min or Max.
type Float[D Domain] struct {
	num float32
}

// New creates a bounded float for v. It returns false for NaN and for
// values outside of [D.Low(), D.High()].
func New[D Domain](v float32) (Float[D], bool) {
	var d D
	if math.IsNaN(float64(v)) || v < d.Low() || v > d.High() {
		return Float[D]{}, false
	}
	return Float[D]{num: v}, true
}

// Must is like New, but panics if v is not within the domain.
func Must[D Domain](v float32) Float[D] {
	f, ok := New[D](v)
	if !ok {
		var d D
		panic("bounded: " + strconv.FormatFloat(float64(v), 'g', -1, 32) +
			" not in [" + strconv.FormatFloat(float64(d.Low()), 'g', -1, 32) +
			"," + strconv.FormatFloat(float64(d.High()), 'g', -1, 32) + "]")
	}
	return f
}

// Min returns the lower bound of D as a bounded value.
func Min[D Domain]() Float[D] {
	var d D
	return Float[D]{num: d.Low()}
}

// Max returns the upper bound of D as a bounded value.
func Max[D Domain]() Float[D] {
	var d D
	return Float[D]{num: d.High()}
}

// Value returns the raw magnitude.
func (f Float[D]) Value() float32 {
	return f.num
}

// Sub returns f − g. The result is unbounded, as it may leave the domain.
func (f Float[D]) Sub(g Float[D]) float32 {
	return f.num - g.num
}

// Add returns f + g. The result is unbounded, as it may leave the domain.
func (f Float[D]) Add(g Float[D]) float32 {
	return f.num + g.num
}

// Compare returns -1, 0 or +1, ordering f and g by magnitude.
func (f Float[D]) Compare(g Float[D]) int {
	return cmp.Compare(f.num, g.num)
}

// Equal is true iff f and g have the same magnitude.
func (f Float[D]) Equal(g Float[D]) bool {
	return f.num == g.num
}

func (f Float[D]) String() string {
	return strconv.FormatFloat(float64(f.num), 'g', -1, 32)
}
