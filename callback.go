package sx

import (
	"fmt"
	"sync/atomic"
)

// CallbackFunc computes a style value from a theme. Implementations must be
// safe for concurrent invocation. An error aborts the compilation the
// callback is part of.
type CallbackFunc func(*Theme) (Value, error)

// Callback is a style value computed from the theme during compilation.
// Callbacks are shared by pointer and are equal only to themselves.
type Callback struct {
	id uint64
	fn CallbackFunc
}

var callbackIDs atomic.Uint64

// NewCallback creates a callback value with a fresh identity.
func NewCallback(fn CallbackFunc) *Callback {
	if fn == nil {
		panic("sx: callback function must not be nil")
	}
	return &Callback{id: callbackIDs.Add(1), fn: fn}
}

func (*Callback) isValue() {}

// CSS returns false; callbacks have to be applied first.
func (*Callback) CSS() (string, bool) {
	return "", false
}

// ID returns the identity of cb.
func (cb *Callback) ID() uint64 {
	return cb.id
}

// Apply invokes the callback with a theme.
func (cb *Callback) Apply(theme *Theme) (Value, error) {
	return cb.fn(theme)
}

// Computed creates a callback from a function which cannot fail.
func Computed(fn func(*Theme) Value) *Callback {
	if fn == nil {
		panic("sx: callback function must not be nil")
	}
	return NewCallback(func(t *Theme) (Value, error) {
		return fn(t), nil
	})
}

// Equal reports whether cb and other share the same identity.
func (cb *Callback) Equal(other *Callback) bool {
	if cb == nil || other == nil {
		return cb == other
	}
	return cb.id == other.id
}

func (cb *Callback) String() string {
	return fmt.Sprintf("(*Theme) => Value #%d", cb.id)
}
