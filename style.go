package sx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/sx/props"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	tp "github.com/xlab/treeprint"
	"github.com/zeebo/xxh3"
)

// Style is an ordered mapping of property keys to values. Insertion order
// determines the order of emitted declarations and rules.
//
// A nil *Style is a valid empty style for reading. The zero value is an
// empty style ready to use. Styles are not safe for
// concurrent modification; a style handed to the compiler must not be
// modified any more.
type Style struct {
	props *orderedmap.OrderedMap[string, Value]
}

// New creates an empty style.
func New() *Style {
	return &Style{props: orderedmap.New[string, Value]()}
}

// Insert sets a property. System shorthands are expanded into the CSS
// properties they stand for, each holding value, and property names are
// normalized to kebab-case. Re-inserting an existing key replaces its value,
// keeping its position.
func (s *Style) Insert(key string, value Value) {
	if value == nil {
		panic(fmt.Sprintf("sx: nil value for property %q", key))
	}
	keys, ok := props.Expand(key)
	if !ok {
		keys = []string{key}
	}
	if s.props == nil {
		s.props = orderedmap.New[string, Value]()
	}
	for _, k := range keys {
		s.props.Set(props.ToProperty(k), value)
	}
}

// Set is like Insert, but returns s for chaining.
func (s *Style) Set(key string, value Value) *Style {
	s.Insert(key, value)
	return s
}

// SetString is like Set, but creates the value with ValueOf. It panics if
// text is not a valid value.
func (s *Style) SetString(key string, text string) *Style {
	s.Insert(key, MustValueOf(text))
	return s
}

// Get returns the value of a property.
func (s *Style) Get(key string) (Value, bool) {
	if s == nil || s.props == nil {
		return nil, false
	}
	return s.props.Get(key)
}

// Delete removes a property.
func (s *Style) Delete(key string) {
	if s.props != nil {
		s.props.Delete(key)
	}
}

// Len returns the number of properties.
func (s *Style) Len() int {
	if s == nil || s.props == nil {
		return 0
	}
	return s.props.Len()
}

// Keys returns the property keys in insertion order.
func (s *Style) Keys() []string {
	keys := make([]string, 0, s.Len())
	s.Each(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Each calls f for every property in insertion order, until f returns false.
func (s *Style) Each(f func(key string, value Value) bool) {
	if s == nil || s.props == nil {
		return
	}
	for pair := s.props.Oldest(); pair != nil; pair = pair.Next() {
		if !f(pair.Key, pair.Value) {
			return
		}
	}
}

// Merge returns a new style containing the properties of s and other.
// For a key present in both, the value of s wins, except when both values
// are nested styles: then the nested styles are merged recursively.
// Neither s nor other are modified.
func (s *Style) Merge(other *Style) *Style {
	merged := s.Clone()
	other.Each(func(key string, value Value) bool {
		old, present := merged.props.Get(key)
		if !present {
			merged.props.Set(key, value)
			return true
		}
		if on, ok := old.(Nested); ok {
			if nn, ok := value.(Nested); ok {
				tracer().Debugf("merging nested styles for %q", key)
				merged.props.Set(key, Nest(on.Style.Merge(nn.Style)))
			}
		}
		return true
	})
	return merged
}

// Clone returns a deep copy of s. Nested styles are cloned, callbacks are
// shared.
func (s *Style) Clone() *Style {
	c := New()
	s.Each(func(key string, value Value) bool {
		if n, ok := value.(Nested); ok {
			value = Nest(n.Style.Clone())
		}
		c.props.Set(key, value)
		return true
	})
	return c
}

// Equal reports whether s and other hold equal properties in the same order.
func (s *Style) Equal(other *Style) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	a, b := s.props.Oldest(), other.props.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !Equal(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// Dump renders s as a tree, for debugging.
func (s *Style) Dump() string {
	p := tp.New()
	dumpStyle(p, s)
	return p.String()
}

func dumpStyle(p tp.Tree, s *Style) {
	s.Each(func(key string, value Value) bool {
		if n, ok := value.(Nested); ok {
			branch := p.AddMetaBranch("nested", key)
			dumpStyle(branch, n.Style)
			return true
		}
		p.AddMetaNode(Kind(value), fmt.Sprintf("%s: %v", key, value))
		return true
	})
}

// Fingerprint returns a hash of the contents of s. Equal styles have equal
// fingerprints. Callbacks contribute their identity, not their results.
func (s *Style) Fingerprint() uint64 {
	var b strings.Builder
	s.canonical(&b)
	return xxh3.HashString(b.String())
}

func (s *Style) canonical(b *strings.Builder) {
	b.WriteByte('{')
	s.Each(func(key string, value Value) bool {
		b.WriteString(strconv.Quote(key))
		b.WriteByte(':')
		b.WriteString(Kind(value))
		b.WriteByte('(')
		switch v := value.(type) {
		case Nested:
			v.Style.canonical(b)
		case *Callback:
			b.WriteString(strconv.FormatUint(v.ID(), 10))
		case ThemeToken:
			b.WriteString(strconv.Quote(v.Palette))
			b.WriteString(strconv.Quote(v.Selector))
		case ClassVar:
			b.WriteString(strconv.Quote(v.Class))
			b.WriteString(strconv.Quote(v.Var))
			if v.Fallback != nil {
				fb := New().Set("fallback", v.Fallback)
				fb.canonical(b)
			}
		case ColorValue:
			fmt.Fprintf(b, "%#v", v.Color)
		default:
			css, _ := value.CSS()
			b.WriteString(strconv.Quote(css))
		}
		b.WriteString(");")
		return true
	})
	b.WriteByte('}')
}
