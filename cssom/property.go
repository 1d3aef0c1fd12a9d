package cssom

import (
	"strings"

	"github.com/npillmayer/sx/color"
	"github.com/npillmayer/sx/props"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsVar checks wether a property refers to a CSS variable.
func (p Property) IsVar() bool {
	return strings.HasPrefix(string(p), "var(") && strings.HasSuffix(string(p), ")")
}

// VarName returns the name of the variable referenced by p, without a
// fallback, or "".
//
//     var(--happy-palette-primary-050)   → --happy-palette-primary-050
//     var(--happy-button-radius, 4px)    → --happy-button-radius
//
func (p Property) VarName() string {
	if !p.IsVar() {
		return ""
	}
	inner := string(p)[4 : len(p)-1]
	if i := strings.IndexByte(inner, ','); i >= 0 {
		inner = inner[:i]
	}
	return strings.TrimSpace(inner)
}

// Color interprets p as a color: a hex literal, a color keyword or a
// variable reference. Other values are not colors.
func (p Property) Color() (color.Color, bool) {
	text := strings.TrimSpace(string(p))
	switch {
	case strings.HasPrefix(text, "#"):
		c, err := color.Parse(text)
		return c, err == nil
	case color.IsNamed(text):
		return color.Literal(text), true
	case p.IsVar():
		return color.Var{Name: p.VarName()}, true
	}
	return nil, false
}

// Lookup finds the value of a property in a rule. If the rule does not set
// key directly, compound properties are split up: with
//
//     padding: 3px 5px
//
// a lookup of "padding-left" returns "5px". Of several declarations
// contributing a value the last one wins, as in CSS.
func Lookup(r Rule, key string) (Property, bool) {
	value, found := NullStyle, false
	for _, prop := range r.Properties() {
		if prop == key {
			value, found = r.Value(prop), true
			continue
		}
		if !props.IsCompound(prop) || !strings.HasPrefix(key, compoundStem(prop)) {
			continue
		}
		kvs, err := props.SplitCompound(prop, r.Value(prop).String())
		if err != nil {
			tracer().Debugf("cannot split %s: %v", prop, err)
			continue
		}
		for _, kv := range kvs {
			if kv.Key == key {
				value, found = Property(kv.Value), true
			}
		}
	}
	return value, found
}

// compoundStem is the common prefix of the long-hands of a compound
// property, e.g. "border-" for "border-width".
func compoundStem(compound string) string {
	if i := strings.IndexByte(compound, '-'); i >= 0 {
		return compound[:i+1]
	}
	return compound + "-"
}
