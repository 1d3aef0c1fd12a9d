package sx

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sx/color"
	"github.com/shopspring/decimal"
)

// Value is the sum type of style values. Terminal values render to CSS
// text directly; ThemeToken, ClassVar, Callback and Nested are resolved or
// flattened during compilation.
type Value interface {
	// CSS returns the CSS text for terminal values and false for all others.
	CSS() (string, bool)
	isValue()
}

// Integer is an integral number.
type Integer struct {
	Value decimal.Decimal
}

// Float is a number with a fractional part.
type Float struct {
	Value decimal.Decimal
}

// Percent is a percentage, stored as a fraction: "15%" is 0.15.
type Percent struct {
	Value decimal.Decimal
}

// Dimension is an integral number with a unit, e.g. "5px".
type Dimension struct {
	Value decimal.Decimal
	Unit  string
}

// FloatDimension is a number with a fractional part and a unit, e.g. "1.5em".
type FloatDimension struct {
	Value decimal.Decimal
	Unit  string
}

// Literal is CSS literal text, emitted verbatim.
type Literal string

// Quoted is a string emitted within quotes.
type Quoted string

// ColorValue is a color.
type ColorValue struct {
	Color color.Color
}

// ThemeToken references a selector of a palette of the theme.
type ThemeToken struct {
	Palette  string
	Selector string
}

// ClassVar references a CSS variable scoped to a component class. Fallback
// is optional and has to be a terminal value.
type ClassVar struct {
	Class    string
	Var      string
	Fallback Value
}

// Nested holds the style of a sub-rule.
type Nested struct {
	Style *Style
}

func (Integer) isValue()        {}
func (Float) isValue()          {}
func (Percent) isValue()        {}
func (Dimension) isValue()      {}
func (FloatDimension) isValue() {}
func (Literal) isValue()        {}
func (Quoted) isValue()         {}
func (ColorValue) isValue()     {}
func (ThemeToken) isValue()     {}
func (ClassVar) isValue()       {}
func (Nested) isValue()         {}

// --- Constructors ----------------------------------------------------------

// Int creates an integer value.
func Int(n int64) Integer {
	return Integer{Value: decimal.NewFromInt(n)}
}

// Num creates a float value.
func Num(f float64) Float {
	return Float{Value: decimal.NewFromFloat(f)}
}

// Pct creates a percentage from a fraction, i.e. Pct(0.5) renders as "50%".
func Pct(fraction float64) Percent {
	return Percent{Value: decimal.NewFromFloat(fraction)}
}

// Px creates a pixel dimension.
func Px(n int64) Dimension {
	return Dimension{Value: decimal.NewFromInt(n), Unit: "px"}
}

// Col wraps a color.
func Col(c color.Color) ColorValue {
	return ColorValue{Color: c}
}

// Token creates a reference to a palette selector.
func Token(palette, selector string) ThemeToken {
	return ThemeToken{Palette: palette, Selector: selector}
}

// Var creates a reference to a component-scoped CSS variable. fallback may be nil.
func Var(class, name string, fallback Value) ClassVar {
	return ClassVar{Class: class, Var: name, Fallback: fallback}
}

// Nest wraps a style as a nested value.
func Nest(s *Style) Nested {
	return Nested{Style: s}
}

// --- CSS rendering ---------------------------------------------------------

func (v Integer) CSS() (string, bool) {
	return v.Value.String(), true
}

func (v Float) CSS() (string, bool) {
	return v.Value.String(), true
}

func (v Percent) CSS() (string, bool) {
	return v.Value.Shift(2).String() + "%", true
}

func (v Dimension) CSS() (string, bool) {
	return v.Value.String() + v.Unit, true
}

func (v FloatDimension) CSS() (string, bool) {
	return v.Value.String() + v.Unit, true
}

func (v Literal) CSS() (string, bool) {
	return string(v), true
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func (v Quoted) CSS() (string, bool) {
	return `"` + quoteEscaper.Replace(string(v)) + `"`, true
}

func (v ColorValue) CSS() (string, bool) {
	if v.Color == nil {
		return "", false
	}
	return v.Color.String(), true
}

func (ThemeToken) CSS() (string, bool) { return "", false }
func (ClassVar) CSS() (string, bool)   { return "", false }
func (Nested) CSS() (string, bool)     { return "", false }

// --- Debugging -------------------------------------------------------------

func (v Integer) String() string        { return cssText(v) }
func (v Float) String() string          { return cssText(v) }
func (v Percent) String() string        { return cssText(v) }
func (v Dimension) String() string      { return cssText(v) }
func (v FloatDimension) String() string { return cssText(v) }
func (v ThemeToken) String() string     { return v.Palette + "." + v.Selector }

func cssText(v Value) string {
	s, _ := v.CSS()
	return s
}

func (v ClassVar) String() string {
	if v.Fallback == nil {
		return fmt.Sprintf("var(%s.%s)", v.Class, v.Var)
	}
	return fmt.Sprintf("var(%s.%s, %v)", v.Class, v.Var, v.Fallback)
}

func (v Nested) String() string {
	return fmt.Sprintf("{%d props}", v.Style.Len())
}

// Kind returns a short name for the variant of v.
func Kind(v Value) string {
	switch v.(type) {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Percent:
		return "percent"
	case Dimension:
		return "dimension"
	case FloatDimension:
		return "float-dimension"
	case Literal:
		return "literal"
	case Quoted:
		return "string"
	case ColorValue:
		return "color"
	case ThemeToken:
		return "theme-token"
	case ClassVar:
		return "class-var"
	case *Callback:
		return "callback"
	case Nested:
		return "nested"
	}
	return "none"
}

// Equal reports whether two values are equal. Numbers compare by numeric
// value, nested styles compare deeply, and callbacks compare by identity.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Value.Equal(y.Value)
	case Float:
		y, ok := b.(Float)
		return ok && x.Value.Equal(y.Value)
	case Percent:
		y, ok := b.(Percent)
		return ok && x.Value.Equal(y.Value)
	case Dimension:
		y, ok := b.(Dimension)
		return ok && x.Unit == y.Unit && x.Value.Equal(y.Value)
	case FloatDimension:
		y, ok := b.(FloatDimension)
		return ok && x.Unit == y.Unit && x.Value.Equal(y.Value)
	case ClassVar:
		y, ok := b.(ClassVar)
		if !ok || x.Class != y.Class || x.Var != y.Var {
			return false
		}
		if x.Fallback == nil || y.Fallback == nil {
			return x.Fallback == nil && y.Fallback == nil
		}
		return Equal(x.Fallback, y.Fallback)
	case Nested:
		y, ok := b.(Nested)
		return ok && x.Style.Equal(y.Style)
	case *Callback:
		y, ok := b.(*Callback)
		return ok && x.Equal(y)
	case nil:
		return b == nil
	}
	return a == b // Literal, Quoted, ColorValue, ThemeToken
}
