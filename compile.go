package sx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/sx/props"
)

// Errors wrapped by ResolveError.
var (
	ErrUnknownPalette  = errors.New("no such palette")
	ErrUnknownSelector = errors.New("no such palette selector")
	ErrNoCSS           = errors.New("value has no CSS form")
	ErrCallbackDepth   = errors.New("callbacks nested too deeply")
	ErrMisplacedRule   = errors.New("at-rule key needs a nested style")
)

// maxCallbackChain limits the number of callbacks applied in a row to a
// single property value.
const maxCallbackChain = 64

// ResolveError is returned by Compile if a value of a style cannot be
// resolved against the theme. It aborts the compilation.
type ResolveError struct {
	Selector string // selector of the rule containing the property
	Property string
	Value    Value
	Err      error
}

func (e *ResolveError) Error() string {
	where := e.Property
	if e.Selector != "" {
		where = e.Selector + " " + where
	}
	return fmt.Sprintf("cannot resolve value %v of %q: %v", e.Value, where, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Option configures a compilation.
type Option func(*options)

type options struct {
	base     string
	detector Detector
}

// WithBase sets the selector the style is compiled for.
func WithBase(selector string) Option {
	return func(o *options) {
		o.base = selector
	}
}

// WithDetector sets the detector resolving mode System.
func WithDetector(d Detector) Option {
	return func(o *options) {
		o.detector = d
	}
}

// Compile compiles a style to CSS text.
//
// Theme tokens are resolved to the CSS variables of their palette
// selectors, class variables to the CSS variables of their class, and
// callbacks are applied to the theme until a plain value results. Nested
// styles produce rules for derived selectors; breakpoint keys produce
// media rules for the current selector. Mode System is resolved with the
// detector configured by WithDetector, defaulting to Light.
//
// Any value not resolvable against the theme aborts the compilation with a
// *ResolveError; no partial CSS is returned. theme must not be nil.
func Compile(style *Style, mode Mode, theme *Theme, opts ...Option) (string, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	c := &compiler{
		theme: theme,
		mode:  mode.Resolve(o.detector),
		tu:    theme.TranslationUnit(),
	}
	tracec().Debugf("compile style with %d properties for %q, mode %s", style.Len(), o.base, c.mode)
	c.stack.push(frame{selector: o.base})
	root := &rule{frame: c.stack.top()}
	if err := c.compile(style, root); err != nil {
		tracec().Errorf("%v", err)
		return "", err
	}
	var b strings.Builder
	root.render(&b)
	return b.String(), nil
}

// MustCompile is like Compile, but panics on error.
func MustCompile(style *Style, mode Mode, theme *Theme, opts ...Option) string {
	css, err := Compile(style, mode, theme, opts...)
	if err != nil {
		panic(err)
	}
	return css
}

type compiler struct {
	theme *Theme
	mode  Mode
	tu    props.TranslationUnit
	stack contextStack
}

// compile appends the declarations and rules of style to r. The context of
// r is on top of the stack.
func (c *compiler) compile(style *Style, r *rule) error {
	var err error
	style.Each(func(key string, value Value) bool {
		var resolved Value
		if resolved, err = c.resolve(key, value); err != nil {
			return false
		}
		if nested, ok := resolved.(Nested); ok {
			err = c.compileNested(key, nested.Style, r)
			return err == nil
		}
		css, _ := resolved.CSS()
		for _, prop := range c.tu.Translate(key) {
			if strings.HasPrefix(prop, "@") {
				err = c.fail(prop, value, ErrMisplacedRule)
				return false
			}
			r.decls = append(r.decls, declaration{property: prop, value: css})
		}
		return true
	})
	return err
}

func (c *compiler) compileNested(key string, style *Style, parent *rule) error {
	for _, fragment := range c.tu.Translate(key) {
		f := c.stack.top().derive(fragment)
		tracec().Debugf("rule %q %v", f.selector, f.atRules)
		c.stack.push(f)
		r := &rule{frame: f}
		if err := c.compile(style, r); err != nil {
			return err
		}
		c.stack.pop()
		parent.rules = append(parent.rules, r)
	}
	return nil
}

// resolve substitutes callbacks, theme tokens and class variables until a
// value with a CSS form or a nested style remains.
func (c *compiler) resolve(key string, value Value) (Value, error) {
	v := value
	for n := 0; ; n++ {
		switch x := v.(type) {
		case *Callback:
			if n == maxCallbackChain {
				return nil, c.fail(key, value, ErrCallbackDepth)
			}
			next, err := x.Apply(c.theme)
			if err != nil {
				return nil, c.fail(key, value, err)
			}
			if next == nil {
				return nil, c.fail(key, value, ErrNoCSS)
			}
			v = next
			continue
		case ThemeToken:
			palette, ok := c.theme.Palette(x.Palette)
			if !ok {
				return nil, c.fail(key, value, fmt.Errorf("%w %q", ErrUnknownPalette, x.Palette))
			}
			if _, ok := palette.Select(x.Selector, c.mode); !ok {
				return nil, c.fail(key, value, fmt.Errorf("%w %q in palette %q", ErrUnknownSelector,
					x.Selector, x.Palette))
			}
			return Literal("var(" + c.theme.PaletteVar(x.Palette, x.Selector) + ")"), nil
		case ClassVar:
			name := c.theme.ClassVar(x.Class, x.Var)
			if x.Fallback == nil {
				return Literal("var(" + name + ")"), nil
			}
			fallback, ok := x.Fallback.CSS()
			if !ok {
				return nil, c.fail(key, value, fmt.Errorf("fallback %v: %w", x.Fallback, ErrNoCSS))
			}
			return Literal("var(" + name + ", " + fallback + ")"), nil
		case Nested:
			return x, nil
		case nil:
			return nil, c.fail(key, value, ErrNoCSS)
		}
		if _, ok := v.CSS(); !ok {
			return nil, c.fail(key, value, ErrNoCSS)
		}
		return v, nil
	}
}

func (c *compiler) fail(key string, value Value, err error) error {
	return &ResolveError{
		Selector: c.stack.top().selector,
		Property: key,
		Value:    value,
		Err:      err,
	}
}

// --- Selector context ------------------------------------------------------

// frame is a selector context: the selector of rules, and the preludes of
// at-rules wrapping them, outermost first.
type frame struct {
	selector string
	atRules  []string
}

// derive combines f with the fragment of a nested style key. A key starting
// with a combinator is appended directly, a key starting with '&' is
// appended without the '&', and other keys are appended as descendants.
// At-rule keys wrap the rules of the current selector; consecutive media
// queries are joined into one.
func (f frame) derive(fragment string) frame {
	if strings.HasPrefix(fragment, "@") {
		at := append([]string(nil), f.atRules...)
		if cond, ok := strings.CutPrefix(fragment, "@media "); ok && len(at) > 0 &&
			strings.HasPrefix(at[len(at)-1], "@media ") {
			at[len(at)-1] += " and " + cond
		} else {
			at = append(at, fragment)
		}
		return frame{selector: f.selector, atRules: at}
	}
	return frame{selector: combine(f.selector, fragment), atRules: f.atRules}
}

func combine(selector, fragment string) string {
	switch {
	case fragment == "":
		return selector
	case strings.HasPrefix(fragment, "&"):
		return selector + fragment[1:]
	case selector == "":
		return fragment
	case strings.ContainsAny(fragment[:1], ">~+,"):
		return selector + fragment
	}
	return selector + " " + fragment
}

// contextStack is the stack of selector contexts of a compilation.
type contextStack struct {
	frames []frame
}

func (s *contextStack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *contextStack) pop() frame {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

func (s *contextStack) top() frame {
	if len(s.frames) == 0 {
		return frame{}
	}
	return s.frames[len(s.frames)-1]
}

// --- Rendering -------------------------------------------------------------

type declaration struct {
	property, value string
}

type rule struct {
	frame
	decls []declaration
	rules []*rule
}

// render writes r and its nested rules to b. A rule without declarations
// produces no block of its own.
func (r *rule) render(b *strings.Builder) {
	if len(r.decls) > 0 {
		for _, at := range r.atRules {
			b.WriteString(at)
			b.WriteByte('{')
		}
		if r.selector != "" {
			b.WriteString(r.selector)
			b.WriteString(" {")
		}
		for _, d := range r.decls {
			b.WriteString(d.property)
			b.WriteString(": ")
			b.WriteString(d.value)
			b.WriteByte(';')
		}
		if r.selector != "" {
			b.WriteByte('}')
		}
		for range r.atRules {
			b.WriteByte('}')
		}
	}
	for _, nested := range r.rules {
		nested.render(b)
	}
}
