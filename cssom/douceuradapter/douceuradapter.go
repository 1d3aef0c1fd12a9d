/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sx/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'sx.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("sx.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a style sheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing CSS: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	tracer().Errorf("cannot append rules from stylesheet of type %T", other)
}

// Rules returns all the rules of a stylesheet. Rules embedded in @media
// blocks are returned in place of the block, other at-rules are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		rules = appendRule(rules, r, "")
	}
	return rules
}

func appendRule(rules []cssom.Rule, r *css.Rule, media string) []cssom.Rule {
	if r.Kind == css.QualifiedRule {
		return append(rules, Rule{rule: r, media: media})
	}
	if r.Name != "@media" {
		tracer().Debugf("skipping at-rule %s", r.Name)
		return rules
	}
	prelude := strings.TrimSpace(r.Prelude)
	if media != "" {
		prelude = media + " and " + prelude
	}
	for _, embedded := range r.Rules {
		rules = appendRule(rules, embedded, prelude)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule  *css.Rule
	media string
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.rule.Prelude)
}

// Media returns the media query of the enclosing @media block, if any.
func (r Rule) Media() string {
	return r.media
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) cssom.Property {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			return cssom.Property(d.Value)
		}
	}
	return cssom.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which do not parse are
// reported as an error, the others are returned nevertheless.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css, err := extractStyles(head)
	css2, err2 := extractStyles(body)
	css = append(css, css2...)
	if err == nil {
		err = err2
	}
	return css, err
}

func extractStyles(h *html.Node) ([]*CSSStyles, error) {
	if h == nil {
		return nil, nil
	}
	var css []*CSSStyles
	var failed error
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("style element %q: %v", StyleID(ch), err)
			if failed == nil {
				failed = err
			}
			continue
		}
		css = append(css, c)
	}
	return css, failed
}

// StyleID returns the data-style attribute of an element, or "".
func StyleID(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "data-style" {
			return a.Val
		}
	}
	return ""
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
