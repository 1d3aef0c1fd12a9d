package sx

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/sx/color"
	"github.com/shopspring/decimal"
)

// ParseError is returned for text which is not a valid style value.
// Token is the text of the offending token, empty for empty input.
type ParseError struct {
	Input string
	Token string
	Cause error // optional
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("cannot parse style value from %q", e.Input)
	}
	return fmt.Sprintf("unexpected token in style value %q: %q", e.Input, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// paletteSelector matches "palette.selector".
var paletteSelector = regexp.MustCompile(`^(?P<palette>[a-zA-Z_]\w*)\.(?P<selector>\w+)$`)

// SplitPaletteSelector splits text of the form "palette.selector".
func SplitPaletteSelector(text string) (palette, selector string, ok bool) {
	m := paletteSelector.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ValueOf creates a value from author-written text:
//
//     "background.body"    → ThemeToken
//     "1px solid black"    → Literal (any text containing white space)
//     everything else      → Parse(text)
//
func ValueOf(text string) (Value, error) {
	if palette, selector, ok := SplitPaletteSelector(text); ok {
		return Token(palette, selector), nil
	}
	if strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return Literal(text), nil
	}
	return Parse(text)
}

// MustValueOf is like ValueOf, but panics on error.
func MustValueOf(text string) Value {
	v, err := ValueOf(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a single CSS value token into a typed style value:
//
//     identifier            → Literal, or ColorValue for CSS color keywords
//     #RRGGBB               → ColorValue holding a color.Hex
//     "palette.selector"    → ThemeToken
//     "any other string"    → Quoted
//     12 / 1.5              → Integer / Float
//     15%                   → Percent(0.15)
//     5px / 1.5em           → Dimension / FloatDimension
//     ident.ident           → ThemeToken
//
// Surrounding white space and comments are ignored, as well as tokens
// following a complete value.
func Parse(text string) (Value, error) {
	ts := newTokenStream(text)
	tok := ts.next()
	if tok.Type == scanner.TokenEOF {
		return nil, &ParseError{Input: text}
	}
	v, err := valueFromToken(text, tok)
	if err != nil {
		return nil, err
	}
	if lit, ok := v.(Literal); ok {
		if dot := ts.peek(); dot.Type == scanner.TokenChar && dot.Value == "." {
			ts.next()
			sel := ts.next()
			if sel.Type != scanner.TokenIdent {
				return nil, &ParseError{Input: text, Token: sel.Value}
			}
			return Token(string(lit), sel.Value), nil
		}
	}
	return v, nil
}

func valueFromToken(input string, tok *scanner.Token) (Value, error) {
	switch tok.Type {
	case scanner.TokenIdent:
		if color.IsNamed(tok.Value) {
			return Col(color.Named(tok.Value)), nil
		}
		return Literal(tok.Value), nil
	case scanner.TokenHash:
		c, err := hashColor(tok.Value)
		if err != nil {
			return nil, &ParseError{Input: input, Token: tok.Value, Cause: err}
		}
		return Col(c), nil
	case scanner.TokenString:
		s := unquote(tok.Value)
		if parts := strings.Split(s, "."); len(parts) == 2 {
			return Token(parts[0], parts[1]), nil
		}
		return Quoted(s), nil
	case scanner.TokenNumber:
		d, err := number(tok.Value)
		if err != nil {
			return nil, &ParseError{Input: input, Token: tok.Value, Cause: err}
		}
		if isIntegral(tok.Value) {
			return Integer{Value: d}, nil
		}
		return Float{Value: d}, nil
	case scanner.TokenPercentage:
		d, err := number(strings.TrimSuffix(tok.Value, "%"))
		if err != nil {
			return nil, &ParseError{Input: input, Token: tok.Value, Cause: err}
		}
		return Percent{Value: d.Shift(-2)}, nil
	case scanner.TokenDimension:
		n := strings.IndexFunc(tok.Value, func(r rune) bool {
			return !strings.ContainsRune("+-.0123456789", r)
		})
		if n <= 0 {
			return nil, &ParseError{Input: input, Token: tok.Value}
		}
		num, unit := tok.Value[:n], tok.Value[n:]
		// the scanner has no exponent syntax and reads 1e3 as a dimension
		if exp := exponent.FindString(unit); exp != "" {
			num, unit = num+exp, unit[len(exp):]
		}
		d, err := number(num)
		if err != nil {
			return nil, &ParseError{Input: input, Token: tok.Value, Cause: err}
		}
		if unit == "" {
			return Float{Value: d}, nil
		}
		if isIntegral(num) {
			return Dimension{Value: d, Unit: unit}, nil
		}
		return FloatDimension{Value: d, Unit: unit}, nil
	}
	tracer().Debugf("unexpected %s token %q in %q", tok.Type, tok.Value, input)
	return nil, &ParseError{Input: input, Token: tok.Value}
}

// hashColor interprets the text of a hash token. Six hex digits produce a
// color.Hex, eight produce color.RGBA. The short form #RGB is expanded.
func hashColor(hash string) (color.Color, error) {
	digits := strings.TrimPrefix(hash, "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		fallthrough
	case 6:
		c, err := color.Parse("#" + digits)
		if err != nil {
			return nil, err
		}
		rgb := c.(color.RGB)
		return color.Hex(uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)), nil
	case 8:
		return color.Parse(hash)
	}
	return nil, &color.ParseError{Input: hash}
}

func number(text string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimPrefix(text, "+"))
}

var exponent = regexp.MustCompile(`^[eE][+-]?[0-9]+`)

func isIntegral(num string) bool {
	return !strings.ContainsAny(num, ".eE")
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// --- Token stream ----------------------------------------------------------

// tokenStream wraps a CSS scanner, skipping white space and comments, and
// folding sign characters into directly following numeric tokens.
type tokenStream struct {
	sc      *scanner.Scanner
	pending []*scanner.Token // pushed back tokens, next one first
}

func newTokenStream(input string) *tokenStream {
	return &tokenStream{sc: scanner.New(input)}
}

func (ts *tokenStream) raw() *scanner.Token {
	if n := len(ts.pending); n > 0 {
		tok := ts.pending[0]
		ts.pending = ts.pending[1:]
		return tok
	}
	return ts.sc.Next()
}

func (ts *tokenStream) pushBack(tok *scanner.Token) {
	ts.pending = append([]*scanner.Token{tok}, ts.pending...)
}

func (ts *tokenStream) next() *scanner.Token {
	tok := ts.raw()
	for tok.Type == scanner.TokenS || tok.Type == scanner.TokenComment {
		tok = ts.raw()
	}
	if tok.Type == scanner.TokenChar && (tok.Value == "-" || tok.Value == "+") {
		follow := ts.raw()
		if isNumeric(follow) {
			return &scanner.Token{
				Type:   follow.Type,
				Value:  tok.Value + follow.Value,
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
		ts.pushBack(follow)
	}
	return tok
}

func (ts *tokenStream) peek() *scanner.Token {
	tok := ts.next()
	ts.pushBack(tok)
	return tok
}

func isNumeric(tok *scanner.Token) bool {
	switch tok.Type {
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
		return true
	}
	return false
}
