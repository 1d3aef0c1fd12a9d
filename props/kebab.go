package props

import (
	"strings"
	"unicode"
)

// SelectorOperators are the characters which, at the start of a key, mark the
// key as a selector fragment.
const SelectorOperators = ".+>~&,"

// IsSelector is a predicate wether key is a selector fragment which has to be
// preserved verbatim: an attribute selector "[…]", a key starting with one of
// SelectorOperators, or an at-rule prelude like "@media …".
func IsSelector(key string) bool {
	if key == "" {
		return false
	}
	if strings.HasPrefix(key, "[") && strings.HasSuffix(key, "]") {
		return true
	}
	return key[0] == '@' || strings.IndexByte(SelectorOperators, key[0]) >= 0
}

// ToProperty normalizes a key to kebab-case, unless it is a selector fragment
// (see IsSelector). Segments between selector operators are normalized
// separately, operators are kept in place:
//
//     backgroundColor    → background-color
//     --backgroundColor  → --background-color
//     div.fooBar         → div.foo-bar
//
func ToProperty(key string) string {
	if IsSelector(key) {
		return key
	}
	return Kebab(key)
}

// Kebab converts camelCase and PascalCase segments of s to lower-case words
// joined by '-'. Runs of upper-case letters are treated as one word
// ("innerHTMLText" → "inner-html-text"). Characters other than letters are
// left in place.
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && needsDash(runes, i) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// needsDash decides if an upper-case rune at position i starts a new word.
func needsDash(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true // end of an acronym
	}
	return false
}
