package props

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// KeyValue is a CSS property together with its raw value.
type KeyValue struct {
	Key   string
	Value string
}

// --- System shorthands -----------------------------------------------------

var systemProps = []struct {
	key   string
	props []string
}{
	{"p", []string{"padding"}},
	{"pl", []string{"padding-left"}},
	{"pr", []string{"padding-right"}},
	{"pt", []string{"padding-top"}},
	{"pb", []string{"padding-bottom"}},
	{"pX", []string{"margin-left", "margin-right"}},
	{"pY", []string{"margin-top", "margin-bottom"}},
	{"bgcolor", []string{"background-color"}},
	{"bg", []string{"background"}},
	{"marginX", []string{"margin-left", "margin-right"}},
	{"marginY", []string{"margin-top", "margin-bottom"}},
}

var shorthands struct {
	once sync.Once
	m    map[string][]string
}

func shorthandTable() map[string][]string {
	shorthands.once.Do(func() {
		shorthands.m = make(map[string][]string, len(systemProps))
		for _, sp := range systemProps {
			shorthands.m[sp.key] = sp.props
		}
		tracer().Debugf("initialized %d system shorthands", len(shorthands.m))
	})
	return shorthands.m
}

// Expand returns the CSS properties a system shorthand stands for. If key is
// not a shorthand, Expand returns false.
func Expand(key string) ([]string, bool) {
	props, ok := shorthandTable()[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), props...), true
}

// IsShorthand is a predicate wether key is a system shorthand.
func IsShorthand(key string) bool {
	_, ok := shorthandTable()[key]
	return ok
}

// Shorthands lists all system shorthands in alphabetical order.
func Shorthands() []string {
	keys := make([]string, 0, len(systemProps))
	for k := range shorthandTable() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- CSS compound properties -----------------------------------------------

// SplitCompound splits up a CSS compound property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompound("padding", "3px 5px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "5px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "5px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompound(key string, value string) ([]KeyValue, error) {
	fields := strings.Fields(value)
	switch key {
	case "margin":
		return distribute4("margin", "", fourDirs, fields)
	case "padding":
		return distribute4("padding", "", fourDirs, fields)
	case "border-color":
		return distribute4("border", "color", fourDirs, fields)
	case "border-width":
		return distribute4("border", "width", fourDirs, fields)
	case "border-style":
		return distribute4("border", "style", fourDirs, fields)
	case "border-radius":
		return distribute4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound is a predicate wether SplitCompound is able to split key.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func distribute4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1–4 values for %s, have %d", compose(pre, suf, ""), l)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{compose(pre, suf, dirs[0]), fields[0]}
	switch l {
	case 1:
		r[1] = KeyValue{compose(pre, suf, dirs[1]), fields[0]}
		r[2] = KeyValue{compose(pre, suf, dirs[2]), fields[0]}
		r[3] = KeyValue{compose(pre, suf, dirs[3]), fields[0]}
	case 2:
		r[1] = KeyValue{compose(pre, suf, dirs[1]), fields[1]}
		r[2] = KeyValue{compose(pre, suf, dirs[2]), fields[0]}
		r[3] = KeyValue{compose(pre, suf, dirs[3]), fields[1]}
	case 3:
		r[1] = KeyValue{compose(pre, suf, dirs[1]), fields[1]}
		r[2] = KeyValue{compose(pre, suf, dirs[2]), fields[2]}
		r[3] = KeyValue{compose(pre, suf, dirs[3]), fields[1]}
	default:
		r[1] = KeyValue{compose(pre, suf, dirs[1]), fields[1]}
		r[2] = KeyValue{compose(pre, suf, dirs[2]), fields[2]}
		r[3] = KeyValue{compose(pre, suf, dirs[3]), fields[3]}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func compose(prefix string, suffix string, tag string) string {
	switch {
	case tag == "" && suffix == "":
		return prefix
	case tag == "":
		return prefix + "-" + suffix
	case suffix == "":
		return prefix + "-" + tag
	}
	return prefix + "-" + tag + "-" + suffix
}
