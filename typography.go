package sx

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Size is a size step of typography levels.
type Size uint8

const (
	XS Size = iota
	SM
	MD
	LG
	XL
)

var sizeNames = [...]string{"xs", "sm", "md", "lg", "xl"}

func (s Size) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return fmt.Sprintf("size(%d)", uint8(s))
}

// ParseSize parses "xs", "sm", "md", "lg" or "xl".
func ParseSize(s string) (Size, error) {
	for i, name := range sizeNames {
		if name == s {
			return Size(i), nil
		}
	}
	return MD, fmt.Errorf("no known size %q", s)
}

type levelKind uint8

const (
	starLevel levelKind = iota
	h1Level
	h2Level
	h3Level
	h4Level
	titleLevel
	bodyLevel
	customLevel
)

// Level is a typography level. Levels are comparable.
type Level struct {
	kind levelKind
	size Size
	name string
}

// Predefined levels. Star is the base level all other levels inherit from.
var (
	Star = Level{kind: starLevel}
	H1   = Level{kind: h1Level}
	H2   = Level{kind: h2Level}
	H3   = Level{kind: h3Level}
	H4   = Level{kind: h4Level}
)

// Title returns the title level of a size.
func Title(size Size) Level {
	return Level{kind: titleLevel, size: size}
}

// Body returns the body level of a size.
func Body(size Size) Level {
	return Level{kind: bodyLevel, size: size}
}

// Custom returns a level with an application defined name.
func Custom(name string) Level {
	return Level{kind: customLevel, name: name}
}

// ParseLevel parses the name of a level: "*", "h1"–"h4", "title-{size}",
// "body-{size}"; other names denote custom levels.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "*":
		return Star, nil
	case "h1":
		return H1, nil
	case "h2":
		return H2, nil
	case "h3":
		return H3, nil
	case "h4":
		return H4, nil
	}
	if size, ok := strings.CutPrefix(s, "title-"); ok {
		sz, err := ParseSize(size)
		if err != nil {
			return Level{}, fmt.Errorf("typography level %q: %w", s, err)
		}
		return Title(sz), nil
	}
	if size, ok := strings.CutPrefix(s, "body-"); ok {
		sz, err := ParseSize(size)
		if err != nil {
			return Level{}, fmt.Errorf("typography level %q: %w", s, err)
		}
		return Body(sz), nil
	}
	return Custom(s), nil
}

func (l Level) String() string {
	switch l.kind {
	case starLevel:
		return "*"
	case h1Level, h2Level, h3Level, h4Level:
		return fmt.Sprintf("h%d", l.kind)
	case titleLevel:
		return "title-" + l.size.String()
	case bodyLevel:
		return "body-" + l.size.String()
	}
	return l.name
}

// IsStar is true for the base level.
func (l Level) IsStar() bool {
	return l.kind == starLevel
}

// TypographyScale holds the style of every typography level.
type TypographyScale struct {
	levels *orderedmap.OrderedMap[Level, *Style]
}

// NewTypographyScale creates an empty scale.
func NewTypographyScale() *TypographyScale {
	return &TypographyScale{levels: orderedmap.New[Level, *Style]()}
}

// Set sets the style of a level.
func (ts *TypographyScale) Set(level Level, style *Style) *TypographyScale {
	ts.levels.Set(level, style)
	return ts
}

// Get returns the style of a level as set.
func (ts *TypographyScale) Get(level Level) (*Style, bool) {
	return ts.levels.Get(level)
}

// At returns the style of a level merged with the style of the Star level.
// Properties of the level take precedence.
func (ts *TypographyScale) At(level Level) (*Style, bool) {
	style, ok := ts.levels.Get(level)
	if !ok {
		return nil, false
	}
	if star, ok := ts.levels.Get(Star); ok && !level.IsStar() {
		return style.Merge(star), true
	}
	return style.Clone(), true
}

// Levels returns all levels in insertion order.
func (ts *TypographyScale) Levels() []Level {
	levels := make([]Level, 0, ts.levels.Len())
	for pair := ts.levels.Oldest(); pair != nil; pair = pair.Next() {
		levels = append(levels, pair.Key)
	}
	return levels
}

// Len returns the number of levels.
func (ts *TypographyScale) Len() int {
	return ts.levels.Len()
}
