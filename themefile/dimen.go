package themefile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Absolute units, in printer's points.
var absoluteUnits = map[string]float64{
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"px": 0.75, // CSS reference pixel, 1/96 in
}

// maxPoints keeps dimensions within the range of scaled points.
const maxPoints = 32000

// ParseDimen parses an absolute dimension like "12pt" or "8in". A number
// without a unit is taken as pixels.
func ParseDimen(text string) (dimen.DU, error) {
	text = strings.TrimSpace(text)
	n := strings.IndexFunc(text, func(r rune) bool {
		return !strings.ContainsRune("+-.0123456789", r)
	})
	num, unit := text, "px"
	if n >= 0 {
		num, unit = text[:n], strings.ToLower(strings.TrimSpace(text[n:]))
	}
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("not a dimension: %q", text)
	}
	pt, ok := absoluteUnits[unit]
	if !ok {
		return 0, fmt.Errorf("not an absolute unit: %q", unit)
	}
	if math.Abs(x*pt) > maxPoints {
		return 0, fmt.Errorf("dimension out of range: %q", text)
	}
	return dimen.DU(math.Round(x * pt * float64(dimen.PT))), nil
}

// pixels converts a dimension to whole CSS pixels.
func pixels(d dimen.DU) int {
	return int(math.Round(float64(d) / float64(dimen.PT) / absoluteUnits["px"]))
}

// breakpointWidth interprets the text of a breakpoint width.
func breakpointWidth(text string) (int, error) {
	d, err := ParseDimen(text)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("breakpoint width must not be negative, is %q", text)
	}
	return pixels(d), nil
}
