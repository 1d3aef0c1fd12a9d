package stylemgr

import (
	"fmt"
	"slices"

	"github.com/npillmayer/sx/cssom"
	"github.com/npillmayer/sx/cssom/douceuradapter"
)

// Sheet parses the baseline sheet and all mounted styles back into one
// style sheet, baseline rules first.
func (mgr *Manager) Sheet() (cssom.StyleSheet, error) {
	css, err := mgr.Baseline()
	if err != nil {
		return nil, err
	}
	sheet, err := douceuradapter.Parse(css)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	for _, ref := range mgr.Mounted() {
		rules, err := douceuradapter.Parse(ref.CSS)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", ref.Class, err)
		}
		sheet.AppendRules(rules)
	}
	return sheet, nil
}

// Lookup returns the value a mounted style sets for a CSS property outside
// of any media query. Compound properties are split up, so for a style with
// padding "3px 5px" a lookup of "padding-left" returns "5px".
func (mgr *Manager) Lookup(ref Ref, key string) (cssom.Property, bool) {
	sheet, err := douceuradapter.Parse(ref.CSS)
	if err != nil {
		tracer().Errorf("style %s does not parse: %v", ref.Class, err)
		return cssom.NullStyle, false
	}
	value, found := cssom.NullStyle, false
	for _, r := range cssom.Find(sheet, ref.Selector(), "") {
		if v, ok := cssom.Lookup(r, key); ok {
			value, found = v, true
		}
	}
	return value, found
}

// droppedSelectors lists the selectors of CSS text old which do not appear
// in CSS text css any more.
func droppedSelectors(old, css string) ([]string, error) {
	before, err := douceuradapter.Parse(old)
	if err != nil {
		return nil, err
	}
	after, err := douceuradapter.Parse(css)
	if err != nil {
		return nil, err
	}
	kept := cssom.Selectors(after)
	var dropped []string
	for _, sel := range cssom.Selectors(before) {
		if !slices.Contains(kept, sel) {
			dropped = append(dropped, sel)
		}
	}
	return dropped, nil
}
