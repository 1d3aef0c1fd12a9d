package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, @media blocks flattened
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Media() string           // media query of an enclosing @media block, or ""
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) Property   // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Find returns the rules of sheet with a given selector and media query.
func Find(sheet StyleSheet, selector, media string) []Rule {
	var found []Rule
	for _, r := range sheet.Rules() {
		if r.Selector() == selector && r.Media() == media {
			found = append(found, r)
		}
	}
	tracer().Debugf("%d rule(s) for %q", len(found), selector)
	return found
}

// Selectors lists the distinct selectors of sheet in order of appearance.
func Selectors(sheet StyleSheet) []string {
	seen := make(map[string]struct{})
	var selectors []string
	for _, r := range sheet.Rules() {
		if _, ok := seen[r.Selector()]; ok {
			continue
		}
		seen[r.Selector()] = struct{}{}
		selectors = append(selectors, r.Selector())
	}
	return selectors
}
