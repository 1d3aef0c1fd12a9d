package props

// TranslationUnit translates style keys, given a set of breakpoints.
// A TranslationUnit is read-only and may be shared between goroutines.
type TranslationUnit struct {
	bps *Breakpoints
}

// NewTranslationUnit creates a translation unit for a set of breakpoints.
// bps may be nil, in which case no breakpoint keys are recognized.
func NewTranslationUnit(bps *Breakpoints) TranslationUnit {
	return TranslationUnit{bps: bps.Clone()}
}

// Translate translates a style key:
//
// 1. A system shorthand translates to the CSS properties it stands for.
//
// 2. A breakpoint name translates to a media query prelude.
//
// 3. Everything else is normalized by ToProperty.
func (tu TranslationUnit) Translate(key string) []string {
	if props, ok := Expand(key); ok {
		return props
	}
	if bp, ok := tu.bps.Get(key); ok {
		tracer().Debugf("key %q is breakpoint %s", key, bp)
		return []string{bp.MediaQuery()}
	}
	return []string{ToProperty(key)}
}

// Breakpoints returns the breakpoints of tu.
func (tu TranslationUnit) Breakpoints() *Breakpoints {
	return tu.bps.Clone()
}
