/*
Package props translates style property keys into CSS.

Authors of styles use a small set of system shorthands (e.g. "p" for
"padding", or "pX" for horizontal margins), camel-cased property names as
they are common in component code, and breakpoint abbreviations which stand
for media queries. A TranslationUnit maps every such key to the real CSS
property names or selectors:

    tu := props.NewTranslationUnit(props.DefaultBreakpoints())
    tu.Translate("pX")               // → [margin-left margin-right]
    tu.Translate("md")               // → [@media (min-width: 768px)]
    tu.Translate("backgroundColor")  // → [background-color]
    tu.Translate("&:hover")          // → [&:hover]

The shorthand table is process-wide and immutable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package props

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.props'.
func tracer() tracing.Trace {
	return tracing.Select("sx.props")
}
