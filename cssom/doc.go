/*
Package cssom provides a read-only object model of CSS style sheets.

CSS produced by the style compiler or embedded in HTML documents is
examined through the interfaces StyleSheet and Rule. Concrete
implementations live in sub-packages (e.g., package douceuradapter), which
keeps clients independent of a CSS parser.

Rules nested in @media blocks are presented flat, each carrying the
prelude of its media block.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sx.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("sx.cssom")
}
