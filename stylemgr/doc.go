/*
Package stylemgr mounts styles as CSS classes.

A Manager compiles a style once per combination of style content, theme
mode and theme, and hands out the generated class name:

    mgr, _ := stylemgr.New(theme, stylemgr.WithMode(sx.Dark))
    ref, err := mgr.Mount(style)
    // ref.Class is "happy-…", ref.CSS holds the rule for ".happy-…"

Mounted styles and the baseline sheet of the theme are written into HTML
documents as <style> elements, identified by a data-style attribute.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylemgr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sx.stylemgr'.
func tracer() tracing.Trace {
	return tracing.Select("sx.stylemgr")
}
