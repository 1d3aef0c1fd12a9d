/*
Command sxc compiles style documents to CSS.

	sxc compile STYLE [--theme FILE] [--mode light|dark|system] [--base SELECTOR]
	sxc mount STYLE… [--html FILE]
	sxc baseline [--theme FILE] [--mode …]
	sxc palette [--theme FILE]

STYLE is a JSON or YAML file, or "-" for JSON on stdin. Settings are taken
from SXC_THEME, SXC_MODE and SXC_LOG_LEVEL (also from a .env file) and
overridden by flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sxc: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sxc: %v\n", err)
		os.Exit(1)
	}
}
