/*
Command viewsfrom queries and animates a sample view tree.

It is a playground for the query DSL: the tree

	root{A, B{C, D(invisible)}, E{F, G(gone){H}}}

may be printed, queried with filters given as flags, and animated on a
simulated clock.

	viewsfrom tree
	viewsfrom find --visibility gone
	viewsfrom find --not visibility --visibility visible --prune
	viewsfrom animate --delay 250ms --name fade_in --metrics

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "viewsfrom: %v\n", err)
		os.Exit(1)
	}
}
