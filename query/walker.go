package query

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/viewsfrom/filter"
	"github.com/npillmayer/viewsfrom/view"
)

// Walk collects the descendants of root satisfying keep, in pre-order:
// a parent precedes its children, siblings keep their child order.
// root itself is not tested.
//
// A group failing keep is still descended into, unless prune is set; then
// its whole subtree is skipped. If keep is nil, every descendant matches.
func Walk(root view.Group, keep filter.Predicate, prune bool) []view.View {
	if view.IsNil(root) {
		return nil
	}
	if keep == nil {
		keep = filter.Whatever()
	}
	return walk(root, keep, prune, nil)
}

func walk(g view.Group, keep filter.Predicate, prune bool, result []view.View) []view.View {
	chcnt := g.ChildCount()
	for position := 0; position < chcnt; position++ {
		ch := g.ChildAt(position)
		if view.IsNil(ch) {
			continue
		}
		matched := keep(ch)
		if matched {
			result = append(result, ch)
		}
		if sub, ok := ch.(view.Group); ok && (matched || !prune) {
			result = walk(sub, keep, prune, result)
		}
	}
	return result
}
