package viewsfrom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/query"
	"github.com/npillmayer/viewsfrom/view"
)

// From starts a query for the descendants of one or more root groups.
// See package query for the configuration functions.
func From(roots ...view.Group) *query.Finder {
	return query.From(roots...)
}

// Animate prepares a staggered animation of an explicit list of views.
func Animate(views []view.View, provider animate.Provider) (*animate.Scheduler, error) {
	return animate.ForViews(views, provider)
}

// Sample builds the view tree
//
//	root{A, B{C, D(invisible)}, E{F, G(gone){H}}}
//
// with identifiers 0…8 in pre-order and the letters as tags. It is used by
// the command line tool and in examples.
func Sample() *view.Container {
	root := view.NewContainer(0, "root")
	b := view.NewContainer(2, "B")
	d := view.NewLeaf(4, "D")
	d.SetVisibility(view.Invisible)
	view.MustAdd(b, view.NewLeaf(3, "C"), d)
	g := view.NewContainer(7, "G")
	g.SetVisibility(view.Gone)
	view.MustAdd(g, view.NewLeaf(8, "H"))
	e := view.NewContainer(5, "E")
	view.MustAdd(e, view.NewLeaf(6, "F"), g)
	view.MustAdd(root, view.NewLeaf(1, "A"), b, e)
	return root
}
