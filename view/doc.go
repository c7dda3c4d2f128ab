/*
Package view defines the node model queried by package viewsfrom.

Views form a tree. Every node is a View; nodes which may own children
additionally implement Group. Leaves simply do not implement Group, so
traversal code tests for the capability instead of asking a leaf for an
empty list of children.

Clients usually bring their own node types. To make this easy, package view
offers embeddable building blocks: Base carries identifier, tag, visibility
and the animatable properties; Container adds an ordered list of children.
A client type embedding Container becomes a Group:

	type LinearLayout struct {
		view.Container
	}

	layout := &LinearLayout{}
	view.MustAdd(layout, view.NewLeaf(1, "title"), view.NewLeaf(2, "body"))

The runtime type of a node (see TypeOf) is the type stored in the tree, i.e.
*LinearLayout in the example above, not the embedded Container.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package view

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'viewsfrom.view'.
func tracer() tracing.Trace {
	return tracing.Select("viewsfrom.view")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("viewsfrom: "+msg, msgargs...)
		panic(msg)
	}
}
