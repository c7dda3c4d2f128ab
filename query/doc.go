/*
Package query implements a small DSL to find views in view trees.

A Finder is created for one or more root groups and configured by chaining
calls, similar in concept to JQuery:

	views, err := query.From(header, body).
		WithVisibility(view.Visible).
		Not().WithTag("divider").
		OrderedBy(byID).
		Find()

Configuration functions:

	IncludingRoots()                      // roots precede their descendants in the result
	AndFrom(roots…)                       // new Finder, results appended after this one's
	FilteredWith(predicate)               // custom predicate
	Not()                                 // negate the next With… filter
	WithVisibility / WithTag / WithTagRegex / WithID / WithType
	ExcludeViews(views…)                  // drop specific views
	ExcludingChildrenOfFilteredGroups()   // do not descend into groups filtered out
	OrderedBy(cmp)                        // stable sort of the final result

Terminal functions are Find, ForEach, Promise and AnimateWith. A Finder is not
consumed by them: every call walks the trees again and returns a fresh slice.

Errors

Configuration errors (empty value lists, nil collaborators) are sticky: the
first one is recorded, the offending call changes nothing else, subsequent
configuration calls are ignored, and every terminal function returns the
error. Clients wanting to fail fast may check Err() after any call.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'viewsfrom.query'.
func tracer() tracing.Trace {
	return tracing.Select("viewsfrom.query")
}
