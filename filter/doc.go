/*
Package filter provides predicates over views.

A Predicate decides whether a view is kept in the result of a query. This
package offers the built-in predicates used by the query DSL: membership
tests for identifiers, visibilities, tags and runtime types, regular
expression matching of string tags, exclusion of specific views, negation and
conjunction.

Every constructor accepting reference values rejects an empty list with an
error wrapping view.ErrInvalidArgument. In Go a missing variadic argument list
and an empty one are indistinguishable, so both are treated alike.

Views are compared by identity (see view.Same), runtime types by their
reflect.Type token, and identifiers, visibilities and tags by value.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package filter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'viewsfrom.filter'.
func tracer() tracing.Trace {
	return tracing.Select("viewsfrom.filter")
}
