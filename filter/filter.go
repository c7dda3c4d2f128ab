package filter

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/npillmayer/viewsfrom/view"
)

// Predicate is a function type to match views. It returns true if a view
// satisfies the predicate and is to be kept.
//
// Predicates have to be pure: the result may depend on the view only.
type Predicate func(v view.View) bool

// Whatever is a predicate to match anything.
func Whatever() Predicate {
	return func(view.View) bool {
		return true
	}
}

// Not returns the complement of p.
func Not(p Predicate) (Predicate, error) {
	if p == nil {
		return nil, view.InvalidArgument("predicate", "cannot be nil")
	}
	return func(v view.View) bool {
		return !p(v)
	}, nil
}

// All returns the conjunction of ps, evaluated in order and stopping at the
// first predicate not satisfied. nil entries are skipped. If there is no
// predicate at all, every view matches.
func All(ps ...Predicate) Predicate {
	preds := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			preds = append(preds, p)
		}
	}
	return func(v view.View) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// --- Equality --------------------------------------------------------------

// Equal returns a predicate matching views for which key returns a value
// equal to one of refs. name is used in error messages.
func Equal[K comparable](name string, key func(view.View) K, refs ...K) (Predicate, error) {
	if key == nil {
		return nil, view.InvalidArgument("key extractor for "+name, "cannot be nil")
	}
	if len(refs) == 0 {
		return nil, view.InvalidArgument(name, "cannot be empty")
	}
	values := append([]K(nil), refs...)
	return func(v view.View) bool {
		k := key(v)
		for _, ref := range values {
			if k == ref {
				return true
			}
		}
		return false
	}, nil
}

// ID matches views with one of the given identifiers.
func ID(ids ...int) (Predicate, error) {
	return Equal("identifiers", view.View.ID, ids...)
}

// Visibility matches views in one of the given visibility states.
func Visibility(vs ...view.Visibility) (Predicate, error) {
	return Equal("visibilities", view.View.Visibility, vs...)
}

// Tag matches views tagged with a string equal to one of tags.
// Views without a tag, or with a non-string tag, never match.
func Tag(tags ...string) (Predicate, error) {
	if len(tags) == 0 {
		return nil, view.InvalidArgument("tags", "cannot be empty")
	}
	values := append([]string(nil), tags...)
	return func(v view.View) bool {
		s, ok := tagString(v)
		if !ok {
			return false
		}
		for _, t := range values {
			if s == t {
				return true
			}
		}
		return false
	}, nil
}

// TagValue matches views with a tag equal to one of values. Values of
// different dynamic types are never equal. Values have to be non-nil and of
// comparable types.
func TagValue(values ...any) (Predicate, error) {
	if len(values) == 0 {
		return nil, view.InvalidArgument("tag values", "cannot be empty")
	}
	for _, x := range values {
		if x == nil {
			return nil, view.InvalidArgument("tag values", "cannot contain nil")
		}
		if !reflect.TypeOf(x).Comparable() {
			return nil, view.InvalidArgument("tag values", fmt.Sprintf("contain value of non-comparable type %T", x))
		}
	}
	refs := append([]any(nil), values...)
	return func(v view.View) bool {
		tag := v.Tag()
		if tag == nil || !reflect.TypeOf(tag).Comparable() {
			return false
		}
		for _, ref := range refs {
			if tag == ref {
				return true
			}
		}
		return false
	}, nil
}

// Type matches views whose runtime type is identical to one of types.
func Type(types ...reflect.Type) (Predicate, error) {
	if len(types) == 0 {
		return nil, view.InvalidArgument("types", "cannot be empty")
	}
	for _, t := range types {
		if t == nil {
			return nil, view.InvalidArgument("types", "cannot contain nil")
		}
	}
	return Equal("types", view.TypeOf, types...)
}

// Exclude matches every view except the given ones, compared by identity.
// Exclude never prunes the children of an excluded group by itself.
func Exclude(views ...view.View) (Predicate, error) {
	if len(views) == 0 {
		return nil, view.InvalidArgument("views", "cannot be empty")
	}
	for _, v := range views {
		if view.IsNil(v) {
			return nil, view.InvalidArgument("views", "cannot contain nil")
		}
	}
	excluded := append([]view.View(nil), views...)
	return func(v view.View) bool {
		for _, x := range excluded {
			if view.Same(x, v) {
				return false
			}
		}
		return true
	}, nil
}

// --- Regular expressions ---------------------------------------------------

// Regex matches views for which text returns a string containing a match
// of at least one of patterns. Matches are not anchored. If text reports no
// string for a view, the view does not match.
func Regex(name string, text func(view.View) (string, bool), patterns ...string) (Predicate, error) {
	if text == nil {
		return nil, view.InvalidArgument("text extractor for "+name, "cannot be nil")
	}
	if len(patterns) == 0 {
		return nil, view.InvalidArgument(name, "cannot be empty")
	}
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, view.InvalidArgument(name, fmt.Sprintf("contain invalid pattern %q (%v)", p, err))
		}
		compiled[i] = re
	}
	tracer().Debugf("compiled %d %s", len(compiled), name)
	return func(v view.View) bool {
		s, ok := text(v)
		if !ok {
			return false
		}
		for _, re := range compiled {
			if re.MatchString(s) {
				return true
			}
		}
		return false
	}, nil
}

// TagRegex matches views with a string tag containing a match of one of
// patterns.
func TagRegex(patterns ...string) (Predicate, error) {
	return Regex("tag regexes", tagString, patterns...)
}

func tagString(v view.View) (string, bool) {
	s, ok := v.Tag().(string)
	return s, ok
}
