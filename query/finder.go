package query

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
	"sort"

	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/animate/tween"
	"github.com/npillmayer/viewsfrom/filter"
	"github.com/npillmayer/viewsfrom/view"
	"golang.org/x/sync/errgroup"
)

// Finder collects views from view trees. Clients create a Finder with From,
// configure it with a chain of calls and finally call a terminal function
// such as Find. See the package documentation for an overview.
//
// Configuration calls modify and return the receiver, with the exception of
// AndFrom, which returns a new Finder.
type Finder struct {
	roots        []view.Group       // views to start from
	previous     *Finder            // finder established by AndFrom, if any
	filters      []filter.Predicate // all have to be satisfied
	includeRoots bool               // add roots ahead of their descendants
	prune        bool               // skip subtrees of groups filtered out
	negateNext   bool               // complement the next With… filter
	order        func(a, b view.View) int
	err          error // first configuration error
}

// From creates a Finder for one or more root groups. It is an error to pass
// no roots or a nil root; the error is returned by Err and by every terminal
// function.
func From(roots ...view.Group) *Finder {
	f := &Finder{}
	if len(roots) == 0 {
		f.err = view.InvalidArgument("roots", "cannot be empty")
		return f
	}
	for _, r := range roots {
		if view.IsNil(r) {
			f.err = view.InvalidArgument("roots", "cannot contain nil")
			return f
		}
	}
	f.roots = append([]view.Group(nil), roots...)
	return f
}

// Err returns the first configuration error of this Finder or of a Finder it
// has been chained to with AndFrom.
func (f *Finder) Err() error {
	if f.err != nil {
		return f.err
	}
	if f.previous != nil {
		return f.previous.Err()
	}
	return nil
}

// IncludingRoots adds every root to the result, directly ahead of the
// root's descendants.
func (f *Finder) IncludingRoots() *Finder {
	if f.err == nil {
		f.includeRoots = true
	}
	return f
}

// ExcludingChildrenOfFilteredGroups stops the traversal from descending into
// groups which do not satisfy the filters. Without it, the descendants of a
// filtered group are tested individually.
func (f *Finder) ExcludingChildrenOfFilteredGroups() *Finder {
	if f.err == nil {
		f.prune = true
	}
	return f
}

// AndFrom returns a new Finder for roots, chained to f. The new Finder's
// results are f's results followed by the views found from roots.
// Configuration of the returned Finder applies to roots only; f is not
// modified.
func (f *Finder) AndFrom(roots ...view.Group) *Finder {
	next := From(roots...)
	next.previous = f
	return next
}

// FilteredWith adds a custom predicate. It is not affected by Not.
func (f *Finder) FilteredWith(p filter.Predicate) *Finder {
	if f.err != nil {
		return f
	}
	if p == nil {
		f.err = view.InvalidArgument("predicate", "cannot be nil")
		return f
	}
	f.filters = append(f.filters, p)
	return f
}

// Not complements the next filter established by one of the With… functions.
// It has no effect on FilteredWith and ExcludeViews.
func (f *Finder) Not() *Finder {
	if f.err == nil {
		f.negateNext = true
	}
	return f
}

// WithVisibility keeps views in one of the given visibility states.
func (f *Finder) WithVisibility(vs ...view.Visibility) *Finder {
	return f.with(filter.Visibility(vs...))
}

// WithTag keeps views tagged with one of the given strings.
func (f *Finder) WithTag(tags ...string) *Finder {
	return f.with(filter.Tag(tags...))
}

// WithTagRegex keeps views with a string tag containing a match of one of
// the given regular expressions.
func (f *Finder) WithTagRegex(patterns ...string) *Finder {
	return f.with(filter.TagRegex(patterns...))
}

// WithID keeps views with one of the given identifiers.
func (f *Finder) WithID(ids ...int) *Finder {
	return f.with(filter.ID(ids...))
}

// WithType keeps views of one of the given runtime types.
func (f *Finder) WithType(types ...reflect.Type) *Finder {
	return f.with(filter.Type(types...))
}

// with appends a With… filter, consuming a pending Not.
func (f *Finder) with(p filter.Predicate, err error) *Finder {
	if f.err != nil {
		return f
	}
	if err != nil {
		f.err = err
		return f
	}
	if f.negateNext {
		p, _ = filter.Not(p)
		f.negateNext = false
	}
	f.filters = append(f.filters, p)
	return f
}

// ExcludeViews drops the given views, compared by identity. Combine with
// ExcludingChildrenOfFilteredGroups to drop whole subtrees.
func (f *Finder) ExcludeViews(views ...view.View) *Finder {
	if f.err != nil {
		return f
	}
	p, err := filter.Exclude(views...)
	if err != nil {
		f.err = err
		return f
	}
	f.filters = append(f.filters, p)
	return f
}

// OrderedBy sorts the final result, including views of chained Finders,
// with a stable sort. cmp returns a negative number if a sorts before b.
func (f *Finder) OrderedBy(cmp func(a, b view.View) int) *Finder {
	if f.err != nil {
		return f
	}
	if cmp == nil {
		f.err = view.InvalidArgument("comparator", "cannot be nil")
		return f
	}
	f.order = cmp
	return f
}

// --- Terminal functions ----------------------------------------------------

// Find walks the trees and returns the views found.
func (f *Finder) Find() ([]view.View, error) {
	if err := f.Err(); err != nil {
		return nil, err
	}
	s := f.snapshot()
	views := make([]view.View, 0, 16)
	if f.previous != nil {
		prev, err := f.previous.Find()
		if err != nil {
			return nil, err
		}
		views = append(views, prev...)
	}
	for _, root := range s.roots {
		views = s.collect(views, root)
	}
	s.sort(views)
	tracer().Debugf("found %d views from %d roots with %d filters", len(views), len(s.roots), len(f.filters))
	return views, nil
}

// ForEach calls fn for every view found, in result order, together with the
// view's index and the total number of views found.
func (f *Finder) ForEach(fn func(v view.View, index int, total int)) error {
	if fn == nil {
		return view.InvalidArgument("iteration callback", "cannot be nil")
	}
	views, err := f.Find()
	if err != nil {
		return err
	}
	total := len(views)
	for i, v := range views {
		fn(v, i, total)
	}
	return nil
}

// Promise starts to find views asynchronously and returns a future.
// The chained Finder and every root are walked concurrently; calling the
// promise blocks until all of them are done and returns the same result
// Find would have returned.
//
// The trees must not be modified until the promise has been called, and
// custom predicates must be safe for concurrent use.
func (f *Finder) Promise() func() ([]view.View, error) {
	if err := f.Err(); err != nil {
		return func() ([]view.View, error) {
			return nil, err
		}
	}
	s := f.snapshot()
	parts := make([][]view.View, len(s.roots)+1)
	var g errgroup.Group
	if f.previous != nil {
		prev := f.previous
		g.Go(func() error {
			vs, err := prev.Find()
			parts[0] = vs
			return err
		})
	}
	for i, root := range s.roots {
		i, root := i, root
		g.Go(func() error {
			parts[i+1] = s.collect(nil, root)
			return nil
		})
	}
	signal := make(chan struct{})
	var selection []view.View
	var lasterror error
	go func() {
		defer close(signal)
		if lasterror = g.Wait(); lasterror != nil {
			return
		}
		selection = make([]view.View, 0, 16)
		for _, part := range parts {
			selection = append(selection, part...)
		}
		s.sort(selection)
	}()
	return func() ([]view.View, error) {
		<-signal
		return selection, lasterror
	}
}

// AnimateWith prepares a staggered animation of the views found. Trees are
// not walked before the returned scheduler is started. provider has to
// return a fresh animation instance for every call.
func (f *Finder) AnimateWith(provider animate.Provider) (*animate.Scheduler, error) {
	if err := f.Err(); err != nil {
		return nil, err
	}
	return animate.ForQuery(f, provider)
}

// AnimateWithResource is like AnimateWith, with animation instances created
// from the named definition of an animation library and played by player.
func (f *Finder) AnimateWithResource(lib *tween.Library, name string, player *tween.Player) (*animate.Scheduler, error) {
	if err := f.Err(); err != nil {
		return nil, err
	}
	if lib == nil {
		return nil, view.InvalidArgument("animation library", "cannot be nil")
	}
	provider, err := lib.Provider(name, player)
	if err != nil {
		return nil, err
	}
	return animate.ForQuery(f, provider)
}

var _ animate.Source = &Finder{}

// --- Resolution ------------------------------------------------------------

// resolution is a copy of a Finder's own configuration, taken when a
// terminal function starts.
type resolution struct {
	roots        []view.Group
	keep         filter.Predicate
	includeRoots bool
	prune        bool
	order        func(a, b view.View) int
}

func (f *Finder) snapshot() resolution {
	return resolution{
		roots:        append([]view.Group(nil), f.roots...),
		keep:         filter.All(f.filters...),
		includeRoots: f.includeRoots,
		prune:        f.prune,
		order:        f.order,
	}
}

func (s resolution) collect(views []view.View, root view.Group) []view.View {
	if s.includeRoots {
		views = append(views, root)
	}
	return walk(root, s.keep, s.prune, views)
}

func (s resolution) sort(views []view.View) {
	if s.order == nil {
		return
	}
	sort.SliceStable(views, func(i, j int) bool {
		return s.order(views[i], views[j]) < 0
	})
}
