/*
Package viewsfrom finds, filters and animates views of UI view trees.

Clients hand in one or more root groups of a view tree and configure a query
with a chain of calls:

	err := viewsfrom.From(toolbar, content).
		WithVisibility(view.Visible).
		Not().WithTag("divider").
		ForEach(func(v view.View, index, total int) {
			...
		})

The same query may drive a staggered animation: each view found gets a fresh
animation, started a fixed delay after the animation of its predecessor.

	s, err := viewsfrom.From(list).
		ExcludeViews(header).
		AnimateWith(provider)
	...
	err = s.WithDelayBetweenEachChild(40 * time.Millisecond).
		WithVisibilityBeforeAnimation(view.Visible).
		WithEndAction(done).
		Start()

The view tree is abstract: package view defines the interfaces a host
toolkit's views have to satisfy, together with embeddable default
implementations. Package filter holds the predicates, package query the
traversal, package animate the scheduler and package animate/tween property
animations played from the host's clock.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package viewsfrom
