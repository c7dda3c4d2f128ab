/*
Package animate plays staggered animations over a list of views.

A Scheduler starts one fresh animation instance per view, in list order, each
one delayed by a fixed amount more than its predecessor. When the animation of
the last view ends, an optional end action is called. Animations are played
by the host's animation subsystem: starting them returns immediately, and the
end action is called later, from wherever the subsystem reports the end of
the last animation. The Scheduler never blocks.

	s, err := animate.ForViews(views, provider)
	...
	err = s.WithDelayBetweenEachChild(50 * time.Millisecond).
		WithVisibilityBeforeAnimation(view.Visible).
		WithEndAction(func() { fmt.Println("done") }).
		Start()

Only the end of the last view's animation is observed. With equal durations
it is the one to finish last, as it starts last.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package animate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'viewsfrom.animate'.
func tracer() tracing.Trace {
	return tracing.Select("viewsfrom.animate")
}
