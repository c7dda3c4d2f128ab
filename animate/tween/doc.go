/*
Package tween implements property animations for views.

A Tween interpolates one animatable property of a view (alpha, horizontal or
vertical translation, or scale) between two values, using an easing function.
Tweens are played by a Player, which is driven by the host's clock:

	player := tween.NewPlayer()
	provider, err := player.Provider(tween.Spec{
		Property: tween.Alpha,
		From:     0,
		To:       1,
		Duration: 300 * time.Millisecond,
		Ease:     "outQuad",
	})
	...
	// once per frame
	player.Update(frameTime)

Starting a Tween on a view binds it to the view and registers it with its
Player. The property is set to the start value at once and stays there until
the Tween's start offset has elapsed, so views waiting for a staggered
fade-in are already transparent. Spec.KeepBefore leaves the view's current
value in place instead. After the start offset the property follows the
easing curve and holds the target value once the Tween has ended. The end listener is called exactly once,
after the Player has finished the frame's bookkeeping.

Animation definitions may be kept in a YAML document and loaded as a Library.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tween

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'viewsfrom.tween'.
func tracer() tracing.Trace {
	return tracing.Select("viewsfrom.tween")
}
