package tween

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"time"

	"github.com/npillmayer/viewsfrom/view"
	"github.com/tanema/gween"
)

// Tween animates a single property of a view. It implements view.Animation
// and view.Bindable. Create tweens with Player.Tween or a Player's provider.
type Tween struct {
	spec     Spec
	player   *Player
	offset   time.Duration
	listener func()
	target   view.Animatable
	elapsed  time.Duration // since bind
	curve    *gween.Tween  // nil until started
	done     bool
}

// StartOffset is part of interface view.Animation.
func (tw *Tween) StartOffset() time.Duration {
	return tw.offset
}

// SetStartOffset is part of interface view.Animation.
func (tw *Tween) SetStartOffset(d time.Duration) {
	tw.offset = d
}

// SetEndListener is part of interface view.Animation.
func (tw *Tween) SetEndListener(f func()) {
	tw.listener = f
}

// Bind is part of interface view.Bindable. It starts the tween's clock,
// sets the property to the start value unless the tween's spec asks to keep
// it, and registers the tween with its player. Binding a tween again
// restarts it.
func (tw *Tween) Bind(target view.Animatable) {
	tw.player.bind(tw, target)
}

// Spec returns the description of this tween.
func (tw *Tween) Spec() Spec {
	return tw.spec
}

// Done reports whether the tween has ended.
func (tw *Tween) Done() bool {
	tw.player.mx.Lock()
	defer tw.player.mx.Unlock()
	return tw.done
}

// advance moves the tween forward by dt. It returns true if the tween has
// started during this step, and true for ended if it reached its end.
// The player's lock has to be held.
func (tw *Tween) advance(dt time.Duration) (started bool, ended bool) {
	tw.elapsed += dt
	if tw.elapsed < tw.offset {
		return false, false
	}
	if tw.curve == nil {
		ease, _ := EaseByName(tw.spec.Ease)
		tw.curve = gween.New(float32(tw.spec.From), float32(tw.spec.To),
			float32(tw.spec.Duration.Seconds()), ease)
		started = true
	}
	local := tw.elapsed - tw.offset
	value, finished := tw.curve.Set(float32(local.Seconds()))
	if finished {
		tw.spec.Property.apply(tw.target, tw.spec.To)
		tw.done = true
		return started, true
	}
	tw.spec.Property.apply(tw.target, float64(value))
	return started, false
}

var _ view.Animation = &Tween{}
var _ view.Bindable = &Tween{}
