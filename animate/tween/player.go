package tween

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"
	"time"

	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/view"
)

// Player plays bound tweens. It has no clock of its own: the host calls
// Update once per frame with the time elapsed since the previous frame.
//
// A Player is safe for concurrent use. End listeners are called from Update,
// without the player's lock held, so they may start new animations.
type Player struct {
	mx      sync.Mutex
	tweens  []*Tween
	now     time.Duration
	metrics *Metrics
}

// Option configures a Player.
type Option func(*Player)

// WithMetrics lets a Player report to m.
func WithMetrics(m *Metrics) Option {
	return func(p *Player) {
		p.metrics = m
	}
}

// NewPlayer creates a Player without any tweens.
func NewPlayer(opts ...Option) *Player {
	p := &Player{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tween creates a tween for spec, to be played by p. It is not playing
// before it is bound to a view, usually by starting it on a view.
func (p *Player) Tween(spec Spec) (*Tween, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Tween{spec: spec, player: p, offset: spec.StartOffset}, nil
}

// Provider returns an animation provider creating a new tween for spec on
// every call. spec is validated once.
func (p *Player) Provider(spec Spec) (animate.Provider, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return func() view.Animation {
		return &Tween{spec: spec, player: p, offset: spec.StartOffset}
	}, nil
}

// Running returns the number of bound tweens which have not ended yet.
func (p *Player) Running() int {
	p.mx.Lock()
	defer p.mx.Unlock()
	return len(p.tweens)
}

// Now returns the total time the player has been advanced by.
func (p *Player) Now() time.Duration {
	p.mx.Lock()
	defer p.mx.Unlock()
	return p.now
}

// Update advances every bound tween by dt and applies the new property
// values. Listeners of tweens which ended are called afterwards, in the
// order the tweens have been bound. A negative dt is treated as 0.
func (p *Player) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	var ended []*Tween
	p.mx.Lock()
	p.now += dt
	playing := p.tweens[:0]
	for _, tw := range p.tweens {
		started, finished := tw.advance(dt)
		if started {
			p.metrics.started(tw.spec.Property)
		}
		if finished {
			p.metrics.finished(tw.spec.Property)
			ended = append(ended, tw)
			continue
		}
		playing = append(playing, tw)
	}
	for i := len(playing); i < len(p.tweens); i++ {
		p.tweens[i] = nil
	}
	p.tweens = playing
	p.metrics.running(len(p.tweens))
	now := p.now
	p.mx.Unlock()
	if len(ended) > 0 {
		tracer().Debugf("%d tweens ended at %v", len(ended), now)
	}
	for _, tw := range ended {
		if tw.listener != nil {
			tw.listener()
		}
	}
}

func (p *Player) bind(tw *Tween, target view.Animatable) {
	p.mx.Lock()
	defer p.mx.Unlock()
	tw.target = target
	tw.elapsed = 0
	tw.curve = nil
	tw.done = false
	if !tw.spec.KeepBefore {
		tw.spec.Property.apply(target, tw.spec.From)
	}
	if !p.playing(tw) {
		p.tweens = append(p.tweens, tw)
	}
	p.metrics.running(len(p.tweens))
}

func (p *Player) playing(tw *Tween) bool {
	for _, t := range p.tweens {
		if t == tw {
			return true
		}
	}
	return false
}
