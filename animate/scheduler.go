package animate

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/viewsfrom/view"
)

// Provider creates a new, independent animation instance for every call.
type Provider func() view.Animation

// Source resolves a list of views to animate. *query.Finder is a Source.
type Source interface {
	Find() ([]view.View, error)
}

// State is the state of a Scheduler.
type State int

// A Scheduler is configured, then started, and completed as soon as the
// animation of the last view ends.
const (
	Configuring State = iota
	Started
	Completed
)

func (st State) String() string {
	switch st {
	case Configuring:
		return "configuring"
	case Started:
		return "started"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Scheduler starts animations on a list of views with a delay between each
// view. Create one with ForQuery or ForViews.
type Scheduler struct {
	source     Source        // resolved at start, if set
	views      []view.View   // used if source is nil
	provider   Provider      // fresh animation per view
	delay      time.Duration // delay between each child
	endAction  func()
	visibility view.Visibility
	forceVis   bool // set visibility before animation
	err        error
	mx         sync.Mutex // guards state and run
	state      State
	run        uuid.UUID
}

// ForQuery creates a Scheduler for the views of src. src is resolved each
// time the Scheduler is started.
func ForQuery(src Source, provider Provider) (*Scheduler, error) {
	if view.IsNil(src) {
		return nil, view.InvalidArgument("views source", "cannot be nil")
	}
	if provider == nil {
		return nil, view.InvalidArgument("animation provider", "cannot be nil")
	}
	return &Scheduler{source: src, provider: provider}, nil
}

// ForViews creates a Scheduler for an explicit list of views. A nil list is
// treated as an empty one.
func ForViews(views []view.View, provider Provider) (*Scheduler, error) {
	if provider == nil {
		return nil, view.InvalidArgument("animation provider", "cannot be nil")
	}
	for _, v := range views {
		if view.IsNil(v) {
			return nil, view.InvalidArgument("views", "cannot contain nil")
		}
	}
	return &Scheduler{
		views:    append([]view.View(nil), views...),
		provider: provider,
	}, nil
}

// WithDelayBetweenEachChild sets the delay between the start of consecutive
// animations. The animation of the view at index i is offset by i·delay,
// in addition to its own start offset. Default is 0.
func (s *Scheduler) WithDelayBetweenEachChild(delay time.Duration) *Scheduler {
	s.delay = delay
	return s
}

// WithEndAction sets a function to call when the animation of the last view
// has ended. It is never called for an empty list of views.
func (s *Scheduler) WithEndAction(action func()) *Scheduler {
	if action == nil {
		if s.err == nil {
			s.err = view.InvalidArgument("end action", "cannot be nil")
		}
		return s
	}
	s.endAction = action
	return s
}

// WithVisibilityBeforeAnimation sets every view to visibility vis before the
// first animation is started.
func (s *Scheduler) WithVisibilityBeforeAnimation(vis view.Visibility) *Scheduler {
	s.visibility = vis
	s.forceVis = true
	return s
}

// Err returns the first configuration error, if any.
func (s *Scheduler) Err() error {
	return s.err
}

// Delay returns the delay between each child.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// State returns the current state.
func (s *Scheduler) State() State {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.state
}

// RunID identifies the most recent call to Start. It is the zero UUID before
// the first start.
func (s *Scheduler) RunID() uuid.UUID {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.run
}

// Start resolves the views and starts their animations. If the list of
// views is empty, nothing is animated and the Scheduler is completed at once,
// without calling the end action.
//
// Start may be called again to re-run the animations, which re-resolves the
// views. Only the latest run will move the Scheduler to Completed.
func (s *Scheduler) Start() error {
	if s.err != nil {
		return s.err
	}
	views := s.views
	if s.source != nil {
		var err error
		if views, err = s.source.Find(); err != nil {
			return err
		}
	}
	animations := make([]view.Animation, len(views))
	for i := range views {
		if animations[i] = s.provider(); view.IsNil(animations[i]) {
			return view.InvalidArgument("animation provider", "returned nil")
		}
	}
	run := uuid.New()
	s.mx.Lock()
	s.run = run
	s.state = Started
	if len(views) == 0 {
		s.state = Completed
	}
	s.mx.Unlock()
	trace := tracer().P("run", run)
	trace.Debugf("starting %d animations, delay %v", len(views), s.delay)
	if s.forceVis {
		for _, v := range views {
			v.SetVisibility(s.visibility)
		}
	}
	last := len(views) - 1
	for i, v := range views {
		a := animations[i]
		a.SetStartOffset(a.StartOffset() + s.delay*time.Duration(i))
		if i == last {
			a.SetEndListener(s.completion(run, s.endAction))
		}
		v.StartAnimation(a)
	}
	return nil
}

// completion creates the end listener for the last animation of a run.
func (s *Scheduler) completion(run uuid.UUID, action func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mx.Lock()
			if s.run == run {
				s.state = Completed
			}
			s.mx.Unlock()
			tracer().P("run", run).Debugf("last animation ended")
			if action != nil {
				action()
			}
		})
	}
}
