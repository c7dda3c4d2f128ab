package view

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ErrInvalidArgument is wrapped by every error signalling a configuration
// error of a caller: missing roots, empty filter values, nil collaborators.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument creates an error wrapping ErrInvalidArgument for parameter name.
func InvalidArgument(name string, reason string) error {
	return fmt.Errorf("%s %s: %w", name, reason, ErrInvalidArgument)
}

// Visibility is the display state of a view.
type Visibility uint8

// Visibility states. The zero value is Visible.
const (
	Visible   Visibility = iota // view is displayed
	Invisible                   // view is hidden but still takes up space
	Gone                        // view is hidden and takes up no space
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	}
	return fmt.Sprintf("Visibility(%d)", uint8(v))
}

// ParseVisibility returns the visibility for its name, as produced by String.
// Case is ignored.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visible":
		return Visible, nil
	case "invisible":
		return Invisible, nil
	case "gone":
		return Gone, nil
	}
	return Visible, InvalidArgument("visibility", fmt.Sprintf("%q is unknown", s))
}

// View is a node of a view tree.
//
// Identifiers need not be unique. Tags are arbitrary values, most often strings.
type View interface {
	ID() int
	Tag() any
	Visibility() Visibility
	SetVisibility(Visibility)
	StartAnimation(Animation) // begin playing an animation on this view
}

// Group is a view which may own children. Leaf views do not implement Group.
type Group interface {
	View
	ChildCount() int
	ChildAt(i int) View // i in [0, ChildCount()); nil if out of range
}

// Animation is a single animation instance, started on exactly one view.
//
// The start offset delays the beginning of the animation relative to the
// moment it has been started on a view. The end listener is called once,
// when the animation has finished; setting a new listener replaces the old one.
type Animation interface {
	StartOffset() time.Duration
	SetStartOffset(time.Duration)
	SetEndListener(func())
}

// Animatable exposes the properties of a view which animations may change.
// It is implemented by Base.
type Animatable interface {
	Alpha() float64
	SetAlpha(float64)
	Translation() (x, y float64)
	SetTranslation(x, y float64)
	Scale() float64
	SetScale(float64)
}

// Bindable is implemented by animations which have to be connected to the
// properties of the view they are started on.
type Bindable interface {
	Bind(target Animatable)
}

// Same reports whether a and b are the identical view. Views are compared
// by reference; Same never panics, even for non-comparable dynamic types.
func Same(a, b View) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// TypeOf returns the runtime type of a view, which serves as its kind token.
func TypeOf(v View) reflect.Type {
	return reflect.TypeOf(v)
}

// IsNil reports whether v is nil, including typed nil pointers wrapped in
// an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
