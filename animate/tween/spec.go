package tween

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/npillmayer/viewsfrom/view"
	"github.com/tanema/gween/ease"
)

// Property is an animatable property of a view.
type Property uint8

// Properties which may be animated.
const (
	Alpha Property = iota
	TranslationX
	TranslationY
	Scale
)

var propertyNames = [...]string{"alpha", "translationX", "translationY", "scale"}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty returns the property for a name. Matching is case-insensitive.
func ParseProperty(name string) (Property, error) {
	for i, n := range propertyNames {
		if strings.EqualFold(n, name) {
			return Property(i), nil
		}
	}
	return 0, view.InvalidArgument("property", fmt.Sprintf("unknown name %q", name))
}

func (p Property) apply(target view.Animatable, value float64) {
	switch p {
	case Alpha:
		target.SetAlpha(value)
	case TranslationX:
		_, y := target.Translation()
		target.SetTranslation(value, y)
	case TranslationY:
		x, _ := target.Translation()
		target.SetTranslation(x, value)
	case Scale:
		target.SetScale(value)
	}
}

// Spec describes a tween.
type Spec struct {
	Property    Property
	From, To    float64
	Duration    time.Duration // > 0
	StartOffset time.Duration // base offset, before any staggering
	Ease        string        // name of an easing function, empty for linear
	KeepBefore  bool          // keep the view's value until the start offset has elapsed
}

// Validate checks for a known property, a known easing function and a
// positive duration.
func (spec Spec) Validate() error {
	if int(spec.Property) >= len(propertyNames) {
		return view.InvalidArgument("property", fmt.Sprintf("unknown %v", spec.Property))
	}
	if spec.Duration <= 0 {
		return view.InvalidArgument("duration", fmt.Sprintf("must be positive, is %v", spec.Duration))
	}
	_, err := EaseByName(spec.Ease)
	return err
}

var eases = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"outInQuad":    ease.OutInQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"outInCubic":   ease.OutInCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"outInQuart":   ease.OutInQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"outInQuint":   ease.OutInQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"outInSine":    ease.OutInSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"outInExpo":    ease.OutInExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"outInCirc":    ease.OutInCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"outInElastic": ease.OutInElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"outInBack":    ease.OutInBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"outInBounce":  ease.OutInBounce,
}

// EaseByName returns the easing function for a name such as "outQuad" or
// "inOutElastic". The empty name selects linear easing.
func EaseByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	if fn, ok := eases[name]; ok {
		return fn, nil
	}
	return nil, view.InvalidArgument("ease", fmt.Sprintf("unknown name %q", name))
}

// EaseNames returns the names of all easing functions, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for n := range eases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
