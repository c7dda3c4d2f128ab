package tween

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/npillmayer/viewsfrom/animate"
	"github.com/npillmayer/viewsfrom/view"
	"gopkg.in/yaml.v3"
)

// ErrUnknownAnimation is returned for a name not defined in a Library.
var ErrUnknownAnimation = errors.New("unknown animation")

// Library is a set of named animation definitions, usually loaded from a
// YAML document:
//
//	animations:
//	  fade_in:
//	    property: alpha
//	    from: 0
//	    to: 1
//	    duration: 300ms
//	    ease: outQuad
//	  slide:
//	    property: translationX
//	    from: -40
//	    to: 0
//	    duration: 250ms
//	    start_offset: 50ms
//	    keep_before: true
type Library struct {
	specs map[string]Spec
}

type libraryDocument struct {
	Animations map[string]specDocument `yaml:"animations"`
}

type specDocument struct {
	Property    string        `yaml:"property"`
	From        float64       `yaml:"from"`
	To          float64       `yaml:"to"`
	Duration    time.Duration `yaml:"duration"`
	StartOffset time.Duration `yaml:"start_offset"`
	Ease        string        `yaml:"ease"`
	KeepBefore  bool          `yaml:"keep_before"`
}

// LoadLibrary reads animation definitions from r. Every definition is
// validated; the first invalid one makes LoadLibrary fail.
func LoadLibrary(r io.Reader) (*Library, error) {
	var doc libraryDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot read animation library: %w", err)
	}
	lib := &Library{specs: make(map[string]Spec, len(doc.Animations))}
	for name, d := range doc.Animations {
		prop, err := ParseProperty(d.Property)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", name, err)
		}
		spec := Spec{
			Property:    prop,
			From:        d.From,
			To:          d.To,
			Duration:    d.Duration,
			StartOffset: d.StartOffset,
			Ease:        d.Ease,
			KeepBefore:  d.KeepBefore,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("animation %q: %w", name, err)
		}
		lib.specs[name] = spec
	}
	tracer().Debugf("loaded %d animation definitions", len(lib.specs))
	return lib, nil
}

// Spec returns the definition for name.
func (lib *Library) Spec(name string) (Spec, error) {
	spec, ok := lib.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return spec, nil
}

// Names returns the names of all definitions, sorted.
func (lib *Library) Names() []string {
	names := make([]string, 0, len(lib.specs))
	for n := range lib.specs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Provider returns an animation provider for the definition name, with
// tweens played by player.
func (lib *Library) Provider(name string, player *Player) (animate.Provider, error) {
	if player == nil {
		return nil, view.InvalidArgument("player", "cannot be nil")
	}
	spec, err := lib.Spec(name)
	if err != nil {
		return nil, err
	}
	return player.Provider(spec)
}
