package view

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

// Base is the building block of view nodes. It is meant to be embedded and is
// usable as its zero value: identifier 0, no tag, visible, fully opaque,
// untranslated and unscaled.
type Base struct {
	id         int
	tag        any
	visibility Visibility
	fade       float64 // 1 - alpha, zero value means opaque
	tx, ty     float64
	zoom       float64 // scale - 1, zero value means unscaled
	animation  Animation
	parent     Group
}

// ID returns the identifier of a view.
func (b *Base) ID() int {
	return b.id
}

// SetID sets the identifier of a view.
func (b *Base) SetID(id int) {
	b.id = id
}

// Tag returns the tag of a view, or nil.
func (b *Base) Tag() any {
	return b.tag
}

// SetTag sets the tag of a view.
func (b *Base) SetTag(tag any) {
	b.tag = tag
}

// Visibility is part of interface View.
func (b *Base) Visibility() Visibility {
	return b.visibility
}

// SetVisibility is part of interface View.
func (b *Base) SetVisibility(v Visibility) {
	b.visibility = v
}

// Parent returns the group this view has been added to, or nil.
func (b *Base) Parent() Group {
	return b.parent
}

func (b *Base) setParent(p Group) {
	b.parent = p
}

// StartAnimation remembers a as the current animation of this view. If a is
// Bindable, it is bound to the properties of this view.
func (b *Base) StartAnimation(a Animation) {
	b.animation = a
	if bd, ok := a.(Bindable); ok && !IsNil(bd) {
		bd.Bind(b)
	}
}

// Animation returns the animation most recently started on this view, or nil.
func (b *Base) Animation() Animation {
	return b.animation
}

// ClearAnimation forgets the current animation. It does not stop it.
func (b *Base) ClearAnimation() {
	b.animation = nil
}

// Alpha is part of interface Animatable.
func (b *Base) Alpha() float64 {
	return 1 - b.fade
}

// SetAlpha is part of interface Animatable.
func (b *Base) SetAlpha(a float64) {
	b.fade = 1 - a
}

// Translation is part of interface Animatable.
func (b *Base) Translation() (float64, float64) {
	return b.tx, b.ty
}

// SetTranslation is part of interface Animatable.
func (b *Base) SetTranslation(x, y float64) {
	b.tx, b.ty = x, y
}

// Scale is part of interface Animatable.
func (b *Base) Scale() float64 {
	return 1 + b.zoom
}

// SetScale is part of interface Animatable.
func (b *Base) SetScale(s float64) {
	b.zoom = s - 1
}

var _ Animatable = &Base{}

// --- Leaf ------------------------------------------------------------------

// Leaf is a view without children.
type Leaf struct {
	Base
}

// NewLeaf creates a leaf view with a given identifier and tag.
func NewLeaf(id int, tag any) *Leaf {
	l := &Leaf{}
	l.id, l.tag = id, tag
	return l
}

func (l *Leaf) String() string {
	return fmt.Sprintf("(Leaf #%d %v %s)", l.id, l.tag, l.visibility)
}

var _ View = &Leaf{}

// --- Container -------------------------------------------------------------

// Container is a view owning an ordered list of children.
// Use Add to insert children.
type Container struct {
	Base
	children childrenSlice
}

// NewContainer creates an empty container view with a given identifier and tag.
func NewContainer(id int, tag any) *Container {
	c := &Container{}
	c.id, c.tag = id, tag
	return c
}

func (c *Container) String() string {
	return fmt.Sprintf("(Container #%d %v %s #ch=%d)", c.id, c.tag, c.visibility, c.ChildCount())
}

// ChildCount returns the number of children (concurrency-safe).
func (c *Container) ChildCount() int {
	return c.children.length()
}

// ChildAt returns the child at position i, or nil if i is out of range.
func (c *Container) ChildAt(i int) View {
	return c.children.child(i)
}

// Children returns a copy of the list of children.
func (c *Container) Children() []View {
	return c.children.asSlice()
}

func (c *Container) childSlice() *childrenSlice {
	return &c.children
}

var _ Group = &Container{}

// --- Tree construction -----------------------------------------------------

type parented interface {
	Parent() Group
	setParent(Group)
}

type childHolder interface {
	Group
	childSlice() *childrenSlice
}

// Add appends children to parent, in argument order. parent has to embed
// Container. A child currently attached to another group embedding
// Container is removed from there first.
//
// Add fails without modifying the tree if parent or any child is nil, or if
// adding a child would create a cycle.
func Add(parent Group, children ...View) error {
	if IsNil(parent) {
		return InvalidArgument("parent", "cannot be nil")
	}
	holder, ok := parent.(childHolder)
	if !ok {
		return InvalidArgument("parent", fmt.Sprintf("of type %s does not embed view.Container", TypeOf(parent)))
	}
	for _, ch := range children {
		if IsNil(ch) {
			return InvalidArgument("children", "cannot contain nil")
		}
		if Same(ch, parent) || contains(ch, parent) {
			return InvalidArgument("children", "adding child would create a cycle")
		}
	}
	for _, ch := range children {
		if p, ok := ch.(parented); ok {
			if old, ok := p.Parent().(childHolder); ok && !IsNil(old) {
				old.childSlice().remove(ch)
			}
			p.setParent(parent)
		}
		holder.childSlice().add(ch)
	}
	tracer().Debugf("added %d children to %v", len(children), parent)
	return nil
}

// MustAdd is like Add, but panics in case of an error. It simplifies building
// fixed trees.
func MustAdd(parent Group, children ...View) Group {
	err := Add(parent, children...)
	assertThat(err == nil, "cannot add children: %v", err)
	return parent
}

// Isolate removes v from its parent and returns it.
func Isolate(v View) View {
	if p, ok := v.(parented); ok {
		if old, ok := p.Parent().(childHolder); ok && !IsNil(old) {
			old.childSlice().remove(v)
		}
		p.setParent(nil)
	}
	return v
}

// contains reports whether subtree root holds v as a descendant.
func contains(root View, v View) bool {
	g, ok := root.(Group)
	if !ok {
		return false
	}
	for i := 0; i < g.ChildCount(); i++ {
		ch := g.ChildAt(i)
		if Same(ch, v) || contains(ch, v) {
			return true
		}
	}
	return false
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice struct {
	sync.RWMutex
	slice []View
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) add(child View) {
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
}

func (chs *childrenSlice) remove(child View) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if Same(ch, child) {
			copy(chs.slice[i:], chs.slice[i+1:])
			chs.slice[len(chs.slice)-1] = nil
			chs.slice = chs.slice[:len(chs.slice)-1]
			return
		}
	}
}

func (chs *childrenSlice) child(n int) View {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []View {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]View, len(chs.slice))
	copy(children, chs.slice)
	return children
}
