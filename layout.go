package tk

import (
	"fmt"

	"github.com/gogpu/tk/geom"
	"github.com/gogpu/tk/render"
	"github.com/gogpu/tk/theme"
)

// Layout is one node's layout strategy. Exactly one layout is assigned
// per node at construction time; the engine looks it up by entity and
// drives the two passes through it.
//
// Measure runs bottom-up: a layout measures its children first, then
// reports its own desired size. Arrange runs top-down: the parent hands
// each child a final rectangle derived from its own.
type Layout interface {
	// Measure computes and caches the node's desired size. The returned
	// size already includes the node's margin.
	Measure(ctx *LayoutContext, e Entity) geom.Size

	// Arrange assigns the node's final bounds within the given
	// rectangle and recursively arranges its children. It returns the
	// size the node actually occupies.
	Arrange(ctx *LayoutContext, e Entity, bounds geom.Rect) geom.Size
}

// LayoutContext bundles the shared state a layout strategy operates on:
// the tree, the component store, the layout table for recursing into
// children, the render context for text metrics, and the active theme
// for font fallbacks.
type LayoutContext struct {
	Tree    *Tree
	Store   *Store
	Layouts *LayoutTable
	Render  *render.Context
	Theme   *theme.Theme
}

// activeTheme returns the context's theme, falling back to the built-in
// default when none was provided.
func (ctx *LayoutContext) activeTheme() *theme.Theme {
	if ctx.Theme != nil {
		return ctx.Theme
	}
	return theme.Default()
}

// layoutOf resolves a child's layout strategy, failing fast on a
// desynchronized table.
func (ctx *LayoutContext) layoutOf(e Entity) Layout {
	return ctx.Layouts.Get(e)
}

// visibility reads the node's visibility, defaulting to Visible.
func (ctx *LayoutContext) visibility(e Entity) Visibility {
	return GetOr(ctx.Store, e, ComponentVisibility, Visible)
}

// margin reads the node's margin, defaulting to zero.
func (ctx *LayoutContext) margin(e Entity) Thickness {
	return GetOr(ctx.Store, e, ComponentMargin, Thickness{})
}

// constraint reads the node's size constraint, defaulting to unbounded.
func (ctx *LayoutContext) constraint(e Entity) Constraint {
	return GetOr(ctx.Store, e, ComponentConstraint, Constraint{})
}

// setDesired caches the measured size for the arrange pass.
func (ctx *LayoutContext) setDesired(e Entity, s geom.Size) {
	ctx.Store.Set(e, ComponentDesired, s)
}

// desired reads the cached measured size.
func (ctx *LayoutContext) desired(e Entity) geom.Size {
	return GetOr(ctx.Store, e, ComponentDesired, geom.Size{})
}

// setBounds writes the node's final geometry.
func (ctx *LayoutContext) setBounds(e Entity, r geom.Rect) {
	ctx.Store.Set(e, ComponentBounds, r)
}

// LayoutTable maps entities to their layout strategies. It is populated
// at widget construction time and must stay in sync with the tree: the
// engine reaching a node without an entry is a programming error and
// panics rather than skipping the node, since rendering assumes every
// visible node has valid bounds.
type LayoutTable struct {
	layouts map[Entity]Layout
}

// NewLayoutTable creates an empty layout table.
func NewLayoutTable() *LayoutTable {
	return &LayoutTable{layouts: make(map[Entity]Layout)}
}

// Set assigns the layout strategy for an entity.
func (t *LayoutTable) Set(e Entity, l Layout) {
	t.layouts[e] = l
}

// Get returns the entity's layout strategy, panicking if none is
// registered.
func (t *LayoutTable) Get(e Entity) Layout {
	l, ok := t.layouts[e]
	if !ok {
		panic(fmt.Sprintf("tk: no layout registered for entity %d", e))
	}
	return l
}

// Has reports whether the entity has a layout strategy.
func (t *LayoutTable) Has(e Entity) bool {
	_, ok := t.layouts[e]
	return ok
}

// Remove drops the entity's layout strategy. Called when a node is
// removed from the tree.
func (t *LayoutTable) Remove(e Entity) {
	delete(t.layouts, e)
}
