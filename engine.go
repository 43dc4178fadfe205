package tk

import (
	"log/slog"

	"github.com/gogpu/tk/geom"
	"github.com/gogpu/tk/internal/logx"
)

// engineState tracks which phase of the update cycle the engine is in.
type engineState int

const (
	stateIdle engineState = iota
	stateMeasuring
	stateArranging
)

// Engine drives the two-pass layout over the widget tree. It runs only
// when the dirty set is non-empty or on the first pass, short-circuiting
// the per-frame cost for a clean tree.
//
// The engine is not reentrant: a pass runs to completion before the
// dirty set is cleared, and the tree and store must not be mutated while
// it runs.
type Engine struct {
	tree    *Tree
	store   *Store
	layouts *LayoutTable
	dirty   *DirtySet

	state    engineState
	firstRun bool
}

// NewEngine creates a layout engine over the given tree, store, and
// layout table. The first Run always performs a full pass.
func NewEngine(tree *Tree, store *Store, layouts *LayoutTable) *Engine {
	return &Engine{
		tree:     tree,
		store:    store,
		layouts:  layouts,
		dirty:    NewDirtySet(),
		state:    stateIdle,
		firstRun: true,
	}
}

// MarkDirty flags an entity for relayout on the next Run.
func (en *Engine) MarkDirty(e Entity) {
	en.dirty.Add(e)
}

// Dirty returns the engine's dirty set.
func (en *Engine) Dirty() *DirtySet {
	return en.dirty
}

// RemoveEntity detaches the entity's subtree and drops all associated
// state: tree nodes, components, layout entries, and dirty marks. The
// parent is marked dirty so the hole is re-laid-out.
func (en *Engine) RemoveEntity(e Entity) error {
	parent := en.tree.Parent(e)
	removed, err := en.tree.Remove(e)
	if err != nil {
		return err
	}
	for _, node := range removed {
		en.store.RemoveEntity(node)
		en.layouts.Remove(node)
		en.dirty.Remove(node)
	}
	if parent.IsValid() {
		en.dirty.Add(parent)
	}
	return nil
}

// Run executes one update cycle: measure then arrange, starting from the
// root's recorded bounds. A clean tree after the first run is a no-op
// and reports false.
func (en *Engine) Run(ctx *LayoutContext) bool {
	if !en.firstRun && en.dirty.IsEmpty() {
		return false
	}

	root := en.tree.Root()
	rootLayout := ctx.Layouts.Get(root)

	// Window size comes from the root's bounds property; absent bounds
	// fall back to a zero rectangle.
	window := GetOr(en.store, root, ComponentBounds, geom.Rect{})

	logx.Logger().Debug("tk: layout pass",
		slog.Int("dirty", en.dirty.Len()),
		slog.Bool("first_run", en.firstRun),
		slog.Float64("width", window.Width),
		slog.Float64("height", window.Height))

	en.state = stateMeasuring
	rootLayout.Measure(ctx, root)

	en.state = stateArranging
	rootLayout.Arrange(ctx, root, geom.NewRect(0, 0, window.Width, window.Height))

	en.state = stateIdle
	en.firstRun = false
	en.dirty.Clear()
	return true
}
