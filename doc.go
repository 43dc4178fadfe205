// Package tk is the retained-mode core of a widget toolkit: an
// entity-component widget tree, a dirty-tracked two-pass layout engine,
// and the layout strategies that size and place widgets.
//
// # Overview
//
// Widgets are entities in a Tree; all per-widget data (bounds, margins,
// constraints, text, ...) lives in a shared Store keyed by entity and
// component name. Every widget has exactly one layout strategy
// registered in a LayoutTable. The Engine runs a measure pass (bottom
// up, computing desired sizes) and an arrange pass (top down, assigning
// final rectangles) whenever any widget has been marked dirty, and
// skips both for a clean tree.
//
// # Quick Start
//
//	tree := tk.NewTree()
//	store := tk.NewStore()
//	layouts := tk.NewLayoutTable()
//
//	root := tree.Root()
//	layouts.Set(root, tk.NewFixedSizeLayout())
//	store.Set(root, tk.ComponentBounds, geom.NewRect(0, 0, 800, 600))
//
//	label, _ := tree.Append(root)
//	layouts.Set(label, tk.NewTextLayout())
//	store.Set(label, tk.ComponentText, "hello")
//
//	engine := tk.NewEngine(tree, store, layouts)
//	ctx := &tk.LayoutContext{
//		Tree: tree, Store: store, Layouts: layouts,
//		Render: render.NewContext(800, 600), Theme: theme.Default(),
//	}
//	engine.Run(ctx)
//
// Painting goes through the render package: paint routines build paths
// on a render.Context and fill them with solid or gradient brushes,
// typically looked up by name from a theme.Theme.
package tk
