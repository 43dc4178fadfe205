package tk

import "fmt"

// Tree is the retained widget hierarchy: a single root with ordered
// children per node. Structure lives here; all per-node data lives in
// the Store.
type Tree struct {
	next     Entity
	root     Entity
	parent   map[Entity]Entity
	children map[Entity][]Entity
}

// NewTree creates a tree with an allocated root node.
func NewTree() *Tree {
	t := &Tree{
		parent:   make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
	t.root = t.allocate()
	return t
}

func (t *Tree) allocate() Entity {
	t.next++
	e := t.next
	t.children[e] = nil
	return e
}

// Root returns the root entity.
func (t *Tree) Root() Entity {
	return t.root
}

// Append allocates a new node as the last child of parent.
func (t *Tree) Append(parent Entity) (Entity, error) {
	if !t.Contains(parent) {
		return NoEntity, fmt.Errorf("tk: append to unknown entity %d", parent)
	}
	e := t.allocate()
	t.parent[e] = parent
	t.children[parent] = append(t.children[parent], e)
	return e, nil
}

// Contains reports whether the entity is part of the tree.
func (t *Tree) Contains(e Entity) bool {
	_, ok := t.children[e]
	return ok
}

// Parent returns the parent of e, or NoEntity for the root.
func (t *Tree) Parent(e Entity) Entity {
	return t.parent[e]
}

// Children returns the ordered children of e. The returned slice is
// owned by the tree; callers must not mutate it.
func (t *Tree) Children(e Entity) []Entity {
	return t.children[e]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.children)
}

// Remove detaches e and its entire subtree from the tree. Removing the
// root or an unknown entity is an error. The removed entities are
// returned so callers can drop their components from the store.
func (t *Tree) Remove(e Entity) ([]Entity, error) {
	if e == t.root {
		return nil, fmt.Errorf("tk: cannot remove root entity")
	}
	if !t.Contains(e) {
		return nil, fmt.Errorf("tk: remove unknown entity %d", e)
	}

	parent := t.parent[e]
	siblings := t.children[parent]
	for i, child := range siblings {
		if child == e {
			t.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}

	var removed []Entity
	stack := []Entity{e}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		removed = append(removed, n)
		stack = append(stack, t.children[n]...)
		delete(t.children, n)
		delete(t.parent, n)
	}
	return removed, nil
}

// Walk visits e and its subtree depth-first in document order. The visit
// function returning false prunes that node's subtree.
func (t *Tree) Walk(e Entity, visit func(Entity) bool) {
	if !t.Contains(e) {
		return
	}
	if !visit(e) {
		return
	}
	for _, child := range t.children[e] {
		t.Walk(child, visit)
	}
}
