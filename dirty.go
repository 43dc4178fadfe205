package tk

// DirtySet tracks which entities need relayout since the last completed
// pass. Insertion order is preserved and duplicates are dropped, so a
// widget invalidated many times per frame costs one entry.
type DirtySet struct {
	order []Entity
	seen  map[Entity]struct{}
}

// NewDirtySet creates an empty dirty set.
func NewDirtySet() *DirtySet {
	return &DirtySet{seen: make(map[Entity]struct{})}
}

// Add marks the entity dirty. Adding an already dirty entity is a no-op.
func (d *DirtySet) Add(e Entity) {
	if _, ok := d.seen[e]; ok {
		return
	}
	d.seen[e] = struct{}{}
	d.order = append(d.order, e)
}

// Contains reports whether the entity is marked dirty.
func (d *DirtySet) Contains(e Entity) bool {
	_, ok := d.seen[e]
	return ok
}

// Len returns the number of dirty entities.
func (d *DirtySet) Len() int {
	return len(d.order)
}

// IsEmpty reports whether no entity is dirty.
func (d *DirtySet) IsEmpty() bool {
	return len(d.order) == 0
}

// Entities returns the dirty entities in insertion order. The slice is
// owned by the set; callers must not mutate it.
func (d *DirtySet) Entities() []Entity {
	return d.order
}

// Remove unmarks a single entity, preserving the order of the rest.
func (d *DirtySet) Remove(e Entity) {
	if _, ok := d.seen[e]; !ok {
		return
	}
	delete(d.seen, e)
	for i, cur := range d.order {
		if cur == e {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

// Clear empties the set. Called after a completed layout pass.
func (d *DirtySet) Clear() {
	d.order = d.order[:0]
	for e := range d.seen {
		delete(d.seen, e)
	}
}
