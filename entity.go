package tk

// Entity identifies a node in the widget tree. Entities are allocated by
// the Tree and are stable for the node's lifetime; the zero value is
// never a valid node.
type Entity uint32

// NoEntity is the zero Entity, used as a sentinel for "no node".
const NoEntity Entity = 0

// IsValid reports whether the entity refers to an allocated node.
func (e Entity) IsValid() bool {
	return e != NoEntity
}
