package tk

// Store is the shared component store: arbitrary values keyed by entity
// and component name. Layout strategies, paint routines, and application
// code all read and write through it, so component names are the
// contract between them. Well-known names used by the built-in layouts
// are the Component* constants.
type Store struct {
	components map[Entity]map[string]any
}

// Well-known component names.
const (
	ComponentBounds     = "bounds"      // geom.Rect, final geometry after arrange
	ComponentDesired    = "desired"     // geom.Size, measured size
	ComponentConstraint = "constraint"  // Constraint
	ComponentMargin     = "margin"      // Thickness
	ComponentPadding    = "padding"     // Thickness
	ComponentVisibility = "visibility"  // Visibility
	ComponentHAlign     = "h_align"     // Alignment
	ComponentVAlign     = "v_align"     // Alignment
	ComponentText       = "text"        // string
	ComponentFontFamily = "font_family" // string
	ComponentFontSize   = "font_size"   // float64
	ComponentPosition   = "position"    // geom.Point, canvas offset
	ComponentGridColumn = "grid_column" // int
	ComponentGridRow    = "grid_row"    // int
	ComponentScroll     = "scroll"      // geom.Point, scroll offset
)

// NewStore creates an empty component store.
func NewStore() *Store {
	return &Store{components: make(map[Entity]map[string]any)}
}

// Set stores a component value for the entity.
func (s *Store) Set(e Entity, key string, value any) {
	m, ok := s.components[e]
	if !ok {
		m = make(map[string]any)
		s.components[e] = m
	}
	m[key] = value
}

// Raw returns the untyped component value.
func (s *Store) Raw(e Entity, key string) (any, bool) {
	v, ok := s.components[e][key]
	return v, ok
}

// Has reports whether the entity has the component.
func (s *Store) Has(e Entity, key string) bool {
	_, ok := s.components[e][key]
	return ok
}

// Delete removes one component from the entity.
func (s *Store) Delete(e Entity, key string) {
	delete(s.components[e], key)
}

// RemoveEntity drops every component of the entity. Called when a node
// is removed from the tree.
func (s *Store) RemoveEntity(e Entity) {
	delete(s.components, e)
}

// Get reads a typed component value. A missing component or one of a
// different type returns the zero value and false.
func Get[T any](s *Store, e Entity, key string) (T, bool) {
	v, ok := s.components[e][key]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// GetOr reads a typed component value, falling back to def when the
// component is missing or has a different type.
func GetOr[T any](s *Store, e Entity, key string, def T) T {
	if v, ok := Get[T](s, e, key); ok {
		return v
	}
	return def
}
