package text

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFamily is returned by Collection.Face for families that were
// never registered.
var ErrUnknownFamily = errors.New("text: unknown font family")

// Collection is a registry of font sources keyed by family name.
// It is safe for concurrent use.
type Collection struct {
	mu      sync.RWMutex
	sources map[string]*FontSource
}

// NewCollection creates an empty font collection.
func NewCollection() *Collection {
	return &Collection{sources: make(map[string]*FontSource)}
}

// Register parses the font data and stores it under the family name,
// replacing any previous registration for that family.
func (c *Collection) Register(family string, data []byte) error {
	src, err := NewFontSource(family, data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.sources[family] = src
	c.mu.Unlock()
	return nil
}

// Source returns the registered source for a family.
func (c *Collection) Source(family string) (*FontSource, bool) {
	c.mu.RLock()
	src, ok := c.sources[family]
	c.mu.RUnlock()
	return src, ok
}

// Face creates a sized face for the family.
func (c *Collection) Face(family string, size float64) (*Face, error) {
	src, ok := c.Source(family)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return NewFace(src, size)
}

// Families returns the registered family names in sorted order.
func (c *Collection) Families() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}
