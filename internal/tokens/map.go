package tokens

import "slices"

// Map is an insertion-ordered string-keyed mapping.
//
// Setting an existing key replaces its value but keeps the key's original
// position. Keys that appeared more than once at this level of the source
// document are remembered and reported by Duplicates.
type Map struct {
	keys   []string
	values map[string]*Node
	dups   []string
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]*Node)}
}

// Len returns the number of keys. A nil map has length zero.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (*Node, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// GetMap returns the mapping stored under key, if the value is a mapping.
func (m *Map) GetMap(key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v.Map()
}

// Set stores v under key.
func (m *Map) Set(key string, v *Node) {
	if m.values == nil {
		m.values = make(map[string]*Node)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// SetString stores a string leaf under key.
func (m *Map) SetString(key, value string) {
	m.Set(key, String(value))
}

// Duplicates returns the keys that occurred more than once at this level
// when the map was decoded, in order of their first repetition.
func (m *Map) Duplicates() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.dups)
}

func (m *Map) markDuplicate(key string) {
	if !slices.Contains(m.dups, key) {
		m.dups = append(m.dups, key)
	}
}

// Clone returns a deep copy. Cloning a nil map yields an empty map.
func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	out.keys = slices.Clone(m.keys)
	out.dups = slices.Clone(m.dups)
	for k, v := range m.values {
		out.values[k] = v.Clone()
	}
	return out
}
