package resource

// ordered is an insertion-ordered map that never overwrites.
type ordered[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

func (o *ordered[K, V]) add(k K, v V) bool {
	if o.index == nil {
		o.index = make(map[K]int)
	}
	if _, exists := o.index[k]; exists {
		return false
	}
	o.index[k] = len(o.vals)
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
	return true
}

func (o *ordered[K, V]) get(k K) (V, bool) {
	i, ok := o.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return o.vals[i], true
}

// Map is the program-wide map from Location to a definition.
type Map[T any] struct {
	m ordered[string, T]
	// locs mirrors m.keys with the structured key.
	locs []Location
}

func NewMap[T any]() *Map[T] {
	return &Map[T]{}
}

// Add inserts v under loc; a second Add of the same location fails with
// *DuplicateError and leaves the map unchanged.
func (m *Map[T]) Add(loc Location, v T) error {
	if loc.IsZero() {
		return &PathError{Op: "add", Msg: "empty path"}
	}
	key := loc.String()
	if !m.m.add(key, v) {
		return &DuplicateError{Key: key}
	}
	m.locs = append(m.locs, loc)
	return nil
}

// Get fails with *NotFoundError when loc is absent.
func (m *Map[T]) Get(loc Location) (T, error) {
	v, ok := m.m.get(loc.String())
	if !ok {
		return v, &NotFoundError{Key: loc.String()}
	}
	return v, nil
}

// Lookup is Get without an error value.
func (m *Map[T]) Lookup(loc Location) (T, bool) {
	return m.m.get(loc.String())
}

func (m *Map[T]) Len() int { return len(m.m.vals) }

// Keys returns locations in insertion order.
func (m *Map[T]) Keys() []Location {
	out := make([]Location, len(m.locs))
	copy(out, m.locs)
	return out
}

// Each visits entries in insertion order until fn returns false.
func (m *Map[T]) Each(fn func(Location, T) bool) {
	for i, v := range m.m.vals {
		if !fn(m.locs[i], v) {
			return
		}
	}
}

// Children maps Names to members inside one container.
type Children[T any] struct {
	m ordered[Name, T]
}

func NewChildren[T any]() *Children[T] {
	return &Children[T]{}
}

// Add inserts v under name, failing with *DuplicateError on a clash.
func (c *Children[T]) Add(name Name, v T) error {
	if name.IsZero() {
		return &NameError{}
	}
	if !c.m.add(name, v) {
		return &DuplicateError{Key: name.String()}
	}
	return nil
}

// Get fails with *NotFoundError when name is absent.
func (c *Children[T]) Get(name Name) (T, error) {
	v, ok := c.m.get(name)
	if !ok {
		return v, &NotFoundError{Key: name.String()}
	}
	return v, nil
}

// Lookup is Get without an error value.
func (c *Children[T]) Lookup(name Name) (T, bool) {
	return c.m.get(name)
}

func (c *Children[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.m.vals)
}

// Names returns member names in insertion order.
func (c *Children[T]) Names() []Name {
	if c == nil {
		return nil
	}
	out := make([]Name, len(c.m.keys))
	copy(out, c.m.keys)
	return out
}

// Values returns members in insertion order.
func (c *Children[T]) Values() []T {
	if c == nil {
		return nil
	}
	out := make([]T, len(c.m.vals))
	copy(out, c.m.vals)
	return out
}
