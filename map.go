package handlemap

import "iter"

// Map stores values of type V under random 64-bit handles.
//
// The zero value is ready to use and draws handles from the process-wide
// source. Map is not safe for concurrent use; see the package documentation.
type Map[V any] struct {
	entries   map[Handle[V]]*V
	src       Source
	observers []Observer[V]
}

// New creates an empty map using the process-wide random source.
func New[V any]() *Map[V] {
	return NewWithSource[V](processSource{})
}

// NewWithSource creates an empty map that draws handles from src.
func NewWithSource[V any](src Source) *Map[V] {
	return &Map[V]{
		entries: make(map[Handle[V]]*V),
		src:     src,
	}
}

// Insert stores value under a freshly drawn random handle and returns the
// handle. It always succeeds: in the (negligibly unlikely) event the drawn
// handle is already present, the old entry is silently overwritten rather
// than detected or retried.
func (m *Map[V]) Insert(value V) Handle[V] {
	h := Handle[V](m.source().Uint64())
	m.put(h, value)
	return h
}

// Put stores value under a caller-supplied handle, silently overwriting any
// existing entry. The prior value, if any, is not returned. Use it to
// restore previously issued handles (for example after deserialization) or
// to pin handles in tests.
func (m *Map[V]) Put(h Handle[V], value V) {
	m.put(h, value)
}

// Get returns a copy of the value stored under h.
func (m *Map[V]) Get(h Handle[V]) (V, bool) {
	if p, ok := m.entries[h]; ok {
		return *p, true
	}
	var zero V
	return zero, false
}

// Mut returns a pointer to the value stored under h for in-place mutation.
// The pointer is valid until the entry is removed or the map cleared.
func (m *Map[V]) Mut(h Handle[V]) (*V, bool) {
	p, ok := m.entries[h]
	return p, ok
}

// Remove deletes the entry under h and returns its value. A later Get on
// the same handle reports absence unless the handle is reissued.
func (m *Map[V]) Remove(h Handle[V]) (V, bool) {
	p, ok := m.entries[h]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.entries, h)
	m.notify(Event[V]{Type: EventRemoved, Handle: h, Value: *p})
	return *p, true
}

// Clear drops all entries.
func (m *Map[V]) Clear() {
	if len(m.observers) > 0 {
		for h, p := range m.entries {
			m.notify(Event[V]{Type: EventCleared, Handle: h, Value: *p})
		}
	}
	clear(m.entries)
}

// Len returns the number of live entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Each calls fn for every entry in unspecified order, stopping early if fn
// returns false. The map's key set must not change during the walk; values
// may still be read through Get.
func (m *Map[V]) Each(fn func(Handle[V], V) bool) {
	for h, p := range m.entries {
		if !fn(h, *p) {
			return
		}
	}
}

// EachMut is Each with mutable access to each value. No entries may be
// inserted or removed during the walk.
func (m *Map[V]) EachMut(fn func(Handle[V], *V) bool) {
	for h, p := range m.entries {
		if !fn(h, p) {
			return
		}
	}
}

// All returns an iterator over all entries in unspecified order. The
// sequence is restartable: ranging over it again walks the current entries
// anew.
func (m *Map[V]) All() iter.Seq2[Handle[V], V] {
	return func(yield func(Handle[V], V) bool) {
		for h, p := range m.entries {
			if !yield(h, *p) {
				return
			}
		}
	}
}

func (m *Map[V]) put(h Handle[V], value V) {
	if m.entries == nil {
		m.entries = make(map[Handle[V]]*V)
	}
	typ := EventInserted
	if _, exists := m.entries[h]; exists {
		typ = EventOverwritten
	}
	v := value
	m.entries[h] = &v
	m.notify(Event[V]{Type: typ, Handle: h, Value: value})
}

func (m *Map[V]) source() Source {
	if m.src == nil {
		return processSource{}
	}
	return m.src
}
