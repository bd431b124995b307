package handlemap

// Equal reports whether a and b hold equal values under the same handles.
// Iteration order is irrelevant: two maps built by putting the same
// handle/value pairs in any order are equal. Two nil maps are equal; a nil
// map equals only another nil map.
func Equal[V comparable](a, b *Map[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparison, for value
// types that are not comparable or need semantic equality.
func EqualFunc[V any](a, b *Map[V], eq func(V, V) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.entries) != len(b.entries) {
		return false
	}
	for h, p := range a.entries {
		q, ok := b.entries[h]
		if !ok || !eq(*p, *q) {
			return false
		}
	}
	return true
}
