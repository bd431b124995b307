package handlemap

// Handle is an opaque 64-bit reference to a value stored in a Map.
//
// The type parameter brands the handle with the value type it was issued
// for, so handles from maps of different value types cannot be confused at
// compile time. The integer itself carries no meaning: handles are not
// sequential, not sorted, and not dense. Every uint64 value is a valid
// handle, including zero.
//
// Handles compare and order by their raw integer, which makes them usable
// as keys in ordered auxiliary structures. Ordering says nothing about
// insertion order.
type Handle[V any] uint64

// FromUint64 converts a raw integer into a handle, typically to restore a
// handle from serialized form or to pin a known key in tests.
func FromUint64[V any](u uint64) Handle[V] {
	return Handle[V](u)
}

// Uint64 returns the raw integer form of the handle.
func (h Handle[V]) Uint64() uint64 {
	return uint64(h)
}
