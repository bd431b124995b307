// Package handlemap provides an associative container that issues a random
// opaque handle when a value is inserted, instead of requiring the caller to
// supply a key.
//
// Use it when you need a persistent, copyable reference to a stored value
// but have no natural key: sequential indices collide across deletions and
// leak insertion order, value-keyed sets collapse equal values, and slice
// positions shift on removal. A handle is a uniformly random 64-bit value,
// so removed handles are never recycled by a later insertion (except with
// negligible probability at realistic sizes).
//
// # Architecture Overview
//
// The module is organized as a root package with small satellites:
//
//	handlemap/           Root package: Map, Handle, Source, Observer
//	├── maplog/          zap-backed lifecycle logging observer
//	├── cmd/inspect/     Interactive TUI inspector for a string map
//	└── examples/basic/  Runnable API walkthrough
//
// # Quick Start
//
//	m := handlemap.New[string]()
//
//	foo := m.Insert("foo")          // random handle
//	m.Put(handlemap.FromUint64[string](4711), "baz")
//
//	v, ok := m.Get(foo)             // "foo", true
//
//	if p, ok := m.Mut(foo); ok {
//	    *p += "_more"               // mutate in place
//	}
//
//	v, ok = m.Remove(foo)           // "foo_more", true
//
//	for h, v := range m.All() {
//	    fmt.Printf("%016x = %v\n", h.Uint64(), v)
//	}
//
// # Handles
//
// A Handle[V] is branded with the value type it was issued for: a
// Handle[File] does not convert implicitly to Handle[Socket], so handles
// from different maps cannot be mixed up at compile time. Convert to and
// from the raw uint64 with Uint64 and FromUint64 when serializing or
// interoperating. A handle is a plain value: copying it is free and holding
// one does not keep the entry alive.
//
// # Randomness
//
// Insert draws 64 bits from the map's Source. New uses the shared
// math/rand/v2 generator; NewWithSource injects any Source, and
// NewSeededSource gives a deterministic one for tests. Handle collisions
// are possible in principle and silently overwrite; they are not detected
// or retried.
//
// # Serialization
//
// Map implements json.Marshaler and json.Unmarshaler. The wire form is an
// object keyed by the handle's decimal representation, so a serialize/
// deserialize round trip preserves exact handle values and compares Equal.
//
// # Thread Safety
//
// Map is NOT safe for concurrent use. It is single-owner: share it across
// goroutines only behind external synchronization. No operation blocks or
// performs I/O.
package handlemap
