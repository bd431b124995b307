package handlemap

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the map as a JSON object keyed by the decimal form of
// each handle:
//
//	{"4711":"baz","18446744073709551615":"max"}
//
// Exact handle values survive a marshal/unmarshal round trip, so the result
// compares Equal to the original.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	out := make(map[string]*V, len(m.entries))
	for h, p := range m.entries {
		out[strconv.FormatUint(uint64(h), 10)] = p
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the map's contents with the entries in data. Keys
// must be decimal uint64 values. The map keeps its configured random
// source.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	var raw map[string]*V
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make(map[Handle[V]]*V, len(raw))
	for k, p := range raw {
		u, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return fmt.Errorf("handlemap: invalid handle key %q: %w", k, err)
		}
		if p == nil {
			// JSON null for a value decodes as the zero value.
			p = new(V)
		}
		entries[Handle[V](u)] = p
	}
	m.entries = entries
	return nil
}
