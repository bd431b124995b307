package handlemap

import (
	"encoding/json"
	"testing"
)

func TestJSON_WireForm(t *testing.T) {
	m := New[string]()
	m.Put(FromUint64[string](4711), "baz")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"4711":"baz"}` {
		t.Fatalf("unexpected wire form: %s", data)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	m := New[string]()
	m.Insert("foo")
	m.Insert("bar")
	m.Put(FromUint64[string](0), "zero")
	m.Put(FromUint64[string](^uint64(0)), "max")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := New[string]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !Equal(m, restored) {
		t.Fatal("round trip lost entries or handle values")
	}
}

func TestJSON_Empty(t *testing.T) {
	m := New[int]()

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("empty map marshaled as %s", data)
	}

	restored := New[int]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Len() != 0 {
		t.Fatalf("expected empty map, got %d entries", restored.Len())
	}
}

func TestJSON_InvalidKey(t *testing.T) {
	m := New[string]()

	for _, data := range []string{`{"abc":"x"}`, `{"-1":"x"}`, `{"18446744073709551616":"x"}`} {
		if err := json.Unmarshal([]byte(data), m); err == nil {
			t.Fatalf("unmarshal of %s succeeded", data)
		}
	}
}

func TestJSON_ReplacesContents(t *testing.T) {
	m := New[string]()
	m.Put(FromUint64[string](1), "old")
	m.Put(FromUint64[string](2), "stale")

	if err := json.Unmarshal([]byte(`{"7":"new"}`), m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m.Len() != 1 {
		t.Fatalf("expected 1 entry after unmarshal, got %d", m.Len())
	}
	if _, ok := m.Get(FromUint64[string](1)); ok {
		t.Fatal("stale entry survived unmarshal")
	}
	if v, _ := m.Get(FromUint64[string](7)); v != "new" {
		t.Fatalf("expected %q, got %q", "new", v)
	}
}

func TestJSON_KeepsSource(t *testing.T) {
	m := NewWithSource[string](NewSeededSource(3))
	want := NewWithSource[string](NewSeededSource(3))

	if err := json.Unmarshal([]byte(`{"9":"x"}`), m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m.Insert("a") != want.Insert("a") {
		t.Fatal("unmarshal replaced the configured source")
	}
}

func TestJSON_StructValues(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	m := New[point]()
	h := m.Insert(point{X: 1, Y: 2})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := New[point]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := restored.Get(h); !ok || v != (point{X: 1, Y: 2}) {
		t.Fatalf("restored value = %+v, %v", v, ok)
	}
}
