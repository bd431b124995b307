package handlemap

// EventType identifies a map lifecycle event.
type EventType uint8

const (
	// EventInserted fires when Insert or Put creates a new entry.
	EventInserted EventType = iota
	// EventOverwritten fires when Insert or Put replaces an existing entry.
	EventOverwritten
	// EventRemoved fires when Remove deletes an entry.
	EventRemoved
	// EventCleared fires once per entry dropped by Clear, before the wipe.
	EventCleared
)

func (t EventType) String() string {
	switch t {
	case EventInserted:
		return "inserted"
	case EventOverwritten:
		return "overwritten"
	case EventRemoved:
		return "removed"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event describes a single lifecycle event.
type Event[V any] struct {
	Value  V
	Handle Handle[V]
	Type   EventType
}

// Observer receives lifecycle events. Observers run synchronously inside
// the mutating call and must not insert into or remove from the map.
type Observer[V any] interface {
	OnMapEvent(Event[V])
}

// Subscribe adds an observer. The observer list follows the map's
// single-owner contract: subscribe and unsubscribe under the same external
// synchronization as every other operation.
func (m *Map[V]) Subscribe(o Observer[V]) {
	m.observers = append(m.observers, o)
}

// Unsubscribe removes an observer previously added with Subscribe.
func (m *Map[V]) Unsubscribe(o Observer[V]) {
	for i, obs := range m.observers {
		if obs == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

func (m *Map[V]) notify(e Event[V]) {
	for _, o := range m.observers {
		o.OnMapEvent(e)
	}
}
