package handlemap

import "testing"

type testObserver struct {
	events []Event[string]
}

func (o *testObserver) OnMapEvent(e Event[string]) {
	o.events = append(o.events, e)
}

func TestObserver_Events(t *testing.T) {
	m := New[string]()
	obs := &testObserver{}
	m.Subscribe(obs)

	h := m.Insert("foo")
	if len(obs.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(obs.events))
	}
	if e := obs.events[0]; e.Type != EventInserted || e.Handle != h || e.Value != "foo" {
		t.Fatalf("unexpected event %+v", e)
	}

	m.Put(h, "foo2")
	if e := obs.events[1]; e.Type != EventOverwritten || e.Value != "foo2" {
		t.Fatalf("expected overwrite event, got %+v", e)
	}

	m.Remove(h)
	if e := obs.events[2]; e.Type != EventRemoved || e.Value != "foo2" {
		t.Fatalf("expected remove event, got %+v", e)
	}
}

func TestObserver_Clear(t *testing.T) {
	m := New[string]()
	obs := &testObserver{}
	m.Subscribe(obs)

	m.Insert("a")
	m.Insert("b")
	obs.events = nil

	m.Clear()
	if len(obs.events) != 2 {
		t.Fatalf("expected 2 cleared events, got %d", len(obs.events))
	}
	for _, e := range obs.events {
		if e.Type != EventCleared {
			t.Fatalf("expected cleared event, got %+v", e)
		}
	}
}

func TestObserver_Unsubscribe(t *testing.T) {
	m := New[string]()
	obs := &testObserver{}
	m.Subscribe(obs)

	m.Insert("a")
	m.Unsubscribe(obs)
	m.Insert("b")

	if len(obs.events) != 1 {
		t.Fatalf("received %d events after unsubscribe, want 1", len(obs.events))
	}
}

func TestEventType_String(t *testing.T) {
	cases := map[EventType]string{
		EventInserted:    "inserted",
		EventOverwritten: "overwritten",
		EventRemoved:     "removed",
		EventCleared:     "cleared",
		EventType(99):    "unknown",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
