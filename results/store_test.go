package results

import (
	"testing"

	"github.com/signalsfoundry/orbital-elements/coe"
)

func TestStore_PutAndGet(t *testing.T) {
	store := NewStore()
	el := coe.OrbitalElements{H: 58311.67, SemiMajorAxis: 8788.08}

	if err := store.Put("leo", el); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := store.Get("leo")
	if !ok {
		t.Fatal("Get: record missing")
	}
	if got != el {
		t.Errorf("Get = %+v, want %+v", got, el)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestStore_DuplicateNameRejected(t *testing.T) {
	store := NewStore()
	if err := store.Put("leo", coe.OrbitalElements{}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put("leo", coe.OrbitalElements{}); err == nil {
		t.Fatal("expected error for duplicate name")
	}
}

func TestStore_NamesSorted(t *testing.T) {
	store := NewStore()
	for _, name := range []string{"geo", "apollo", "leo"} {
		if err := store.Put(name, coe.OrbitalElements{}); err != nil {
			t.Fatalf("Put(%q): %v", name, err)
		}
	}
	names := store.Names()
	want := []string{"apollo", "geo", "leo"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", names, want)
		}
	}
}

func TestStore_SubscriberNotified(t *testing.T) {
	store := NewStore()

	var events []Event
	store.Subscribe(func(ev Event) { events = append(events, ev) })

	el := coe.OrbitalElements{H: 52822.37}
	if err := store.Put("circular", el); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != EventElementsStored || events[0].Name != "circular" || events[0].Elements != el {
		t.Errorf("event = %+v, want stored event for %q", events[0], "circular")
	}
}
