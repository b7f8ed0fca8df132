// Package results is an in-memory, thread-safe store for computed
// element records, keyed by request name. Subscribers are notified as
// records land, so a reporter can stream output while a batch run is
// still in flight.
package results

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signalsfoundry/orbital-elements/coe"
)

// EventType indicates what kind of change happened in the store.
type EventType int

const (
	EventElementsStored EventType = iota
)

// Event is emitted to subscribers when a record is stored.
type Event struct {
	Type     EventType
	Name     string
	Elements coe.OrbitalElements
}

// Store holds element records. The zero value is not usable; call
// NewStore.
type Store struct {
	mu sync.RWMutex

	records map[string]coe.OrbitalElements
	subs    []func(Event)
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]coe.OrbitalElements),
	}
}

// Put stores the record for name. It returns an error if the name is
// already present; one state vector produces exactly one record.
func (s *Store) Put(name string, el coe.OrbitalElements) error {
	s.mu.Lock()
	if _, exists := s.records[name]; exists {
		s.mu.Unlock()
		return fmt.Errorf("results: record %q already exists", name)
	}
	s.records[name] = el
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// Notify outside the lock so subscribers can read the store.
	ev := Event{Type: EventElementsStored, Name: name, Elements: el}
	for _, fn := range subs {
		fn(ev)
	}
	return nil
}

// Get returns the record for name.
func (s *Store) Get(name string) (coe.OrbitalElements, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	el, ok := s.records[name]
	return el, ok
}

// Names returns the stored record names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Subscribe registers fn to be called for every future store event.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
