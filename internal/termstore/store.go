package termstore

import (
	"log"
	"sync"

	"storyseek/internal/eventbus"
)

// DefaultKey is the key the search term is persisted under
const DefaultKey = "search"

// Store holds the raw search term and writes every change through to a KV.
// Persistence failures are logged and otherwise ignored.
type Store struct {
	mu    sync.RWMutex
	kv    KV
	key   string
	value string
	bus   eventbus.EventBus
}

// New reads key from kv, falling back to def when the key is absent, empty or
// unreadable. kv may be nil.
func New(kv KV, key, def string) *Store {
	s := &Store{kv: kv, key: key, value: def}
	if kv == nil {
		return s
	}

	v, ok, err := kv.Get(key)
	switch {
	case err != nil:
		log.Printf("TermStore: could not read %q, using default: %v", key, err)
	case ok && v != "":
		s.value = v
	}
	return s
}

// NewWithBus is New plus a TermChangedEvent on every SetValue
func NewWithBus(kv KV, key, def string, bus eventbus.EventBus) *Store {
	s := New(kv, key, def)
	s.bus = bus
	return s
}

// Value returns the current term
func (s *Store) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// SetValue replaces the term and persists it synchronously
func (s *Store) SetValue(v string) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()

	if s.kv != nil {
		if err := s.kv.Set(s.key, v); err != nil {
			log.Printf("TermStore: could not persist %q: %v", s.key, err)
		}
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.TermChangedEvent{Term: v})
	}
}
