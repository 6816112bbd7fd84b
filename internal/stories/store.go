package stories

import (
	"log"
	"sync"

	"storyseek/internal/eventbus"
)

// Dispatcher is the single mutation entry point for the stories state
type Dispatcher interface {
	Dispatch(action Action) State
}

// Listener is notified synchronously after every committed action
type Listener func(State)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Store owns the stories state. All mutation goes through Dispatch.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners []listenerEntry
	nextID    uint64
	bus       eventbus.EventBus
}

// NewStore creates a store holding InitialState. bus may be nil.
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{
		state: InitialState(),
		bus:   bus,
	}
}

// State returns the most recently committed state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces action into the current state, notifies listeners and returns the
// new state
func (s *Store) Dispatch(action Action) State {
	prev, next, listeners := s.commit(action)

	if _, ok := action.(Remove); !ok {
		log.Printf("Stories: %s -> loading=%t error=%t items=%d",
			ActionName(action), next.IsLoading, next.IsError, len(next.Data))
	}

	for _, l := range listeners {
		l.fn(next)
	}

	if r, ok := action.(Remove); ok && s.bus != nil && len(prev.Data) != len(next.Data) {
		s.bus.Publish(eventbus.StoryRemovedEvent{
			ObjectID:  r.Story.ObjectID,
			Remaining: len(next.Data),
		})
	}

	return next
}

func (s *Store) commit(action Action) (State, State, []listenerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.state
	s.state = Reduce(prev, action)
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	return prev, s.state, listeners
}

// Subscribe registers a listener and returns a function that removes it
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, e := range s.listeners {
			if e.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
