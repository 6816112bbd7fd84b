package query

import (
	"log"
	"sync"

	"storyseek/internal/eventbus"
)

// Builder holds the committed fetch target. It only changes on Confirm, never on raw
// input edits.
type Builder struct {
	mu       sync.RWMutex
	endpoint string
	term     string
	target   string
	bus      eventbus.EventBus
}

// NewBuilder creates a builder whose target is endpoint+term
func NewBuilder(endpoint, term string) *Builder {
	return &Builder{
		endpoint: endpoint,
		term:     term,
		target:   endpoint + term,
	}
}

// NewBuilderWithBus creates a builder that publishes QueryConfirmedEvent on confirm
func NewBuilderWithBus(endpoint, term string, bus eventbus.EventBus) *Builder {
	b := NewBuilder(endpoint, term)
	b.bus = bus
	return b
}

// Current returns the committed target
func (b *Builder) Current() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.target
}

// Term returns the term encoded in the committed target
func (b *Builder) Term() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.term
}

// Endpoint returns the fixed endpoint prefix
func (b *Builder) Endpoint() string {
	return b.endpoint
}

// Confirm commits term as the new target. changed reports whether the target value
// differs from the previous one. Empty terms are accepted.
func (b *Builder) Confirm(term string) (target string, changed bool) {
	b.mu.Lock()
	next := b.endpoint + term
	changed = next != b.target
	b.term = term
	b.target = next
	b.mu.Unlock()

	log.Printf("Query: confirmed %q (changed=%t)", term, changed)
	if b.bus != nil {
		b.bus.Publish(eventbus.QueryConfirmedEvent{Term: term, Target: next, Changed: changed})
	}
	return next, changed
}
