package fetch

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"storyseek/internal/eventbus"
	"storyseek/internal/hn"
	"storyseek/internal/stories"
)

// Orchestrator starts one fetch per distinct target and drives the stories state
// through its lifecycle.
//
// Observe dispatches FetchInit and hands back a Pending; the caller runs Pending.Do
// wherever blocking is acceptable and passes the resulting action to Complete on the
// same sequencing domain as every other Dispatch. In-flight requests are never
// cancelled, so when targets change quickly the last response to arrive wins. At most
// one request per target is outstanding at a time.
type Orchestrator struct {
	client hn.Client
	store  stories.Dispatcher
	bus    eventbus.EventBus

	mu       sync.Mutex
	last     string
	started  bool
	inflight map[string]string // target -> request ID, until Complete
	current  string            // request serving the last target
}

// Pending is a fetch that has been announced with FetchInit but not yet performed
type Pending struct {
	RequestID string
	Target    string
	client    hn.Client
}

// NewOrchestrator creates an orchestrator. bus may be nil.
func NewOrchestrator(client hn.Client, store stories.Dispatcher, bus eventbus.EventBus) *Orchestrator {
	return &Orchestrator{
		client:   client,
		store:    store,
		bus:      bus,
		inflight: make(map[string]string),
	}
}

// Observe starts a fetch sequence when target differs from the last fetched target.
// The first call always starts one. It returns nil when there is nothing to do,
// including when a request for target is still outstanding.
func (o *Orchestrator) Observe(target string) *Pending {
	o.mu.Lock()
	if o.started && target == o.last {
		o.mu.Unlock()
		return nil
	}
	p := o.reserve(target)
	o.mu.Unlock()

	return o.begin(p)
}

// Refetch starts a fetch for target even if it is unchanged. It is meant for an
// explicit user retry, never for automatic use. It returns nil while a request for
// target is still outstanding.
func (o *Orchestrator) Refetch(target string) *Pending {
	o.mu.Lock()
	p := o.reserve(target)
	o.mu.Unlock()

	return o.begin(p)
}

// IsCurrent reports whether requestID is the request serving the last target.
// Lifecycle events from any other request are stale.
func (o *Orchestrator) IsCurrent(requestID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.started && requestID == o.current
}

// LastTarget returns the most recently fetched target
func (o *Orchestrator) LastTarget() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// reserve makes target the last target and records a new request for it, or returns
// nil when one is already outstanding. Callers hold o.mu.
func (o *Orchestrator) reserve(target string) *Pending {
	o.started = true
	o.last = target

	if id, ok := o.inflight[target]; ok {
		o.current = id
		log.Printf("Fetch[%s]: still in flight for %s", id, target)
		return nil
	}

	p := &Pending{
		RequestID: uuid.NewString(),
		Target:    target,
		client:    o.client,
	}
	o.inflight[target] = p.RequestID
	o.current = p.RequestID
	return p
}

func (o *Orchestrator) begin(p *Pending) *Pending {
	if p == nil {
		return nil
	}

	log.Printf("Fetch[%s]: starting %s", p.RequestID, p.Target)
	o.store.Dispatch(stories.FetchInit{})
	if o.bus != nil {
		o.bus.Publish(eventbus.FetchStartedEvent{RequestID: p.RequestID, Target: p.Target})
	}
	return p
}

// Do performs the request and returns the outcome action. The error cause is logged
// and dropped.
func (p *Pending) Do(ctx context.Context) stories.Action {
	hits, err := p.client.Search(ctx, p.Target)
	if err != nil {
		log.Printf("Fetch[%s]: failed: %v", p.RequestID, err)
		return stories.FetchFailure{}
	}
	log.Printf("Fetch[%s]: received %d hits", p.RequestID, len(hits))
	return stories.FetchSuccess{Payload: hits}
}

// Complete applies the outcome of p and releases its target for new requests
func (o *Orchestrator) Complete(p *Pending, outcome stories.Action) stories.State {
	o.mu.Lock()
	if o.inflight[p.Target] == p.RequestID {
		delete(o.inflight, p.Target)
	}
	o.mu.Unlock()

	next := o.store.Dispatch(outcome)
	if o.bus == nil {
		return next
	}

	switch outcome.(type) {
	case stories.FetchSuccess:
		o.bus.Publish(eventbus.FetchSucceededEvent{RequestID: p.RequestID, Count: len(next.Data)})
	case stories.FetchFailure:
		o.bus.Publish(eventbus.FetchFailedEvent{RequestID: p.RequestID})
	}
	return next
}

// Run observes target and, if a fetch starts, performs it and applies the outcome
// before returning. It reports whether a fetch happened.
func (o *Orchestrator) Run(ctx context.Context, target string) bool {
	p := o.Observe(target)
	if p == nil {
		return false
	}
	o.Complete(p, p.Do(ctx))
	return true
}
