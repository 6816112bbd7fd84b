package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTermChanged    EventType = "TermChanged"
	EventQueryConfirmed EventType = "QueryConfirmed"
	EventFetchStarted   EventType = "FetchStarted"
	EventFetchSucceeded EventType = "FetchSucceeded"
	EventFetchFailed    EventType = "FetchFailed"
	EventStoryRemoved   EventType = "StoryRemoved"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TermChangedEvent is emitted when the raw search term is edited
type TermChangedEvent struct {
	Term string
}

func (e TermChangedEvent) Type() EventType { return EventTermChanged }

// QueryConfirmedEvent is emitted when a term is committed as the fetch target
type QueryConfirmedEvent struct {
	Term    string
	Target  string
	Changed bool // false when the target already encoded this term
}

func (e QueryConfirmedEvent) Type() EventType { return EventQueryConfirmed }

// FetchStartedEvent is emitted when a fetch sequence begins
type FetchStartedEvent struct {
	RequestID string
	Target    string
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when a fetch result has been applied
type FetchSucceededEvent struct {
	RequestID string
	Count     int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when a fetch attempt has failed.
// The cause is intentionally not carried.
type FetchFailedEvent struct {
	RequestID string
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// StoryRemovedEvent is emitted after a story is removed from the result set
type StoryRemovedEvent struct {
	ObjectID  string
	Remaining int
}

func (e StoryRemovedEvent) Type() EventType { return EventStoryRemoved }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
