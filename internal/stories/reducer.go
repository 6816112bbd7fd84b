package stories

import (
	"fmt"

	"storyseek/internal/domain"
)

// State is the displayed result set together with the fetch lifecycle flags.
// A State value is never modified after it has been returned by Reduce.
type State struct {
	Data      []domain.Story
	IsLoading bool
	IsError   bool
}

// InitialState returns the state the application starts with
func InitialState() State {
	return State{Data: []domain.Story{}}
}

// Action is a closed set of state transitions. Only types in this package implement it.
type Action interface {
	actionName() string
}

// FetchInit marks the start of a fetch
type FetchInit struct{}

// FetchSuccess replaces the result set with Payload
type FetchSuccess struct {
	Payload []domain.Story
}

// FetchFailure marks a failed fetch
type FetchFailure struct{}

// Remove drops every story sharing Story.ObjectID from the result set
type Remove struct {
	Story domain.Story
}

func (FetchInit) actionName() string    { return "FETCH_INIT" }
func (FetchSuccess) actionName() string { return "FETCH_SUCCESS" }
func (FetchFailure) actionName() string { return "FETCH_FAILURE" }
func (Remove) actionName() string       { return "REMOVE" }

// ActionName returns the wire-style tag of an action, for logging
func ActionName(a Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.actionName()
}

// UnknownActionError is the panic value raised by Reduce for an action it cannot handle
type UnknownActionError struct {
	Action Action
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("stories: unknown action %T", e.Action)
}

// Reduce computes the next state. It panics with *UnknownActionError when given an
// action it does not recognise.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case FetchInit:
		return State{Data: state.Data, IsLoading: true, IsError: false}

	case FetchSuccess:
		return State{Data: dedupe(a.Payload), IsLoading: false, IsError: false}

	case FetchFailure:
		return State{Data: state.Data, IsLoading: false, IsError: true}

	case Remove:
		return State{
			Data:      without(state.Data, a.Story.ObjectID),
			IsLoading: state.IsLoading,
			IsError:   state.IsError,
		}

	default:
		panic(&UnknownActionError{Action: action})
	}
}

// dedupe copies the payload, keeping the first story for each ObjectID
func dedupe(payload []domain.Story) []domain.Story {
	out := make([]domain.Story, 0, len(payload))
	seen := make(map[string]bool, len(payload))
	for _, s := range payload {
		if seen[s.ObjectID] {
			continue
		}
		seen[s.ObjectID] = true
		out = append(out, s)
	}
	return out
}

func without(data []domain.Story, objectID string) []domain.Story {
	out := make([]domain.Story, 0, len(data))
	for _, s := range data {
		if s.ObjectID != objectID {
			out = append(out, s)
		}
	}
	return out
}
