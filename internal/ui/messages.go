package ui

import (
	"storyseek/internal/eventbus"
	"storyseek/internal/fetch"
	"storyseek/internal/stories"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// fetchDoneMsg carries the outcome of a fetch back onto the Update loop
type fetchDoneMsg struct {
	pending *fetch.Pending
	outcome stories.Action
}

// pagerMsg reports that the story pager has closed
type pagerMsg struct {
	objectID string
	err      error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
