package input

import (
	"storyseek/internal/stories"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  stories.State
	Cursor int
	Term   string
}

// CurrentIndex returns the selected table row
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalItems returns the number of visible stories
func (c *ModelContext) TotalItems() int {
	return len(c.State.Data)
}

// IsLoading reports whether a fetch is in flight
func (c *ModelContext) IsLoading() bool {
	return c.State.IsLoading
}

// SearchTerm returns the raw search input
func (c *ModelContext) SearchTerm() string {
	return c.Term
}
