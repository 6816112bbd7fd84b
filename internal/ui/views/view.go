package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Subject       string
	Title         string
	SearchInput   string // rendered text input
	SearchFocused bool
	CommittedTerm string
	IsLoading     bool
	IsError       bool
	Spinner       string
	Table         string // rendered table
	StoryCount    int
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer styles, e.g. for the table component
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Subject + state.Title))
	content.WriteString("\n")
	content.WriteString(r.renderSearchBar(state))
	content.WriteString("\n")

	ruleWidth := state.Width - 4
	if ruleWidth < 10 {
		ruleWidth = 10
	}
	content.WriteString(r.styles.Rule.Render(strings.Repeat("─", ruleWidth)))
	content.WriteString("\n")

	if state.IsError {
		content.WriteString(r.styles.StatusError.Render("Something went wrong ..."))
		content.WriteString("\n")
	}

	if state.IsLoading {
		content.WriteString(r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading ...", state.Spinner)))
		content.WriteString("\n")
	}

	switch {
	case state.StoryCount > 0:
		content.WriteString(state.Table)
	case !state.IsLoading && !state.IsError:
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No stories for %q", state.CommittedTerm)))
	}
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString(r.renderStatus(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderSearchBar(state ViewState) string {
	box := r.styles.Input
	if state.SearchFocused {
		box = r.styles.InputFocused
	}

	inputWidth := state.Width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}

	label := r.styles.Label.Render("Search:")
	input := box.Width(inputWidth).Render(state.SearchInput)
	button := r.styles.Button.Render("Submit ⏎")

	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", input, button)
}

func (r *Renderer) renderStatus(msg string) string {
	switch {
	case strings.HasPrefix(msg, "Error"), strings.Contains(msg, "failed"):
		return r.styles.StatusError.MarginTop(1).Render(msg)
	case strings.HasPrefix(msg, "Found"):
		return r.styles.StatusSuccess.MarginTop(1).Render(msg)
	default:
		return r.styles.Status.Render(msg)
	}
}
