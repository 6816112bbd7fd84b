package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"storyseek/internal/domain"
)

// discussionURL is where the Hacker News thread for a story lives
const discussionURL = "https://news.ycombinator.com/item?id="

// Pager shows long content in the ov pager, handing the terminal back and forth
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new Pager instance
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowStory opens the story details in ov
func (p *Pager) ShowStory(s domain.Story) error {
	return p.show(storyDetails(s))
}

func (p *Pager) show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// storyDetails renders the plain-text detail page for a story
func storyDetails(s domain.Story) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", s.DisplayTitle())
	fmt.Fprintf(b, "%s\n\n", strings.Repeat("=", len([]rune(s.DisplayTitle()))))

	url := s.URL
	if url == "" {
		url = "(none)"
	}
	fmt.Fprintf(b, "URL:            %s\n", url)
	fmt.Fprintf(b, "Author:         %s\n", s.Author)
	fmt.Fprintf(b, "Total Comments: %d\n", s.NumComments)
	fmt.Fprintf(b, "Points:         %d\n", s.Points)
	fmt.Fprintf(b, "Discussion:     %s%s\n", discussionURL, s.ObjectID)
	fmt.Fprintf(b, "Object ID:      %s\n\n", s.ObjectID)
	b.WriteString("Press q to return.\n")
	return b.String()
}
