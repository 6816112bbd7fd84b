package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"storyseek/internal/config"
	"storyseek/internal/eventbus"
	"storyseek/internal/fetch"
	"storyseek/internal/query"
	"storyseek/internal/stories"
	"storyseek/internal/termstore"
	"storyseek/internal/ui/input"
	inputtypes "storyseek/internal/ui/input/types"
	"storyseek/internal/ui/views"
)

const (
	defaultWidth = 80
	// rows taken by everything around the table: padding, header, search bar, rule,
	// loading line, status and help
	chromeHeight = 16
	minTableRows = 3
)

// Services are the collaborators the model drives
type Services struct {
	Bus     eventbus.EventBus
	Terms   *termstore.Store
	Query   *query.Builder
	Stories *stories.Store
	Fetcher *fetch.Orchestrator
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config

	terms   *termstore.Store
	query   *query.Builder
	stories *stories.Store
	fetcher *fetch.Orchestrator

	// UI-specific state
	width         int
	height        int
	help          help.Model
	searchKeys    searchKeys
	tableKeys     tableKeys
	table         table.Model
	spinner       spinner.Model
	statusMessage string
	rowsStale     bool // set by the stories listener, cleared by syncRows
	inPagerMode   bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The search input starts with the persisted term.
func NewModel(ctx context.Context, cfg *config.Config, svc Services) *Model {
	renderer := views.NewRenderer()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	)

	t := table.New(
		table.WithColumns(views.Columns(defaultWidth-4, cfg.UI.ShowURL)),
		table.WithHeight(cfg.UI.TableHeight),
		table.WithStyles(renderer.Styles().Table),
	)

	m := &Model{
		ctx:          ctx,
		bus:          svc.Bus,
		config:       cfg,
		terms:        svc.Terms,
		query:        svc.Query,
		stories:      svc.Stories,
		fetcher:      svc.Fetcher,
		help:         help.New(),
		searchKeys:   newSearchKeys(),
		tableKeys:    newTableKeys(),
		table:        t,
		spinner:      sp,
		rowsStale:    true,
		renderer:     renderer,
		inputHandler: input.New(svc.Terms.Value()),
		pager:        NewPager(),
	}

	m.stories.Subscribe(func(stories.State) {
		m.rowsStale = true
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init kicks off the initial fetch for the committed query
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.inputHandler.Init(),
		m.spinner.Tick,
		m.startFetch(m.fetcher.Observe(m.query.Current())),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.rowsStale {
		m.syncRows()
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncFocus()
		return tea.Batch(cmds...)

	case fetchDoneMsg:
		m.fetcher.Complete(msg.pending, msg.outcome)
		return nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return nil

	case spinner.TickMsg:
		// Don't keep ticking while ov owns the terminal
		if m.inPagerMode {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Story pager failed for %s: %v", msg.objectID, msg.err)
			m.reportError("could not open story details", msg.err)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m.spinner.Tick

	default:
		// Cursor blink and friends
		return m.inputHandler.Update(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		// Typing only persists the term, it never fetches
		m.terms.SetValue(a.Text)
		return nil

	case inputtypes.SubmitTextAction:
		_, changed := m.query.Confirm(a.Text)
		if !changed {
			m.statusMessage = "Search unchanged, press r to search again"
			return nil
		}
		return m.startFetch(m.fetcher.Observe(m.query.Current()))

	case inputtypes.RetryAction:
		m.statusMessage = ""
		return m.startFetch(m.fetcher.Refetch(m.query.Current()))

	case inputtypes.RemoveStoryAction:
		m.removeStory(a.Index)
		return nil

	case inputtypes.OpenStoryAction:
		return m.openStory()

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)
		return nil

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case inputtypes.QuitAction:
		log.Printf("Quit requested (force=%t)", a.Force)
		return tea.Quit
	}
	return nil
}

// startFetch turns a pending fetch into a command. The request runs off the Update
// loop and its outcome comes back as a fetchDoneMsg.
func (m *Model) startFetch(p *fetch.Pending) tea.Cmd {
	if p == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return fetchDoneMsg{pending: p, outcome: p.Do(ctx)}
	}
}

func (m *Model) removeStory(index int) {
	if index < 0 {
		index = m.table.Cursor()
	}
	data := m.stories.State().Data
	if index < 0 || index >= len(data) {
		return
	}
	m.stories.Dispatch(stories.Remove{Story: data[index]})
}

func (m *Model) openStory() tea.Cmd {
	data := m.stories.State().Data
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(data) {
		return nil
	}
	story := data[idx]

	if m.program == nil {
		m.statusMessage = fmt.Sprintf("%s by %s, %d points", story.DisplayTitle(), story.Author, story.Points)
		return nil
	}

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowStory(story)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{objectID: story.ObjectID, err: err}
	}
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.table.MoveUp(1)
	case "down":
		m.table.MoveDown(1)
	case "pageup":
		m.table.MoveUp(m.table.Height())
	case "pagedown":
		m.table.MoveDown(m.table.Height())
	case "home":
		m.table.GotoTop()
	case "end":
		m.table.GotoBottom()
	}
}

// handleEvent turns domain events into status messages. Outcomes of requests that no
// longer serve the committed query are ignored.
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.FetchSucceededEvent:
		if !m.fetcher.IsCurrent(e.RequestID) {
			log.Printf("Ignoring stale result of %s", e.RequestID)
			return
		}
		m.statusMessage = fmt.Sprintf("Found %d stories", e.Count)
	case eventbus.FetchFailedEvent:
		if !m.fetcher.IsCurrent(e.RequestID) {
			log.Printf("Ignoring stale failure of %s", e.RequestID)
			return
		}
		m.statusMessage = "Search failed, press r to retry"
	case eventbus.StoryRemovedEvent:
		m.statusMessage = fmt.Sprintf("Removed story, %d left", e.Remaining)
	case eventbus.ErrorEvent:
		m.statusMessage = fmt.Sprintf("Error: %s", e.Message)
	}
}

// reportError surfaces a non-fatal error in the status bar, through the bus when
// there is one
func (m *Model) reportError(message string, err error) {
	if m.bus == nil {
		m.statusMessage = "Error: " + message
		return
	}
	m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// Main style pads two cells on each side
	m.table.SetColumns(views.Columns(width-4, m.config.UI.ShowURL))
	m.table.SetWidth(width - 4)

	rows := height - chromeHeight
	if m.config.UI.TableHeight > 0 && m.config.UI.TableHeight < rows {
		rows = m.config.UI.TableHeight
	}
	if rows < minTableRows {
		rows = minTableRows
	}
	m.table.SetHeight(rows)
}

// syncRows rebuilds the table from the committed stories state, keeping the cursor
// on the same position where possible
func (m *Model) syncRows() {
	m.rowsStale = false
	data := m.stories.State().Data

	cursor := m.table.Cursor()
	m.table.SetRows(views.Rows(data, m.config.UI.ShowURL))
	if cursor >= len(data) {
		cursor = len(data) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.table.SetCursor(cursor)
}

func (m *Model) syncFocus() {
	if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:  m.stories.State(),
		Cursor: m.table.Cursor(),
		Term:   m.inputHandler.TextInput().Value(),
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	st := m.stories.State()
	searching := m.inputHandler.CurrentMode() == inputtypes.ModeSearch

	var helpView string
	if searching {
		helpView = m.help.View(m.searchKeys)
	} else {
		helpView = m.help.View(m.tableKeys)
	}

	return m.renderer.Render(views.ViewState{
		Width:         width,
		Height:        m.height,
		Subject:       m.config.UI.Subject,
		Title:         m.config.UI.Title,
		SearchInput:   m.inputHandler.TextInput().View(),
		SearchFocused: searching,
		CommittedTerm: m.query.Term(),
		IsLoading:     st.IsLoading,
		IsError:       st.IsError,
		Spinner:       m.spinner.View(),
		Table:         m.table.View(),
		StoryCount:    len(st.Data),
		StatusMessage: m.statusMessage,
		HelpView:      helpView,
	})
}
