package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"storyseek/internal/domain"
	"storyseek/internal/stories"
	"storyseek/internal/ui/input/types"
)

func ctxWith(n int, loading bool) *ModelContext {
	data := make([]domain.Story, n)
	return &ModelContext{State: stories.State{Data: data, IsLoading: loading}}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartsInSearchModeWithTerm(t *testing.T) {
	h := New("React")

	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "React", h.TextInput().Value())
	assert.True(t, h.TextInput().Focused())
}

func TestTypingEmitsUpdateText(t *testing.T) {
	h := New("Go")

	actions, _ := h.HandleKey(key("!"), ctxWith(0, false))

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Go!"}}, actions)
}

func TestCursorMovementEmitsNothing(t *testing.T) {
	h := New("Go")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctxWith(0, false))

	assert.Empty(t, actions)
}

func TestEnterSubmitsAndLeavesSearch(t *testing.T) {
	h := New("rust")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctxWith(0, false))

	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "rust", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.False(t, h.TextInput().Focused())
	assert.Equal(t, "rust", h.TextInput().Value(), "submitted text stays in the box")
}

func TestEscDoesNotSubmit(t *testing.T) {
	h := New("rust")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctxWith(0, false))

	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNormalModeKeys(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		items   int
		loading bool
		want    []types.Action
	}{
		{"remove", key("d"), 3, false, []types.Action{types.RemoveStoryAction{Index: -1}}},
		{"remove with delete", tea.KeyMsg{Type: tea.KeyDelete}, 3, false, []types.Action{types.RemoveStoryAction{Index: -1}}},
		{"remove on empty table", key("d"), 0, false, nil},
		{"open", key("o"), 1, false, []types.Action{types.OpenStoryAction{}}},
		{"retry", key("r"), 0, false, []types.Action{types.RetryAction{}}},
		{"retry while loading", key("r"), 0, true, nil},
		{"down", key("j"), 3, false, []types.Action{types.NavigateAction{Direction: "down"}}},
		{"help", key("?"), 0, false, []types.Action{types.ToggleHelpAction{}}},
		{"quit", key("q"), 0, false, []types.Action{types.QuitAction{}}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, 0, false, []types.Action{types.QuitAction{Force: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New("")
			h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctxWith(tt.items, tt.loading))

			actions, _ := h.HandleKey(tt.msg, ctxWith(tt.items, tt.loading))
			assert.Equal(t, tt.want, actions)
		})
	}
}

func TestSlashReturnsToSearch(t *testing.T) {
	h := New("go")
	h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctxWith(0, false))

	actions, cmd := h.HandleKey(key("/"), ctxWith(0, false))

	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
	assert.Equal(t, "go", h.TextInput().Value(), "entering search never resets the text")
}
