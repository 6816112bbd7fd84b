package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"storyseek/internal/ui/input/types"
)

// NormalMode drives the story table
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyDelete:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.RemoveStoryAction{Index: -1}}, true
		}
		return nil, false

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenStoryAction{}}, true
		}
		return nil, false

	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "d", "x":
		if ctx.TotalItems() > 0 {
			return []types.Action{types.RemoveStoryAction{Index: -1}}, true
		}
		return nil, false

	case "o":
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenStoryAction{}}, true
		}
		return nil, false

	case "/", "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "r":
		// No point stacking a retry on a request that is still running
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.RetryAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
