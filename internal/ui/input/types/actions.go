package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction confirms the text as the new search
type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Story actions
type RemoveStoryAction struct {
	Index int // -1 for current
}

func (a RemoveStoryAction) Type() string { return "remove_story" }

type OpenStoryAction struct{}

func (a OpenStoryAction) Type() string { return "open_story" }

// RetryAction re-runs the committed search even though it has not changed
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
