package types

// Page navigation actions
type NavigateAction struct {
	Key string // the raw key, interpreted by the coordinator
}

func (a NavigateAction) Type() string { return "navigate" }

type GoToAction struct {
	Page int
}

func (a GoToAction) Type() string { return "goto" }

// NextMatchAction jumps to the next search match
type NextMatchAction struct{}

func (a NextMatchAction) Type() string { return "next_match" }

// ScrollAction pans the text panel
type ScrollAction struct {
	DX, DY float64
	Page   bool // DY counts panel heights rather than lines
}

func (a ScrollAction) Type() string { return "scroll" }

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

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ShowCoverAction struct{}

func (a ShowCoverAction) Type() string { return "show_cover" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
