package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"poemview/internal/ui/input/types"
)

const panStep = 4

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Prompt() string {
	return ""
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Prev), key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Key: msg.String()}}, true

	case key.Matches(msg, k.First):
		return []types.Action{types.GoToAction{Page: 1}}, true

	case key.Matches(msg, k.Last):
		if ctx.TotalPages() == 0 {
			return nil, true
		}
		return []types.Action{types.GoToAction{Page: ctx.TotalPages()}}, true

	case key.Matches(msg, k.GoTo):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, k.Match):
		return []types.Action{types.NextMatchAction{}}, true

	case key.Matches(msg, k.ScrollUp):
		return []types.Action{types.ScrollAction{DY: -1}}, true

	case key.Matches(msg, k.ScrollDn):
		return []types.Action{types.ScrollAction{DY: 1}}, true

	case key.Matches(msg, k.PageUp):
		return []types.Action{types.ScrollAction{DY: -1, Page: true}}, true

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.ScrollAction{DY: 1, Page: true}}, true

	case key.Matches(msg, k.PanLeft):
		return []types.Action{types.ScrollAction{DX: -panStep}}, true

	case key.Matches(msg, k.PanRight):
		return []types.Action{types.ScrollAction{DX: panStep}}, true

	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true

	case key.Matches(msg, k.Cover):
		return []types.Action{types.ShowCoverAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
