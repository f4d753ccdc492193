package modes

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"poemview/internal/ui/input/types"
)

// GoToMode reads a page number
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	return &GoToMode{
		TextInputMode: NewTextInputMode(types.ModeGoTo, "goto", "Go to page: ", ti),
	}
}

func (m *GoToMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return nil, true // swallow
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
