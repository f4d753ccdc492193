package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in ov. It satisfies tea.ExecCommand so Bubble Tea
// releases the terminal for the duration of the session.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Leave the alt screen clean when ov exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// openPager returns a command that pages lines through ov
func openPager(lines []string) tea.Cmd {
	cmd := &pagerCommand{content: strings.Join(lines, "\n") + "\n"}
	return tea.Exec(cmd, func(err error) tea.Msg {
		return pagerExitMsg{err: err}
	})
}
