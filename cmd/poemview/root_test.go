package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemview/internal/config"
	"poemview/internal/content"
	"poemview/internal/domain"
	"poemview/internal/eventbus"
	"poemview/internal/history"
	"poemview/internal/store"
	"poemview/internal/ui"
)

func TestInitialPage(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(history.KeyLastPage, "4"))

	tests := []struct {
		name string
		opts options
		want int
	}{
		{"default", options{}, 1},
		{"explicit", options{page: 3}, 3},
		{"explicit out of range", options{page: 9}, 1},
		{"resume", options{resume: true}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, initialPage(tt.opts, st, 5))
		})
	}
}

func TestResumeWithoutHistory(t *testing.T) {
	assert.Equal(t, 1, initialPage(options{resume: true}, store.NewMemoryStore(), 5))
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "state-dir", "page", "resume", "reset-hint", "no-cover", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	cmd.SetArgs([]string{"a", "b"})
	cmd.SetOut(nil)
	assert.Error(t, cmd.Execute(), "at most one directory")
}

func TestRunFailsOnMissingContent(t *testing.T) {
	state := t.TempDir()
	cfgPath := state + "/config.toml"

	err := run(t.Context(), state+"/nowhere", options{configPath: cfgPath, stateDir: state})
	assert.Error(t, err)
}

func TestShowCover(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.True(t, showCover(cfg, options{}))
	assert.False(t, showCover(cfg, options{page: 2}))
	assert.False(t, showCover(cfg, options{resume: true}))
	assert.False(t, showCover(cfg, options{noCover: true}))

	cfg.UI.Cover = false
	assert.False(t, showCover(cfg, options{}))
}

// collect runs cmd, expanding batches, and gives up on commands that block
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("command did not return")
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestAssembleDeliversContentLoaded(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	lib := content.NewLibrary([]domain.ContentItem{
		{Title: "One", Body: "a"},
		{Title: "Two", Body: "b"},
	})

	cfg := config.DefaultConfig()
	cfg.UI.MarkdownStyle = "notty"

	v, err := assemble(cfg, options{page: 1}, lib, store.NewMemoryStore(), bus, nil)
	require.NoError(t, err)
	defer v.recorder.Stop()
	defer v.model.Close()

	var loaded *eventbus.ContentLoadedEvent
	for _, msg := range collect(t, v.model.Init()) {
		if e, ok := msg.(ui.EventMsg); ok {
			if cl, ok := e.Event.(eventbus.ContentLoadedEvent); ok {
				loaded = &cl
			}
		}
	}
	require.NotNil(t, loaded, "load summary published during startup must reach the model")
	assert.Equal(t, 2, loaded.Count)
	assert.Equal(t, 1, v.coord.Navigation.CurrentIndex())
}
