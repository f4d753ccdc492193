package ui

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"poemview/internal/config"
	"poemview/internal/content"
	"poemview/internal/eventbus"
	"poemview/internal/ui/coordinator"
	"poemview/internal/ui/handlers"
	"poemview/internal/ui/input"
	inputtypes "poemview/internal/ui/input/types"
	"poemview/internal/ui/panel"
	"poemview/internal/ui/services/gesture"
	"poemview/internal/ui/services/search"
	"poemview/internal/ui/views"
)

const (
	statusTimeout = 3 * time.Second
	frameRate     = 30
	// hint opacity below this is treated as gone
	fadeEpsilon = 0.02
	// bus events queued for the UI before they are read
	eventQueueSize = 64
)

// Deps are the collaborators the model drives
type Deps struct {
	Config      *config.Config
	Bus         eventbus.EventBus
	Logger      *slog.Logger
	Library     *content.Library
	Coordinator *coordinator.Coordinator
	Keys        input.KeyMap
	ShowCover   bool // start on the title screen
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *slog.Logger

	library *content.Library
	coord   *coordinator.Coordinator
	search  *search.Service
	events  *handlers.EventHandler

	panel        *panel.Panel
	body         *views.BodyRenderer
	renderer     *views.Renderer
	inputHandler *input.Handler
	keys         input.KeyMap
	help         help.Model

	width, height int
	layout        views.Layout
	renderedPage  int
	showHelp      bool
	onCover       bool

	status    string
	statusErr bool
	statusSeq int

	spring       harmonica.Spring
	hintOpacity  float64
	hintVelocity float64
	animating    bool

	queue       chan eventbus.DomainEvent
	done        chan struct{}
	closed      bool
	unsubscribe []func()
	program     *tea.Program
}

// NewModel creates a new UI model
func NewModel(d Deps) (*Model, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	renderer := views.NewRenderer()
	body, err := views.NewBodyRenderer(renderer.Styles(), d.Config.UI.MarkdownStyle)
	if err != nil {
		return nil, err
	}

	m := &Model{
		bus:          d.Bus,
		config:       d.Config,
		logger:       logger.With("component", "ui"),
		library:      d.Library,
		coord:        d.Coordinator,
		search:       search.NewService(d.Library.Collection(), logger),
		events:       handlers.NewEventHandler(),
		panel:        panel.New(),
		body:         body,
		renderer:     renderer,
		inputHandler: input.New(d.Keys),
		keys:         d.Keys,
		help:         help.New(),
		spring:       harmonica.NewSpring(harmonica.FPS(frameRate), 6.0, 1.0),
		hintOpacity:  1,
		onCover:      d.ShowCover && d.Library.Count() > 0,
		queue:        make(chan eventbus.DomainEvent, eventQueueSize),
		done:         make(chan struct{}),
	}
	m.subscribe()
	return m, nil
}

// subscribe queues bus events for the UI from construction on, so events
// published before the program starts are not lost
func (m *Model) subscribe() {
	if m.bus == nil {
		return
	}
	for _, t := range m.events.Subscribed() {
		m.unsubscribe = append(m.unsubscribe,
			m.bus.Subscribe(t, func(e eventbus.DomainEvent) {
				select {
				case m.queue <- e:
				default:
					m.logger.Warn("event queue full, dropping event", "type", e.Type())
				}
			}),
		)
	}
}

// waitForEvent delivers the next queued bus event as an EventMsg
func (m *Model) waitForEvent() tea.Cmd {
	if m.bus == nil {
		return nil
	}
	queue, done := m.queue, m.done
	return func() tea.Msg {
		select {
		case e := <-queue:
			return EventMsg{Event: e}
		case <-done:
			return nil
		}
	}
}

// SetProgram connects asynchronous sources to the running program
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.coord.Hint.OnFade(func() {
		p.Send(HintFadedMsg{})
	})
}

// Close detaches the model from the bus and unmounts the coordinator
func (m *Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
	if !m.closed {
		m.closed = true
		close(m.done)
	}
	m.coord.Unmount()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("poemview"), m.waitForEvent())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case HintFadedMsg:
		if !m.animating {
			m.animating = true
			cmd = frameTick()
		}

	case frameMsg:
		cmd = m.stepFade()

	case pagerExitMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", "error", msg.err)
			cmd = m.setStatus("pager failed: "+msg.err.Error(), true)
		}

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}

	case EventMsg:
		if st, ok := m.events.HandleEvent(msg.Event); ok {
			cmd = m.setStatus(st.Text, st.IsErr)
		}
		cmd = tea.Batch(cmd, m.waitForEvent())

	default:
		cmd = m.inputHandler.Update(msg)
	}

	m.syncPage()
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	if m.coord.Mounted() {
		m.coord.Resize(width)
	} else {
		m.coord.Mount(width)
	}
	m.layout = views.ComputeLayout(width, height, m.coord.Compact())
	inner := m.layout.PanelInner()
	m.panel.SetSize(inner.W, inner.H)
}

// CurrentPage implements input.Context
func (m *Model) CurrentPage() int {
	return m.coord.Navigation.CurrentIndex()
}

// TotalPages implements input.Context
func (m *Model) TotalPages() int {
	return m.coord.Navigation.Total()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.onCover && !m.showHelp {
		return m.handleCoverKey(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		case "ctrl+c":
			return m.quit()
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.apply(action))
	}
	return tea.Batch(cmds...)
}

// handleCoverKey opens the first poem on enter or a forward key
func (m *Model) handleCoverKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case msg.Type == tea.KeyEnter, key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.PageDown):
		m.leaveCover()
	}
	return nil
}

// leaveCover shows the first poem, as the title screen links to it
func (m *Model) leaveCover() {
	m.onCover = false
	if m.CurrentPage() != 1 {
		_, _ = m.coord.RequestGoTo(1)
	}
}

func (m *Model) showCover() {
	if m.TotalPages() == 0 {
		return
	}
	m.inputHandler.Reset()
	m.coord.PointerUp()
	m.onCover = true
}

func (m *Model) apply(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.coord.Key(a.Key)

	case inputtypes.GoToAction:
		_, _ = m.coord.RequestGoTo(a.Page)

	case inputtypes.ScrollAction:
		dy := a.DY
		if a.Page {
			_, h := m.panel.Size()
			dy *= float64(max(h-1, 1))
		}
		m.panel.ScrollBy(a.DX, dy)

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.NextMatchAction:
		if match, ok := m.search.Next(); ok {
			_, _ = m.coord.RequestGoTo(match.Page)
			return m.setStatus(m.matchStatus(match), false)
		}

	case inputtypes.OpenPagerAction:
		if lines := m.pagerLines(); len(lines) > 0 {
			return openPager(lines)
		}

	case inputtypes.ShowCoverAction:
		m.showCover()

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	text := strings.TrimSpace(a.Text)
	if text == "" {
		return nil
	}

	switch a.Mode {
	case inputtypes.ModeGoTo:
		page, err := strconv.Atoi(text)
		total := m.TotalPages()
		if err != nil || page < 1 || page > total {
			return m.setStatus(fmt.Sprintf("no page %s (1-%d)", text, total), true)
		}
		_, _ = m.coord.RequestGoTo(page)

	case inputtypes.ModeSearch:
		matches := m.search.Search(text)
		if len(matches) == 0 {
			return m.setStatus(fmt.Sprintf("no poem matches %q", text), true)
		}
		_, _ = m.coord.RequestGoTo(matches[0].Page)
		return m.setStatus(m.matchStatus(matches[0]), false)
	}
	return nil
}

func (m *Model) matchStatus(match search.Match) string {
	return fmt.Sprintf("%s (%d matches, n for next)", match.Title, m.search.MatchCount())
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	l := m.layout
	now := m.coord.Now()

	if m.onCover {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.leaveCover()
		}
		return
	}

	if tea.MouseEvent(msg).IsWheel() {
		if !l.Panel.Contains(msg.X, msg.Y) {
			return
		}
		dx, dy := m.wheelDelta(msg)
		if !m.coord.Wheel(dx, dy, m.panel) {
			// no redirect outside the compact layout: the panel scrolls as it is
			m.panel.ScrollBy(dx, dy)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		snap := m.coord.Snapshot()
		switch {
		case l.HomeButton.Contains(msg.X, msg.Y):
			m.showCover()
		case l.PrevButton.Contains(msg.X, msg.Y):
			if snap.CanGoPrev {
				_, _ = m.coord.RequestPrev()
			}
		case l.NextButton.Contains(msg.X, msg.Y):
			if snap.CanGoNext {
				_, _ = m.coord.RequestNext()
			}
		case l.Backdrop.Contains(msg.X, msg.Y):
			m.coord.TouchStart(m.touch(msg), now)
		case l.Panel.Contains(msg.X, msg.Y):
			m.coord.PointerDown(float64(msg.X), m.panel)
		}

	case tea.MouseActionMotion:
		if m.coord.SwipeActive() {
			m.coord.TouchMove(m.touch(msg), now)
		}
		if m.coord.Dragging() {
			if l.Panel.Contains(msg.X, msg.Y) {
				m.coord.PointerMove(float64(msg.X))
			} else {
				m.coord.PointerLeave()
			}
		}

	case tea.MouseActionRelease:
		if m.coord.SwipeActive() {
			m.coord.TouchEnd(m.touch(msg), now)
		}
		m.coord.PointerUp()
	}
}

// touch converts a cell position into a single contact point in pixels
func (m *Model) touch(msg tea.MouseMsg) []gesture.Point {
	w := m.config.UI.CellWidthPx
	return []gesture.Point{{X: float64(msg.X) * w, Y: float64(msg.Y) * w}}
}

func (m *Model) wheelDelta(msg tea.MouseMsg) (float64, float64) {
	step := m.config.UI.WheelStep
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			return -step, 0
		}
		return 0, -step
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			return step, 0
		}
		return 0, step
	case tea.MouseButtonWheelLeft:
		return -step, 0
	case tea.MouseButtonWheelRight:
		return step, 0
	}
	return 0, 0
}

func (m *Model) stepFade() tea.Cmd {
	m.hintOpacity, m.hintVelocity = m.spring.Update(m.hintOpacity, m.hintVelocity, 0)
	if math.Abs(m.hintOpacity) < fadeEpsilon && math.Abs(m.hintVelocity) < fadeEpsilon {
		m.hintOpacity, m.hintVelocity = 0, 0
		m.animating = false
		return nil
	}
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

// syncPage loads the current poem into the panel after a page change
func (m *Model) syncPage() {
	page := m.CurrentPage()
	if page == m.renderedPage {
		return
	}
	m.renderedPage = page
	m.panel.SetContent(m.pageLines())
}

func (m *Model) pageLines() []string {
	item, ok := m.library.GetItem(m.CurrentPage())
	if !ok {
		return nil
	}
	lines, err := m.body.Lines(item)
	if err != nil {
		m.logger.Warn("falling back to plain text", "page", m.CurrentPage(), "error", err)
	}
	return lines
}

// pagerLines re-reads the poem file so edits made during the session show
// up in the pager; the loaded copy is used when there is no file to read
func (m *Model) pagerLines() []string {
	page := m.CurrentPage()
	item, err := m.library.LoadFile(page)
	if err != nil {
		m.logger.Debug("paging the loaded copy", "page", page, "error", err)
		return m.pageLines()
	}
	lines, err := m.body.Lines(item)
	if err != nil {
		m.logger.Warn("falling back to plain text", "page", page, "error", err)
	}
	return lines
}

// View renders the model
func (m *Model) View() string {
	snap := m.coord.Snapshot()
	state := views.ViewState{
		Layout:        m.layout,
		Page:          snap.CurrentIndex,
		CanGoPrev:     snap.CanGoPrev,
		CanGoNext:     snap.CanGoNext,
		HintVisible:   snap.HintVisible && m.hintOpacity > 0,
		HintOpacity:   m.hintOpacity,
		StatusMessage: m.status,
		StatusIsError: m.statusErr,
		ShowHelp:      m.showHelp,
		HelpModel:     m.help,
		Keys:          m.keys,
	}

	if m.onCover {
		state.Cover = true
		state.CoverTitle = m.config.Content.Title
		state.HintVisible = false
	} else if snap.Total == 0 {
		state.Empty = true
		state.EmptyReason = fmt.Sprintf("no poems found in %s", m.library.Dir())
	} else {
		state.PageLabel = fmt.Sprintf("%d / %d", snap.CurrentIndex, snap.Total)
		if item, ok := m.library.GetItem(snap.CurrentIndex); ok {
			state.Title = item.Title
			state.Caption = item.Image
		}
		state.PanelView = m.panel.View()
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.Prompt = m.inputHandler.Prompt()
		state.TextInput = ti.View()
	}

	return m.renderer.Render(state)
}
