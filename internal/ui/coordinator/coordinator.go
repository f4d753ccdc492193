package coordinator

import (
	"log/slog"
	"time"

	"poemview/internal/eventbus"
	"poemview/internal/store"
	"poemview/internal/ui/services/gesture"
	"poemview/internal/ui/services/hint"
	"poemview/internal/ui/services/navigation"
)

// Options configures the interpreters and policies the coordinator wires up
type Options struct {
	InitialPage       int
	CompactBreakpoint int // widths below this are the compact layout
	Swipe             gesture.SwipeConfig
	DragGain          float64
	Hint              hint.Config
	PrevKeys          []string
	NextKeys          []string
}

// Snapshot is everything the presentation needs for one render
type Snapshot struct {
	CurrentIndex  int
	Total         int
	CanGoPrev     bool
	CanGoNext     bool
	HintVisible   bool
	HintFadingOut bool
	Compact       bool
}

// Coordinator is the single funnel between raw input and navigation state.
// Presentation code talks to it and never to the services directly. All
// methods must be called from the UI event loop.
type Coordinator struct {
	Navigation *navigation.Service
	Hint       *hint.Policy

	swipe    *gesture.Swipe
	drag     *gesture.DragScroll
	wheel    *gesture.Wheel
	keyboard *gesture.Keyboard

	clock      hint.Clock
	breakpoint int
	width      int
	mounted    bool
	unmounted  bool
	logger     *slog.Logger
}

// New creates a coordinator with all services
func New(pages navigation.Pages, notifier navigation.Notifier, st store.Store, clock hint.Clock, bus eventbus.EventBus, logger *slog.Logger, opts Options) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = hint.SystemClock{}
	}
	return &Coordinator{
		Navigation: navigation.NewService(pages, notifier, bus, logger, opts.InitialPage),
		Hint:       hint.NewPolicy(opts.Hint, st, clock, bus, logger),
		swipe:      gesture.NewSwipe(opts.Swipe),
		drag:       gesture.NewDragScroll(opts.DragGain),
		wheel:      gesture.NewWheel(),
		keyboard:   gesture.NewKeyboard(opts.PrevKeys, opts.NextKeys),
		clock:      clock,
		breakpoint: opts.CompactBreakpoint,
		logger:     logger.With("component", "coordinator"),
	}
}

// Mount records the viewport width and runs the hint policy. Only the first
// call has an effect.
func (c *Coordinator) Mount(width int) {
	if c.mounted || c.unmounted {
		return
	}
	c.mounted = true
	c.width = width

	d := c.Hint.Evaluate(c.Compact())
	c.logger.Debug("mounted", "width", width, "compact", c.Compact(), "hint", d.Visible)
}

// Mounted reports whether Mount has run and Unmount has not
func (c *Coordinator) Mounted() bool {
	return c.mounted && !c.unmounted
}

// Unmount discards gesture sessions, cancels timers and closes the gate.
// Nothing is honoured afterwards.
func (c *Coordinator) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	c.swipe.Cancel()
	c.drag.Leave()
	c.Hint.Close()
	c.Navigation.Close()
}

// Now reads the clock shared with the hint policy. Gesture timestamps come
// from here so one clock drives every timed decision.
func (c *Coordinator) Now() time.Time {
	return c.clock.Now()
}

// Resize updates the viewport width
func (c *Coordinator) Resize(width int) {
	c.width = width
}

// Compact reports whether the current width is the compact layout
func (c *Coordinator) Compact() bool {
	return c.width < c.breakpoint
}

// RequestPrev asks for the previous page
func (c *Coordinator) RequestPrev() (int, error) {
	return c.submit(navigation.Prev())
}

// RequestNext asks for the next page
func (c *Coordinator) RequestNext() (int, error) {
	return c.submit(navigation.Next())
}

// RequestGoTo asks for an absolute page
func (c *Coordinator) RequestGoTo(index int) (int, error) {
	return c.submit(navigation.GoTo(index))
}

// TouchStart feeds the swipe interpreter
func (c *Coordinator) TouchStart(points []gesture.Point, at time.Time) {
	if c.unmounted {
		return
	}
	c.swipe.TouchStart(points, at)
}

// TouchMove feeds the swipe interpreter. It reports whether the surface
// must not scroll for this event.
func (c *Coordinator) TouchMove(points []gesture.Point, at time.Time) bool {
	if c.unmounted {
		return false
	}
	c.swipe.TouchMove(points, at)
	return c.swipe.Active()
}

// TouchEnd closes the swipe and submits its intent. It reports whether a
// page change was accepted.
func (c *Coordinator) TouchEnd(points []gesture.Point, at time.Time) bool {
	if c.unmounted {
		return false
	}
	intent := c.swipe.TouchEnd(points, at)
	if intent.IsNone() {
		return false
	}
	_, err := c.submit(intent)
	return err == nil
}

// SwipeActive reports whether a swipe is being tracked
func (c *Coordinator) SwipeActive() bool {
	return !c.unmounted && c.swipe.Active()
}

// PointerDown opens a drag session on the panel
func (c *Coordinator) PointerDown(x float64, panel gesture.ScrollTarget) {
	if c.unmounted {
		return
	}
	c.drag.Down(x, panel)
}

// PointerMove pans the panel during a drag and reports whether it did
func (c *Coordinator) PointerMove(x float64) bool {
	if c.unmounted {
		return false
	}
	return c.drag.Move(x)
}

// PointerUp ends a drag
func (c *Coordinator) PointerUp() {
	c.drag.Up()
}

// PointerLeave ends a drag when the pointer leaves the panel
func (c *Coordinator) PointerLeave() {
	c.drag.Leave()
}

// Dragging reports whether a drag session is open
func (c *Coordinator) Dragging() bool {
	return c.drag.Session().Active
}

// Wheel redirects a wheel event into the panel in the compact layout. It
// reports whether native scrolling must be suppressed.
func (c *Coordinator) Wheel(dx, dy float64, panel gesture.ScrollTarget) bool {
	if c.unmounted {
		return false
	}
	return c.wheel.Handle(dx, dy, c.Compact(), panel)
}

// Key submits the intent for a navigation key. It reports whether the key
// was a navigation key at all, accepted or not.
func (c *Coordinator) Key(key string) bool {
	if c.unmounted {
		return false
	}
	intent := c.keyboard.Interpret(key)
	if intent.IsNone() {
		return false
	}
	_, _ = c.submit(intent)
	return true
}

// Snapshot returns the presentation state for one render
func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{
		CurrentIndex:  c.Navigation.CurrentIndex(),
		Total:         c.Navigation.Total(),
		CanGoPrev:     c.Navigation.CanGoPrev(),
		CanGoNext:     c.Navigation.CanGoNext(),
		HintVisible:   c.Hint.Visible(),
		HintFadingOut: c.Hint.FadingOut(),
		Compact:       c.Compact(),
	}
}

func (c *Coordinator) submit(intent navigation.Intent) (int, error) {
	if c.unmounted {
		return c.Navigation.CurrentIndex(), navigation.ErrClosed
	}
	return c.Navigation.RequestTransition(intent)
}
