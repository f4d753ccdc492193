package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemview/internal/store"
	"poemview/internal/ui/services/gesture"
	"poemview/internal/ui/services/hint"
	"poemview/internal/ui/services/navigation"
)

type pages int

func (p pages) Count() int { return int(p) }

type stubTimer struct{ stopped bool }

func (t *stubTimer) Stop() bool { t.stopped = true; return true }

type stubClock struct {
	now    time.Time
	timers []*stubTimer
}

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) AfterFunc(d time.Duration, f func()) hint.Timer {
	t := &stubTimer{}
	c.timers = append(c.timers, t)
	return t
}

type panel struct{ left, top float64 }

func (p *panel) ScrollLeft() float64     { return p.left }
func (p *panel) SetScrollLeft(v float64) { p.left = v }
func (p *panel) ScrollTop() float64      { return p.top }
func (p *panel) SetScrollTop(v float64)  { p.top = v }

type fixture struct {
	c        *Coordinator
	notified []int
	clock    *stubClock
	store    *store.MemoryStore
}

func newFixture(t *testing.T, n, initial int) *fixture {
	t.Helper()
	f := &fixture{
		clock: &stubClock{now: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		store: store.NewMemoryStore(),
	}
	notifier := navigation.NotifierFunc(func(target int) {
		f.notified = append(f.notified, target)
	})
	f.c = New(pages(n), notifier, f.store, f.clock, nil, nil, Options{
		InitialPage:       initial,
		CompactBreakpoint: 96,
		PrevKeys:          []string{"left", "h"},
		NextKeys:          []string{"right", "l"},
	})
	return f
}

func pt(x float64) []gesture.Point { return []gesture.Point{{X: x}} }

func TestSwipeNavigates(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(120)
	start := f.clock.now

	f.c.TouchStart(pt(100), start)
	assert.True(t, f.c.SwipeActive())
	assert.True(t, f.c.TouchMove(pt(70), start.Add(100*time.Millisecond)))
	assert.True(t, f.c.TouchEnd(pt(40), start.Add(200*time.Millisecond)))
	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)

	f.c.TouchStart(pt(100), start)
	assert.False(t, f.c.TouchEnd(pt(95), start.Add(200*time.Millisecond)))
	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)

	f.c.TouchStart(pt(40), start)
	assert.True(t, f.c.TouchEnd(pt(100), start.Add(200*time.Millisecond)))
	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex)
	assert.Equal(t, []int{2, 1}, f.notified)
}

func TestSwipeAtBoundaryIsDropped(t *testing.T) {
	f := newFixture(t, 2, 2)
	f.c.Mount(120)

	f.c.TouchStart(pt(100), f.clock.now)
	assert.False(t, f.c.TouchEnd(pt(10), f.clock.now.Add(100*time.Millisecond)))
	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)
	assert.Empty(t, f.notified)
}

func TestDragNeverNavigates(t *testing.T) {
	f := newFixture(t, 3, 2)
	f.c.Mount(120)
	p := &panel{left: 50}

	f.c.PointerDown(200, p)
	assert.True(t, f.c.Dragging())
	assert.True(t, f.c.PointerMove(170))
	assert.Equal(t, 110.0, p.left)
	f.c.PointerUp()
	assert.False(t, f.c.Dragging())

	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)
	assert.Empty(t, f.notified)
}

func TestWheelOnlyInCompactLayout(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(120)
	p := &panel{}

	assert.False(t, f.c.Wheel(0, 3, p))
	assert.Equal(t, 0.0, p.top)

	f.c.Resize(60)
	assert.True(t, f.c.Wheel(0, 3, p))
	assert.Equal(t, 3.0, p.top)
	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex)
}

func TestKeyboard(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(120)

	assert.True(t, f.c.Key("right"))
	assert.True(t, f.c.Key("l"))
	assert.True(t, f.c.Key("right"), "rejected at the boundary but still a navigation key")
	assert.Equal(t, 3, f.c.Snapshot().CurrentIndex)

	assert.True(t, f.c.Key("h"))
	assert.False(t, f.c.Key("x"))
	assert.Equal(t, 2, f.c.Snapshot().CurrentIndex)
	assert.Equal(t, []int{2, 3, 2}, f.notified)
}

func TestRequests(t *testing.T) {
	f := newFixture(t, 5, 1)
	f.c.Mount(120)

	got, err := f.c.RequestGoTo(4)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = f.c.RequestGoTo(6)
	assert.ErrorIs(t, err, navigation.ErrOutOfBounds)

	got, err = f.c.RequestNext()
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = f.c.RequestNext()
	assert.ErrorIs(t, err, navigation.ErrOutOfBounds)

	got, err = f.c.RequestPrev()
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestSnapshot(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(60)

	s := f.c.Snapshot()
	assert.Equal(t, Snapshot{
		CurrentIndex: 1,
		Total:        3,
		CanGoPrev:    false,
		CanGoNext:    true,
		HintVisible:  true,
		Compact:      true,
	}, s)
}

func TestHintEvaluatedOnlyOnFirstMount(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(60)
	f.c.Mount(60)
	f.c.Mount(60)

	assert.Equal(t, "1", f.store.Snapshot()[hint.KeyShowCount])
	assert.Len(t, f.clock.timers, 1)
}

func TestWideMountHidesHint(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(120)

	assert.False(t, f.c.Snapshot().HintVisible)
	assert.Empty(t, f.store.Snapshot())
}

func TestUnmountStopsEverything(t *testing.T) {
	f := newFixture(t, 3, 1)
	f.c.Mount(60)
	require.Len(t, f.clock.timers, 1)

	p := &panel{}
	f.c.TouchStart(pt(100), f.clock.now)
	f.c.PointerDown(10, p)
	f.c.Unmount()

	assert.True(t, f.clock.timers[0].stopped, "fade timer cancelled")
	assert.False(t, f.c.Mounted())
	assert.False(t, f.c.SwipeActive())
	assert.False(t, f.c.Dragging())

	assert.False(t, f.c.TouchEnd(pt(10), f.clock.now.Add(100*time.Millisecond)))
	assert.False(t, f.c.PointerMove(0))
	assert.False(t, f.c.Key("right"))
	_, err := f.c.RequestNext()
	assert.ErrorIs(t, err, navigation.ErrClosed)

	assert.Equal(t, 1, f.c.Snapshot().CurrentIndex)
	assert.Empty(t, f.notified)
	assert.Equal(t, 0.0, p.left)
}

func TestNowUsesInjectedClock(t *testing.T) {
	f := newFixture(t, 3, 1)
	assert.Equal(t, f.clock.now, f.c.Now())

	f.clock.now = f.clock.now.Add(time.Minute)
	assert.Equal(t, f.clock.now, f.c.Now())
}
