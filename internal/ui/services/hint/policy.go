// Package hint decides whether the one-time swipe hint is shown and for how
// long it stays fresh.
package hint

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"poemview/internal/eventbus"
	"poemview/internal/store"
)

// Policy evaluates hint visibility once per mount and owns the fade timer
type Policy struct {
	cfg    Config
	store  store.Store
	clock  Clock
	bus    eventbus.EventBus
	logger *slog.Logger

	evaluated bool
	decision  Decision
	closed    bool

	fadingOut atomic.Bool
	mu        sync.Mutex // guards timer and onFade
	timer     Timer
	onFade    func()
}

// NewPolicy creates a policy; zero config fields take defaults
func NewPolicy(cfg Config, st store.Store, clock Clock, bus eventbus.EventBus, logger *slog.Logger) *Policy {
	if cfg.MaxShows <= 0 {
		cfg.MaxShows = DefaultMaxShows
	}
	if cfg.CoolOff <= 0 {
		cfg.CoolOff = DefaultCoolOff
	}
	if cfg.FadeDelay <= 0 {
		cfg.FadeDelay = DefaultFadeDelay
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{
		cfg:    cfg,
		store:  st,
		clock:  clock,
		bus:    bus,
		logger: logger.With("component", "hint"),
	}
}

// OnFade registers a callback run when the fade timer fires. It may run on
// another goroutine.
func (p *Policy) OnFade(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFade = fn
}

// Evaluate decides visibility for this mount. Outside the compact layout it
// does nothing and leaves the evaluation for a later call; once it has run in
// the compact layout later calls return the same decision.
func (p *Policy) Evaluate(compact bool) Decision {
	if p.evaluated {
		return p.decision
	}
	if p.closed || !compact {
		return Decision{}
	}
	p.evaluated = true

	now := p.clock.Now()
	state := p.Load()

	if state.LastShownAt != nil && now.Sub(*state.LastShownAt) > p.cfg.CoolOff {
		p.logger.Debug("cool-off elapsed, resetting show count", "last_shown", state.LastShownAt)
		state.ShowCount = 0
		p.set(KeyShowCount, "0")
	}

	if state.ShowCount >= p.cfg.MaxShows {
		p.logger.Debug("hint cap reached", "show_count", state.ShowCount)
		if state.ShowCount > p.cfg.MaxShows {
			state.ShowCount = p.cfg.MaxShows
			p.set(KeyShowCount, strconv.Itoa(state.ShowCount))
		}
		p.decision = Decision{Visible: false, ShowCount: state.ShowCount}
		return p.decision
	}

	state.ShowCount++
	p.set(KeyShowCount, strconv.Itoa(state.ShowCount))
	p.set(KeyLastShown, strconv.FormatInt(now.UnixMilli(), 10))
	p.decision = Decision{Visible: true, ShowCount: state.ShowCount}
	p.startFade()

	p.logger.Info("showing swipe hint", "show_count", state.ShowCount)
	if p.bus != nil {
		p.bus.Publish(eventbus.HintShownEvent{ShowCount: state.ShowCount})
	}
	return p.decision
}

// Visible reports whether the hint is shown this session
func (p *Policy) Visible() bool {
	return p.decision.Visible
}

// FadingOut reports whether the hint's display window has passed
func (p *Policy) FadingOut() bool {
	return p.fadingOut.Load()
}

// Close cancels a pending fade timer. The policy does nothing afterwards.
func (p *Policy) Close() {
	p.closed = true
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.onFade = nil
}

// Load reads the persisted state. Missing or malformed values are the zero
// state.
func (p *Policy) Load() HintState {
	var state HintState
	if p.store == nil {
		return state
	}

	if raw, ok := p.get(KeyLastShown); ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ms <= 0 {
			p.logger.Warn("ignoring malformed hint timestamp", "value", raw)
		} else {
			t := time.UnixMilli(ms)
			state.LastShownAt = &t
		}
	}

	if raw, ok := p.get(KeyShowCount); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			p.logger.Warn("ignoring malformed hint show count", "value", raw)
		} else {
			state.ShowCount = n
		}
	}
	return state
}

// Reset forgets the persisted display history
func (p *Policy) Reset() error {
	if p.store == nil {
		return nil
	}
	if err := p.store.Delete(KeyLastShown); err != nil {
		return err
	}
	return p.store.Delete(KeyShowCount)
}

func (p *Policy) startFade() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fadingOut.Store(false)
	p.timer = p.clock.AfterFunc(p.cfg.FadeDelay, p.fade)
}

func (p *Policy) fade() {
	p.mu.Lock()
	if p.timer == nil {
		// cancelled while firing
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.fadingOut.Store(true)
	fn := p.onFade
	p.mu.Unlock()

	if p.bus != nil {
		p.bus.Publish(eventbus.HintFadedEvent{})
	}
	if fn != nil {
		fn()
	}
}

func (p *Policy) get(key string) (string, bool) {
	v, ok, err := p.store.Get(key)
	if err != nil {
		p.logger.Warn("reading hint state failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (p *Policy) set(key, value string) {
	if p.store == nil {
		return
	}
	if err := p.store.Set(key, value); err != nil {
		p.logger.Warn("writing hint state failed", "key", key, "error", err)
		if p.bus != nil {
			p.bus.Publish(eventbus.ErrorEvent{Message: "could not save hint state", Err: err})
		}
	}
}
