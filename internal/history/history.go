// Package history remembers the last page read so a later session can resume.
package history

import (
	"log/slog"
	"strconv"

	"poemview/internal/eventbus"
	"poemview/internal/store"
)

// KeyLastPage is the store key holding the last visited page
const KeyLastPage = "lastPage"

// Recorder persists page changes published on the event bus
type Recorder struct {
	bus         eventbus.EventBus
	store       store.Store
	logger      *slog.Logger
	unsubscribe func()
}

// NewRecorder subscribes to page changes
func NewRecorder(bus eventbus.EventBus, st store.Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		bus:    bus,
		store:  st,
		logger: logger.With("component", "history"),
	}
	r.unsubscribe = bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			r.Record(event.To)
		}
	})
	return r
}

// Record stores page as the last visited one
func (r *Recorder) Record(page int) {
	if err := r.store.Set(KeyLastPage, strconv.Itoa(page)); err != nil {
		r.logger.Warn("failed to record last page", "page", page, "error", err)
		r.bus.Publish(eventbus.ErrorEvent{Message: "could not save reading position", Err: err})
	}
}

// Stop unsubscribes from the bus
func (r *Recorder) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// LastPage returns the recorded page, if any
func LastPage(st store.Store) (int, bool) {
	raw, ok, err := st.Get(KeyLastPage)
	if err != nil || !ok {
		return 0, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
