// Package routing is the collaborator told about accepted page changes.
package routing

import (
	"log/slog"

	"poemview/internal/eventbus"
)

// Router publishes page changes on the event bus. Publishing never blocks,
// so the gate is released as soon as the notification is issued.
type Router struct {
	bus     eventbus.EventBus
	logger  *slog.Logger
	current int
}

// NewRouter creates a router positioned at the initial page
func NewRouter(bus eventbus.EventBus, logger *slog.Logger, initial int) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		bus:     bus,
		logger:  logger.With("component", "router"),
		current: initial,
	}
}

// NotifyPageChanged implements navigation.Notifier
func (r *Router) NotifyPageChanged(target int) {
	from := r.current
	r.current = target
	r.logger.Debug("page changed", "from", from, "to", target)
	if r.bus != nil {
		r.bus.Publish(eventbus.PageChangedEvent{From: from, To: target})
	}
}

// Current returns the last page the router was told about
func (r *Router) Current() int {
	return r.current
}
