package handlers

import (
	"fmt"

	"poemview/internal/eventbus"
)

// Status is the footer message an event produces
type Status struct {
	Text  string
	IsErr bool
}

// EventHandler turns domain events from the bus into footer messages
type EventHandler struct{}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// Subscribed lists the event types the UI forwards to HandleEvent
func (h *EventHandler) Subscribed() []eventbus.EventType {
	return []eventbus.EventType{
		eventbus.EventContentLoaded,
		eventbus.EventError,
	}
}

// HandleEvent returns the status to show for an event, if any.
// Navigation events are reflected by the page label and stay silent.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) (Status, bool) {
	switch e := event.(type) {
	case eventbus.ContentLoadedEvent:
		if e.Count == 0 {
			return Status{Text: fmt.Sprintf("no poems found in %s", e.Dir), IsErr: true}, true
		}
		return Status{Text: fmt.Sprintf("Loaded %d poems", e.Count)}, true

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil && msg == "" {
			msg = e.Err.Error()
		}
		return Status{Text: "Error: " + msg, IsErr: true}, true
	}

	return Status{}, false
}
