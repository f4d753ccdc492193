package ui

import (
	"time"

	"poemview/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// HintFadedMsg is sent when the hint fade timer fires
type HintFadedMsg struct{}

// frameMsg drives the hint fade animation
type frameMsg time.Time

// pagerExitMsg reports the end of an ov session
type pagerExitMsg struct {
	err error
}

// statusClearMsg clears the status line unless a newer message replaced it
type statusClearMsg struct {
	seq int
}
