package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventContentLoaded      EventType = "ContentLoaded"
	EventPageChanged        EventType = "PageChanged"
	EventTransitionRejected EventType = "TransitionRejected"
	EventHintShown          EventType = "HintShown"
	EventHintFaded          EventType = "HintFaded"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ContentLoadedEvent is emitted once the page collection has been read
type ContentLoadedEvent struct {
	Dir   string
	Count int
}

func (e ContentLoadedEvent) Type() EventType { return EventContentLoaded }

// PageChangedEvent is emitted after a transition has been accepted
type PageChangedEvent struct {
	From int
	To   int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// TransitionRejectedEvent is emitted when a navigation request had no effect
type TransitionRejectedEvent struct {
	Intent string
	Reason error
}

func (e TransitionRejectedEvent) Type() EventType { return EventTransitionRejected }

// HintShownEvent is emitted when the swipe hint is displayed for a session
type HintShownEvent struct {
	ShowCount int
}

func (e HintShownEvent) Type() EventType { return EventHintShown }

// HintFadedEvent is emitted when the hint display window has passed
type HintFadedEvent struct{}

func (e HintFadedEvent) Type() EventType { return EventHintFaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
