// Package gesture turns raw input channels into navigation intents or
// in-panel scroll changes. Each interpreter owns one channel and its own
// short-lived session state.
package gesture

import "time"

// Defaults mirror the behaviour the viewer has always had
const (
	DefaultSwipeDelta       = 10.0
	DefaultSwipeMaxDuration = 500 * time.Millisecond
	DefaultDragGain         = 2.0
)

// Point is one contact position in pixels
type Point struct {
	X float64
	Y float64
}

// ScrollTarget is a panel whose scroll offsets interpreters may change.
// Implementations clamp offsets to their content the way a browser does.
type ScrollTarget interface {
	ScrollLeft() float64
	SetScrollLeft(v float64)
	ScrollTop() float64
	SetScrollTop(v float64)
}
