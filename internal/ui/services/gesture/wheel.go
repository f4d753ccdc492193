package gesture

import "math"

// Wheel redirects wheel deltas into the content panel in compact layouts so
// the wheel scrolls text rather than the whole screen. It never proposes page
// navigation.
type Wheel struct{}

// NewWheel creates a wheel interpreter
func NewWheel() *Wheel {
	return &Wheel{}
}

// Handle applies one wheel event. It returns true when native scrolling
// must be suppressed, which is exactly when compact is set.
func (w *Wheel) Handle(dx, dy float64, compact bool, target ScrollTarget) bool {
	if !compact {
		return false
	}
	if target == nil {
		return true
	}

	// vertical wins
	if math.Abs(dy) > math.Abs(dx) {
		target.SetScrollTop(target.ScrollTop() + dy)
	} else {
		target.SetScrollLeft(target.ScrollLeft() + dx)
	}
	return true
}
