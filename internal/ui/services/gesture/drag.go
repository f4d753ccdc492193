package gesture

// DragSession lives for one pointer-down to pointer-up cycle
type DragSession struct {
	Active             bool
	AnchorX            float64
	AnchorScrollOffset float64
}

// DragScroll pans a horizontally scrollable panel with the mouse. It never
// proposes page navigation.
type DragScroll struct {
	gain    float64
	session DragSession
	target  ScrollTarget
}

// NewDragScroll creates a drag interpreter; gain <= 0 takes the default
func NewDragScroll(gain float64) *DragScroll {
	if gain <= 0 {
		gain = DefaultDragGain
	}
	return &DragScroll{gain: gain}
}

// Down opens a session anchored at the pointer and the panel's scroll offset
func (d *DragScroll) Down(x float64, target ScrollTarget) {
	if target == nil {
		return
	}
	d.target = target
	d.session = DragSession{
		Active:             true,
		AnchorX:            x,
		AnchorScrollOffset: target.ScrollLeft(),
	}
}

// Move scrolls the panel while a session is open. It reports whether the
// event was consumed, in which case default handling must be suppressed.
func (d *DragScroll) Move(x float64) bool {
	if !d.session.Active || d.target == nil {
		return false
	}
	walk := (x - d.session.AnchorX) * d.gain
	d.target.SetScrollLeft(d.session.AnchorScrollOffset - walk)
	return true
}

// Up closes the session
func (d *DragScroll) Up() {
	d.end()
}

// Leave closes the session when the pointer leaves the panel
func (d *DragScroll) Leave() {
	d.end()
}

// Session returns the current session state
func (d *DragScroll) Session() DragSession {
	return d.session
}

func (d *DragScroll) end() {
	d.session = DragSession{}
	d.target = nil
}
