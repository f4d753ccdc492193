package views

// ButtonWidth is the width of the prev/next strips at the screen edges
const ButtonWidth = 3

// HomeWidth is the width of the cover button at the start of the header
const HomeWidth = 2

// Rect is a cell rectangle, origin at the top left of the screen
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout places every region of the screen. The wide layout puts the
// backdrop left of the panel; the compact one stacks them.
type Layout struct {
	Width, Height int
	Compact       bool

	Header     Rect
	HomeButton Rect // inside Header
	Footer     Rect
	PrevButton Rect
	NextButton Rect
	Backdrop   Rect
	Panel      Rect
}

// ComputeLayout splits a width x height screen
func ComputeLayout(width, height int, compact bool) Layout {
	width = max(width, 0)
	height = max(height, 0)
	l := Layout{Width: width, Height: height, Compact: compact}
	if width == 0 || height == 0 {
		return l
	}

	l.Header = Rect{X: 0, Y: 0, W: width, H: 1}
	l.HomeButton = Rect{X: 0, Y: 0, W: min(HomeWidth, width), H: 1}
	if height > 1 {
		l.Footer = Rect{X: 0, Y: height - 1, W: width, H: 1}
	}

	bodyY := 1
	bodyH := max(height-2, 0)
	btn := ButtonWidth
	if width < 2*btn+2 {
		btn = 0
	}
	l.PrevButton = Rect{X: 0, Y: bodyY, W: btn, H: bodyH}
	l.NextButton = Rect{X: width - btn, Y: bodyY, W: btn, H: bodyH}

	innerX := btn
	innerW := width - 2*btn

	if compact {
		backH := bodyH / 3
		if bodyH >= 6 {
			backH = max(backH, 3)
		}
		l.Backdrop = Rect{X: innerX, Y: bodyY, W: innerW, H: backH}
		l.Panel = Rect{X: innerX, Y: bodyY + backH, W: innerW, H: bodyH - backH}
		return l
	}

	backW := innerW * 2 / 5
	l.Backdrop = Rect{X: innerX, Y: bodyY, W: backW, H: bodyH}
	l.Panel = Rect{X: innerX + backW, Y: bodyY, W: innerW - backW, H: bodyH}
	return l
}

// PanelInner is the panel area inside its one-cell left padding
func (l Layout) PanelInner() Rect {
	r := l.Panel
	if r.W > 2 {
		r.X++
		r.W -= 2
	}
	return r
}
