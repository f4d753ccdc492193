// Package panel holds the scrollable text surface of the viewer. Offsets
// are measured in terminal cells and are always clamped to the content.
package panel

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"
)

// Panel adapts a viewport to fractional scroll offsets. Drag gestures move
// in sub-cell steps, so the float offsets live here and the viewport only
// sees them rounded.
type Panel struct {
	vp           viewport.Model
	lineCount    int
	contentWidth int
	left, top    float64
}

// New creates an empty panel
func New() *Panel {
	vp := viewport.New(0, 0)
	// wheel and keys are routed through the gesture interpreters
	vp.MouseWheelEnabled = false
	vp.SetHorizontalStep(1)
	return &Panel{vp: vp}
}

// SetContent replaces the lines and resets both offsets
func (p *Panel) SetContent(lines []string) {
	p.lineCount = len(lines)
	p.contentWidth = 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > p.contentWidth {
			p.contentWidth = w
		}
	}
	p.vp.SetContent(strings.Join(lines, "\n"))
	p.left, p.top = 0, 0
	p.sync()
}

// SetSize sets the visible area and re-clamps the offsets
func (p *Panel) SetSize(width, height int) {
	p.vp.Width = max(width, 0)
	p.vp.Height = max(height, 0)
	p.SetScrollLeft(p.left)
	p.SetScrollTop(p.top)
}

// Size returns the visible area
func (p *Panel) Size() (int, int) {
	return p.vp.Width, p.vp.Height
}

// ContentSize returns the width of the widest line and the line count
func (p *Panel) ContentSize() (int, int) {
	return p.contentWidth, p.lineCount
}

func (p *Panel) ScrollLeft() float64 { return p.left }
func (p *Panel) ScrollTop() float64  { return p.top }

func (p *Panel) SetScrollLeft(v float64) {
	p.left = clamp(v, p.MaxScrollLeft())
	p.sync()
}

func (p *Panel) SetScrollTop(v float64) {
	p.top = clamp(v, p.MaxScrollTop())
	p.sync()
}

// MaxScrollLeft is the largest horizontal offset
func (p *Panel) MaxScrollLeft() float64 {
	return float64(max(p.contentWidth-p.vp.Width, 0))
}

// MaxScrollTop is the largest vertical offset
func (p *Panel) MaxScrollTop() float64 {
	return float64(max(p.lineCount-p.vp.Height, 0))
}

// ScrollBy moves both offsets by the given cells
func (p *Panel) ScrollBy(dx, dy float64) {
	p.SetScrollLeft(p.left + dx)
	p.SetScrollTop(p.top + dy)
}

// View renders the visible window, exactly height rows of width cells
func (p *Panel) View() string {
	if p.vp.Width == 0 || p.vp.Height == 0 {
		return ""
	}
	return p.vp.View()
}

func (p *Panel) sync() {
	p.vp.SetXOffset(int(math.Round(p.left)))
	p.vp.SetYOffset(int(math.Round(p.top)))
}

func clamp(v, hi float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, hi)
}
