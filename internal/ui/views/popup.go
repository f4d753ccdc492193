package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centres a boxed popup in a width x height area
func (pr *PopupRenderer) RenderPopup(popupContent string, width, height int) string {
	box := pr.styles.HelpBox
	if maxW := width - 4; maxW > 0 && lipgloss.Width(box.Render(popupContent)) > maxW {
		box = box.Width(maxW - box.GetHorizontalFrameSize())
	}
	styled := box.MaxHeight(height).Render(popupContent)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled)
}
