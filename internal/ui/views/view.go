package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// HintGlyph is drawn on the backdrop while the swipe hint is shown
const HintGlyph = "‹ swipe ›"

// HomeGlyph is the cover button at the start of the header
const HomeGlyph = "⌂"

// CoverImage is the backdrop reference of the title screen
const CoverImage = "images/poems/cover.jpg"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout Layout

	Cover      bool // title screen instead of a poem
	CoverTitle string

	Empty       bool
	EmptyReason string

	Title     string
	PageLabel string // "n / N"
	Page      int
	Caption   string // image reference of the backdrop
	PanelView string // already windowed by the panel

	CanGoPrev bool
	CanGoNext bool

	HintVisible bool
	HintOpacity float64

	StatusMessage string
	StatusIsError bool
	Prompt        string
	TextInput     string

	ShowHelp  bool
	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	if l.Width == 0 || l.Height == 0 {
		return ""
	}

	rows := []string{r.renderHeader(state)}
	bodyH := l.Height - l.Header.H - l.Footer.H
	if bodyH > 0 {
		rows = append(rows, r.renderBody(state, bodyH))
	}
	if !l.Footer.Empty() {
		rows = append(rows, r.renderFooter(state))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) renderHeader(state ViewState) string {
	w := state.Layout.Width
	left := r.styles.Title.Render("poemview")
	if !state.Cover && !state.Layout.HomeButton.Empty() {
		home := lipgloss.NewStyle().Width(state.Layout.HomeButton.W).Render(r.styles.Button.Render(HomeGlyph))
		left = home + left
	}
	if state.Title != "" && !state.Cover {
		left += r.styles.Dim.Render(" · ") + state.Title
	}
	right := r.styles.PageLabel.Render(state.PageLabel)

	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(w).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderBody(state ViewState, height int) string {
	l := state.Layout
	if state.ShowHelp {
		return r.popupRender.RenderPopup(state.HelpModel.FullHelpView(state.Keys.FullHelp()), l.Width, height)
	}
	if state.Cover {
		return r.renderCover(state, height)
	}
	if state.Empty {
		msg := r.styles.Dim.Render(state.EmptyReason)
		return lipgloss.Place(l.Width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	prev := r.renderButton("‹", state.CanGoPrev, l.PrevButton)
	next := r.renderButton("›", state.CanGoNext, l.NextButton)
	backdrop := r.renderBackdrop(state)
	panel := r.renderPanel(state)

	var middle string
	if l.Compact {
		middle = lipgloss.JoinVertical(lipgloss.Left, backdrop, panel)
	} else {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, backdrop, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prev, middle, next)
}

// renderCover draws the title screen; any click or enter opens the first poem
func (r *Renderer) renderCover(state ViewState, height int) string {
	w := state.Layout.Width
	lines := []string{r.styles.CoverTitle.Render(state.CoverTitle)}
	if height > 6 {
		lines = append(lines, "", r.styles.Caption.Render(CoverImage))
	}
	if height > 8 {
		lines = append(lines, "", r.styles.Dim.Render("enter or click to begin"))
	}
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(height).
		Render(lipgloss.Place(w, height, lipgloss.Center, lipgloss.Center, block))
}

func (r *Renderer) renderButton(glyph string, enabled bool, rect Rect) string {
	if rect.Empty() {
		return ""
	}
	if !enabled {
		glyph = ""
	}
	return lipgloss.Place(rect.W, rect.H, lipgloss.Center, lipgloss.Center, r.styles.Button.Render(glyph))
}

func (r *Renderer) renderBackdrop(state ViewState) string {
	rect := state.Layout.Backdrop
	if rect.Empty() {
		return ""
	}

	lines := []string{
		r.styles.Ornament.Render("❧"),
		r.styles.PoemTitle.Render(fmt.Sprintf("No. %d", state.Page)),
	}
	if state.Caption != "" && rect.H > 3 {
		lines = append(lines, r.styles.Caption.Render(state.Caption))
	}
	if state.HintVisible && rect.H > 4 {
		hint := lipgloss.NewStyle().Foreground(HintColor(state.HintOpacity)).Render(HintGlyph)
		lines = append(lines, "", hint)
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.NewStyle().MaxWidth(rect.W).MaxHeight(rect.H).
		Render(lipgloss.Place(rect.W, rect.H, lipgloss.Center, lipgloss.Center, block))
}

func (r *Renderer) renderPanel(state ViewState) string {
	rect := state.Layout.Panel
	if rect.Empty() {
		return ""
	}
	style := r.styles.Panel
	if rect.W <= 2 {
		style = lipgloss.NewStyle()
	}
	return style.Width(rect.W).Height(rect.H).MaxHeight(rect.H).Render(state.PanelView)
}

func (r *Renderer) renderFooter(state ViewState) string {
	w := state.Layout.Width
	var line string
	switch {
	case state.Prompt != "":
		line = r.styles.Prompt.Render(state.Prompt) + state.TextInput
	case state.StatusMessage != "" && state.StatusIsError:
		line = r.styles.StatusError.Render(state.StatusMessage)
	case state.StatusMessage != "":
		line = r.styles.StatusSuccess.Render(state.StatusMessage)
	default:
		hm := state.HelpModel
		hm.Width = w
		line = r.styles.Help.Render(hm.ShortHelpView(state.Keys.ShortHelp()))
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(line)
}
