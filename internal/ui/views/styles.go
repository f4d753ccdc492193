package views

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	PageLabel     lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Prompt        lipgloss.Style
	Button        lipgloss.Style
	Ornament      lipgloss.Style
	Caption       lipgloss.Style
	PoemTitle     lipgloss.Style
	CoverTitle    lipgloss.Style
	Panel         lipgloss.Style
	HelpBox       lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		PageLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Ornament:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Caption:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		PoemTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		CoverTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Padding(1, 4).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(lipgloss.Color("99")),
		Panel: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// HintColor maps an opacity in [0,1] onto the 256-colour grey ramp
func HintColor(opacity float64) lipgloss.Color {
	opacity = math.Max(0, math.Min(1, opacity))
	return lipgloss.Color(strconv.Itoa(232 + int(math.Round(opacity*23))))
}
