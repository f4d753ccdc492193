package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"poemview/internal/domain"
)

// BodyRenderer turns a poem into the lines of the text panel. Lines are
// never wrapped; the panel scrolls sideways instead.
type BodyRenderer struct {
	styles *Styles
	md     *glamour.TermRenderer
}

// NewBodyRenderer creates a renderer for a glamour style name ("auto" picks
// one from the terminal background)
func NewBodyRenderer(styles *Styles, style string) (*BodyRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	md, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &BodyRenderer{styles: styles, md: md}, nil
}

// Lines renders the title and body of item
func (b *BodyRenderer) Lines(item domain.ContentItem) ([]string, error) {
	out := []string{b.styles.PoemTitle.Render(item.Title), ""}

	rendered, err := b.md.Render(hardBreaks(item.Lines()))
	if err != nil {
		return append(out, item.Lines()...), fmt.Errorf("failed to render markdown: %w", err)
	}
	rendered = strings.Trim(rendered, "\n")
	return append(out, strings.Split(rendered, "\n")...), nil
}

// hardBreaks keeps verse line breaks, which markdown would otherwise fold
// into one paragraph
func hardBreaks(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(line)
		if i < len(lines)-1 && line != "" && lines[i+1] != "" {
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
