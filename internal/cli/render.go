package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/sukoon/internal/logger"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#A29BFE"})
	dimStyle    = lipgloss.NewStyle().Faint(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F6C177"})
	alertColor  = lipgloss.Color("#FF6B6B")
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(alertColor).Border(lipgloss.RoundedBorder()).BorderForeground(alertColor).Padding(0, 1)
)

// renderer turns replies into terminal output. A nil term renderer prints
// markdown as-is.
type renderer struct {
	term *glamour.TermRenderer
}

func newRenderer(plain bool) *renderer {
	if plain {
		return &renderer{}
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logger.Debug("markdown renderer unavailable", "error", err)
		return &renderer{}
	}
	return &renderer{term: term}
}

func (r *renderer) markdown(md string) string {
	if r.term == nil || strings.TrimSpace(md) == "" {
		return md
	}
	out, err := r.term.Render(md)
	if err != nil {
		logger.Debug("render markdown", "error", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (r *renderer) prompt(text string) string {
	if r.term == nil {
		return text
	}
	return promptStyle.Render(text)
}

func (r *renderer) banner(text string) string {
	if r.term == nil {
		return text
	}
	return bannerStyle.Render(text)
}

func (r *renderer) notice(text string) string {
	if r.term == nil {
		return text
	}
	return noticeStyle.Render(text)
}

func (r *renderer) dim(text string) string {
	if r.term == nil {
		return text
	}
	return dimStyle.Render(text)
}
