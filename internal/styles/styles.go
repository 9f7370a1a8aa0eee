// Package styles holds the lipgloss styles and renderers for one-shot console output.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moodrec/internal/domain"
)

var (
	// HeaderStyle renders section headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	// TitleStyle renders movie titles.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	// ErrorStyle renders errors and the no-match message.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F45E6E"))
	// InfoStyle renders menu numbers and hints.
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EC4F4"))
	// MutedStyle renders secondary details such as similarity scores.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6ef4a1"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F45E6E"))
	neutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// LabelStyle picks the colour for a sentiment label.
func LabelStyle(label string) lipgloss.Style {
	switch label {
	case "Positive":
		return positiveStyle
	case "Negative":
		return negativeStyle
	default:
		return neutralStyle
	}
}

// Recommendations renders a result as a numbered list under a header for name.
// An empty result renders the no-match message.
func Recommendations(name string, res domain.Result) string {
	var b strings.Builder
	header := "AI-Analyzed Movie Recommendations"
	if name != "" {
		header += " for " + name
	}
	b.WriteString(HeaderStyle.Render(header + ":"))
	b.WriteString("\n")
	if res.Empty() {
		b.WriteString(ErrorStyle.Render(domain.NoRecommendations))
		return b.String()
	}
	for i, rec := range res.Recommendations {
		label := rec.Label()
		fmt.Fprintf(&b, "%d. %s (Polarity: %s, %s)\n",
			i+1,
			TitleStyle.Render(rec.Title),
			fmt.Sprintf("%.2f", rec.Polarity),
			LabelStyle(label).Render(label))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Neighbors renders titles ranked by similarity to title.
func Neighbors(title string, ns []domain.Neighbor) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Movies similar to %s:", title)))
	for i, n := range ns {
		fmt.Fprintf(&b, "\n%d. %s %s", i+1, TitleStyle.Render(n.Title), MutedStyle.Render(fmt.Sprintf("(similarity %.3f)", n.Score)))
	}
	return b.String()
}

// Genres renders the numbered genre menu on one line.
func Genres(genres []string) string {
	parts := make([]string, len(genres))
	for i, g := range genres {
		parts[i] = fmt.Sprintf("%s %s", InfoStyle.Render(fmt.Sprintf("%d.", i+1)), g)
	}
	return strings.Join(parts, "  ")
}
