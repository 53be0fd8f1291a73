package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fweber/lexiscope/internal/review"
	"github.com/fweber/lexiscope/internal/router"
	"github.com/fweber/lexiscope/internal/screen"
	"github.com/fweber/lexiscope/internal/ui/components"
	"github.com/fweber/lexiscope/internal/ui/layout"
	"github.com/fweber/lexiscope/internal/ui/theme"
)

// SummaryScreen displays the end-of-session estimate.
type SummaryScreen struct {
	summary *review.Summary

	// restart builds a fresh review session (new shuffle) when the
	// learner wants to go again. Nil disables the restart key.
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(summary *review.Summary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			if s.restart != nil {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.restart()}
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Review complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d   Words reviewed: %d of %d",
			mins, secs, sum.Stats.Reviewed, sum.Stats.Population)))
	b.WriteString("\n\n")

	if !sum.Stats.Available {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("No words were reviewed, so there is nothing to estimate."))
		return b.String()
	}

	b.WriteString(s.renderBreakdown(width, sum))
	b.WriteString("\n")
	b.WriteString(s.renderEstimate(width, sum))

	return b.String()
}

func (s *SummaryScreen) renderBreakdown(width int, sum *review.Summary) string {
	stats := sum.Stats
	barWidth := min(width-20, 44)

	type row struct {
		label string
		count int
		frac  float64
	}
	var rows []row
	if sum.TwoCategory {
		rows = []row{
			{"Known", stats.ActiveCount, stats.KnownFraction},
			{"Don't know", stats.UnknownCount, fraction(stats.UnknownCount, stats.Reviewed)},
		}
	} else {
		rows = []row{
			{"Active use", stats.ActiveCount, stats.ActiveFraction},
			{"Recognized", stats.PassiveCount, stats.PassiveFraction},
			{"Don't know", stats.UnknownCount, fraction(stats.UnknownCount, stats.Reviewed)},
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your sample")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth+16))))
	b.WriteString("\n\n")

	for _, r := range rows {
		bar := components.NewProgressBar(fmt.Sprintf("%-11s", r.label), r.frac, true, barWidth)
		line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  (%d)", r.count))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SummaryScreen) renderEstimate(width int, sum *review.Summary) string {
	stats := sum.Stats

	var lines []string
	if sum.TwoCategory {
		lines = append(lines,
			fmt.Sprintf("Estimated words you know: ~%d of %d (%.0f%%)",
				stats.EstimatedKnown, stats.Population, stats.KnownFraction*100))
	} else {
		lines = append(lines,
			fmt.Sprintf("Estimated words you know: ~%d of %d (%.0f%%)",
				stats.EstimatedKnown, stats.Population, stats.KnownFraction*100),
			fmt.Sprintf("Estimated words in active use: ~%d (%.0f%%)",
				stats.EstimatedActive, stats.ActiveFraction*100))
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Extrapolated to the full list")))
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(line))
		b.WriteString("\n")
	}

	if stats.Reviewed < stats.Population {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Based on a sample of %d words.", stats.Reviewed)))
	}
	return b.String()
}

func fraction(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
