package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	rev "github.com/fweber/lexiscope/internal/review"
	"github.com/fweber/lexiscope/internal/ui/components"
	"github.com/fweber/lexiscope/internal/ui/theme"
)

func (s *ReviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading word list...")
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	vm := rev.BuildViewModel(s.state, s.opts.Grader.Ready())
	if vm.Exhausted {
		return ""
	}
	if vm.Mode == rev.ModeChallenging {
		return s.renderChallenge(width, vm)
	}
	return s.renderBrowsing(width, vm)
}

func (s *ReviewScreen) renderBrowsing(width int, vm rev.ViewModel) string {
	var b strings.Builder

	b.WriteString(s.renderProgressLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	b.WriteString(theme.Word.Width(width).Render(vm.Word.Word))
	if vm.Word.PartOfSpeech != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("(" + vm.Word.PartOfSpeech + ")"))
	}
	b.WriteString("\n\n\n")

	b.WriteString(renderChoices(width, vm.Actions))

	if vm.Stats != nil {
		b.WriteString("\n\n")
		b.WriteString(s.renderRunningEstimate(width, *vm.Stats))
	}

	return b.String()
}

var choiceLabels = map[rev.Action]struct{ key, label string }{
	rev.ActionClassifyUnknown: {"1", "I don't know this word"},
	rev.ActionClassifyPassive: {"2", "I recognize it but wouldn't use it"},
	rev.ActionClassifyActive:  {"3", "I know it and use it"},
	rev.ActionStartChallenge:  {"d", "Let me prove it — define the word"},
}

func renderChoices(width int, actions []rev.Action) string {
	var b strings.Builder
	for _, a := range actions {
		c, ok := choiceLabels[a]
		if !ok {
			continue
		}
		line := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("["+c.key+"]") +
			" " + lipgloss.NewStyle().Foreground(theme.Text).Render(c.label)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *ReviewScreen) renderChallenge(width int, vm rev.ViewModel) string {
	entry := vm.Word

	var b strings.Builder

	b.WriteString(s.renderProgressLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	b.WriteString(theme.Word.Width(width).Render(entry.Word))
	if entry.PartOfSpeech != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("(" + entry.PartOfSpeech + ")"))
	}
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("What does it mean?")
	b.WriteString(prompt)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	switch {
	case s.grading:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Grading..."))
	case s.gradeNotice != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.gradeNotice))
	}

	return b.String()
}

func (s *ReviewScreen) renderProgressLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Word %d of %d", s.state.Cursor()+1, s.state.Population()))

	var counts string
	if s.opts.TwoCategory {
		counts = fmt.Sprintf("know %d · don't know %d",
			s.state.Count(rev.CategoryActive),
			s.state.Count(rev.CategoryUnknown))
	} else {
		counts = fmt.Sprintf("active %d · passive %d · unknown %d",
			s.state.Count(rev.CategoryActive),
			s.state.Count(rev.CategoryPassive),
			s.state.Count(rev.CategoryUnknown))
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *ReviewScreen) renderRunningEstimate(width int, stats rev.Stats) string {
	var txt string
	if s.opts.TwoCategory {
		txt = fmt.Sprintf("So far: ~%d of %d words known",
			stats.EstimatedKnown, stats.Population)
	} else {
		txt = fmt.Sprintf("So far: ~%d known, ~%d in active use (of %d words)",
			stats.EstimatedKnown, stats.EstimatedActive, stats.Population)
	}
	return theme.Hint.Width(width).Align(lipgloss.Center).Render(txt)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this review session?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your results so far will be summarized."))
	b.WriteString("\n\n")

	yes := components.NewButton("Y — end session", true, nil)
	no := components.NewButton("N — keep going", false, nil)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes.View(), "   ", no.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))

	return b.String()
}

func renderError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Could not start the review"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to go back"))
	return b.String()
}
