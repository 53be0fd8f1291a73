package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fweber/lexiscope/internal/router"
	"github.com/fweber/lexiscope/internal/screen"
	reviewscreen "github.com/fweber/lexiscope/internal/screens/review"
	"github.com/fweber/lexiscope/internal/ui/components"
	"github.com/fweber/lexiscope/internal/ui/layout"
	"github.com/fweber/lexiscope/internal/ui/theme"
)

// HomeScreen is the entry screen: start a review or tweak options.
type HomeScreen struct {
	opts reviewscreen.Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. opts carries everything a review session
// needs; the menu lets the learner adjust the toggles before starting.
func New(opts reviewscreen.Options) *HomeScreen {
	h := &HomeScreen{opts: opts}
	h.menu = h.buildMenu()
	return h
}

func (h *HomeScreen) buildMenu() components.Menu {
	optionalLabel := "Include rare words: off"
	if h.opts.KeepOptional {
		optionalLabel = "Include rare words: on"
	}

	items := []components.MenuItem{
		{Label: "Start review", Action: func() tea.Cmd {
			opts := h.opts
			opts.TwoCategory = false
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(opts)}
			}
		}},
		{Label: "Quick review (know / don't know)", Action: func() tea.Cmd {
			opts := h.opts
			opts.TwoCategory = true
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(opts)}
			}
		}},
		{Label: optionalLabel, Action: func() tea.Cmd {
			h.opts.KeepOptional = !h.opts.KeepOptional
			selected := h.menu.Selected
			h.menu = h.buildMenu()
			h.menu.Selected = selected
			return nil
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return components.NewMenu(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "ctrl+c":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Lexiscope"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("How many words do you actually know?"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	b.WriteString("\n\n")

	info := fmt.Sprintf("Word list: %s", h.opts.WordsPath)
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(info))

	if !h.opts.Grader.Ready() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("No LLM credential found — definition challenges are disabled."))
	}

	return b.String()
}
