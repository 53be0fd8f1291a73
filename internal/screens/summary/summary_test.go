package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fweber/lexiscope/internal/review"
	"github.com/fweber/lexiscope/internal/router"
	"github.com/fweber/lexiscope/internal/screen"
)

// stubScreen stands in for a fresh review session.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "review" }
func (s *stubScreen) Title() string                           { return "Review" }

func testSummary() *review.Summary {
	return &review.Summary{
		Duration: 4 * time.Minute,
		Stats:    review.Estimate(10, 25, 15, 500),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "~400 of 500") {
		t.Errorf("expected known estimate in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Based on a sample of 50 words.") {
		t.Errorf("expected sample note for a partial review, got:\n%s", view)
	}
}

func TestSummaryScreen_Display_TwoCategory(t *testing.T) {
	s := New(&review.Summary{
		Duration:    time.Minute,
		TwoCategory: true,
		Stats:       review.Estimate(5, 0, 15, 100),
	}, nil)
	view := s.View(80, 24)
	if strings.Contains(view, "active use") {
		t.Errorf("two-category summary must not show the active-use line, got:\n%s", view)
	}
	if !strings.Contains(view, "~75 of 100") {
		t.Errorf("expected known estimate in view, got:\n%s", view)
	}
}

func TestSummaryScreen_Display_EmptySample(t *testing.T) {
	s := New(&review.Summary{Stats: review.Estimate(0, 0, 0, 500)}, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "nothing to estimate") {
		t.Errorf("expected empty-sample message, got:\n%s", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_Restart(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return &stubScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r (restart)")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*stubScreen); !ok {
		t.Errorf("replacement screen = %T, want the fresh session", msg.Screen)
	}
}

func TestSummaryScreen_Restart_DisabledWithoutFactory(t *testing.T) {
	s := New(testSummary(), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("restart should be inert without a session factory")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}

	s = New(testSummary(), func() screen.Screen { return &stubScreen{} })
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2 with restart available", len(s.KeyHints()))
	}
}
