package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fweber/lexiscope/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushAndPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	review := &stubScreen{title: "review"}
	r.Push(review)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "review" {
		t.Errorf("active = %q, want review", r.Active().Title())
	}
	if !review.initRan {
		t.Error("Init() did not run on pushed screen")
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth after pop at bottom = %d, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "review"})

	summary := &stubScreen{title: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("active = %q, want summary", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("Init() did not run on replacement screen")
	}

	// Popping the summary lands back on home, not the replaced review.
	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "review"}})
	if r.Active().Title() != "review" {
		t.Fatalf("active = %q, want review", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "summary"}})
	if r.Active().Title() != "summary" {
		t.Fatalf("active = %q, want summary", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("active = %q, want home", r.Active().Title())
	}
}
