package review

import (
	"encoding/json"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fweber/lexiscope/internal/grader"
	"github.com/fweber/lexiscope/internal/llm"
	rev "github.com/fweber/lexiscope/internal/review"
	"github.com/fweber/lexiscope/internal/router"
	"github.com/fweber/lexiscope/internal/screen"
	"github.com/fweber/lexiscope/internal/words"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEntries(n int) []words.Entry {
	entries := make([]words.Entry, n)
	for i := range entries {
		entries[i] = words.Entry{Word: string(rune('a' + i)), PartOfSpeech: "noun"}
	}
	return entries
}

func readyGrader(responses ...llm.MockResponse) *grader.Grader {
	return grader.New(llm.NewMockProvider(responses...), grader.DefaultConfig())
}

func noGrader() *grader.Grader {
	return grader.New(nil, grader.DefaultConfig())
}

// testScreen builds a ReviewScreen with its word set already loaded.
func testScreen(n int, g *grader.Grader) *ReviewScreen {
	s := New(Options{WordsPath: "unused.csv", Grader: g})
	set := words.NewSet(testEntries(n))
	scr, _ := s.Update(reviewInitMsg{Set: set})
	return scr.(*ReviewScreen)
}

func TestTitle(t *testing.T) {
	s := New(Options{})
	if s.Title() != "Review" {
		t.Errorf("Title = %q, want Review", s.Title())
	}
}

func TestInitError_ShowsMessage(t *testing.T) {
	s := New(Options{})
	scr, _ := s.Update(reviewInitMsg{Err: errors.New("no such file")})
	ss := scr.(*ReviewScreen)

	if ss.errMsg == "" {
		t.Fatal("expected error message after failed init")
	}
	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestClassifyKey_AdvancesCursor(t *testing.T) {
	s := testScreen(3, noGrader())

	scr, _ := s.Update(keyPress('1'))
	ss := scr.(*ReviewScreen)

	if ss.state.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", ss.state.Cursor())
	}
	if ss.state.Count(rev.CategoryUnknown) != 1 {
		t.Errorf("unknown count = %d, want 1", ss.state.Count(rev.CategoryUnknown))
	}
}

func TestChallengeKey_IgnoredWithoutGrader(t *testing.T) {
	s := testScreen(3, noGrader())

	scr, _ := s.Update(keyPress('d'))
	ss := scr.(*ReviewScreen)

	if ss.state.Mode() != rev.ModeBrowsing {
		t.Errorf("Mode = %v, want browsing", ss.state.Mode())
	}
}

func TestChallengeFlow_CorrectVerdict(t *testing.T) {
	s := testScreen(3, readyGrader(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"correct"}`),
	}))

	scr, _ := s.Update(keyPress('d'))
	ss := scr.(*ReviewScreen)
	if ss.state.Mode() != rev.ModeChallenging {
		t.Fatalf("Mode = %v, want challenging", ss.state.Mode())
	}

	ss.input.Model.SetValue("a small furry animal")
	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*ReviewScreen)
	if !ss.grading {
		t.Fatal("expected grading to be in flight")
	}
	if cmd == nil {
		t.Fatal("expected a grading command")
	}

	// Run the async grade and feed the verdict back.
	msg := cmd()
	scr, _ = ss.Update(msg)
	ss = scr.(*ReviewScreen)

	if ss.state.Mode() != rev.ModeBrowsing {
		t.Errorf("Mode = %v, want browsing after verdict", ss.state.Mode())
	}
	if ss.state.Count(rev.CategoryPassive) != 1 {
		t.Errorf("passive count = %d, want 1", ss.state.Count(rev.CategoryPassive))
	}
	if ss.state.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", ss.state.Cursor())
	}
}

func TestChallengeFlow_EmptyDefinitionNotSubmitted(t *testing.T) {
	s := testScreen(3, readyGrader())

	scr, _ := s.Update(keyPress('d'))
	ss := scr.(*ReviewScreen)

	_, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty definition should not produce a grading command")
	}
	if ss.grading {
		t.Error("grading should not start for an empty definition")
	}
}

func TestChallengeCancel_DropsInFlightVerdict(t *testing.T) {
	s := testScreen(3, readyGrader(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"correct"}`),
	}))

	scr, _ := s.Update(keyPress('d'))
	ss := scr.(*ReviewScreen)
	ss.input.Model.SetValue("something")
	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*ReviewScreen)

	// Abandon the challenge while the request is in flight.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*ReviewScreen)
	if ss.state.Mode() != rev.ModeBrowsing {
		t.Fatalf("Mode = %v, want browsing after cancel", ss.state.Mode())
	}

	// The late verdict must not classify anything.
	msg := cmd()
	scr, _ = ss.Update(msg)
	ss = scr.(*ReviewScreen)

	if ss.state.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 (stale verdict dropped)", ss.state.Cursor())
	}
}

func TestChallengeOutage_KeepsWordUnclassified(t *testing.T) {
	s := testScreen(3, readyGrader(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	}))

	scr, _ := s.Update(keyPress('d'))
	ss := scr.(*ReviewScreen)
	ss.input.Model.SetValue("something")
	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*ReviewScreen)

	msg := cmd()
	scr, _ = ss.Update(msg)
	ss = scr.(*ReviewScreen)

	if ss.state.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 (outage is not a verdict)", ss.state.Cursor())
	}
	if ss.state.Mode() != rev.ModeChallenging {
		t.Errorf("Mode = %v, want still challenging", ss.state.Mode())
	}
	if ss.gradeNotice == "" {
		t.Error("expected an outage notice")
	}
}

func TestExhaustion_EndsSession(t *testing.T) {
	s := testScreen(1, noGrader())

	scr, cmd := s.Update(keyPress('1'))
	ss := scr.(*ReviewScreen)
	if cmd == nil {
		t.Fatal("expected an end-session command after the last word")
	}

	msg := cmd()
	if _, ok := msg.(reviewEndMsg); !ok {
		t.Fatalf("msg = %T, want reviewEndMsg", msg)
	}

	scr, cmd = ss.Update(msg)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected summary screen replacement")
	}
	_ = scr
}

func TestQuitConfirm(t *testing.T) {
	s := testScreen(3, noGrader())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*ReviewScreen)
	if !ss.quitConfirm {
		t.Fatal("expected quit confirmation")
	}

	// N keeps the session going.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*ReviewScreen)
	if ss.quitConfirm {
		t.Fatal("expected confirmation dismissed")
	}

	// Esc then Y ends the session early.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*ReviewScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if msg, ok := cmd().(reviewEndMsg); !ok || !msg.Quit {
		t.Fatalf("expected reviewEndMsg{Quit: true}, got %#v", cmd())
	}
}

func TestTwoCategory_PassiveKeyIgnored(t *testing.T) {
	s := New(Options{TwoCategory: true, Grader: noGrader()})
	scr, _ := s.Update(reviewInitMsg{Set: words.NewSet(testEntries(3))})
	ss := scr.(*ReviewScreen)

	scr, _ = ss.Update(keyPress('2'))
	ss = scr.(*ReviewScreen)

	if ss.state.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 (passive disabled in quick mode)", ss.state.Cursor())
	}
}

func TestEmptyWordList_EndsImmediately(t *testing.T) {
	s := New(Options{Grader: noGrader()})
	_, cmd := s.Update(reviewInitMsg{Set: words.NewSet(nil)})

	if cmd == nil {
		t.Fatal("expected an end command for an empty word list")
	}
	if _, ok := cmd().(reviewEndMsg); !ok {
		t.Fatal("expected reviewEndMsg for an empty word list")
	}
}
