package review

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/fweber/lexiscope/internal/grader"
	"github.com/fweber/lexiscope/internal/llm"
	rev "github.com/fweber/lexiscope/internal/review"
	"github.com/fweber/lexiscope/internal/router"
	"github.com/fweber/lexiscope/internal/screen"
	"github.com/fweber/lexiscope/internal/screens/summary"
	"github.com/fweber/lexiscope/internal/ui/components"
	"github.com/fweber/lexiscope/internal/ui/layout"
	"github.com/fweber/lexiscope/internal/words"
)

// Options configures a review session screen.
type Options struct {
	WordsPath    string
	KeepOptional bool
	Seed         int64
	TwoCategory  bool
	Grader       *grader.Grader
}

// ReviewScreen implements screen.Screen for an active review session.
type ReviewScreen struct {
	opts  Options
	state *rev.State

	input       components.TextInput
	grading     bool   // a verdict request is in flight
	gradeNotice string // transient message, e.g. grading outage
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen. The word list loads asynchronously on Init.
func New(opts Options) *ReviewScreen {
	return &ReviewScreen{
		opts:  opts,
		input: components.NewTextInput("Define the word from memory...", 300),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return s.loadWords()
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state == nil {
		return nil
	}
	if s.state.Mode() == rev.ModeChallenging {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit definition"},
			{Key: "Esc", Description: "Back to browsing"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1", Description: "Don't know"},
	}
	if !s.opts.TwoCategory {
		hints = append(hints, layout.KeyHint{Key: "2", Description: "Recognize"})
	}
	hints = append(hints, layout.KeyHint{Key: "3", Description: "Know well"})
	if s.opts.Grader.Ready() {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Prove it"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewInitMsg:
		return s.handleInit(msg)
	case verdictMsg:
		return s.handleVerdict(msg)
	case reviewEndMsg:
		return s.handleEnd(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state != nil && s.state.Mode() == rev.ModeChallenging && !s.grading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// loadWords reads and shuffles the word list off the UI goroutine.
func (s *ReviewScreen) loadWords() tea.Cmd {
	opts := s.opts
	return func() tea.Msg {
		set, err := words.Load(opts.WordsPath, words.LoadOptions{
			KeepOptional: opts.KeepOptional,
			Seed:         opts.Seed,
		})
		return reviewInitMsg{Set: set, Err: err}
	}
}

func (s *ReviewScreen) handleInit(msg reviewInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = rev.NewState(msg.Set, uuid.New().String(), rev.Config{
		TwoCategory: s.opts.TwoCategory,
	})
	if s.state.IsExhausted() {
		// Empty word list: go straight to the (empty) summary.
		return s, func() tea.Msg { return reviewEndMsg{} }
	}
	return s, nil
}

func (s *ReviewScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	s.grading = false

	if msg.Generation != s.state.ChallengeGeneration() {
		// Result from a challenge the learner already abandoned.
		return s, nil
	}

	if msg.Unavailable {
		// An outage is not a wrong answer. Stay in the challenge so the
		// learner can retry, classify by hand, or back out.
		s.gradeNotice = "Grading is unavailable right now. Try again or press Esc to classify by hand."
		return s, nil
	}

	if err := rev.HandleVerdict(s.state, msg.Generation, msg.Correct); err != nil {
		return s, nil
	}

	s.input.Submit(msg.Correct)
	return s.afterAdvance()
}

func (s *ReviewScreen) handleEnd(msg reviewEndMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	sum := rev.BuildSummary(s.state)
	opts := s.opts
	restart := func() screen.Screen { return New(opts) }
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, restart)}
	}
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return reviewEndMsg{Quit: true} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.state.Mode() == rev.ModeChallenging {
		return s.handleChallengeKey(msg)
	}

	return s.handleBrowsingKey(key)
}

func (s *ReviewScreen) handleBrowsingKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "1", "u", "left":
		return s.classify(rev.CategoryUnknown)
	case "2", "p":
		if !s.opts.TwoCategory {
			return s.classify(rev.CategoryPassive)
		}
	case "3", "a", "k", "right":
		return s.classify(rev.CategoryActive)
	case "d", "enter":
		if err := rev.HandleBeginChallenge(s.state, s.opts.Grader.Ready()); err != nil {
			return s, nil
		}
		s.input.Reset()
		s.gradeNotice = ""
		return s, s.input.Init()
	}
	return s, nil
}

func (s *ReviewScreen) handleChallengeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if s.grading {
			// Abandoning an in-flight grade: bump the generation so the
			// verdict is dropped when it lands.
			s.grading = false
		}
		rev.HandleCancelChallenge(s.state)
		s.gradeNotice = ""
		return s, nil
	case "enter":
		if s.grading {
			return s, nil
		}
		definition := strings.TrimSpace(s.input.Value())
		if definition == "" {
			return s, nil
		}
		s.grading = true
		s.gradeNotice = ""
		return s, s.gradeDefinition(definition)
	}

	if s.grading {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ReviewScreen) classify(cat rev.Category) (screen.Screen, tea.Cmd) {
	if err := rev.HandleClassify(s.state, cat); err != nil {
		return s, nil
	}
	return s.afterAdvance()
}

func (s *ReviewScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	s.gradeNotice = ""
	if s.state.IsExhausted() {
		return s, func() tea.Msg { return reviewEndMsg{} }
	}
	return s, nil
}

// gradeDefinition calls the grader off the UI goroutine. The captured
// generation matches the verdict back to this specific challenge.
func (s *ReviewScreen) gradeDefinition(definition string) tea.Cmd {
	g := s.opts.Grader
	gen := s.state.ChallengeGeneration()
	sessionID := s.state.SessionID
	entry, ok := s.state.Current()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		ctx := llm.WithSession(context.Background(), sessionID)
		verdict, err := g.Grade(ctx, grader.Input{
			Word:         entry.Word,
			PartOfSpeech: entry.PartOfSpeech,
			Definition:   definition,
		})
		if err != nil {
			return verdictMsg{Generation: gen, Unavailable: true, Err: err}
		}
		return verdictMsg{Generation: gen, Correct: verdict == grader.VerdictCorrect}
	}
}
