package review

import (
	"errors"
	"time"

	"github.com/fweber/lexiscope/internal/words"
)

// ErrExhausted is returned when an action requires a current word but
// the cursor has reached the end of the word set. Under correct UI
// wiring this does not happen; callers log and ignore it rather than
// tearing down the session.
var ErrExhausted = errors.New("word set exhausted")

// ErrBadCategory is returned for a category outside the enumeration.
var ErrBadCategory = errors.New("invalid category")

// Mode is the classification workflow state for the current word.
type Mode int

const (
	// ModeBrowsing — the plain classification controls are active.
	ModeBrowsing Mode = iota

	// ModeChallenging — the definition-challenge sub-flow is active.
	ModeChallenging
)

func (m Mode) String() string {
	if m == ModeChallenging {
		return "challenging"
	}
	return "browsing"
}

// Outcome is the resolution of a definition challenge.
type Outcome int

const (
	OutcomeUnresolved Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// Config selects the session variant.
type Config struct {
	// TwoCategory reduces the category enumeration to unknown/known.
	// The model is unchanged; only the offered categories shrink and a
	// correct challenge verdict maps to the single known category.
	TwoCategory bool
}

// State is the full state of one review session: the fixed word order,
// the cursor, and the per-category collections. It is created at
// session start and discarded at session end. Interactions are strictly
// sequential, so State needs no internal locking.
type State struct {
	// SessionID identifies this session in logs and events.
	SessionID string

	// StartTime is when the session began.
	StartTime time.Time

	cfg         Config
	set         *words.Set
	cursor      int
	collections map[Category][]words.Entry

	mode Mode

	// challengeGen increments whenever the active challenge changes or
	// is abandoned. A grading result carrying a stale generation is
	// ignored, which is how a cancelled in-flight call stays harmless.
	challengeGen int

	// lastOutcome is the most recent resolved challenge verdict, kept
	// across the advance for feedback display.
	lastOutcome Outcome
}

// NewState creates a session over the given word set. The set's order
// is the presentation order and is not reshuffled for the lifetime of
// the state.
func NewState(set *words.Set, sessionID string, cfg Config) *State {
	return &State{
		SessionID:   sessionID,
		StartTime:   time.Now(),
		cfg:         cfg,
		set:         set,
		collections: make(map[Category][]words.Entry),
	}
}

// Config returns the session configuration.
func (s *State) Config() Config { return s.cfg }

// Current returns the entry at the cursor. ok is false once the set is
// exhausted; callers must stop presenting classification controls then.
func (s *State) Current() (entry words.Entry, ok bool) {
	if s.IsExhausted() {
		return words.Entry{}, false
	}
	return s.set.At(s.cursor), true
}

// IsExhausted reports whether every word has been reviewed. Once true
// it stays true; the cursor never moves backwards.
func (s *State) IsExhausted() bool {
	return s.cursor >= s.set.Len()
}

// Advance files the current word under the given category and moves the
// cursor forward by one. It is the single mutating entry point for both
// manual classification and graded challenge outcomes, which keeps the
// reviewed-count invariant: the collection sizes always sum to the
// cursor position. Any active challenge is discarded.
func (s *State) Advance(cat Category) error {
	if cat < CategoryUnknown || cat > CategoryActive {
		return ErrBadCategory
	}
	entry, ok := s.Current()
	if !ok {
		return ErrExhausted
	}

	s.collections[cat] = append(s.collections[cat], entry)
	s.cursor++
	s.resetChallenge()
	return nil
}

// resetChallenge drops any challenge state for the word being left
// behind and invalidates in-flight grading results.
func (s *State) resetChallenge() {
	s.mode = ModeBrowsing
	s.challengeGen++
}

// Cursor returns the current 0-based cursor position, which equals the
// number of reviewed words.
func (s *State) Cursor() int { return s.cursor }

// Reviewed returns the number of words classified so far.
func (s *State) Reviewed() int { return s.cursor }

// Population returns the size of the full (filtered) word set, the
// extrapolation base.
func (s *State) Population() int { return s.set.Len() }

// Collection returns the reviewed entries filed under cat, in review
// order.
func (s *State) Collection(cat Category) []words.Entry {
	return s.collections[cat]
}

// Count returns the size of the collection for cat.
func (s *State) Count(cat Category) int {
	return len(s.collections[cat])
}

// Mode returns the workflow state for the current word.
func (s *State) Mode() Mode { return s.mode }

// ChallengeGeneration identifies the active challenge. Grading results
// must echo it back; see HandleVerdict.
func (s *State) ChallengeGeneration() int { return s.challengeGen }

// LastOutcome returns the most recent resolved challenge verdict, or
// OutcomeUnresolved if the last word was classified manually.
func (s *State) LastOutcome() Outcome { return s.lastOutcome }

// OfferedCategories returns the categories the session variant offers
// for manual classification.
func (s *State) OfferedCategories() []Category {
	if s.cfg.TwoCategory {
		return []Category{CategoryUnknown, CategoryActive}
	}
	return Categories()
}
