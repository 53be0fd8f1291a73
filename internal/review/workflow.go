package review

import "errors"

// ErrChallengeUnavailable is returned when the definition challenge is
// requested but no grader is reachable (no credential configured). The
// workflow stays in browsing mode and nothing is mutated.
var ErrChallengeUnavailable = errors.New("definition grading is not available")

// ErrNotChallenging is returned for challenge actions outside the
// challenge sub-flow.
var ErrNotChallenging = errors.New("no active challenge")

// The functions below are the transition table of the classification
// workflow. Each user action is one call over *State; the view is
// re-derived afterwards from BuildViewModel.

// HandleClassify processes a direct category selection while browsing.
func HandleClassify(s *State, cat Category) error {
	if s.mode != ModeBrowsing {
		return ErrNotChallenging
	}
	s.lastOutcome = OutcomeUnresolved
	return s.Advance(cat)
}

// HandleBeginChallenge enters the definition-challenge sub-flow for the
// current word. graderReady reflects whether the grading adapter is
// configured; without it the transition is refused and the state is
// left untouched.
func HandleBeginChallenge(s *State, graderReady bool) error {
	if s.IsExhausted() {
		return ErrExhausted
	}
	if !graderReady {
		return ErrChallengeUnavailable
	}
	if s.mode == ModeChallenging {
		return nil
	}
	s.mode = ModeChallenging
	s.lastOutcome = OutcomeUnresolved
	s.challengeGen++
	return nil
}

// HandleCancelChallenge abandons the active challenge without advancing.
// Any in-flight grading result becomes stale and will be ignored.
func HandleCancelChallenge(s *State) {
	if s.mode != ModeChallenging {
		return
	}
	s.resetChallenge()
}

// HandleVerdict applies a resolved grading verdict. gen must be the
// ChallengeGeneration captured when the grading call was dispatched; a
// mismatch means the user cancelled or moved on, and the result is
// dropped without touching the state. A correct definition evidences
// recognition but not production, so it files the word one tier below
// active knowledge.
func HandleVerdict(s *State, gen int, correct bool) error {
	if s.mode != ModeChallenging || gen != s.challengeGen {
		return nil
	}

	cat := CategoryUnknown
	outcome := OutcomeIncorrect
	if correct {
		outcome = OutcomeCorrect
		if s.cfg.TwoCategory {
			cat = CategoryActive
		} else {
			cat = CategoryPassive
		}
	}

	if err := s.Advance(cat); err != nil {
		return err
	}
	s.lastOutcome = outcome
	return nil
}
