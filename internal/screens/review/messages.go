package review

import (
	"github.com/fweber/lexiscope/internal/words"
)

// reviewInitMsg is sent when the word list has been loaded and shuffled.
type reviewInitMsg struct {
	Set *words.Set
	Err error
}

// verdictMsg carries the outcome of one async grading call. Generation
// ties it to the challenge that issued it; results from abandoned
// challenges are dropped.
type verdictMsg struct {
	Generation  int
	Correct     bool
	Unavailable bool
	Err         error
}

// reviewEndMsg triggers the transition to the summary screen.
type reviewEndMsg struct {
	Quit bool // true when the learner ended the session early
}
