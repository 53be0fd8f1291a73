package review

import "time"

// Summary holds the data displayed when a session ends.
type Summary struct {
	Duration    time.Duration
	TwoCategory bool
	Stats       Stats
}

// BuildSummary creates a Summary from the current session state. It can
// be built before exhaustion (early quit) as well as at the end.
func BuildSummary(s *State) *Summary {
	return &Summary{
		Duration:    time.Since(s.StartTime),
		TwoCategory: s.Config().TwoCategory,
		Stats:       Snapshot(s),
	}
}
