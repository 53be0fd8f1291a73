// Package words loads the reference word list that a review session
// samples from. The list is a CSV export of a dictionary with one row
// per headword.
package words

// Entry is a single dictionary headword. Entries are read from the
// source file and never mutated afterwards.
type Entry struct {
	// Word is the headword as it appears in the dictionary.
	Word string

	// PartOfSpeech is the dictionary's part-of-speech label (pos_title).
	PartOfSpeech string

	// Optional marks words from optional categories (rare inflections,
	// regionalisms) that most sessions exclude.
	Optional bool
}

// Set is an ordered sequence of entries, fixed once constructed.
// The order is the session's presentation order.
type Set struct {
	entries []Entry
}

// NewSet wraps the given entries in a Set. The slice is owned by the
// Set after the call.
func NewSet(entries []Entry) *Set {
	return &Set{entries: entries}
}

// Len returns the number of entries. This is also the population size
// used for extrapolation.
func (s *Set) Len() int {
	return len(s.entries)
}

// At returns the entry at index i. The index must be in [0, Len).
func (s *Set) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of the underlying sequence.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
