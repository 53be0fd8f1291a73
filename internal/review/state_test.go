package review

import (
	"fmt"
	"testing"

	"github.com/fweber/lexiscope/internal/words"
)

func testSet(n int) *words.Set {
	entries := make([]words.Entry, n)
	for i := range entries {
		entries[i] = words.Entry{
			Word:         fmt.Sprintf("mot%d", i+1),
			PartOfSpeech: "nom masculin",
		}
	}
	return words.NewSet(entries)
}

func testState(n int) *State {
	return NewState(testSet(n), "test-session", Config{})
}

// checkInvariant verifies that collection sizes sum to the cursor and
// that no entry is filed twice.
func checkInvariant(t *testing.T, s *State) {
	t.Helper()

	total := 0
	seen := map[string]Category{}
	for _, cat := range Categories() {
		for _, e := range s.Collection(cat) {
			if prev, dup := seen[e.Word]; dup {
				t.Fatalf("%q filed under both %s and %s", e.Word, prev, cat)
			}
			seen[e.Word] = cat
		}
		total += s.Count(cat)
	}
	if total != s.Cursor() {
		t.Fatalf("collection sizes sum to %d, cursor is %d", total, s.Cursor())
	}
}

func TestAdvance_PairsAppendWithCursor(t *testing.T) {
	s := testState(5)
	cats := []Category{CategoryUnknown, CategoryActive, CategoryPassive, CategoryUnknown, CategoryActive}

	for i, cat := range cats {
		entry, ok := s.Current()
		if !ok {
			t.Fatalf("step %d: unexpectedly exhausted", i)
		}
		if err := s.Advance(cat); err != nil {
			t.Fatalf("step %d: Advance: %v", i, err)
		}
		checkInvariant(t, s)

		coll := s.Collection(cat)
		if coll[len(coll)-1] != entry {
			t.Fatalf("step %d: last entry in %s = %v, want %v", i, cat, coll[len(coll)-1], entry)
		}
	}

	if s.Reviewed() != 5 {
		t.Errorf("Reviewed = %d, want 5", s.Reviewed())
	}
}

func TestIsExhausted_ExactAndMonotonic(t *testing.T) {
	s := testState(3)

	for i := 0; i < 3; i++ {
		if s.IsExhausted() {
			t.Fatalf("exhausted at cursor %d, set has 3 entries", i)
		}
		if err := s.Advance(CategoryUnknown); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if !s.IsExhausted() {
		t.Fatal("expected exhaustion at cursor == len")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("Current returned an entry after exhaustion")
	}

	// Exhaustion is terminal.
	if err := s.Advance(CategoryUnknown); err != ErrExhausted {
		t.Fatalf("Advance after exhaustion = %v, want ErrExhausted", err)
	}
	if !s.IsExhausted() {
		t.Fatal("exhaustion did not stick")
	}
	if s.Cursor() != 3 {
		t.Errorf("Cursor = %d, want 3 (failed advance must not move it)", s.Cursor())
	}
}

func TestAdvance_BadCategory(t *testing.T) {
	s := testState(1)

	if err := s.Advance(Category(99)); err != ErrBadCategory {
		t.Fatalf("Advance(99) = %v, want ErrBadCategory", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor())
	}
}

func TestOfferedCategories(t *testing.T) {
	full := NewState(testSet(1), "s", Config{})
	if got := full.OfferedCategories(); len(got) != 3 {
		t.Errorf("three-category session offers %v", got)
	}

	reduced := NewState(testSet(1), "s", Config{TwoCategory: true})
	got := reduced.OfferedCategories()
	if len(got) != 2 || got[0] != CategoryUnknown || got[1] != CategoryActive {
		t.Errorf("two-category session offers %v", got)
	}
}
