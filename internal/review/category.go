// Package review holds the session state machine and the statistical
// estimation over the reviewed sample. All state is scoped to one
// session object; there are no package-level singletons.
package review

// Category is the knowledge level assigned to a reviewed word.
type Category int

const (
	// CategoryUnknown — the reviewer does not know the word.
	CategoryUnknown Category = iota

	// CategoryPassive — the word is recognized but not used in
	// production (passively known).
	CategoryPassive

	// CategoryActive — the word is part of the reviewer's active
	// vocabulary.
	CategoryActive
)

func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return "unknown"
	case CategoryPassive:
		return "passive"
	case CategoryActive:
		return "active"
	default:
		return "invalid"
	}
}

// Categories returns the full category enumeration in display order.
func Categories() []Category {
	return []Category{CategoryUnknown, CategoryPassive, CategoryActive}
}
