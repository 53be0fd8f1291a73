package review

import "github.com/fweber/lexiscope/internal/words"

// Action is a user interaction the presentation layer may offer in the
// current workflow state.
type Action int

const (
	ActionClassifyUnknown Action = iota
	ActionClassifyPassive
	ActionClassifyActive
	ActionStartChallenge
	ActionSubmitDefinition
	ActionCancelChallenge
)

// ViewModel is the presentation boundary: everything a render cycle
// needs, derived from the state and never retained across actions.
type ViewModel struct {
	// Word is the entry under review. Meaningless when Exhausted.
	Word words.Entry

	// Exhausted is set once every word has been reviewed; the UI shows
	// the final summary instead of classification controls.
	Exhausted bool

	// Mode is the workflow state (browsing or challenging).
	Mode Mode

	// Actions is the set of interactions currently available.
	Actions []Action

	// Stats is nil until at least one word has been reviewed.
	Stats *Stats
}

// BuildViewModel derives the view model for one render cycle.
// graderReady controls whether the challenge action is offered.
func BuildViewModel(s *State, graderReady bool) ViewModel {
	vm := ViewModel{Mode: s.Mode()}

	if snap := Snapshot(s); snap.Available {
		vm.Stats = &snap
	}

	entry, ok := s.Current()
	if !ok {
		vm.Exhausted = true
		return vm
	}
	vm.Word = entry

	if s.Mode() == ModeChallenging {
		vm.Actions = []Action{ActionSubmitDefinition, ActionCancelChallenge}
		return vm
	}

	vm.Actions = append(vm.Actions, ActionClassifyUnknown)
	if !s.Config().TwoCategory {
		vm.Actions = append(vm.Actions, ActionClassifyPassive)
	}
	vm.Actions = append(vm.Actions, ActionClassifyActive)
	if graderReady {
		vm.Actions = append(vm.Actions, ActionStartChallenge)
	}
	return vm
}
