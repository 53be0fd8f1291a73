package review

import "math"

// Stats is a read-only snapshot of the sample fractions and their
// projection onto the full word set. Fractions are computed over the
// reviewed count only; the extrapolation multiplies a sample fraction
// by the population size and assumes the random sample is
// representative.
type Stats struct {
	// Available is false until at least one word has been reviewed.
	// When false every other field is zero: an empty sample is a benign
	// condition, not an error.
	Available bool

	Reviewed   int
	Population int

	UnknownCount int
	PassiveCount int
	ActiveCount  int

	ActiveFraction  float64
	PassiveFraction float64
	// KnownFraction is the active and passive fractions combined. In
	// the two-category variant it is simply known/reviewed.
	KnownFraction float64

	// Floored absolute projections onto the population.
	EstimatedActive int
	EstimatedKnown  int
}

// Snapshot computes Stats from the session's current collections. Pure
// and callable at any point; it never mutates the state.
func Snapshot(s *State) Stats {
	return Estimate(
		s.Count(CategoryUnknown),
		s.Count(CategoryPassive),
		s.Count(CategoryActive),
		s.Population(),
	)
}

// Estimate computes Stats from raw category counts and a population
// size.
func Estimate(unknown, passive, active, population int) Stats {
	reviewed := unknown + passive + active
	stats := Stats{
		Reviewed:     reviewed,
		Population:   population,
		UnknownCount: unknown,
		PassiveCount: passive,
		ActiveCount:  active,
	}

	if reviewed == 0 {
		return stats
	}

	stats.Available = true
	stats.ActiveFraction = float64(active) / float64(reviewed)
	stats.PassiveFraction = float64(passive) / float64(reviewed)
	stats.KnownFraction = stats.ActiveFraction + stats.PassiveFraction
	stats.EstimatedActive = int(math.Floor(stats.ActiveFraction * float64(population)))
	stats.EstimatedKnown = int(math.Floor(stats.KnownFraction * float64(population)))

	return stats
}
