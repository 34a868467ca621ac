// apps/advisor/internal/solver/policy.go
//
// Guess-pool sizing policy. Scoring every guess against every candidate is
// the expensive step, so the set of guesses considered shrinks or grows with
// the number of candidates left. The thresholds live in a table so they can be
// tuned without touching the selector.

package solver

import "fmt"

// PoolKind names the set of guesses the selector scores.
type PoolKind int

const (
	// PoolDirect skips scoring and plays the first candidate.
	PoolDirect PoolKind = iota
	// PoolTargets scores every target word.
	PoolTargets
	// PoolFull scores every word in the dictionary.
	PoolFull
	// PoolCandidates scores only the remaining candidates.
	PoolCandidates
)

func (k PoolKind) String() string {
	switch k {
	case PoolDirect:
		return "direct"
	case PoolTargets:
		return "targets"
	case PoolFull:
		return "full"
	case PoolCandidates:
		return "candidates"
	}
	return fmt.Sprintf("PoolKind(%d)", int(k))
}

// Tier applies Pool while at most Max candidates remain.
type Tier struct {
	Max  int
	Pool PoolKind
}

// Policy is an ordered threshold table; the first tier whose Max covers the
// candidate count wins, otherwise Fallback applies.
type Policy struct {
	Name     string
	Tiers    []Tier
	Fallback PoolKind
}

var (
	// DefaultPolicy is used for live suggestions.
	DefaultPolicy = Policy{
		Name: "default",
		Tiers: []Tier{
			{Max: 2, Pool: PoolDirect},
			{Max: 10, Pool: PoolTargets},
		},
		Fallback: PoolCandidates,
	}

	// DeepPolicy widens every decision over at most 20 candidates to the
	// whole dictionary, which also covers the targets-only tier.
	DeepPolicy = Policy{
		Name: "deep",
		Tiers: []Tier{
			{Max: 2, Pool: PoolDirect},
			{Max: 20, Pool: PoolFull},
		},
		Fallback: PoolCandidates,
	}
)

// PolicyFor returns DeepPolicy when deep is set, DefaultPolicy otherwise.
func PolicyFor(deep bool) Policy {
	if deep {
		return DeepPolicy
	}
	return DefaultPolicy
}

// Choose returns the pool kind for n remaining candidates.
func (p Policy) Choose(n int) PoolKind {
	for _, t := range p.Tiers {
		if n <= t.Max {
			return t.Pool
		}
	}
	return p.Fallback
}
