// apps/advisor/internal/solver/suggest.go
//
// Public query API: given a dictionary and the real guess history, return
// the recommended next guess(es).
//
// Outcomes:
//   - history inconsistent with every target → empty result, no error;
//   - one or two candidates left             → those candidates;
//   - otherwise                              → the single best guess.
//
// Malformed history (unknown word, wrong length, bad digit) is an error.

package solver

import (
	"github.com/robalobadob/wordle/apps/advisor/internal/game"
)

// MaxListedCandidates caps Advice.Candidates.
const MaxListedCandidates = 20

// Advice is the full answer to a query.
type Advice struct {
	Words      []string `json:"words"`
	Remaining  int      `json:"remaining"`
	Candidates []string `json:"candidates,omitempty"`
	Ranked     []Ranked `json:"ranked,omitempty"`
}

// Advisor answers queries with a given policy and cache.
type Advisor struct {
	Policy Policy
	Cache  *Cache
	// Top > 0 fills Advice.Ranked with that many scored guesses.
	Top int
}

// NewAdvisor returns an Advisor on the default cache.
func NewAdvisor(deep bool) Advisor {
	return Advisor{Policy: PolicyFor(deep), Cache: DefaultCache}
}

// Suggest returns the recommended next guesses under DefaultPolicy.
func Suggest(d *Dictionary, history []game.Guess) ([]string, error) {
	a, err := NewAdvisor(false).Advise(d, history)
	if err != nil {
		return nil, err
	}
	return a.Words, nil
}

// Advise narrows the targets by history and picks the next guess.
func (a Advisor) Advise(d *Dictionary, history []game.Guess) (Advice, error) {
	cache := a.Cache
	if cache == nil {
		cache = DefaultCache
	}
	policy := a.Policy
	if policy.Name == "" {
		policy = DefaultPolicy
	}

	enc, err := cache.Encoded(d)
	if err != nil {
		return Advice{}, err
	}
	eng := NewEngine(enc)
	candidates, err := eng.Replay(enc.TargetPool(), history)
	if err != nil {
		return Advice{}, err
	}

	out := Advice{Words: []string{}, Remaining: len(candidates)}
	listed := candidates
	if len(listed) > MaxListedCandidates {
		listed = listed[:MaxListedCandidates]
	}
	out.Candidates = enc.Words(listed)

	switch {
	case len(candidates) == 0:
		return out, nil
	case len(candidates) <= 2:
		out.Words = enc.Words(candidates)
		return out, nil
	}

	if a.Top > 0 {
		ranked := eng.Rank(candidates, eng.GuessPool(candidates, policy))
		if len(ranked) > a.Top {
			ranked = ranked[:a.Top]
		}
		out.Ranked = ranked
	}
	out.Words = []string{enc.Word(eng.Next(candidates, policy))}
	return out, nil
}
