// apps/advisor/internal/solver/selector.go
//
// Guess selection. Every guess is scored by the histogram of patterns it
// produces over the remaining candidates: score = Σ bucket². Dividing by the
// candidate count gives the expected number of candidates left after the
// guess, so the lowest score wins. The integer sum of squares is the objective
// itself; it is not converted to Shannon entropy.
//
// Ties go to a guess that is itself a candidate, since it may win outright.

package solver

import (
	"math"
	"sort"
)

// Ranked is one scored guess.
type Ranked struct {
	ID        WordID `json:"-"`
	Word      string `json:"word"`
	Score     uint64 `json:"score"`
	Candidate bool   `json:"candidate"`
}

// Best returns the guess from guesses with the lowest score over candidates.
// Among equal scores, a later guess that is a candidate replaces the current
// best; a non-candidate never displaces an equal score.
func (e *Engine) Best(candidates, guesses Pool) WordID {
	if len(guesses) == 0 || len(candidates) == 0 {
		return NoWord
	}
	e.markCandidates(candidates)

	best := guesses[0]
	bestScore := uint64(math.MaxUint64)
	for _, g := range guesses {
		s := e.score(candidates, g)
		if s < bestScore || (s == bestScore && e.member.Test(uint(g))) {
			best, bestScore = g, s
		}
	}
	return best
}

// Rank scores every guess and orders them best first, with the same tie
// policy as Best, so Rank(...)[0] is always Best's choice.
func (e *Engine) Rank(candidates, guesses Pool) []Ranked {
	if len(guesses) == 0 || len(candidates) == 0 {
		return nil
	}
	e.markCandidates(candidates)

	out := make([]Ranked, len(guesses))
	for i, g := range guesses {
		out[i] = Ranked{
			ID:        g,
			Word:      e.enc.words[g],
			Score:     e.score(candidates, g),
			Candidate: e.member.Test(uint(g)),
		}
	}
	pos := make(map[WordID]int, len(guesses))
	for i, g := range guesses {
		pos[g] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Candidate != b.Candidate {
			return a.Candidate
		}
		if a.Candidate {
			// the last equal-scored candidate wins in Best
			return pos[a.ID] > pos[b.ID]
		}
		return pos[a.ID] < pos[b.ID]
	})
	return out
}

// Next picks the guess for the remaining candidates under policy.
func (e *Engine) Next(candidates Pool, policy Policy) WordID {
	if len(candidates) == 0 {
		return NoWord
	}
	if policy.Choose(len(candidates)) == PoolDirect {
		return candidates[0]
	}
	return e.Best(candidates, e.GuessPool(candidates, policy))
}

// GuessPool returns the guesses policy allows for candidates.
// The returned pool is shared and must not be modified.
func (e *Engine) GuessPool(candidates Pool, policy Policy) Pool {
	switch policy.Choose(len(candidates)) {
	case PoolDirect:
		return candidates[:1]
	case PoolTargets:
		return e.enc.targetPool
	case PoolFull:
		return e.enc.fullPool
	default:
		return candidates
	}
}

// score fills the histogram for guess over candidates and sums the squares.
func (e *Engine) score(candidates Pool, guess WordID) uint64 {
	for i := range e.buckets {
		e.buckets[i] = 0
	}
	for _, c := range candidates {
		e.buckets[e.Pattern(c, guess)]++
	}
	var s uint64
	for _, v := range e.buckets {
		s += uint64(v) * uint64(v)
	}
	return s
}

func (e *Engine) markCandidates(candidates Pool) {
	e.member.ClearAll()
	for _, c := range candidates {
		e.member.Set(uint(c))
	}
}
