// apps/advisor/internal/solver/candidates.go
//
// Candidate tracking: the pool of target ids still consistent with every
// guess applied so far. Narrowing only ever removes ids, in place.

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/advisor/internal/game"
)

var (
	ErrUnknownWord = errors.New("solver: word not in dictionary")
	ErrGuessLength = errors.New("solver: guess length mismatch")
)

// Narrow keeps the ids of pool whose pattern against guess equals observed.
// The guess itself is always dropped: it was played and did not solve.
// Compaction reuses pool's backing array; the returned pool is a prefix of it.
func (e *Engine) Narrow(pool Pool, guess WordID, observed Pattern) Pool {
	n := 0
	for _, c := range pool {
		if c != guess && e.Pattern(c, guess) == observed {
			pool[n] = c
			n++
		}
	}
	return pool[:n]
}

// Replay narrows pool by every guess in history, in order.
// A guess that is not in the dictionary, or whose word or result length
// differs from the dictionary's, is a caller error and stops the replay.
func (e *Engine) Replay(pool Pool, history []game.Guess) (Pool, error) {
	for i, g := range history {
		if len(g.Word) != e.enc.length {
			return nil, fmt.Errorf("guess %d: %w: %q has %d letters, want %d",
				i+1, ErrGuessLength, g.Word, len(g.Word), e.enc.length)
		}
		id, ok := e.enc.Lookup(g.Word)
		if !ok {
			return nil, fmt.Errorf("guess %d: %w: %q", i+1, ErrUnknownWord, g.Word)
		}
		observed, err := e.enc.EncodeResult(g.Result)
		if err != nil {
			return nil, fmt.Errorf("guess %d: %w", i+1, err)
		}
		pool = e.Narrow(pool, id, observed)
	}
	return pool, nil
}
