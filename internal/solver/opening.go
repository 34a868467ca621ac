// apps/advisor/internal/solver/opening.go
//
// Opening book for offline simulation. With a fixed first guess the second
// guess depends only on the first pattern, so it is computed once per pattern
// (over the whole dictionary) and every simulated game reuses it.

package solver

import (
	"errors"
	"fmt"
)

const (
	// MaxAttempts is the simulation ceiling.
	MaxAttempts = 10
	// Unsolved is returned when a game hits MaxAttempts.
	Unsolved = -1
)

var ErrNotTarget = errors.New("solver: word is not a target")

// OpeningBook maps each first-guess pattern to the second guess.
type OpeningBook struct {
	enc    *Encoded
	first  WordID
	policy Policy
	second []WordID // indexed by Pattern; NoWord where no target produces it
}

// BuildOpeningBook groups every target by its pattern against firstGuess and
// stores the best second guess for each group. Groups of one or two words
// store their first member; larger groups are scored over the full dictionary.
func BuildOpeningBook(enc *Encoded, firstGuess string, policy Policy) (*OpeningBook, error) {
	first, ok := enc.Lookup(firstGuess)
	if !ok {
		return nil, fmt.Errorf("%w: first guess %q", ErrUnknownWord, firstGuess)
	}
	eng := NewEngine(enc)

	groups := make(map[Pattern]Pool)
	order := make([]Pattern, 0)
	for t := 0; t < enc.targets; t++ {
		p := eng.Pattern(WordID(t), first)
		if _, seen := groups[p]; !seen {
			order = append(order, p)
		}
		groups[p] = append(groups[p], WordID(t))
	}

	b := &OpeningBook{
		enc:    enc,
		first:  first,
		policy: policy,
		second: make([]WordID, enc.patterns),
	}
	for i := range b.second {
		b.second[i] = NoWord
	}
	for _, p := range order {
		group := groups[p]
		if len(group) <= 2 {
			b.second[p] = group[0]
			continue
		}
		b.second[p] = eng.Best(group, enc.fullPool)
	}
	return b, nil
}

// Encoded returns the dictionary the book was built for.
func (b *OpeningBook) Encoded() *Encoded { return b.enc }

// FirstGuess returns the fixed opening word.
func (b *OpeningBook) FirstGuess() string { return b.enc.words[b.first] }

// Policy returns the pool policy used for moves after the second.
func (b *OpeningBook) Policy() Policy { return b.policy }

// Second returns the book's reply to the first-guess pattern p.
func (b *OpeningBook) Second(p Pattern) (string, bool) {
	if int(p) >= len(b.second) || b.second[p] == NoWord {
		return "", false
	}
	return b.enc.words[b.second[p]], true
}

// Simulate plays a full game against target and returns the attempt count,
// or Unsolved. It allocates a Player; hot loops should reuse one.
func (b *OpeningBook) Simulate(target string) (int, error) {
	id, ok := b.enc.Lookup(target)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, target)
	}
	if !b.enc.IsTarget(id) {
		return 0, fmt.Errorf("%w: %q", ErrNotTarget, target)
	}
	return b.NewPlayer().Play(id), nil
}

// Player replays games from an OpeningBook. Each Player owns an Engine and
// a candidate buffer, so one Player per goroutine.
type Player struct {
	book   *OpeningBook
	engine *Engine
	pool   Pool
}

// NewPlayer returns a Player for b.
func (b *OpeningBook) NewPlayer() *Player {
	return &Player{
		book:   b,
		engine: NewEngine(b.enc),
		pool:   make(Pool, 0, b.enc.targets),
	}
}

// Play simulates a game against target (a target id) and returns the number
// of attempts used, or Unsolved after MaxAttempts.
func (p *Player) Play(target WordID) int {
	enc := p.book.enc
	allGreen := enc.AllGreen()
	candidates := append(p.pool[:0], enc.targetPool...)
	guess := p.book.first
	first := true

	for attempts := 1; attempts <= MaxAttempts; attempts++ {
		pat := p.engine.Pattern(target, guess)
		if pat == allGreen {
			return attempts
		}

		candidates = p.engine.Narrow(candidates, guess, pat)
		if len(candidates) == 0 {
			return attempts + 1
		}
		if len(candidates) <= 2 {
			guess = candidates[0]
			first = false
			continue
		}

		if first {
			guess = p.book.second[pat]
			if guess == NoWord {
				guess = candidates[0]
			}
			first = false
		} else {
			guess = p.engine.Next(candidates, p.book.policy)
		}
	}
	return Unsolved
}
