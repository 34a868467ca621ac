// apps/advisor/internal/game/engine.go
//
// Referee and feedback helpers.
// Responsibilities:
//   - Score guesses using the classic two-pass Wordle algorithm (string level).
//   - Parse and validate result digits coming from real play ("20100", marks).
//   - Referee a game against a hidden answer: playing → won/lost.
//
// The solver computes the same feedback on encoded words; Score here is the
// readable reference both sides are tested against.
package game

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultRows = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotAllowed   = errors.New("not in word list")
	ErrBadResult    = errors.New("invalid result")
)

// New constructs a refereed game for answer.
// allowed may be nil, in which case any alphabetic word of the right length is accepted.
func New(answer string, rows int, allowed func(string) bool) *Game {
	if rows <= 0 {
		rows = DefaultRows
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return &Game{
		Answer:  answer,
		Rows:    rows,
		Cols:    len(answer),
		Guesses: []Guess{},
		allowed: allowed,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the scored guess, the new state ("playing"/"won"/"lost"), or an error.
func (g *Game) ApplyGuess(word string) (Guess, string, error) {
	if g.Finished {
		return Guess{}, g.State(), ErrFinished
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != g.Cols || !IsAlpha(word) {
		return Guess{}, g.State(), fmt.Errorf("%w: %q", ErrInvalidGuess, word)
	}
	if g.allowed != nil && !g.allowed(word) {
		return Guess{}, g.State(), fmt.Errorf("%w: %q", ErrNotAllowed, word)
	}

	guess := Guess{Word: word, Result: Score(g.Answer, word)}
	g.Guesses = append(g.Guesses, guess)

	if IsSolved(guess.Result) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return guess, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score compares guess against answer and returns one digit per letter:
//
//	0 = miss, 1 = present, 2 = hit
//
// Pass 1 marks hits and counts the answer letters left unmatched.
// Pass 2 marks a non-hit letter present only while unmatched copies remain,
// so a repeated guess letter is never reported more often than the answer holds it.
func Score(answer, guess string) []int {
	n := len(answer)
	out := make([]int, n)
	if len(guess) != n {
		return out
	}

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = Hit
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Hit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			out[i] = Present
			counts[j]--
		}
	}
	return out
}

// ParseResult reads feedback written as digits ("20100") or tile letters
// ("g", "y", and "b"/"x"/"-" for green, yellow and grey).
func ParseResult(s string) ([]int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadResult)
	}
	out := make([]int, 0, len(s))
	for _, r := range s {
		switch r {
		case '0', 'b', 'x', '-', '.':
			out = append(out, Miss)
		case '1', 'y':
			out = append(out, Present)
		case '2', 'g':
			out = append(out, Hit)
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadResult, r, s)
		}
	}
	return out, nil
}

// ParseMarks converts named marks into result digits.
func ParseMarks(marks []Mark) ([]int, error) {
	out := make([]int, len(marks))
	for i, m := range marks {
		d, err := m.Digit()
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Digit returns the result digit for m.
func (m Mark) Digit() (int, error) {
	switch m {
	case MarkHit:
		return Hit, nil
	case MarkPresent:
		return Present, nil
	case MarkMiss:
		return Miss, nil
	}
	return 0, fmt.Errorf("%w: mark %q", ErrBadResult, string(m))
}

// Marks converts result digits into named marks.
func Marks(result []int) []Mark {
	out := make([]Mark, len(result))
	for i, d := range result {
		switch d {
		case Hit:
			out[i] = MarkHit
		case Present:
			out[i] = MarkPresent
		default:
			out[i] = MarkMiss
		}
	}
	return out
}

// IsSolved returns true if every digit is a hit.
func IsSolved(result []int) bool {
	if len(result) == 0 {
		return false
	}
	for _, d := range result {
		if d != Hit {
			return false
		}
	}
	return true
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// IsAlpha checks that a string consists only of lowercase a–z.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
