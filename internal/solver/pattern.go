// apps/advisor/internal/solver/pattern.go
//
// Pattern engine: the feedback of one guess against one target, packed into a
// single base-3 integer. Digit i (most significant first) is 0 = absent,
// 1 = present elsewhere, 2 = correct position.

package solver

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrResultLength = errors.New("solver: result length mismatch")
	ErrResultDigit  = errors.New("solver: result digit out of range")
)

// Pattern is a feedback code in [0, 3^L).
type Pattern uint16

// PatternCount returns 3^length.
func PatternCount(length int) int {
	n := 1
	for i := 0; i < length; i++ {
		n *= 3
	}
	return n
}

// AllGreen returns the solved pattern for words of length letters.
func AllGreen(length int) Pattern { return Pattern(PatternCount(length) - 1) }

// EncodeResult packs observed feedback digits into a Pattern.
func EncodeResult(digits []int) (Pattern, error) {
	if len(digits) == 0 || len(digits) > MaxWordLength {
		return 0, fmt.Errorf("%w: %d digits", ErrResultLength, len(digits))
	}
	code := 0
	for _, d := range digits {
		if d < 0 || d > 2 {
			return 0, fmt.Errorf("%w: %d", ErrResultDigit, d)
		}
		code = code*3 + d
	}
	return Pattern(code), nil
}

// Digits unpacks p into length digits.
func (p Pattern) Digits(length int) []int {
	out := make([]int, length)
	v := int(p)
	for i := length - 1; i >= 0; i-- {
		out[i] = v % 3
		v /= 3
	}
	return out
}

// Engine computes patterns and scores guesses over one Encoded dictionary.
// It owns the letter-count scratch, the histogram buckets and the candidate
// membership set, so an Engine must not be shared between goroutines; give
// every worker its own (NewEngine is cheap) and share the Encoded value.
type Engine struct {
	enc     *Encoded
	counts  [26]uint8
	buckets []uint32
	member  *bitset.BitSet
}

// NewEngine returns an engine over enc.
func NewEngine(enc *Encoded) *Engine {
	return &Engine{
		enc:     enc,
		buckets: make([]uint32, enc.patterns),
		member:  bitset.New(uint(enc.Len())),
	}
}

// Encoded returns the dictionary the engine works on.
func (e *Engine) Encoded() *Encoded { return e.enc }

// Pattern returns the feedback code for guess played against target.
//
// Pass 1 scores greens and counts the target letters they leave unmatched.
// Pass 2 scores a non-green guess letter yellow while unmatched copies remain.
// The counter is zeroed before returning.
func (e *Engine) Pattern(target, guess WordID) Pattern {
	n := e.enc.length
	t := e.enc.letters[int(target)*n : int(target)*n+n]
	g := e.enc.letters[int(guess)*n : int(guess)*n+n]
	mult := e.enc.mult

	code := 0
	for i := 0; i < n; i++ {
		if g[i] == t[i] {
			code += mult[i] * 2
		} else {
			e.counts[t[i]]++
		}
	}
	for i := 0; i < n; i++ {
		if c := g[i]; c != t[i] && e.counts[c] > 0 {
			code += mult[i]
			e.counts[c]--
		}
	}
	for i := 0; i < n; i++ {
		e.counts[t[i]] = 0
	}
	return Pattern(code)
}

// Feedback computes the pattern between two words of the dictionary.
func (e *Engine) Feedback(target, guess string) (Pattern, error) {
	ti, ok := e.enc.Lookup(target)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, target)
	}
	gi, ok := e.enc.Lookup(guess)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, guess)
	}
	return e.Pattern(ti, gi), nil
}
