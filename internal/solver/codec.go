// apps/advisor/internal/solver/codec.go
//
// Word codec: turns a dictionary into a flat buffer of letter codes
// (one byte per letter, 0..25, word-major) plus a word → id index.
//
// Id layout:
//   - 0 .. TargetCount-1   target words, in the order given.
//   - TargetCount .. Len-1 full-list words that are not targets.
//
// An Encoded value is never mutated after Encode returns and is safe to share
// between goroutines; every piece of mutable scratch lives in Engine.

package solver

import (
	"errors"
	"fmt"
)

// MaxWordLength bounds word length so every pattern code fits a Pattern.
const MaxWordLength = 10

var (
	ErrEmptyDictionary = errors.New("solver: empty target list")
	ErrWordLength      = errors.New("solver: word length mismatch")
	ErrWordLetter      = errors.New("solver: word must be lowercase a-z")
)

// WordID indexes a word inside an Encoded dictionary.
type WordID int32

// NoWord is returned where no word can be chosen.
const NoWord WordID = -1

// Pool is an ordered set of word ids.
type Pool []WordID

// Encoded is the numeric view of a dictionary.
type Encoded struct {
	words    []string
	letters  []byte
	index    map[string]WordID
	length   int
	targets  int
	patterns int
	mult     []int

	targetPool Pool // shared, read-only
	fullPool   Pool // shared, read-only
}

// Encode dedupes target and full into one id space and encodes every word.
// The word length is taken from the first target word; any word of another
// length or with letters outside a–z fails the whole construction.
func Encode(target, full []string) (*Encoded, error) {
	if len(target) == 0 {
		return nil, ErrEmptyDictionary
	}
	length := len(target[0])
	if length == 0 || length > MaxWordLength {
		return nil, fmt.Errorf("%w: %q has %d letters", ErrWordLength, target[0], length)
	}

	e := &Encoded{
		index:  make(map[string]WordID, len(target)+len(full)),
		length: length,
	}
	for _, w := range target {
		if err := e.add(w); err != nil {
			return nil, err
		}
	}
	e.targets = len(e.words)
	for _, w := range full {
		if err := e.add(w); err != nil {
			return nil, err
		}
	}

	e.patterns = PatternCount(length)
	e.mult = make([]int, length)
	for i, m := length-1, 1; i >= 0; i, m = i-1, m*3 {
		e.mult[i] = m
	}

	e.fullPool = make(Pool, len(e.words))
	for i := range e.fullPool {
		e.fullPool[i] = WordID(i)
	}
	e.targetPool = e.fullPool[:e.targets:e.targets]
	return e, nil
}

func (e *Encoded) add(w string) error {
	if len(w) != e.length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrWordLength, w, len(w), e.length)
	}
	if _, ok := e.index[w]; ok {
		return nil
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			return fmt.Errorf("%w: %q", ErrWordLetter, w)
		}
		e.letters = append(e.letters, c-'a')
	}
	e.index[w] = WordID(len(e.words))
	e.words = append(e.words, w)
	return nil
}

// Len is the number of distinct words (targets plus extras).
func (e *Encoded) Len() int { return len(e.words) }

// TargetCount is the number of distinct target words.
func (e *Encoded) TargetCount() int { return e.targets }

// WordLength is the shared length of every word.
func (e *Encoded) WordLength() int { return e.length }

// PatternCount is 3^WordLength.
func (e *Encoded) PatternCount() int { return e.patterns }

// AllGreen is the pattern of a solved guess.
func (e *Encoded) AllGreen() Pattern { return Pattern(e.patterns - 1) }

// Word returns the word for id.
func (e *Encoded) Word(id WordID) string { return e.words[id] }

// Words maps ids back to words.
func (e *Encoded) Words(ids Pool) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = e.words[id]
	}
	return out
}

// Lookup returns the id of word.
func (e *Encoded) Lookup(word string) (WordID, bool) {
	id, ok := e.index[word]
	return id, ok
}

// IsTarget reports whether id denotes a target word.
func (e *Encoded) IsTarget(id WordID) bool { return id >= 0 && int(id) < e.targets }

// Letters returns the letter codes of id. Callers must not modify the slice.
func (e *Encoded) Letters(id WordID) []byte {
	off := int(id) * e.length
	return e.letters[off : off+e.length : off+e.length]
}

// TargetPool returns a fresh pool holding every target id, ready to narrow.
func (e *Encoded) TargetPool() Pool {
	return append(make(Pool, 0, e.targets), e.targetPool...)
}

// EncodeResult encodes observed feedback digits with this dictionary's length.
func (e *Encoded) EncodeResult(digits []int) (Pattern, error) {
	if len(digits) != e.length {
		return 0, fmt.Errorf("%w: %d digits, want %d", ErrResultLength, len(digits), e.length)
	}
	return EncodeResult(digits)
}
