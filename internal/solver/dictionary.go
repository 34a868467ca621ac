// apps/advisor/internal/solver/dictionary.go
//
// Dictionary pairs the target words (possible answers) with the full list of
// accepted guesses. It is immutable once built and carries a content
// fingerprint so caches can tell two separately loaded but identical
// dictionaries apart from genuinely different ones.

package solver

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies a dictionary by content.
type Fingerprint [blake2b.Size256]byte

func (f Fingerprint) String() string { return hex.EncodeToString(f[:8]) }

// Dictionary is an immutable (target, full) word-list pairing.
type Dictionary struct {
	target []string
	full   []string
	key    Fingerprint
}

// NewDictionary copies both lists and fingerprints them.
// A nil full list means the targets are the only accepted guesses.
func NewDictionary(target, full []string) *Dictionary {
	d := &Dictionary{
		target: append([]string(nil), target...),
		full:   append([]string(nil), full...),
	}
	if full == nil {
		d.full = d.target
	}
	d.key = fingerprint(d.target, d.full)
	return d
}

// Target returns the answer words. Callers must not modify the slice.
func (d *Dictionary) Target() []string { return d.target }

// Full returns the accepted guess words. Callers must not modify the slice.
func (d *Dictionary) Full() []string { return d.full }

// Fingerprint returns the content hash of both lists.
func (d *Dictionary) Fingerprint() Fingerprint { return d.key }

// Encode builds the encoded view of d.
func (d *Dictionary) Encode() (*Encoded, error) { return Encode(d.target, d.full) }

func fingerprint(target, full []string) Fingerprint {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for _, w := range target {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte{0})
	for _, w := range full {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	var f Fingerprint
	copy(f[:], h.Sum(nil))
	return f
}
