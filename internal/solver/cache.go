// apps/advisor/internal/solver/cache.go
//
// Single-slot caches for the two expensive derived values:
//   - the Encoded view of a dictionary, keyed by content fingerprint;
//   - the OpeningBook, keyed by fingerprint + first guess + policy name.
//
// Each slot is guarded by its own mutex and only ever holds a fully built
// value: the build runs under the lock and is published when complete, so a
// concurrent caller either waits or sees the previous entry, never a partial
// one. A new key evicts the old entry.

package solver

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type bookKey struct {
	dict   Fingerprint
	first  string
	policy string
}

// Cache holds the most recently used encoding and opening book.
type Cache struct {
	encMu  sync.Mutex
	encKey Fingerprint
	enc    *Encoded

	bookMu  sync.Mutex
	bookKey bookKey
	book    *OpeningBook
}

// DefaultCache is the process-wide cache used by Suggest and Simulate.
var DefaultCache = &Cache{}

// Encoded returns the encoding of d, building it on a miss.
func (c *Cache) Encoded(d *Dictionary) (*Encoded, error) {
	c.encMu.Lock()
	defer c.encMu.Unlock()

	key := d.Fingerprint()
	if c.enc != nil && c.encKey == key {
		return c.enc, nil
	}
	enc, err := d.Encode()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dict", key.String()).Int("words", enc.Len()).Int("targets", enc.TargetCount()).Msg("encoded dictionary")
	c.encKey, c.enc = key, enc
	return enc, nil
}

// OpeningBook returns the book for (d, firstGuess, policy), building it on a miss.
func (c *Cache) OpeningBook(d *Dictionary, firstGuess string, policy Policy) (*OpeningBook, error) {
	c.bookMu.Lock()
	defer c.bookMu.Unlock()

	key := bookKey{dict: d.Fingerprint(), first: firstGuess, policy: policy.Name}
	if c.book != nil && c.bookKey == key {
		return c.book, nil
	}
	enc, err := c.Encoded(d)
	if err != nil {
		return nil, err
	}
	book, err := BuildOpeningBook(enc, firstGuess, policy)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dict", key.dict.String()).Str("first", firstGuess).Str("policy", policy.Name).Msg("built opening book")
	c.bookKey, c.book = key, book
	return book, nil
}

// Reset drops both cached entries.
func (c *Cache) Reset() {
	c.encMu.Lock()
	c.enc = nil
	c.encMu.Unlock()

	c.bookMu.Lock()
	c.book = nil
	c.bookMu.Unlock()
}

// Simulate plays one game against target from firstGuess, reusing the
// cached opening book while the dictionary, guess and policy stay the same.
func Simulate(d *Dictionary, target, firstGuess string, policy Policy) (int, error) {
	book, err := DefaultCache.OpeningBook(d, firstGuess, policy)
	if err != nil {
		return 0, err
	}
	return book.Simulate(target)
}
