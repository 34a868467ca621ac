// apps/advisor/internal/words/words.go
//
// Provides dictionaries to the solver.
//
// Responsibilities:
//   - Read (target, full) word lists per (language, size) from a store.Store.
//   - Build each solver.Dictionary once and hand out the same value afterwards,
//     so the solver's caches hit on every later request.
//   - Supply utilities like RandomAnswer, IsAllowed and Stats.
//
// Word Lists:
//   - "target": canonical solutions.
//   - "full":   valid guesses (answers are always accepted too).
//
// Sources (Open):
//  1. WORDS_DB=/path/to/words.db  → SQLite store (filled by cmd/wordsdb).
//  2. otherwise an in-memory store seeded from the embedded defaults,
//     overlaid with WORDS_DIR=/path/to/lists when set.

package words

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/advisor/assets"
	"github.com/robalobadob/wordle/apps/advisor/internal/solver"
	"github.com/robalobadob/wordle/apps/advisor/internal/store"
)

// ErrUnknownDictionary is returned when no target list exists for a key.
var ErrUnknownDictionary = errors.New("words: unknown dictionary")

// Key selects a dictionary.
type Key struct {
	Language string
	Size     int
}

func (k Key) String() string { return fmt.Sprintf("%s-%d", k.Language, k.Size) }

// entry is one loaded dictionary plus its lookup sets.
type entry struct {
	dict    *solver.Dictionary
	answers map[string]struct{}
	allowed map[string]struct{} // answers ∪ guesses
}

// Lists loads dictionaries from a store and caches them per key.
type Lists struct {
	src store.Store

	mu    sync.Mutex
	cache map[Key]*entry
}

// New returns Lists reading from src.
func New(src store.Store) *Lists {
	return &Lists{src: src, cache: make(map[Key]*entry)}
}

// Open picks the word source: the SQLite database at dbPath when set,
// otherwise the embedded defaults overlaid with the lists in dir (if any).
// The returned close function releases the source.
func Open(ctx context.Context, dbPath, dir string) (*Lists, func() error, error) {
	if dbPath != "" {
		db, err := store.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open words db: %w", err)
		}
		keys, err := db.Keys(ctx)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if len(keys) == 0 {
			log.Warn().Str("db", dbPath).Msg("words db is empty, seeding embedded defaults")
			if err := Seed(ctx, db, assets.Lists()); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return New(db), db.Close, nil
	}

	mem := store.NewMemoryStore()
	if err := Seed(ctx, mem, assets.Lists()); err != nil {
		return nil, nil, err
	}
	if dir != "" {
		if err := Seed(ctx, mem, os.DirFS(dir)); err != nil {
			return nil, nil, fmt.Errorf("seed %s: %w", dir, err)
		}
	}
	return New(mem), func() error { return nil }, nil
}

// Dictionary returns the dictionary for (language, size).
func (l *Lists) Dictionary(ctx context.Context, language string, size int) (*solver.Dictionary, error) {
	e, err := l.load(ctx, Key{Language: language, Size: size})
	if err != nil {
		return nil, err
	}
	return e.dict, nil
}

func (l *Lists) load(ctx context.Context, key Key) (*entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.cache[key]; ok {
		return e, nil
	}

	target, err := l.src.Words(ctx, store.ListKey{Language: key.Language, Size: key.Size, Kind: store.KindTarget})
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDictionary, key)
	}
	if err != nil {
		return nil, err
	}
	full, err := l.src.Words(ctx, store.ListKey{Language: key.Language, Size: key.Size, Kind: store.KindFull})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	e := &entry{
		dict:    solver.NewDictionary(target, full),
		answers: toSet(target),
		allowed: toSet(target),
	}
	for _, w := range full {
		e.allowed[w] = struct{}{}
	}
	l.cache[key] = e
	log.Info().Str("dict", key.String()).Int("answers", len(e.answers)).Int("allowed", len(e.allowed)).Msg("loaded dictionary")
	return e, nil
}

// Keys lists every (language, size) with a target list.
func (l *Lists) Keys(ctx context.Context) ([]Key, error) {
	lk, err := l.src.Keys(ctx)
	if err != nil {
		return nil, err
	}
	var out []Key
	for _, k := range lk {
		if k.Kind == store.KindTarget {
			out = append(out, Key{Language: k.Language, Size: k.Size})
		}
	}
	return out, nil
}

// RandomAnswer returns a cryptographically random answer for key.
func (l *Lists) RandomAnswer(ctx context.Context, language string, size int) (string, error) {
	e, err := l.load(ctx, Key{Language: language, Size: size})
	if err != nil {
		return "", err
	}
	answers := e.dict.Target()
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	if err != nil {
		return "", err
	}
	return answers[nBig.Int64()], nil
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(ctx context.Context, language string, size int, w string) bool {
	e, err := l.load(ctx, Key{Language: language, Size: size})
	if err != nil {
		return false
	}
	_, ok := e.allowed[w]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(ctx context.Context, language string, size int, w string) bool {
	e, err := l.load(ctx, Key{Language: language, Size: size})
	if err != nil {
		return false
	}
	_, ok := e.answers[w]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats(ctx context.Context, language string, size int) (answersCount int, allowedCount int, err error) {
	e, err := l.load(ctx, Key{Language: language, Size: size})
	if err != nil {
		return 0, 0, err
	}
	return len(e.answers), len(e.allowed), nil
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
