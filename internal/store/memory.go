// apps/advisor/internal/store/memory.go
//
// Word-list storage.
// Store is the persistence interface for dictionaries keyed by
// (language, size, kind). Two implementations:
//   - memory (this file): map-backed, RWMutex-guarded, lost on restart;
//     used for embedded defaults, tests and the Lambda entry.
//   - SQLite (sqlite.go): durable lists imported with cmd/wordsdb.

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Kind distinguishes answer lists from guess lists.
type Kind string

const (
	KindTarget Kind = "target"
	KindFull   Kind = "full"
)

// ErrNotFound is returned when no list exists for a key.
var ErrNotFound = errors.New("store: list not found")

// ListKey identifies one word list.
type ListKey struct {
	Language string
	Size     int
	Kind     Kind
}

// String renders the key as "en-5-target", the list file naming scheme.
func (k ListKey) String() string {
	return fmt.Sprintf("%s-%d-%s", k.Language, k.Size, k.Kind)
}

// ParseListKey parses "en-5-target" (an optional extension is ignored).
func ParseListKey(name string) (ListKey, error) {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	parts := strings.Split(name, "-")
	if len(parts) != 3 {
		return ListKey{}, fmt.Errorf("store: list name %q: want <language>-<size>-<kind>", name)
	}
	size, err := strconv.Atoi(parts[1])
	if err != nil || size <= 0 {
		return ListKey{}, fmt.Errorf("store: list name %q: bad size", name)
	}
	kind := Kind(parts[2])
	if kind != KindTarget && kind != KindFull {
		return ListKey{}, fmt.Errorf("store: list name %q: kind must be target or full", name)
	}
	return ListKey{Language: parts[0], Size: size, Kind: kind}, nil
}

// Store defines the persistence interface for word lists.
type Store interface {
	// Put replaces the list stored under key, keeping word order.
	Put(ctx context.Context, key ListKey, words []string) error

	// Words returns the list stored under key, in stored order.
	// Returns ErrNotFound if there is none.
	Words(ctx context.Context, key ListKey) ([]string, error)

	// Keys lists every stored key, sorted.
	Keys(ctx context.Context) ([]ListKey, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards lists
	lists map[ListKey][]string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{lists: make(map[ListKey][]string)}
}

func (m *memory) Put(ctx context.Context, key ListKey, words []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = append([]string(nil), words...)
	return nil
}

func (m *memory) Words(ctx context.Context, key ListKey) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.lists[key]; ok {
		return append([]string(nil), w...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

func (m *memory) Keys(ctx context.Context) ([]ListKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ListKey, 0, len(m.lists))
	for k := range m.lists {
		out = append(out, k)
	}
	sortKeys(out)
	return out, nil
}

func sortKeys(keys []ListKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
}
