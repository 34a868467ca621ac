// apps/advisor/internal/words/seed.go
//
// Reads word-list files into a store.
// Files are named <language>-<size>-<kind>.txt or .json:
//   - .txt:  one word per line; blank lines and "#" comments skipped.
//   - .json: an array of strings, or an object with a "words" array.
// Words are lowercased and trimmed; anything that is not exactly <size>
// letters a–z is dropped, as the lists come from loosely curated sources.

package words

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/robalobadob/wordle/apps/advisor/internal/game"
	"github.com/robalobadob/wordle/apps/advisor/internal/store"
)

// Seed stores every list file found at the top level of fsys.
func Seed(ctx context.Context, st store.Store, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for _, de := range entries {
		name := de.Name()
		ext := path.Ext(name)
		if de.IsDir() || (ext != ".txt" && ext != ".json") {
			continue
		}
		key, err := store.ParseListKey(name)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("skipping word list")
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		list, err := ParseList(name, data, key.Size)
		if err != nil {
			return err
		}
		if err := st.Put(ctx, key, list); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
		log.Debug().Str("list", key.String()).Int("words", len(list)).Msg("seeded word list")
	}
	return nil
}

// ParseList decodes a list file by extension and keeps valid words of size letters.
func ParseList(name string, data []byte, size int) ([]string, error) {
	var raw []string
	if path.Ext(name) == ".json" {
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%s: invalid json", name)
		}
		doc := gjson.ParseBytes(data)
		if doc.IsObject() {
			doc = doc.Get("words")
		}
		if !doc.IsArray() {
			return nil, fmt.Errorf("%s: want an array of words", name)
		}
		doc.ForEach(func(_, v gjson.Result) bool {
			raw = append(raw, v.String())
			return true
		})
	} else {
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				continue
			}
			raw = append(raw, line)
		}
	}
	return normalize(raw, size), nil
}

// normalize lowercases, trims and filters words, dropping duplicates.
func normalize(raw []string, size int) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		w := strings.TrimSpace(strings.ToLower(s))
		if len(w) != size || !game.IsAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
