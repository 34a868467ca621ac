package solver

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/advisor/assets"
)

// readList loads one embedded list file.
func readList(t *testing.T, name string) []string {
	t.Helper()
	data, err := fs.ReadFile(assets.Lists(), name)
	require.NoError(t, err)
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// english5 is the shipped five-letter English dictionary.
func english5(t *testing.T) *Dictionary {
	t.Helper()
	return NewDictionary(readList(t, "en-5-target.txt"), readList(t, "en-5-full.txt"))
}

// smallDict has two targets and one guess-only word.
func smallDict() *Dictionary {
	return NewDictionary([]string{"store", "chore"}, []string{"hello"})
}

func mustEncode(t *testing.T, d *Dictionary) *Encoded {
	t.Helper()
	enc, err := d.Encode()
	require.NoError(t, err)
	return enc
}
