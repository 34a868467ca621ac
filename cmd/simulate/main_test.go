package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/advisor/internal/game"
	"github.com/robalobadob/wordle/apps/advisor/internal/solver"
)

func TestTrace(t *testing.T) {
	dict := solver.NewDictionary([]string{"store", "chore", "adore", "shore"}, []string{"hello"})
	var out bytes.Buffer
	g, err := trace(&out, dict, nil, "adore", "hello", solver.DefaultPolicy)
	require.NoError(t, err)
	assert.True(t, g.Won)
	assert.Equal(t, "adore", g.Guesses[len(g.Guesses)-1].Word)
	assert.Equal(t, len(g.Guesses), strings.Count(out.String(), "\n"))
	for _, gs := range g.Guesses[:len(g.Guesses)-1] {
		assert.False(t, game.IsSolved(gs.Result))
	}
}

func TestTraceRejectsUnknownFirstGuess(t *testing.T) {
	dict := solver.NewDictionary([]string{"store", "chore"}, nil)
	allowed := func(w string) bool { return w == "store" || w == "chore" }
	_, err := trace(&bytes.Buffer{}, dict, allowed, "store", "hello", solver.DefaultPolicy)
	assert.ErrorIs(t, err, game.ErrNotAllowed)
}

func TestPrintDistribution(t *testing.T) {
	var out bytes.Buffer
	printDistribution(&out, solver.Distribution{Counts: map[int]int{2: 1, 3: 2, 7: 1, solver.Unsolved: 1}})
	assert.Equal(t, " X: 1\n 2: 1\n 3: 2\n 7: 1\naverage: 3.7500\nunsolved (>6): 2 of 5\n", out.String())
}
