package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreDuplicateLetters(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 0, 0}, Score("hello", "breed"))
	assert.Equal(t, []int{0, 1, 0, 0, 1}, Score("store", "hello"))
	assert.Equal(t, []int{1, 1, 0, 0, 1}, Score("chore", "hello"))
	// only one 'e' left unmatched after the green
	assert.Equal(t, []int{1, 2, 0, 0, 0}, Score("level", "eerie"))
	assert.Equal(t, []int{2, 2, 2, 2, 2}, Score("crane", "crane"))
}

func TestScoreLengthMismatch(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0, 0, 0}, Score("hello", "toolong"))
}

func TestParseResult(t *testing.T) {
	got, err := ParseResult("20100")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 0, 0}, got)

	got, err = ParseResult("GbYx-")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 0, 0}, got)

	_, err = ParseResult("20130")
	assert.ErrorIs(t, err, ErrBadResult)
	_, err = ParseResult("  ")
	assert.ErrorIs(t, err, ErrBadResult)
}

func TestMarksRoundTrip(t *testing.T) {
	result := []int{Hit, Miss, Present, Miss, Hit}
	marks := Marks(result)
	assert.Equal(t, []Mark{MarkHit, MarkMiss, MarkPresent, MarkMiss, MarkHit}, marks)

	back, err := ParseMarks(marks)
	require.NoError(t, err)
	assert.Equal(t, result, back)

	_, err = ParseMarks([]Mark{"green"})
	assert.ErrorIs(t, err, ErrBadResult)
}

func TestApplyGuess(t *testing.T) {
	allowed := map[string]bool{"crane": true, "slate": true, "trace": true}
	g := New("Trace", 3, func(w string) bool { return allowed[w] })
	assert.Equal(t, 5, g.Cols)

	_, _, err := g.ApplyGuess("abc")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, _, err = g.ApplyGuess("zzzzz")
	assert.ErrorIs(t, err, ErrNotAllowed)

	guess, state, err := g.ApplyGuess("CRANE")
	require.NoError(t, err)
	assert.Equal(t, "playing", state)
	assert.Equal(t, []int{1, 2, 2, 0, 2}, guess.Result)

	guess, state, err = g.ApplyGuess("trace")
	require.NoError(t, err)
	assert.Equal(t, "won", state)
	assert.True(t, IsSolved(guess.Result))

	_, _, err = g.ApplyGuess("slate")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuessLoses(t *testing.T) {
	g := New("trace", 2, nil)
	_, state, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, "playing", state)
	_, state, err = g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, "lost", state)
	assert.False(t, g.Won)
}

func TestGuessString(t *testing.T) {
	g := Guess{Word: "hello", Result: []int{0, 1, 0, 0, 1}}
	assert.Equal(t, "hello 01001", g.String())
	assert.Contains(t, g.Colorize(), "H")
}
