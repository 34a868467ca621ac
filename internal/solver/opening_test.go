package solver

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOpeningBook(t *testing.T) {
	enc := mustEncode(t, english5(t))
	book, err := BuildOpeningBook(enc, "raise", DefaultPolicy)
	require.NoError(t, err)
	assert.Equal(t, "raise", book.FirstGuess())
	assert.Equal(t, "default", book.Policy().Name)
	assert.Same(t, enc, book.Encoded())

	w, ok := book.Second(enc.AllGreen())
	require.True(t, ok)
	assert.Equal(t, "raise", w, "a singleton group stores its only member")

	// every pattern some target produces has a reply; others have none
	eng := NewEngine(enc)
	raise, _ := enc.Lookup("raise")
	seen := make(map[Pattern]bool)
	for ti := 0; ti < enc.TargetCount(); ti++ {
		seen[eng.Pattern(WordID(ti), raise)] = true
	}
	for code := 0; code < enc.PatternCount(); code++ {
		_, ok := book.Second(Pattern(code))
		assert.Equal(t, seen[Pattern(code)], ok, "pattern %v", Pattern(code).Digits(5))
	}
	_, ok = book.Second(Pattern(enc.PatternCount()))
	assert.False(t, ok)

	_, err = BuildOpeningBook(enc, "zzzzz", DefaultPolicy)
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestSimulate(t *testing.T) {
	enc := mustEncode(t, english5(t))
	book, err := BuildOpeningBook(enc, "raise", DefaultPolicy)
	require.NoError(t, err)

	n, err := book.Simulate("raise")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = book.Simulate("crane")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 2)
	assert.LessOrEqual(t, n, MaxAttempts)

	_, err = book.Simulate("hello")
	assert.ErrorIs(t, err, ErrNotTarget)
	_, err = book.Simulate("zzzzz")
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestPlayerReuse(t *testing.T) {
	enc := mustEncode(t, english5(t))
	book, err := BuildOpeningBook(enc, "salet", DeepPolicy)
	require.NoError(t, err)

	p := book.NewPlayer()
	first := make([]int, enc.TargetCount())
	for ti := range first {
		first[ti] = p.Play(WordID(ti))
	}
	for ti := range first {
		require.Equal(t, first[ti], book.NewPlayer().Play(WordID(ti)), enc.Word(WordID(ti)))
	}
}

func TestDistribution(t *testing.T) {
	enc := mustEncode(t, english5(t))
	book, err := BuildOpeningBook(enc, "raise", DefaultPolicy)
	require.NoError(t, err)

	var games atomic.Int64
	dist, err := book.Distribution(context.Background(), 4, func(string, int) { games.Add(1) })
	require.NoError(t, err)

	assert.Equal(t, enc.TargetCount(), dist.Total())
	assert.Equal(t, int64(enc.TargetCount()), games.Load())
	assert.Zero(t, dist.Failed())
	assert.Equal(t, 1, dist.Counts[1])
	assert.Greater(t, dist.Average(), 1.0)
	assert.Less(t, dist.Average(), 6.0)

	attempts := dist.Attempts()
	require.NotEmpty(t, attempts)
	assert.Equal(t, 1, attempts[0])
	assert.IsIncreasing(t, attempts)

	// the same book gives the same tally on one worker
	single, err := book.Distribution(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, dist, single)
}

func TestDistributionCancelled(t *testing.T) {
	enc := mustEncode(t, english5(t))
	book, err := BuildOpeningBook(enc, "raise", DefaultPolicy)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = book.Distribution(ctx, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistributionStats(t *testing.T) {
	d := Distribution{Counts: map[int]int{1: 1, 3: 2, 7: 1, Unsolved: 1}}
	assert.Equal(t, []int{Unsolved, 1, 3, 7}, d.Attempts())
	assert.Equal(t, 5, d.Total())
	assert.Equal(t, 1, d.Failed())
	assert.InDelta(t, 14.0/4.0, d.Average(), 1e-9)
	assert.Equal(t, 2, d.Unsolved(6))
	assert.Zero(t, Distribution{Counts: map[int]int{}}.Average())
}
