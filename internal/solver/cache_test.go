package solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKeysByContent(t *testing.T) {
	c := &Cache{}
	a := NewDictionary([]string{"store", "chore"}, []string{"hello"})
	b := NewDictionary([]string{"store", "chore"}, []string{"hello"})

	ea, err := c.Encoded(a)
	require.NoError(t, err)
	eb, err := c.Encoded(b)
	require.NoError(t, err)
	assert.Same(t, ea, eb, "identical content shares one encoding")

	other := NewDictionary([]string{"store", "adore"}, nil)
	eo, err := c.Encoded(other)
	require.NoError(t, err)
	assert.NotSame(t, ea, eo)
	assert.Equal(t, []string{"store", "adore"}, eo.Words(eo.TargetPool()))

	// single slot: going back rebuilds
	again, err := c.Encoded(a)
	require.NoError(t, err)
	assert.NotSame(t, ea, again)

	c.Reset()
	afterReset, err := c.Encoded(a)
	require.NoError(t, err)
	assert.NotSame(t, again, afterReset)
}

func TestCacheOpeningBook(t *testing.T) {
	c := &Cache{}
	d := english5(t)

	b1, err := c.OpeningBook(d, "raise", DefaultPolicy)
	require.NoError(t, err)
	b2, err := c.OpeningBook(english5(t), "raise", DefaultPolicy)
	require.NoError(t, err)
	assert.Same(t, b1, b2)

	b3, err := c.OpeningBook(d, "raise", DeepPolicy)
	require.NoError(t, err)
	assert.NotSame(t, b1, b3, "the policy is part of the key")
	assert.Same(t, b1.Encoded(), b3.Encoded(), "the encoding slot is unaffected")

	b4, err := c.OpeningBook(d, "salet", DeepPolicy)
	require.NoError(t, err)
	assert.NotSame(t, b3, b4)

	_, err = c.OpeningBook(d, "zzzzz", DefaultPolicy)
	assert.ErrorIs(t, err, ErrUnknownWord)
}

func TestCacheConcurrent(t *testing.T) {
	c := &Cache{}
	d := english5(t)
	var wg sync.WaitGroup
	encs := make([]*Encoded, 8)
	for i := range encs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			enc, err := c.Encoded(d)
			assert.NoError(t, err)
			encs[i] = enc
		}()
	}
	wg.Wait()
	for _, e := range encs[1:] {
		assert.Same(t, encs[0], e)
	}
}

func TestSimulateUsesDefaultCache(t *testing.T) {
	DefaultCache.Reset()
	d := english5(t)

	n, err := Simulate(d, "raise", "raise", DefaultPolicy)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	book, err := DefaultCache.OpeningBook(d, "raise", DefaultPolicy)
	require.NoError(t, err)
	want, err := book.Simulate("crane")
	require.NoError(t, err)
	got, err := Simulate(NewDictionary(d.Target(), d.Full()), "crane", "raise", DefaultPolicy)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Simulate(d, "hello", "raise", DefaultPolicy)
	assert.ErrorIs(t, err, ErrNotTarget)
}
