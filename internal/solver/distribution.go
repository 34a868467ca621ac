// apps/advisor/internal/solver/distribution.go
//
// Attempt-count distribution over every target, for judging a first guess
// and a policy offline. Games are independent, so targets are split across
// workers; each worker plays with its own Player and the book is shared.

package solver

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// Distribution counts games by attempts used. Unsolved games are counted
// under the Unsolved key.
type Distribution struct {
	Counts map[int]int `json:"counts"`
}

// Attempts returns the distinct attempt counts, ascending.
func (d Distribution) Attempts() []int {
	keys := maps.Keys(d.Counts)
	slices.Sort(keys)
	return keys
}

// Total is the number of games played.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d.Counts {
		n += c
	}
	return n
}

// Failed is the number of games that hit the attempt ceiling.
func (d Distribution) Failed() int { return d.Counts[Unsolved] }

// Average is the mean attempt count over solved games.
func (d Distribution) Average() float64 {
	sum, n := 0, 0
	for a, c := range d.Counts {
		if a == Unsolved {
			continue
		}
		sum += a * c
		n += c
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Unsolved counts games that needed more than limit attempts, failures included.
func (d Distribution) Unsolved(limit int) int {
	n := 0
	for a, c := range d.Counts {
		if a == Unsolved || a > limit {
			n += c
		}
	}
	return n
}

// GameFunc observes one finished game. It is called from worker goroutines.
type GameFunc func(target string, attempts int)

// Distribution simulates every target and tallies attempts. workers <= 0 uses
// GOMAXPROCS. onGame may be nil. The context is checked between games, so a
// deadline bounds the run to roughly one game past it.
func (b *OpeningBook) Distribution(ctx context.Context, workers int, onGame GameFunc) (Distribution, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	targets := b.enc.targets
	if workers > targets {
		workers = targets
	}

	var mu sync.Mutex
	total := Distribution{Counts: make(map[int]int)}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			player := b.NewPlayer()
			local := make(map[int]int)
			for t := w; t < targets; t += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				attempts := player.Play(WordID(t))
				local[attempts]++
				if onGame != nil {
					onGame(b.enc.words[t], attempts)
				}
			}
			mu.Lock()
			for a, c := range local {
				total.Counts[a] += c
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Distribution{}, err
	}
	return total, nil
}
