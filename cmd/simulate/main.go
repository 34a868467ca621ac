// Command simulate measures an opening offline.
//
//	simulate -lang en -size 5 -first salet           attempt distribution over every target
//	simulate -first salet -target crane              trace one game with colored tiles
//	simulate -target random                          trace against a random answer
//	simulate -token -subject ops                     mint a bearer token for POST /simulate
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/advisor/internal/game"
	"github.com/robalobadob/wordle/apps/advisor/internal/httpserver"
	"github.com/robalobadob/wordle/apps/advisor/internal/solver"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

// report is the -json output of a distribution run.
type report struct {
	Language string      `json:"language"`
	Size     int         `json:"size"`
	First    string      `json:"first"`
	Policy   string      `json:"policy"`
	Counts   map[int]int `json:"counts"`
	Total    int         `json:"total"`
	Average  float64     `json:"average"`
	Over6    int         `json:"over6"`
	Failed   int         `json:"failed"`
	TimeMs   int64       `json:"timeMs"`
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	lang := flag.String("lang", "en", "dictionary language")
	size := flag.Int("size", 5, "word length")
	first := flag.String("first", envOr("FIRST_GUESS", "salet"), "first guess")
	deep := flag.Bool("deep", os.Getenv("SOLVER_DEEP") == "true", "use the deep pool policy")
	workers := flag.Int("workers", 0, "simulation workers (0 = GOMAXPROCS)")
	jsonOut := flag.Bool("json", false, "print the distribution as JSON")
	target := flag.String("target", "", `trace one game against this word ("random" picks one)`)
	dbPath := flag.String("db", os.Getenv("WORDS_DB"), "sqlite word-list database")
	dir := flag.String("dir", os.Getenv("WORDS_DIR"), "directory of word-list files")
	token := flag.Bool("token", false, "print a bearer token for POST /simulate and exit")
	subject := flag.String("subject", "operator", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *token {
		tok, err := httpserver.IssueToken(envOr("JWT_SECRET", "dev_secret_change_me"), *subject, *ttl)
		if err != nil {
			log.Fatal().Err(err).Msg("sign token")
		}
		fmt.Println(tok)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lists, closeWords, err := words.Open(ctx, *dbPath, *dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	defer closeWords()

	dict, err := lists.Dictionary(ctx, *lang, *size)
	if err != nil {
		log.Fatal().Err(err).Msg("dictionary")
	}
	policy := solver.PolicyFor(*deep)
	firstGuess := strings.ToLower(*first)

	if *target != "" {
		answer := strings.ToLower(*target)
		if answer == "random" {
			if answer, err = lists.RandomAnswer(ctx, *lang, *size); err != nil {
				log.Fatal().Err(err).Msg("random answer")
			}
		}
		allowed := func(w string) bool { return lists.IsAllowed(ctx, *lang, *size, w) }
		g, err := trace(os.Stdout, dict, allowed, answer, firstGuess, policy)
		if err != nil {
			log.Fatal().Err(err).Str("target", answer).Msg("trace")
		}
		fmt.Printf("%s in %d\n", g.State(), len(g.Guesses))
		return
	}

	start := time.Now()
	book, err := solver.DefaultCache.OpeningBook(dict, firstGuess, policy)
	if err != nil {
		log.Fatal().Err(err).Msg("opening book")
	}
	log.Info().Str("first", firstGuess).Str("policy", policy.Name).Dur("took", time.Since(start)).Msg("opening book ready")

	bar := progressbar.Default(int64(book.Encoded().TargetCount()))
	dist, err := book.Distribution(ctx, *workers, func(string, int) { _ = bar.Add(1) })
	_ = bar.Finish()
	if errors.Is(err, context.Canceled) {
		log.Warn().Msg("interrupted")
		os.Exit(130)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("simulate")
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report{
			Language: *lang, Size: *size, First: firstGuess, Policy: policy.Name,
			Counts: dist.Counts, Total: dist.Total(), Average: dist.Average(),
			Over6: dist.Unsolved(6), Failed: dist.Failed(), TimeMs: time.Since(start).Milliseconds(),
		})
		return
	}
	printDistribution(os.Stdout, dist)
}

// trace plays one refereed game: firstGuess, then Suggest on the real feedback.
func trace(w io.Writer, dict *solver.Dictionary, allowed func(string) bool, answer, firstGuess string, policy solver.Policy) (*game.Game, error) {
	g := game.New(answer, solver.MaxAttempts, allowed)
	advisor := solver.NewAdvisor(policy.Name == solver.DeepPolicy.Name)
	next := firstGuess
	for !g.Finished {
		guess, _, err := g.ApplyGuess(next)
		if err != nil {
			return g, err
		}
		fmt.Fprintln(w, guess.Colorize())
		if g.Finished {
			break
		}
		advice, err := advisor.Advise(dict, g.Guesses)
		if err != nil {
			return g, err
		}
		if len(advice.Words) == 0 {
			return g, fmt.Errorf("no candidate left for %q", answer)
		}
		next = advice.Words[0]
	}
	return g, nil
}

// printDistribution writes one line per attempt count plus the summary.
func printDistribution(w io.Writer, dist solver.Distribution) {
	for _, a := range dist.Attempts() {
		label := fmt.Sprint(a)
		if a == solver.Unsolved {
			label = "X"
		}
		fmt.Fprintf(w, "%2s: %d\n", label, dist.Counts[a])
	}
	fmt.Fprintf(w, "average: %.4f\n", dist.Average())
	fmt.Fprintf(w, "unsolved (>6): %d of %d\n", dist.Unsolved(6), dist.Total())
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
