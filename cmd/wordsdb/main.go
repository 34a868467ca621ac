// Command wordsdb imports word-list files into the sqlite database the
// advisor reads when WORDS_DB is set.
//
//	wordsdb -db ./data/words.db -dir ./lists     import every <lang>-<size>-<kind>.txt|.json
//	wordsdb -db ./data/words.db -defaults        import the embedded defaults
//	wordsdb -db ./data/words.db -list            show what is stored
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/advisor/assets"
	"github.com/robalobadob/wordle/apps/advisor/internal/store"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dbPath := flag.String("db", envOr("WORDS_DB", "./data/words.db"), "sqlite database file")
	dir := flag.String("dir", "", "directory of word-list files to import")
	defaults := flag.Bool("defaults", false, "import the embedded default lists")
	list := flag.Bool("list", false, "print stored lists and exit")
	flag.Parse()

	ctx := context.Background()
	db, err := store.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("open")
	}
	defer db.Close()

	if *defaults {
		if err := words.Seed(ctx, db, assets.Lists()); err != nil {
			log.Fatal().Err(err).Msg("import defaults")
		}
	}
	if *dir != "" {
		if err := words.Seed(ctx, db, os.DirFS(*dir)); err != nil {
			log.Fatal().Err(err).Str("dir", *dir).Msg("import")
		}
	}
	if !*defaults && *dir == "" && !*list {
		flag.Usage()
		os.Exit(2)
	}

	keys, err := db.Keys(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("keys")
	}
	for _, k := range keys {
		ws, err := db.Words(ctx, k)
		if err != nil {
			log.Fatal().Err(err).Str("list", k.String()).Msg("read")
		}
		fmt.Printf("%-14s %6d\n", k, len(ws))
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
