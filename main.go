package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/advisor/internal/httpserver"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lists, closeWords, err := words.Open(context.Background(), cfg.WordsDB, cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	defer closeWords()

	srv := httpserver.New(lists, cfg.HTTP)
	log.Info().Str("port", cfg.Port).Bool("deep", cfg.HTTP.Deep).Msg("starting advisor")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
