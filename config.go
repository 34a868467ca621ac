package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/advisor/internal/httpserver"
)

// config is everything the server reads from the environment.
type config struct {
	Port     string
	LogLevel string
	WordsDB  string // WORDS_DB: sqlite file with imported lists
	WordsDir string // WORDS_DIR: directory of list files overlaying the defaults
	HTTP     httpserver.Config
}

func loadConfig() config {
	return config{
		Port:     getEnv("PORT", "5175"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		WordsDB:  os.Getenv("WORDS_DB"),
		WordsDir: os.Getenv("WORDS_DIR"),
		HTTP: httpserver.Config{
			ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
			Deep:         envBool("SOLVER_DEEP", false),
			FirstGuess:   strings.ToLower(getEnv("FIRST_GUESS", "salet")),
			Workers:      envInt("SIM_WORKERS", 0),
		},
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not a boolean, using default")
		return def
	}
	return b
}
