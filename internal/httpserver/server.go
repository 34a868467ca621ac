// apps/advisor/internal/httpserver/server.go
//
// HTTP server wiring for the guess advisor.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", GET /words, GET /words/{lang}/{size}.
//   - Advice endpoint: POST /advice (guess history in, next guess out).
//   - Operator endpoint (require auth): POST /simulate.
//
// Notes:
//   - /advice is bounded by a short timeout; /simulate plays every target and
//     gets a longer one. Both run under the request context.
//   - Error bodies are always {"error": "..."}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/advisor/internal/solver"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

// Config carries the settings main reads from the environment.
type Config struct {
	ClientOrigin string        // CORS origin; defaults to http://localhost:5173
	JWTSecret    string        // HS256 secret for /simulate
	Deep         bool          // use the deep pool policy unless a request says otherwise
	FirstGuess   string        // default opening for /simulate
	Workers      int           // simulation workers; <= 0 uses GOMAXPROCS
	AdviceLimit  time.Duration // per-request bound for /advice
	SimLimit     time.Duration // per-request bound for /simulate
}

func (c Config) withDefaults() Config {
	if c.ClientOrigin == "" {
		c.ClientOrigin = "http://localhost:5173"
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "dev_secret_change_me"
	}
	if c.FirstGuess == "" {
		c.FirstGuess = "salet"
	}
	if c.AdviceLimit <= 0 {
		c.AdviceLimit = 10 * time.Second
	}
	if c.SimLimit <= 0 {
		c.SimLimit = 2 * time.Minute
	}
	return c
}

// Server bundles the router and the dictionary source.
type Server struct {
	r     *chi.Mux
	words *words.Lists
	cfg   Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists, cfg Config) *Server {
	s := &Server{r: chi.NewRouter(), words: lists, cfg: cfg.withDefaults()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(corsFor(s.cfg.ClientOrigin)) // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-advisor","endpoints":["/health","/words","POST /advice","POST /simulate"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Word lists
	s.r.Get("/words", s.handleListWords)
	s.r.Get("/words/{lang}/{size}", s.handleWordStats)

	// Advice (public)
	s.r.With(chimw.Timeout(s.cfg.AdviceLimit)).Post("/advice", s.handleAdvice)

	// Simulation (require auth)
	s.r.With(requireAuth(s.cfg.JWTSecret), chimw.Timeout(s.cfg.SimLimit)).Post("/simulate", s.handleSimulate)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found: "+r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- WORDS -------------------------------------

type wordsRes struct {
	Language string `json:"language"`
	Size     int    `json:"size"`
	Answers  int    `json:"answers"`
	Allowed  int    `json:"allowed"`
}

// handleListWords lists every (language, size) with an answer list.
func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	keys, err := s.words.Keys(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list dictionaries")
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	out := make([]wordsRes, 0, len(keys))
	for _, k := range keys {
		out = append(out, wordsRes{Language: k.Language, Size: k.Size})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleWordStats reports list sizes for one dictionary.
func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil || size <= 0 {
		writeError(w, http.StatusBadRequest, "bad_size")
		return
	}
	a, g, err := s.words.Stats(r.Context(), lang, size)
	if err != nil {
		writeError(w, StatusFor(err), err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(wordsRes{Language: lang, Size: size, Answers: a, Allowed: g})
}

// ------------------------------- ADVICE ------------------------------------

// handleAdvice answers POST /advice; see AdviceRequest.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	res, err := Advise(r.Context(), s.words, req, s.cfg.Deep)
	if err != nil {
		writeError(w, StatusFor(err), err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ SIMULATE -----------------------------------

type simulateReq struct {
	Language string `json:"language"`
	Size     int    `json:"size"`
	First    string `json:"first"`
	Deep     *bool  `json:"deep"`
	Target   string `json:"target"` // optional: play one game only
	Workers  int    `json:"workers"`
}

type simulateRes struct {
	Language string      `json:"language"`
	Size     int         `json:"size"`
	First    string      `json:"first"`
	Policy   string      `json:"policy"`
	Target   string      `json:"target,omitempty"`
	Attempts int         `json:"attempts,omitempty"`
	Counts   map[int]int `json:"counts,omitempty"`
	Total    int         `json:"total,omitempty"`
	Average  float64     `json:"average,omitempty"`
	Failed   int         `json:"failed"`
	Over6    int         `json:"over6"`
}

// handleSimulate replays games from the cached opening book: one game when a
// target is given, otherwise every target.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}
	if req.Size == 0 {
		req.Size = 5
	}
	if req.First == "" {
		req.First = s.cfg.FirstGuess
	}
	deep := s.cfg.Deep
	if req.Deep != nil {
		deep = *req.Deep
	}
	policy := solver.PolicyFor(deep)

	dict, err := s.words.Dictionary(r.Context(), req.Language, req.Size)
	if err != nil {
		writeError(w, StatusFor(err), err.Error())
		return
	}
	book, err := solver.DefaultCache.OpeningBook(dict, req.First, policy)
	if err != nil {
		writeError(w, StatusFor(err), err.Error())
		return
	}
	res := simulateRes{Language: req.Language, Size: req.Size, First: req.First, Policy: policy.Name}

	if req.Target != "" {
		n, err := book.Simulate(req.Target)
		if err != nil {
			writeError(w, StatusFor(err), err.Error())
			return
		}
		res.Target, res.Attempts = req.Target, n
		if n == solver.Unsolved {
			res.Failed, res.Over6 = 1, 1
		} else if n > 6 {
			res.Over6 = 1
		}
		_ = json.NewEncoder(w).Encode(res)
		return
	}

	workers := req.Workers
	if workers <= 0 {
		workers = s.cfg.Workers
	}
	start := time.Now()
	dist, err := book.Distribution(r.Context(), workers, nil)
	if err != nil {
		log.Warn().Err(err).Str("first", req.First).Msg("simulation aborted")
		writeError(w, StatusFor(err), err.Error())
		return
	}
	log.Info().
		Str("dict", words.Key{Language: req.Language, Size: req.Size}.String()).
		Str("first", req.First).
		Str("policy", policy.Name).
		Str("by", Subject(r.Context())).
		Float64("average", dist.Average()).
		Dur("took", time.Since(start)).
		Msg("simulated distribution")

	res.Counts = dist.Counts
	res.Total = dist.Total()
	res.Average = dist.Average()
	res.Failed = dist.Failed()
	res.Over6 = dist.Unsolved(6)
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------- errors ------------------------------------

// StatusFor maps package errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, words.ErrUnknownDictionary):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, solver.ErrUnknownWord),
		errors.Is(err, solver.ErrNotTarget),
		errors.Is(err, solver.ErrGuessLength),
		errors.Is(err, solver.ErrResultLength),
		errors.Is(err, solver.ErrResultDigit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, solver.ErrEmptyDictionary),
		errors.Is(err, solver.ErrWordLength),
		errors.Is(err, solver.ErrWordLetter):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError writes {"error": msg} with code.
func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
