// apps/advisor/internal/httpserver/advice.go
//
// Advice payloads, shared by the HTTP handler and the Lambda entry.
//
// A request names one or more languages and carries the guess history read
// off the board. Each guess gives its feedback either as digits ("result":
// [0,1,2,0,0]) or as a tile string ("feedback": "bygbb" or "01200").
// Every language is answered independently; a history word missing from one
// language's dictionary fails that language only.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/advisor/internal/game"
	"github.com/robalobadob/wordle/apps/advisor/internal/solver"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

var errBadRequest = errors.New("bad request")

// MaxTop caps AdviceRequest.Top.
const MaxTop = 50

// GuessInput is one row of the board.
type GuessInput struct {
	Word     string `json:"word"`
	Result   []int  `json:"result,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// AdviceRequest is the body of POST /advice.
type AdviceRequest struct {
	Language  string       `json:"language,omitempty"`
	Languages []string     `json:"languages,omitempty"`
	Size      int          `json:"size,omitempty"`
	Guesses   []GuessInput `json:"guesses"`
	Deep      *bool        `json:"deep,omitempty"`
	Top       int          `json:"top,omitempty"`
}

// LanguageAdvice is the answer for one language.
type LanguageAdvice struct {
	solver.Advice
	Error string `json:"error,omitempty"`
}

// AdviceResponse maps each requested language to its advice.
type AdviceResponse struct {
	Size    int                       `json:"size"`
	Policy  string                    `json:"policy"`
	Results map[string]LanguageAdvice `json:"results"`
}

// history converts the board rows to solver input.
func (req AdviceRequest) history() ([]game.Guess, error) {
	out := make([]game.Guess, 0, len(req.Guesses))
	for i, g := range req.Guesses {
		word := strings.ToLower(strings.TrimSpace(g.Word))
		result := g.Result
		if g.Feedback != "" {
			r, err := game.ParseResult(g.Feedback)
			if err != nil {
				return nil, fmt.Errorf("%w: guess %d: %v", errBadRequest, i+1, err)
			}
			result = r
		}
		if result == nil {
			return nil, fmt.Errorf("%w: guess %d: missing result", errBadRequest, i+1)
		}
		out = append(out, game.Guess{Word: word, Result: result})
	}
	return out, nil
}

func (req AdviceRequest) languages() []string {
	langs := req.Languages
	if req.Language != "" {
		langs = append([]string{req.Language}, langs...)
	}
	if len(langs) == 0 {
		return []string{"en"}
	}
	seen := make(map[string]bool, len(langs))
	out := langs[:0:0]
	for _, l := range langs {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// Advise answers req against lists. Malformed requests and unknown
// dictionaries fail the whole call; history errors inside one language are
// reported on that language's entry.
func Advise(ctx context.Context, lists *words.Lists, req AdviceRequest, defaultDeep bool) (AdviceResponse, error) {
	history, err := req.history()
	if err != nil {
		return AdviceResponse{}, err
	}
	size := req.Size
	if size == 0 {
		size = 5
	}
	if size < 0 || size > solver.MaxWordLength {
		return AdviceResponse{}, fmt.Errorf("%w: size %d", errBadRequest, size)
	}
	top := req.Top
	if top < 0 {
		top = 0
	}
	if top > MaxTop {
		top = MaxTop
	}
	deep := defaultDeep
	if req.Deep != nil {
		deep = *req.Deep
	}
	advisor := solver.NewAdvisor(deep)
	advisor.Top = top

	res := AdviceResponse{Size: size, Policy: advisor.Policy.Name, Results: make(map[string]LanguageAdvice)}
	for _, lang := range req.languages() {
		if err := ctx.Err(); err != nil {
			return AdviceResponse{}, err
		}
		dict, err := lists.Dictionary(ctx, lang, size)
		if err != nil {
			return AdviceResponse{}, err
		}
		a, err := advisor.Advise(dict, history)
		if err != nil {
			res.Results[lang] = LanguageAdvice{Advice: solver.Advice{Words: []string{}}, Error: err.Error()}
			continue
		}
		res.Results[lang] = LanguageAdvice{Advice: a}
	}
	return res, nil
}
