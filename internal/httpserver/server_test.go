package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/advisor/internal/store"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

const testSecret = "test_secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, words.Seed(context.Background(), st, fstest.MapFS{
		"xx-5-target.txt": {Data: []byte("store\nchore\nadore\n")},
		"xx-5-full.txt":   {Data: []byte("hello\n")},
		"yy-5-target.txt": {Data: []byte("store\nshore\n")},
	}))
	return New(words.New(st), Config{JWTSecret: testSecret, FirstGuess: "hello", Workers: 2})
}

func do(t *testing.T, s *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, s, http.MethodOptions, "/advice", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWords(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/words/xx/5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"language":"xx","size":5,"answers":3,"allowed":4}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/words", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []wordsRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/words/fr/5", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/words/xx/five", nil, "").Code)
}

func TestAdvice(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/advice", AdviceRequest{
		Languages: []string{"xx", "yy"},
		Guesses:   []GuessInput{{Word: "Hello", Feedback: "bybby"}},
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res AdviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 5, res.Size)
	assert.Equal(t, "default", res.Policy)

	xx := res.Results["xx"]
	assert.Empty(t, xx.Error)
	assert.Equal(t, []string{"store", "adore"}, xx.Words)
	assert.Equal(t, 2, xx.Remaining)

	// hello is not a yy word
	yy := res.Results["yy"]
	assert.Contains(t, yy.Error, "not in dictionary")
	assert.Empty(t, yy.Words)
}

func TestAdviceNoHistory(t *testing.T) {
	s := newTestServer(t)
	deep := true
	rec := do(t, s, http.MethodPost, "/advice", AdviceRequest{Language: "xx", Deep: &deep, Top: 3}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res AdviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "deep", res.Policy)
	got := res.Results["xx"]
	assert.Equal(t, 3, got.Remaining)
	require.Len(t, got.Words, 1)
	require.NotEmpty(t, got.Ranked)
	assert.Equal(t, got.Words[0], got.Ranked[0].Word)
}

func TestAdviceErrors(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/advice", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/advice", AdviceRequest{
		Language: "xx",
		Guesses:  []GuessInput{{Word: "hello", Feedback: "bq"}},
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, s, http.MethodPost, "/advice", AdviceRequest{
		Language: "xx",
		Guesses:  []GuessInput{{Word: "hello"}},
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, s, http.MethodPost, "/advice", AdviceRequest{Language: "fr"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "unknown dictionary")
}

func TestSimulateRequiresAuth(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/simulate", map[string]any{}, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/simulate", map[string]any{}, "garbage").Code)

	wrong, err := IssueToken("other_secret", "ops", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/simulate", map[string]any{}, wrong).Code)

	expired, err := IssueToken(testSecret, "ops", -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/simulate", map[string]any{}, expired).Code)
}

func TestSimulate(t *testing.T) {
	s := newTestServer(t)
	token, err := IssueToken(testSecret, "ops", time.Minute)
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/simulate", simulateReq{Language: "xx"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res simulateRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "hello", res.First)
	assert.Equal(t, 3, res.Total)
	assert.Zero(t, res.Failed)

	rec = do(t, s, http.MethodPost, "/simulate", simulateReq{Language: "xx", First: "store", Target: "store"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res = simulateRes{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Attempts)

	rec = do(t, s, http.MethodPost, "/simulate", simulateReq{Language: "xx", Target: "hello"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
