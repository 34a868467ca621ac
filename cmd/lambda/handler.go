// Command lambda serves POST /advice as an AWS Lambda function URL.
// Word lists come from the embedded defaults, overlaid with WORDS_DIR.
//
// Build with -tags lambda for the Lambda runtime; without the tag the same
// handler is served over plain HTTP on PORT for local testing.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/advisor/internal/httpserver"
	"github.com/robalobadob/wordle/apps/advisor/internal/words"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type app struct {
	lists *words.Lists
	deep  bool
}

// newApp loads the word lists once per cold start.
func newApp(ctx context.Context) *app {
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
	lists, _, err := words.Open(ctx, "", os.Getenv("WORDS_DIR"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	deep, _ := strconv.ParseBool(os.Getenv("SOLVER_DEEP"))
	return &app{lists: lists, deep: deep}
}

func (a *app) handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req httpserver.AdviceRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}

	res, err := httpserver.Advise(ctx, a.lists, req, a.deep)
	if err != nil {
		return errResp(httpserver.StatusFor(err), err.Error())
	}
	respJSON, err := json.Marshal(res)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, err
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
