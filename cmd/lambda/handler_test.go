package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/advisor/internal/httpserver"
)

func TestHandler(t *testing.T) {
	a := newApp(context.Background())

	body := `{"language":"en","guesses":[{"word":"raise","feedback":"bbbbb"}]}`
	resp, err := a.handler(context.Background(), events.LambdaFunctionURLRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(body)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var res httpserver.AdviceResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &res))
	en := res.Results["en"]
	assert.Empty(t, en.Error)
	assert.NotEmpty(t, en.Words)
	assert.NotContains(t, en.Candidates, "raise")
}

func TestHandlerErrors(t *testing.T) {
	a := newApp(context.Background())
	ctx := context.Background()

	resp, err := a.handler(ctx, events.LambdaFunctionURLRequest{Body: "{"})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = a.handler(ctx, events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true})
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = a.handler(ctx, events.LambdaFunctionURLRequest{Body: `{"language":"fr"}`})
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
