package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer returns a test server that answers every chat completion
// request with the given message content, and records the last request body.
func completionServer(t *testing.T, content string) (*httptest.Server, *map[string]any) {
	t.Helper()

	lastRequest := map[string]any{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &lastRequest))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": %q}
			}]
		}`, content)
	}))
	t.Cleanup(srv.Close)

	return srv, &lastRequest
}

func TestFallacies(t *testing.T) {
	srv, lastRequest := completionServer(t, `{"fallacies": [
		{"fallacy_name": "Ad Hominem", "explanation": "Attacks the person.", "quote": "you would say that"}
	]}`)

	c := New("test-key", srv.URL, "test-model")

	fallacies, err := c.Fallacies(context.Background(), "you would say that, you're a cat person")
	require.NoError(t, err)
	require.Len(t, fallacies, 1)
	assert.Equal(t, "Ad Hominem", fallacies[0].Name)
	assert.Equal(t, "you would say that", fallacies[0].Quote)

	// the input text should end up in the prompt, and the request should ask
	// for a structured response
	msgs := (*lastRequest)["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].(map[string]any)["content"], "cat person")

	format := (*lastRequest)["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
}

func TestFallaciesNoneFound(t *testing.T) {
	srv, _ := completionServer(t, `{"fallacies": []}`)

	c := New("test-key", srv.URL, "test-model")

	fallacies, err := c.Fallacies(context.Background(), "the sky is blue")
	require.NoError(t, err)
	assert.Empty(t, fallacies)
}

func TestGrammarErrors(t *testing.T) {
	srv, _ := completionServer(t, `{"errors": [
		{"error_type": "Spelling", "explanation": "Misspelled word.", "correction": "definitely", "quote": "definately"}
	]}`)

	c := New("test-key", srv.URL, "test-model")

	errs, err := c.GrammarErrors(context.Background(), "definately")
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Spelling", errs[0].Type)
	assert.Equal(t, "definitely", errs[0].Correction)
}

func TestSummary(t *testing.T) {
	srv, lastRequest := completionServer(t, "They argued about tabs versus spaces.")

	c := New("test-key", srv.URL, "test-model")

	summary, err := c.Summary(context.Background(), "alice: tabs\nbob: spaces")
	require.NoError(t, err)
	assert.Equal(t, "They argued about tabs versus spaces.", summary)

	// plain text requests should not ask for a structured response
	assert.NotContains(t, *lastRequest, "response_format")
}

func TestSolution(t *testing.T) {
	srv, _ := completionServer(t, "Agree on a formatter and move on.")

	c := New("test-key", srv.URL, "test-model")

	solution, err := c.Solution(context.Background(), "alice: tabs\nbob: spaces")
	require.NoError(t, err)
	assert.Equal(t, "Agree on a formatter and move on.", solution)
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "server on fire", "type": "server_error"}}`)
	}))
	t.Cleanup(srv.Close)

	c := New("test-key", srv.URL, "test-model")

	_, err := c.Summary(context.Background(), "hello")
	require.Error(t, err)

	_, err = c.Fallacies(context.Background(), "hello")
	require.Error(t, err)
}

func TestEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`)
	}))
	t.Cleanup(srv.Close)

	c := New("test-key", srv.URL, "test-model")

	_, err := c.Summary(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestBadJSONResponse(t *testing.T) {
	srv, _ := completionServer(t, `not json at all`)

	c := New("test-key", srv.URL, "test-model")

	_, err := c.Fallacies(context.Background(), "hello")
	require.Error(t, err)
}
