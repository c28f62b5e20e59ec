// Package ai wraps the hosted model endpoint used by the text analysis
// commands. Calls are bounded by a single timeout and are never retried.
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"emperror.dev/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const ErrEmptyResponse = errors.Sentinel("model returned an empty response")

const (
	defaultModel   = openai.GPT4oMini
	requestTimeout = 60 * time.Second
)

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	c     *openai.Client
	model string
}

// New creates a Client. baseURL and model may be empty to use the defaults.
func New(key, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(key)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: requestTimeout}

	if model == "" {
		model = defaultModel
	}

	return &Client{
		c:     openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Fallacy is a single logical fallacy found in a piece of text.
type Fallacy struct {
	Name        string `json:"fallacy_name"`
	Explanation string `json:"explanation"`
	Quote       string `json:"quote"`
}

// GrammarError is a single grammatical error found in a piece of text.
type GrammarError struct {
	Type        string `json:"error_type"`
	Explanation string `json:"explanation"`
	Correction  string `json:"correction"`
	Quote       string `json:"quote"`
}

// Fallacies asks the model for the logical fallacies in text. An empty slice
// means none were found.
func (c *Client) Fallacies(ctx context.Context, text string) ([]Fallacy, error) {
	var out struct {
		Fallacies []Fallacy `json:"fallacies"`
	}

	err := c.generateJSON(ctx, fallacyPrompt(text), "fallacy_analysis", fallacySchema, &out)
	if err != nil {
		return nil, err
	}
	return out.Fallacies, nil
}

// GrammarErrors asks the model for the grammatical errors in text. An empty
// slice means none were found.
func (c *Client) GrammarErrors(ctx context.Context, text string) ([]GrammarError, error) {
	var out struct {
		Errors []GrammarError `json:"errors"`
	}

	err := c.generateJSON(ctx, grammarPrompt(text), "grammar_analysis", grammarSchema, &out)
	if err != nil {
		return nil, err
	}
	return out.Errors, nil
}

// Summary asks the model for a concise summary of a conversation.
func (c *Client) Summary(ctx context.Context, conversation string) (string, error) {
	return c.generate(ctx, summaryPrompt(conversation))
}

// Solution asks the model for a neutral, actionable solution to the issue in
// a conversation.
func (c *Client) Solution(ctx context.Context, conversation string) (string, error) {
	return c.generate(ctx, solutionPrompt(conversation))
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", errors.Wrap(err, "requesting completion")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *Client) generateJSON(ctx context.Context, prompt, name string, schema *jsonschema.Definition, v any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "requesting completion")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return ErrEmptyResponse
	}

	err = json.Unmarshal([]byte(resp.Choices[0].Message.Content), v)
	if err != nil {
		return errors.Wrap(err, "parsing model response")
	}
	return nil
}
