// Package gemini implements domain.Completer with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sevencode7/tasks/internal/domain"
)

const opGenerate = "generate content"

// contentGenerator is the subset of *genai.Models the completer needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Completer sends one prompt per call to a Gemini model.
type Completer struct {
	models contentGenerator
	model  string
}

// New creates a Completer for the given API key and model.
func New(ctx context.Context, apiKey, model string) (*Completer, error) {
	if apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}
	if model == "" {
		model = domain.DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Completer{models: client.Models, model: model}, nil
}

// Ensure Completer implements domain.Completer.
var _ domain.Completer = (*Completer)(nil)

// Model returns the model name used for completions.
func (c *Completer) Model() string {
	return c.model
}

// Complete issues exactly one GenerateContent call. No retry.
// A response without text yields an empty string and no error.
func (c *Completer) Complete(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: opts.MaxOutputTokens,
		Temperature:     genai.Ptr(opts.Temperature),
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", &domain.RemoteCallError{
			Op:         opGenerate,
			StatusCode: statusCode(err),
			Err:        err,
		}
	}

	return replyText(resp), nil
}

// replyText joins the text parts of the first candidate.
func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
