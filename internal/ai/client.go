// Package ai talks to the Gemini generateContent API for the two
// list-enrichment features: forgotten-item suggestions and bulk
// categorization. Responses are treated as untrusted input: everything goes
// through a schema-constrained request and a validating decode, and any
// malformed entry is dropped rather than propagated.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/smartshop-app/smartshop/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"

	requestTimeout = 30 * time.Second
	maxRetries     = 2
)

// ErrInvalidCredential marks a missing or rejected API key. Callers surface
// it as an actionable reconfiguration prompt instead of a generic failure.
var ErrInvalidCredential = errors.New("ai: invalid or missing API credential")

// Client calls the Gemini REST API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithBaseURL(url string) Option {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(url, "/")
	}
}

func WithModel(model string) Option {
	return func(cl *Client) {
		cl.model = model
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// --- wire types ---

type schema struct {
	Type       string             `json:"type"`
	Items      *schema            `json:"items,omitempty"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func categoryEnum() []string {
	cats := model.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// generate sends one prompt and returns the model's text output. Transient
// API errors (429, 5xx) are retried with fibonacci backoff; credential
// rejections come back as ErrInvalidCredential.
func (c *Client) generate(ctx context.Context, prompt string, respSchema *schema) (string, error) {
	if !c.Configured() {
		return "", ErrInvalidCredential
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   respSchema,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var text string
	backoff := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("generate request: %w", err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to decode
		case resp.StatusCode == http.StatusBadRequest,
			resp.StatusCode == http.StatusUnauthorized,
			resp.StatusCode == http.StatusForbidden:
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("%w: API returned status %d", ErrInvalidCredential, resp.StatusCode)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			io.Copy(io.Discard, resp.Body)
			return retry.RetryableError(fmt.Errorf("generate: status %d", resp.StatusCode))
		default:
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("generate: status %d", resp.StatusCode)
		}

		var gr generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
			text = ""
			return nil
		}
		text = gr.Candidates[0].Content.Parts[0].Text
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// SuggestForgotten asks the model for up to 5 items missing from the list.
// Only item names are disclosed. Malformed or out-of-enum entries in the
// response are dropped; an unparsable or non-array response yields an empty
// result rather than an error.
func (c *Client) SuggestForgotten(ctx context.Context, names []string) ([]model.AISuggestion, error) {
	list := "empty list"
	if len(names) > 0 {
		list = strings.Join(names, ", ")
	}
	prompt := fmt.Sprintf(
		"Based on the following current shopping list: [%s]. "+
			"Suggest 5 additional items the user may have forgotten to buy. "+
			"Consider common pairings and household staples. "+
			"For each item give a name, a category, and a short reason.",
		list,
	)

	respSchema := &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"name":     {Type: "STRING"},
				"category": {Type: "STRING", Enum: categoryEnum()},
				"reason":   {Type: "STRING"},
			},
			Required: []string{"name", "category", "reason"},
		},
	}

	text, err := c.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Reason   string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		// Suggestions are optional enrichment; a malformed payload is
		// simply no suggestions.
		return nil, nil
	}

	var suggestions []model.AISuggestion
	for _, s := range raw {
		name := strings.TrimSpace(s.Name)
		cat := model.Category(s.Category)
		if name == "" || s.Reason == "" || !cat.Valid() {
			continue
		}
		suggestions = append(suggestions, model.AISuggestion{
			Name:     name,
			Category: cat,
			Reason:   s.Reason,
		})
	}
	return suggestions, nil
}

// CategorizeItems asks the model to assign a category to every item. Only id
// and name are disclosed. An empty input returns immediately without a
// network call. Entries with an invalid category are dropped here; unknown
// ids are left for the caller to discard at merge time.
func (c *Client) CategorizeItems(ctx context.Context, refs []model.ItemRef) ([]model.Categorization, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(refs)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	prompt := fmt.Sprintf(
		"Classify these grocery items into the categories: %s.\nItems: %s",
		strings.Join(categoryEnum(), ", "), payload,
	)

	respSchema := &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"id":       {Type: "STRING"},
				"category": {Type: "STRING", Enum: categoryEnum()},
			},
			Required: []string{"id", "category"},
		},
	}

	text, err := c.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, nil
	}

	var results []model.Categorization
	for _, r := range raw {
		cat := model.Category(r.Category)
		if r.ID == "" || !cat.Valid() {
			continue
		}
		results = append(results, model.Categorization{ID: r.ID, Category: cat})
	}
	return results, nil
}
