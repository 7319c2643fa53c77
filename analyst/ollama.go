package analyst

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Ollama talks to an Ollama server's /api/generate endpoint.
type Ollama struct {
	client *resty.Client
	logger *zap.Logger
}

var _ Generator = (*Ollama)(nil)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewOllama returns a client for the server at baseURL, e.g.
// http://localhost:11434.
func NewOllama(baseURL string, logger *zap.Logger) *Ollama {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Ollama{client: client, logger: logger}
}

// Generate sends a single non-streaming generation request. Transport
// failures and error statuses wrap ErrServiceUnavailable.
func (o *Ollama) Generate(ctx context.Context, model, prompt string) (string, error) {
	var (
		out     generateResponse
		errBody errorResponse
	)

	o.logger.Debug("POST /api/generate",
		zap.String("url", o.client.BaseURL),
		zap.String("model", model))

	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(generateRequest{Model: model, Prompt: prompt, Stream: false}).
		SetResult(&out).
		SetError(&errBody).
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	if resp.IsError() {
		msg := errBody.Error
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return "", fmt.Errorf("%w: %s: %s", ErrServiceUnavailable, resp.Status(), msg)
	}
	return out.Response, nil
}
