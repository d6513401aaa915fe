package ai

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Generator talks to an OpenAI-compatible chat completions endpoint.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a Generator. An empty baseURL keeps the go-openai default.
// No retries are configured: a failed call fails the request.
func NewGenerator(apiKey, baseURL, model string) *Generator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &Generator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Model returns the model identifier sent with each request.
func (g *Generator) Model() string {
	return g.model
}
