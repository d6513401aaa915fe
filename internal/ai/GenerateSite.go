package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"ai_site_builder/internal/types"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateSite sends the system/user message pair and returns the raw model text.
// It blocks until the provider answers or ctx is done.
func (g *Generator) GenerateSite(ctx context.Context, bundle types.PromptBundle) (types.GenerationResult, error) {
	log.Printf("Sending generation request to model %s (user message: %d chars)", g.model, utf8.RuneCountInString(bundle.User))

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: bundle.System},
				{Role: openai.ChatMessageRoleUser, Content: bundle.User},
			},
		},
	)
	if err != nil {
		return types.GenerationResult{}, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("Model usage for response without choices: %+v", resp.Usage)
		return types.GenerationResult{}, errors.New("model returned no choices")
	}
	// empty content is passed through; the section parser reports it as malformed
	if resp.Choices[0].Message.Content == "" {
		log.Printf("WARN: model %s returned empty content (finish reason %q)", g.model, resp.Choices[0].FinishReason)
	}

	return types.GenerationResult{Raw: resp.Choices[0].Message.Content}, nil
}
