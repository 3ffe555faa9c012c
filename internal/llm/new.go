package llm

import (
	"context"

	"github.com/political-party-kit/partykit/internal/config"
)

// New builds the Completer for the configured provider.
func New(ctx context.Context, cfg *config.Config) (Completer, error) {
	if cfg.Provider == config.ProviderGemini {
		return NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	}
	return NewOpenAIClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel), nil
}
