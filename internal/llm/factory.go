package llm

import (
	"context"
	"fmt"

	"github.com/fweber/lexiscope/internal/store"
)

// NewProvider builds the configured Provider wrapped with retry and
// event-logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from LEXISCOPE_* configuration,
// falling back to the well-known API key env vars when no explicit
// provider is configured. Returns (nil, nil) when no credential is
// available at all — the caller runs without a grader in that case.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() == nil && hasCredential(cfg) {
		return NewProvider(ctx, cfg, events)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, nil
	}
	return NewProvider(ctx, discovered, events)
}

func hasCredential(cfg Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "openrouter":
		return cfg.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}
