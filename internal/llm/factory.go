package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/store"
)

type factoryOptions struct {
	events   store.EventRepo
	log      *logger.Logger
	observer Observer
}

// Option configures NewProvider.
type Option func(*factoryOptions)

// WithEventRepo records every request in repo.
func WithEventRepo(repo store.EventRepo) Option {
	return func(o *factoryOptions) { o.events = repo }
}

// WithLogger logs every request.
func WithLogger(l *logger.Logger) Option {
	return func(o *factoryOptions) { o.log = l }
}

// WithObserver reports every request to obs, typically a metrics sink.
func WithObserver(obs Observer) Option {
	return func(o *factoryOptions) { o.observer = obs }
}

// NewProvider builds the configured provider and wraps it, outermost first,
// in timeout, retry and recording middleware. Each retry attempt is
// recorded separately.
func NewProvider(ctx context.Context, cfg Config, opts ...Option) (Provider, error) {
	o := factoryOptions{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewEchoProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithRecording(base, cfg.Provider, o.events, o.log, o.observer)
	p = WithRetry(p, cfg.Retry)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}

	o.log.Debug("llm provider ready", "provider", cfg.Provider, "model", base.ModelID())
	return p, nil
}
