// Package summarizer produces short AI summaries of module text.
package summarizer

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/store"
)

// Content length bounds, in characters.
const (
	MinContentChars = 50
	MaxContentChars = 10000
)

// Input is the text to summarize. ModuleID is optional and only used to
// label the recorded summary.
type Input struct {
	ModuleContent string `json:"moduleContent" validate:"min=50,max=10000"`
	ModuleID      string `json:"moduleId,omitempty"`
}

// Output is a generated summary.
type Output struct {
	SummaryID string    `json:"summaryId"`
	Summary   string    `json:"summary"`
	Model     string    `json:"model,omitempty"`
	Usage     llm.Usage `json:"-"`
}

// InputError reports content outside the accepted length.
type InputError struct {
	Chars int
}

func (e *InputError) Error() string {
	if e.Chars < MinContentChars {
		return fmt.Sprintf("module content must be at least %d characters (got %d)", MinContentChars, e.Chars)
	}
	return fmt.Sprintf("module content must be at most %d characters (got %d)", MaxContentChars, e.Chars)
}

// Recorder stores summary outcomes. store.EventRepo satisfies it.
type Recorder interface {
	AppendSummary(ctx context.Context, data store.SummaryEventData) error
}

// Config tunes generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3}
}

// Service summarizes module content through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
	recorder Recorder
	log      *logger.Logger
	newID    func() string
}

// Option configures NewService.
type Option func(*Service)

// WithLogger reports summaries that could not be recorded.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a summarizer. provider may be nil, in which case
// Summarize fails with llm.ErrNotConfigured; recorder may be nil.
func NewService(provider llm.Provider, cfg Config, recorder Recorder, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		cfg:      cfg,
		recorder: recorder,
		log:      logger.Nop(),
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Configured reports whether a provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// Validate checks the content length without calling the provider.
func (in Input) Validate() error {
	if err := catalog.Validator().Struct(in); err != nil {
		return &InputError{Chars: utf8.RuneCountInString(in.ModuleContent)}
	}
	return nil
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

// Summarize generates a summary of in.ModuleContent. Invalid input returns
// *InputError before any provider call.
func (s *Service) Summarize(ctx context.Context, in Input) (*Output, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, llm.ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeModuleSummary)
	id := s.newID()
	event := store.SummaryEventData{
		SummaryID:  id,
		ModuleID:   in.ModuleID,
		InputChars: utf8.RuneCountInString(in.ModuleContent),
		Model:      s.provider.ModelID(),
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in.ModuleContent)}},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		event.ErrorMessage = err.Error()
		s.record(ctx, event)
		return nil, fmt.Errorf("summarize: %w", err)
	}

	var out summaryOutput
	if err := resp.Decode(&out); err != nil {
		event.ErrorMessage = err.Error()
		s.record(ctx, event)
		return nil, fmt.Errorf("summarize: %w", err)
	}

	if resp.Model != "" {
		event.Model = resp.Model
	}
	event.Summary = out.Summary
	event.Success = true
	s.record(ctx, event)

	return &Output{
		SummaryID: id,
		Summary:   out.Summary,
		Model:     event.Model,
		Usage:     resp.Usage,
	}, nil
}

// SummarizeModule summarizes m's rendered content.
func (s *Service) SummarizeModule(ctx context.Context, m catalog.Module) (*Output, error) {
	return s.Summarize(ctx, Input{ModuleContent: ModuleContent(m), ModuleID: m.ID})
}

// record is best effort; a failing store never fails a summary.
func (s *Service) record(ctx context.Context, data store.SummaryEventData) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.AppendSummary(context.WithoutCancel(ctx), data); err != nil {
		s.log.Warn("record summary failed", "summary_id", data.SummaryID, "module", data.ModuleID, "error", err)
	}
}
