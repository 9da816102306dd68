package store

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptLimit is returned by QuizRepo.AppendAttempt when the quiz
// already has the maximum number of attempts.
var ErrAttemptLimit = errors.New("attempt limit reached")

// QueryOpts configures event queries with filtering and pagination.
// Results are newest first.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// ProgressRecord is the learner's stored state for one module.
type ProgressRecord struct {
	ModuleID  string
	Status    string
	Progress  int
	Score     *int
	UpdatedAt time.Time
}

// ProgressRepo stores learner progress, one row per module.
type ProgressRepo interface {
	// Upsert inserts or replaces the record for rec.ModuleID.
	Upsert(ctx context.Context, rec ProgressRecord) error

	// Get returns the record for moduleID, or nil if none exists.
	Get(ctx context.Context, moduleID string) (*ProgressRecord, error)

	// All returns every record ordered by module ID.
	All(ctx context.Context) ([]ProgressRecord, error)

	// Reset deletes all progress.
	Reset(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// SummaryEventData records one summarization request.
type SummaryEventData struct {
	SummaryID    string
	ModuleID     string // empty for free-form content
	InputChars   int
	Summary      string
	Model        string
	Success      bool
	ErrorMessage string
}

// SummaryEvent is a stored summarization.
type SummaryEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SummaryEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents lists LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// AppendSummary records a summarization.
	AppendSummary(ctx context.Context, data SummaryEventData) error

	// QuerySummaries lists summaries for moduleID (all when empty), newest
	// first.
	QuerySummaries(ctx context.Context, moduleID string, opts QueryOpts) ([]SummaryEvent, error)
}

// QuizAttempt is one graded quiz submission.
type QuizAttempt struct {
	ID          int
	Sequence    int64
	QuizID      string
	Attempt     int // 1-based, assigned on append
	StartedAt   time.Time
	SubmittedAt time.Time
	Answers     map[string]string
	Correct     int
	Total       int
	Percent     float64
	Passed      bool
	TimedOut    bool
}

// QuizRepo stores quiz attempts.
type QuizRepo interface {
	// AppendAttempt stores a, assigning its attempt number, sequence and
	// ID. It fails with ErrAttemptLimit when maxAttempts > 0 and the quiz
	// already has that many attempts.
	AppendAttempt(ctx context.Context, a *QuizAttempt, maxAttempts int) error

	// Attempts returns the attempts for quizID in attempt order.
	Attempts(ctx context.Context, quizID string) ([]QuizAttempt, error)
}
