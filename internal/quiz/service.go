package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/store"
)

var (
	// ErrNoAttemptsLeft means the quiz has used all of its attempts.
	ErrNoAttemptsLeft = errors.New("no attempts left")

	// ErrUnknownQuiz means no quiz has the requested ID.
	ErrUnknownQuiz = errors.New("unknown quiz")
)

// Attempt is a stored, graded submission.
type Attempt struct {
	QuizID      string            `json:"quizId"`
	Number      int               `json:"attempt"`
	StartedAt   time.Time         `json:"startedAt"`
	SubmittedAt time.Time         `json:"submittedAt"`
	Answers     map[string]string `json:"answers"`
	TimedOut    bool              `json:"timedOut"`
	Remaining   int               `json:"attemptsRemaining"`
	Result
}

// Service grades submissions and keeps the attempt history in a
// store.QuizRepo.
type Service struct {
	repo    store.QuizRepo
	quizzes map[string]Quiz
	order   []string
	now     func() time.Time
}

// NewService validates quizzes and indexes them by ID.
func NewService(repo store.QuizRepo, quizzes []Quiz) (*Service, error) {
	s := &Service{
		repo:    repo,
		quizzes: make(map[string]Quiz, len(quizzes)),
		now:     time.Now,
	}
	for _, q := range quizzes {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.quizzes[q.ID]; dup {
			return nil, &catalog.DuplicateIDError{Kind: "quiz", ID: q.ID}
		}
		s.quizzes[q.ID] = q
		s.order = append(s.order, q.ID)
	}
	return s, nil
}

// Get returns the quiz with the given ID.
func (s *Service) Get(id string) (Quiz, bool) {
	q, ok := s.quizzes[id]
	return q, ok
}

// List returns all quizzes in definition order.
func (s *Service) List() []Quiz {
	out := make([]Quiz, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.quizzes[id])
	}
	return out
}

// ForModule returns the quizzes affiliated with moduleID.
func (s *Service) ForModule(moduleID string) []Quiz {
	var out []Quiz
	for _, q := range s.List() {
		if q.ModuleID == moduleID {
			out = append(out, q)
		}
	}
	return out
}

// Submit grades answers and stores the attempt. startedAt is when the
// learner opened the quiz; a zero value means now. Submissions after the
// time limit are still graded but marked TimedOut.
func (s *Service) Submit(ctx context.Context, quizID string, answers map[string]string, startedAt time.Time) (*Attempt, error) {
	q, ok := s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuiz, quizID)
	}

	now := s.now()
	if startedAt.IsZero() || startedAt.After(now) {
		startedAt = now
	}
	timedOut := q.TimeLimit > 0 && now.Sub(startedAt) > q.TimeLimit

	result := Grade(q, answers)
	rec := &store.QuizAttempt{
		QuizID:      q.ID,
		StartedAt:   startedAt,
		SubmittedAt: now,
		Answers:     answers,
		Correct:     result.Correct,
		Total:       result.Total,
		Percent:     result.Percent,
		Passed:      result.Passed,
		TimedOut:    timedOut,
	}
	if err := s.repo.AppendAttempt(ctx, rec, q.MaxAttempts); err != nil {
		if errors.Is(err, store.ErrAttemptLimit) {
			return nil, fmt.Errorf("%w: %s allows %d", ErrNoAttemptsLeft, q.ID, q.MaxAttempts)
		}
		return nil, fmt.Errorf("store attempt: %w", err)
	}

	a := toAttempt(*rec, q)
	return &a, nil
}

// Attempts returns the stored attempts for quizID in order.
func (s *Service) Attempts(ctx context.Context, quizID string) ([]Attempt, error) {
	q, ok := s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuiz, quizID)
	}
	recs, err := s.repo.Attempts(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	out := make([]Attempt, len(recs))
	for i, r := range recs {
		out[i] = toAttempt(r, q)
	}
	return out, nil
}

// Remaining returns how many attempts are left, or -1 when unlimited.
func (s *Service) Remaining(ctx context.Context, quizID string) (int, error) {
	q, ok := s.quizzes[quizID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownQuiz, quizID)
	}
	if q.MaxAttempts == 0 {
		return -1, nil
	}
	recs, err := s.repo.Attempts(ctx, quizID)
	if err != nil {
		return 0, fmt.Errorf("load attempts: %w", err)
	}
	return max(q.MaxAttempts-len(recs), 0), nil
}

func toAttempt(r store.QuizAttempt, q Quiz) Attempt {
	remaining := -1
	if q.MaxAttempts > 0 {
		remaining = max(q.MaxAttempts-r.Attempt, 0)
	}
	return Attempt{
		QuizID:      r.QuizID,
		Number:      r.Attempt,
		StartedAt:   r.StartedAt,
		SubmittedAt: r.SubmittedAt,
		Answers:     r.Answers,
		TimedOut:    r.TimedOut,
		Remaining:   remaining,
		Result: Result{
			Correct: r.Correct,
			Total:   r.Total,
			Percent: r.Percent,
			Passed:  r.Passed,
		},
	}
}
