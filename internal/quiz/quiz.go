// Package quiz grades module knowledge checks and enforces the attempt
// policy.
package quiz

import (
	"fmt"
	"time"

	"github.com/abhisek/coursemap/internal/catalog"
)

// Policy defaults.
const (
	DefaultTimeLimit   = 15 * time.Minute
	DefaultMaxAttempts = 2
	DefaultPassPercent = 80.0
)

// Option is one answer choice.
type Option struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Question is a single-choice question. CorrectOptionID is never
// serialized so quizzes can be served as-is.
type Question struct {
	ID              string   `json:"id" validate:"required"`
	Text            string   `json:"text" validate:"required"`
	Options         []Option `json:"options" validate:"min=2,dive"`
	CorrectOptionID string   `json:"-" validate:"required"`
}

// Quiz is a timed assessment affiliated with a module.
type Quiz struct {
	ID          string        `json:"id" validate:"required"`
	ModuleID    string        `json:"moduleId"`
	Title       string        `json:"title" validate:"required"`
	TimeLimit   time.Duration `json:"timeLimit"`
	MaxAttempts int           `json:"maxAttempts" validate:"min=0"`
	PassPercent float64       `json:"passPercent" validate:"min=0,max=100"`
	Questions   []Question    `json:"questions" validate:"min=1,dive"`
}

// Validate checks field constraints and that every question's correct
// option is one of its options.
func (q Quiz) Validate() error {
	if err := catalog.Validator().Struct(q); err != nil {
		return &catalog.ValidationError{Kind: "quiz", ID: q.ID, Problems: catalog.FieldProblems(err)}
	}
	seen := make(map[string]bool, len(q.Questions))
	for _, qu := range q.Questions {
		if seen[qu.ID] {
			return &catalog.DuplicateIDError{Kind: "question", ID: qu.ID}
		}
		seen[qu.ID] = true
		if _, ok := qu.Option(qu.CorrectOptionID); !ok {
			return &catalog.ValidationError{
				Kind:     "quiz",
				ID:       q.ID,
				Problems: []string{fmt.Sprintf("question %s: correct option %q is not an option", qu.ID, qu.CorrectOptionID)},
			}
		}
	}
	return nil
}

// Question returns the question with the given ID.
func (q Quiz) Question(id string) (Question, bool) {
	for _, qu := range q.Questions {
		if qu.ID == id {
			return qu, true
		}
	}
	return Question{}, false
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// DefaultQuizzes returns the built-in quizzes.
func DefaultQuizzes() []Quiz {
	return []Quiz{
		{
			ID:          "sample-w4",
			ModuleID:    "mtc",
			Title:       "Sample Quiz: Payroll Basics",
			TimeLimit:   DefaultTimeLimit,
			MaxAttempts: DefaultMaxAttempts,
			PassPercent: DefaultPassPercent,
			Questions: []Question{
				{
					ID:   "q1",
					Text: "What is the primary purpose of a W-4 form?",
					Options: []Option{
						{ID: "opt1", Text: "To report annual income to the IRS."},
						{ID: "opt2", Text: "To allow employers to withhold the correct federal income tax from an employee's pay."},
						{ID: "opt3", Text: "To apply for unemployment benefits."},
						{ID: "opt4", Text: "To summarize an employee's taxable income and withholdings for the year."},
					},
					CorrectOptionID: "opt2",
				},
				{
					ID:   "q2",
					Text: "Which of the following is NOT typically considered a pre-tax deduction?",
					Options: []Option{
						{ID: "opt1", Text: "Health insurance premiums (Section 125 plan)"},
						{ID: "opt2", Text: "Traditional 401(k) contributions"},
						{ID: "opt3", Text: "Roth 401(k) contributions"},
						{ID: "opt4", Text: "Flexible Spending Account (FSA) contributions"},
					},
					CorrectOptionID: "opt3",
				},
			},
		},
	}
}
