package catalog

import "slices"

// Status is a module's completion state for the learner.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusNotStarted:
		return "○"
	case StatusInProgress:
		return "◐"
	case StatusCompleted:
		return "●"
	default:
		return "?"
	}
}

// Module is a unit of course content with a completion lifecycle and
// optional prerequisite modules.
type Module struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description"`
	Status      Status `json:"status" yaml:"status" validate:"required,oneof=not-started in-progress completed"`
	Progress    int    `json:"progress" yaml:"progress" validate:"min=0,max=100"`

	// Score is set only once an assessment for the module has been graded.
	Score *int `json:"score,omitempty" yaml:"score" validate:"omitempty,min=0,max=100"`

	// Dependencies lists module IDs that should be completed first.
	// IDs that do not resolve to a module in the catalog are ignored.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	Objectives   []string `json:"objectives,omitempty" yaml:"objectives"`
	VideoURL     string   `json:"videoUrl,omitempty" yaml:"videoUrl" validate:"omitempty,url"`
}

// HasScore reports whether the module has a graded assessment score.
func (m Module) HasScore() bool {
	return m.Score != nil
}

// clone returns a deep copy so callers can't mutate catalog state.
func (m Module) clone() Module {
	out := m
	out.Dependencies = slices.Clone(m.Dependencies)
	out.Objectives = slices.Clone(m.Objectives)
	if m.Score != nil {
		s := *m.Score
		out.Score = &s
	}
	return out
}

// IntPtr is a convenience for building optional scores.
func IntPtr(v int) *int {
	return &v
}
