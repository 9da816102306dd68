package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validator returns the shared struct validator.
func Validator() *validator.Validate {
	return validate
}

// FieldProblems turns a validator error into human-readable problems.
func FieldProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		case "min", "max":
			out = append(out, fmt.Sprintf("%s must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
		case "oneof":
			out = append(out, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			out = append(out, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
		}
	}
	return out
}

func validateModule(m Module) error {
	if err := validate.Struct(m); err != nil {
		return &ValidationError{Kind: "module", ID: m.ID, Problems: FieldProblems(err)}
	}
	return nil
}

// ValidateAcyclic walks the dependency graph depth-first and returns a
// *CycleError when a dependency edge points back at a module still on the
// walk stack. Dangling dependency IDs are skipped.
func (c *Catalog) ValidateAcyclic() error {
	return findCycle(c.modules, c.byID)
}

const (
	white = iota // unvisited
	grey         // on the stack
	black        // finished
)

func findCycle(modules []Module, byID map[string]int) error {
	color := make([]int, len(modules))
	var stack []int

	var visit func(i int) []string
	visit = func(i int) []string {
		color[i] = grey
		stack = append(stack, i)
		for _, depID := range modules[i].Dependencies {
			j, ok := byID[depID]
			if !ok {
				continue
			}
			switch color[j] {
			case grey:
				// Back-edge: the cycle is the stack suffix starting at j.
				start := len(stack) - 1
				for stack[start] != j {
					start--
				}
				path := make([]string, 0, len(stack)-start+1)
				for _, k := range stack[start:] {
					path = append(path, modules[k].ID)
				}
				return append(path, modules[j].ID)
			case white:
				if p := visit(j); p != nil {
					return p
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[i] = black
		return nil
	}

	for i := range modules {
		if color[i] != white {
			continue
		}
		if path := visit(i); path != nil {
			return &CycleError{Path: path}
		}
	}
	return nil
}

// Inconsistency describes a module whose status disagrees with its
// progress or score.
type Inconsistency struct {
	ModuleID string
	Problem  string
}

// CheckConsistency reports status/progress/score disagreements. The catalog
// never rejects or corrects them; callers decide what to do.
func (c *Catalog) CheckConsistency() []Inconsistency {
	var out []Inconsistency
	for _, m := range c.modules {
		switch m.Status {
		case StatusCompleted:
			if m.Progress != 100 {
				out = append(out, Inconsistency{m.ID, fmt.Sprintf("status completed but progress is %d", m.Progress)})
			}
		case StatusNotStarted:
			if m.Progress > 0 {
				out = append(out, Inconsistency{m.ID, fmt.Sprintf("status not-started but progress is %d", m.Progress)})
			}
		case StatusInProgress:
			if m.Progress == 0 || m.Progress == 100 {
				out = append(out, Inconsistency{m.ID, fmt.Sprintf("status in-progress but progress is %d", m.Progress)})
			}
		}
		if m.Score != nil && m.Status != StatusCompleted {
			out = append(out, Inconsistency{m.ID, fmt.Sprintf("score %d present but status is %s", *m.Score, m.Status)})
		}
	}
	return out
}
