package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by outer layers that need an error value for a
// lookup on an unknown module ID. Catalog queries themselves report absence
// with a boolean or an empty result.
var ErrNotFound = errors.New("not found")

// DuplicateIDError indicates two records of the same kind share an ID.
type DuplicateIDError struct {
	Kind string // "module" or "resource"
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id: %q", e.Kind, e.ID)
}

// CycleError indicates the dependency graph is not acyclic. Path starts and
// ends with the same module ID, following dependency edges.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " -> "))
}

// Contains reports whether id is on the cycle path.
func (e *CycleError) Contains(id string) bool {
	for _, p := range e.Path {
		if p == id {
			return true
		}
	}
	return false
}

// ValidationError reports a record whose fields are out of range.
type ValidationError struct {
	Kind     string
	ID       string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.ID, strings.Join(e.Problems, "; "))
}
