// Package resources indexes learning materials by module, type, tag and
// free-text search. An Index is immutable after New and safe for
// concurrent readers.
package resources

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/coursemap/internal/catalog"
)

// Index holds resources in insertion order.
type Index struct {
	items    []Resource
	byID     map[string]int
	byModule map[string][]int
	types    []Type
}

// Option configures New.
type Option func(*options)

type options struct {
	knownModule func(id string) bool
}

// WithKnownModules rejects resources whose module affiliation is not
// reported by known. Without it, unknown affiliations are kept as-is.
func WithKnownModules(known func(id string) bool) Option {
	return func(o *options) {
		o.knownModule = known
	}
}

// New builds an index. Duplicate IDs fail with *catalog.DuplicateIDError
// and malformed records with *catalog.ValidationError.
func New(list []Resource, opts ...Option) (*Index, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		items:    make([]Resource, len(list)),
		byID:     make(map[string]int, len(list)),
		byModule: make(map[string][]int),
	}
	for i, r := range list {
		if _, dup := idx.byID[r.ID]; dup {
			return nil, &catalog.DuplicateIDError{Kind: "resource", ID: r.ID}
		}
		if err := validateResource(r); err != nil {
			return nil, err
		}
		if r.ModuleAffiliation != "" && o.knownModule != nil && !o.knownModule(r.ModuleAffiliation) {
			return nil, &catalog.ValidationError{
				Kind:     "resource",
				ID:       r.ID,
				Problems: []string{fmt.Sprintf("moduleAffiliation %q does not name a module", r.ModuleAffiliation)},
			}
		}

		idx.items[i] = r.clone()
		idx.byID[r.ID] = i
		if r.ModuleAffiliation != "" {
			idx.byModule[r.ModuleAffiliation] = append(idx.byModule[r.ModuleAffiliation], i)
		}
		if !slices.Contains(idx.types, r.Type) {
			idx.types = append(idx.types, r.Type)
		}
	}
	return idx, nil
}

// Len returns the number of resources.
func (x *Index) Len() int {
	return len(x.items)
}

// All returns every resource in insertion order.
func (x *Index) All() []Resource {
	return x.collect(func(Resource) bool { return true })
}

// Get returns the resource with the given ID.
func (x *Index) Get(id string) (Resource, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Resource{}, false
	}
	return x.items[i].clone(), true
}

// ByModule returns resources affiliated with moduleID, in insertion order.
// Unknown modules yield an empty slice.
func (x *Index) ByModule(moduleID string) []Resource {
	positions := x.byModule[moduleID]
	out := make([]Resource, 0, len(positions))
	for _, i := range positions {
		out = append(out, x.items[i].clone())
	}
	return out
}

// ByType returns resources whose type equals t exactly.
func (x *Index) ByType(t Type) []Resource {
	return x.collect(func(r Resource) bool { return r.Type == t })
}

// ByTag returns resources carrying tag, compared case-insensitively.
func (x *Index) ByTag(tag string) []Resource {
	return x.collect(func(r Resource) bool {
		return slices.ContainsFunc(r.Tags, func(t string) bool {
			return strings.EqualFold(t, tag)
		})
	})
}

// Search returns resources whose title or description contains term,
// ignoring case. An empty term matches everything.
func (x *Index) Search(term string) []Resource {
	needle := strings.ToLower(term)
	return x.collect(func(r Resource) bool { return matches(r, needle) })
}

// Filter combines Search and ByType. TypeAll and the empty type disable the
// type condition.
func (x *Index) Filter(term string, t Type) []Resource {
	needle := strings.ToLower(term)
	anyType := t == "" || t == TypeAll
	return x.collect(func(r Resource) bool {
		return (anyType || r.Type == t) && matches(r, needle)
	})
}

// Types returns the distinct types present in the index, in first-seen
// order.
func (x *Index) Types() []Type {
	return slices.Clone(x.types)
}

// FilterTypes returns TypeAll followed by Types, the choices a type
// filter offers.
func (x *Index) FilterTypes() []Type {
	return append([]Type{TypeAll}, x.types...)
}

func matches(r Resource, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle)
}

func (x *Index) collect(keep func(Resource) bool) []Resource {
	out := make([]Resource, 0)
	for _, r := range x.items {
		if keep(r) {
			out = append(out, r.clone())
		}
	}
	return out
}
