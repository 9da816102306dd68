package catalog

import "slices"

// Catalog is an immutable, ordered set of modules with precomputed
// dependency indices. It is safe for concurrent readers.
type Catalog struct {
	modules    []Module
	byID       map[string]int
	dependents map[string][]string
	topoOrder  []int
}

// New builds a catalog from modules in the given order. Construction fails
// with *DuplicateIDError, *ValidationError or *CycleError; a catalog that
// exists is always acyclic.
func New(modules []Module) (*Catalog, error) {
	c := &Catalog{
		modules:    make([]Module, len(modules)),
		byID:       make(map[string]int, len(modules)),
		dependents: make(map[string][]string),
	}

	for i, m := range modules {
		if _, dup := c.byID[m.ID]; dup {
			return nil, &DuplicateIDError{Kind: "module", ID: m.ID}
		}
		if err := validateModule(m); err != nil {
			return nil, err
		}
		c.modules[i] = m.clone()
		c.byID[m.ID] = i
	}

	if err := c.ValidateAcyclic(); err != nil {
		return nil, err
	}

	// Reverse edges, in catalog order of the dependent.
	for _, m := range c.modules {
		for _, depID := range m.Dependencies {
			if _, ok := c.byID[depID]; ok {
				c.dependents[depID] = append(c.dependents[depID], m.ID)
			}
		}
	}

	c.topoOrder = c.kahn()
	return c, nil
}

// kahn computes a dependencies-first order. Ties are broken by catalog
// position so the result is deterministic.
func (c *Catalog) kahn() []int {
	inDegree := make([]int, len(c.modules))
	for i, m := range c.modules {
		for _, depID := range m.Dependencies {
			if _, ok := c.byID[depID]; ok {
				inDegree[i]++
			}
		}
	}

	var queue []int
	for i := range c.modules {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(c.modules))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, depID := range c.dependents[c.modules[i].ID] {
			j := c.byID[depID]
			inDegree[j]--
			if inDegree[j] == 0 {
				queue = append(queue, j)
			}
		}
	}
	return order
}

// Len returns the number of modules.
func (c *Catalog) Len() int {
	return len(c.modules)
}

// Modules returns all modules in catalog order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, m := range c.modules {
		out[i] = m.clone()
	}
	return out
}

// IDs returns all module IDs in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.modules))
	for i, m := range c.modules {
		out[i] = m.ID
	}
	return out
}

// GetModule returns the module with the given ID. The boolean is false when
// no such module exists.
func (c *Catalog) GetModule(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i].clone(), true
}

// Has reports whether id names a module in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ResolveDependencies returns the direct dependencies of id that exist in
// the catalog, in declared order. Dangling IDs are dropped. An unknown id
// yields an empty result.
func (c *Catalog) ResolveDependencies(id string) []Module {
	i, ok := c.byID[id]
	if !ok {
		return []Module{}
	}
	deps := c.modules[i].Dependencies
	out := make([]Module, 0, len(deps))
	for _, depID := range deps {
		if j, ok := c.byID[depID]; ok {
			out = append(out, c.modules[j].clone())
		}
	}
	return out
}

// DanglingDependencies returns the dependency IDs of id that do not resolve.
func (c *Catalog) DanglingDependencies(id string) []string {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	var out []string
	for _, depID := range c.modules[i].Dependencies {
		if _, ok := c.byID[depID]; !ok {
			out = append(out, depID)
		}
	}
	return out
}

// Dependents returns modules that directly depend on id, in catalog order.
func (c *Catalog) Dependents(id string) []Module {
	ids := c.dependents[id]
	out := make([]Module, 0, len(ids))
	for _, depID := range ids {
		out = append(out, c.modules[c.byID[depID]].clone())
	}
	return out
}

// Roots returns modules with no resolvable dependencies.
func (c *Catalog) Roots() []Module {
	var out []Module
	for _, m := range c.modules {
		if len(c.ResolveDependencies(m.ID)) == 0 {
			out = append(out, m.clone())
		}
	}
	return out
}

// TopologicalOrder returns all modules with every module after its
// dependencies.
func (c *Catalog) TopologicalOrder() []Module {
	out := make([]Module, len(c.topoOrder))
	for k, i := range c.topoOrder {
		out[k] = c.modules[i].clone()
	}
	return out
}

// IsUnlocked reports whether every resolvable dependency of id is completed.
func (c *Catalog) IsUnlocked(id string) bool {
	if !c.Has(id) {
		return false
	}
	return !slices.ContainsFunc(c.ResolveDependencies(id), func(m Module) bool {
		return m.Status != StatusCompleted
	})
}

// OverallProgress returns the arithmetic mean of every module's progress,
// or 0 for an empty catalog.
func (c *Catalog) OverallProgress() float64 {
	if len(c.modules) == 0 {
		return 0
	}
	total := 0
	for _, m := range c.modules {
		total += m.Progress
	}
	return float64(total) / float64(len(c.modules))
}

// CompletedCount returns the number of modules with status completed.
func (c *Catalog) CompletedCount() int {
	n := 0
	for _, m := range c.modules {
		if m.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// AverageScore returns the mean score over modules that have one. The
// boolean is false when no module has been scored.
func (c *Catalog) AverageScore() (float64, bool) {
	total, n := 0, 0
	for _, m := range c.modules {
		if m.Score != nil {
			total += *m.Score
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(total) / float64(n), true
}

// Summary is an aggregate view of learner progress across the catalog.
type Summary struct {
	Total           int      `json:"total"`
	Completed       int      `json:"completed"`
	OverallProgress float64  `json:"overallProgress"`
	AverageScore    *float64 `json:"averageScore,omitempty"`
}

// Summarize collects the aggregate queries into one value.
func (c *Catalog) Summarize() Summary {
	s := Summary{
		Total:           c.Len(),
		Completed:       c.CompletedCount(),
		OverallProgress: c.OverallProgress(),
	}
	if avg, ok := c.AverageScore(); ok {
		s.AverageScore = &avg
	}
	return s
}
