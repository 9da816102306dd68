package resources

import (
	"fmt"
	"slices"
	"strings"
)

// Type is a resource kind. Values are stable keys used in data files and
// query parameters.
type Type string

const (
	TypeDocument            Type = "document"
	TypeChecklist           Type = "checklist"
	TypeTemplate            Type = "template"
	TypeVideo               Type = "video"
	TypeLink                Type = "link"
	TypeCalculator          Type = "calculator"
	TypeTimeline            Type = "timeline"
	TypeMatrix              Type = "matrix"
	TypeWorksheet           Type = "worksheet"
	TypeInteractiveScenario Type = "interactive-scenario"
	TypeSimulation          Type = "simulation"
	TypeWorkflow            Type = "workflow"
	TypeCaseStudy           Type = "case-study"
	TypeKnowledgeCheck      Type = "knowledge-check"
	TypePDF                 Type = "pdf"
	TypeDiagram             Type = "diagram"
)

// TypeAll is the filter sentinel that matches every type. It is never a
// valid resource type.
const TypeAll Type = "all"

// allTypes is the single source of truth for valid types.
var allTypes = []Type{
	TypeDocument,
	TypeChecklist,
	TypeTemplate,
	TypeVideo,
	TypeLink,
	TypeCalculator,
	TypeTimeline,
	TypeMatrix,
	TypeWorksheet,
	TypeInteractiveScenario,
	TypeSimulation,
	TypeWorkflow,
	TypeCaseStudy,
	TypeKnowledgeCheck,
	TypePDF,
	TypeDiagram,
}

// AllTypes returns every valid resource type.
func AllTypes() []Type {
	return slices.Clone(allTypes)
}

// Valid reports whether t is a known resource type.
func (t Type) Valid() bool {
	return slices.Contains(allTypes, t)
}

// ParseType converts a user-supplied type into a filter value. The empty
// string and "all" both yield TypeAll.
func ParseType(s string) (Type, error) {
	t := Type(s)
	switch {
	case s == "" || t == TypeAll:
		return TypeAll, nil
	case t.Valid():
		return t, nil
	default:
		return "", fmt.Errorf("unknown resource type %q", s)
	}
}

var displayNames = map[Type]string{
	TypeAll:                 "All Types",
	TypePDF:                 "PDF Document",
	TypeLink:                "External Link",
	TypeVideo:               "Video Content",
	TypeDocument:            "Document",
	TypeTemplate:            "Template",
	TypeChecklist:           "Checklist",
	TypeDiagram:             "Diagram",
	TypeCalculator:          "Calculator",
	TypeTimeline:            "Timeline",
	TypeMatrix:              "Comparison Matrix",
	TypeWorksheet:           "Worksheet",
	TypeInteractiveScenario: "Interactive Scenario",
	TypeSimulation:          "Simulation",
	TypeWorkflow:            "Workflow",
	TypeCaseStudy:           "Case Study",
	TypeKnowledgeCheck:      "Knowledge Check",
}

// DisplayName returns the human label for t, falling back to the raw key.
func DisplayName(t Type) string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Resource is a learning material, optionally tied to one module.
type Resource struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description"`
	Type        Type   `json:"type" yaml:"type" validate:"required,resource_type"`
	URL         string `json:"url" yaml:"url" validate:"required"`

	// ModuleAffiliation is the owning module ID, or empty for general
	// material.
	ModuleAffiliation string   `json:"moduleAffiliation,omitempty" yaml:"moduleAffiliation"`
	Tags              []string `json:"tags,omitempty" yaml:"tags"`
}

// IsExternal reports whether the resource points off-site.
func (r Resource) IsExternal() bool {
	return r.Type == TypeLink || hasScheme(r.URL)
}

func hasScheme(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// Action is the verb the UI shows for opening a resource.
func (r Resource) Action() string {
	switch r.Type {
	case TypeLink:
		return "Open Link"
	case TypeVideo:
		return "Watch Video"
	default:
		return "Download"
	}
}

func (r Resource) clone() Resource {
	out := r
	out.Tags = slices.Clone(r.Tags)
	return out
}
