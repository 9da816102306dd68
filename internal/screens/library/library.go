// Package library is the searchable resource list.
package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

// LibraryScreen filters the resource index by a search term and a type.
type LibraryScreen struct {
	index   *resources.Index
	search  components.TextInput
	types   []resources.Type
	typeIdx int
	results []resources.Resource
	cursor  int
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a LibraryScreen showing every resource.
func New(index *resources.Index) *LibraryScreen {
	l := &LibraryScreen{
		index:  index,
		search: components.NewTextInput("Search:", "title or description", 64),
		types:  index.FilterTypes(),
	}
	l.refresh()
	return l
}

func (l *LibraryScreen) Init() tea.Cmd {
	return l.search.Init()
}

func (l *LibraryScreen) Title() string { return "Resource Library" }

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Tab", Description: "Filter type"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// TypeFilter is the active type filter.
func (l *LibraryScreen) TypeFilter() resources.Type {
	return l.types[l.typeIdx]
}

// Results is the current filtered list.
func (l *LibraryScreen) Results() []resources.Resource {
	return l.results
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			l.typeIdx = (l.typeIdx + 1) % len(l.types)
			l.refresh()
			return l, nil
		case "shift+tab":
			l.typeIdx = (l.typeIdx - 1 + len(l.types)) % len(l.types)
			l.refresh()
			return l, nil
		case "up":
			if l.cursor > 0 {
				l.cursor--
			}
			return l, nil
		case "down":
			if l.cursor < len(l.results)-1 {
				l.cursor++
			}
			return l, nil
		}
	}

	before := l.search.Value()
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	if l.search.Value() != before {
		l.refresh()
	}
	return l, cmd
}

func (l *LibraryScreen) refresh() {
	l.results = l.index.Filter(strings.TrimSpace(l.search.Value()), l.TypeFilter())
	if l.cursor >= len(l.results) {
		l.cursor = max(len(l.results)-1, 0)
	}
}

func (l *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(l.search.View())
	b.WriteString("\n  ")
	b.WriteString(l.renderTypeBar())
	b.WriteString("\n\n")

	if len(l.results) == 0 {
		b.WriteString(theme.Hint.Render("  No resources match."))
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
	}

	// Reserve room for the header above and the detail panel below.
	rows := max(height-12, 3)
	start := 0
	if l.cursor >= rows {
		start = l.cursor - rows + 1
	}
	end := min(start+rows, len(l.results))

	titleWidth := max(width-34, 16)
	for i := start; i < end; i++ {
		r := l.results[i]
		title := r.Title
		if rs := []rune(title); len(rs) > titleWidth {
			title = string(rs[:titleWidth-1]) + "…"
		}
		line := fmt.Sprintf("%-*s  %s", titleWidth, title, resources.DisplayName(r.Type))
		if i == l.cursor {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d of %d resources", len(l.results), l.index.Len())))
	b.WriteString("\n\n")
	b.WriteString(l.renderDetail(l.results[l.cursor], width))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func (l *LibraryScreen) renderTypeBar() string {
	parts := make([]string, len(l.types))
	for i, t := range l.types {
		name := resources.DisplayName(t)
		if i == l.typeIdx {
			parts[i] = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary).Bold(true).Render(" " + name + " ")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)
		}
	}
	// Only the neighbourhood of the active type fits on one line.
	lo := max(l.typeIdx-2, 0)
	hi := min(lo+5, len(parts))
	bar := strings.Join(parts[lo:hi], "  ")
	if lo > 0 {
		bar = "… " + bar
	}
	if hi < len(parts) {
		bar += " …"
	}
	return bar
}

func (l *LibraryScreen) renderDetail(r resources.Resource, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	if r.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(min(width-6, 80)).PaddingLeft(2).Foreground(theme.Text).Render(r.Description))
		b.WriteString("\n")
	}
	module := r.ModuleAffiliation
	if module == "" {
		module = "general"
	}
	b.WriteString(dim.Render("  Module: ") + val.Render(module) + dim.Render("   "+r.Action()+": ") + val.Render(r.URL))
	return b.String()
}
