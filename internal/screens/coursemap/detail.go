package coursemap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/screen"
	quizscreen "github.com/abhisek/coursemap/internal/screens/quiz"
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

// ModuleDetailScreen shows details for a single module.
type ModuleDetailScreen struct {
	module     catalog.Module
	unlocked   bool
	deps       []catalog.Module
	dependents []catalog.Module
	materials  []resources.Resource
	quizzes    *quiz.Service
	moduleQuiz []quiz.Quiz
}

var _ screen.Screen = (*ModuleDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleDetailScreen)(nil)

func newModuleDetail(m catalog.Module, cat *catalog.Catalog, index *resources.Index, quizzes *quiz.Service) *ModuleDetailScreen {
	d := &ModuleDetailScreen{
		module:     m,
		unlocked:   cat.IsUnlocked(m.ID),
		deps:       cat.ResolveDependencies(m.ID),
		dependents: cat.Dependents(m.ID),
		quizzes:    quizzes,
	}
	if index != nil {
		d.materials = index.ByModule(m.ID)
	}
	if quizzes != nil {
		d.moduleQuiz = quizzes.ForModule(m.ID)
	}
	return d
}

func (d *ModuleDetailScreen) Init() tea.Cmd { return nil }
func (d *ModuleDetailScreen) Title() string { return d.module.Title }

func (d *ModuleDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "t" && len(d.moduleQuiz) > 0 {
		next := quizscreen.New(d.quizzes, d.moduleQuiz[0].ID)
		return d, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return d, nil
}

func (d *ModuleDetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if len(d.moduleQuiz) > 0 {
		hints = append([]layout.KeyHint{{Key: "T", Description: "Take quiz"}}, hints...)
	}
	return hints
}

func (d *ModuleDetailScreen) View(width, height int) string {
	m := d.module
	contentWidth := min(width-8, 70)

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	b.WriteString(theme.Selected.Render(fmt.Sprintf("  %s  %s", m.Status.Icon(), m.Title)))
	b.WriteString("\n")
	status := m.Status.Label()
	if !d.unlocked && m.Status != catalog.StatusCompleted {
		status += " · locked"
	}
	b.WriteString(dimStyle.Render("  " + status))
	b.WriteString("\n\n")

	if m.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(m.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render("  Progress:  ") + valStyle.Render(fmt.Sprintf("%d%%", m.Progress)) + "\n")
	if m.HasScore() {
		b.WriteString(dimStyle.Render("  Score:     ") + valStyle.Render(fmt.Sprintf("%d", *m.Score)) + "\n")
	}
	if m.VideoURL != "" {
		b.WriteString(dimStyle.Render("  Video:     ") + valStyle.Render(m.VideoURL) + "\n")
	}
	b.WriteString("\n")

	if len(m.Objectives) > 0 {
		b.WriteString(theme.Section.Render("  Objectives"))
		b.WriteString("\n")
		for _, o := range m.Objectives {
			b.WriteString(dimStyle.Render("  • " + o))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.deps) > 0 {
		b.WriteString(theme.Section.Render("  Prerequisites"))
		b.WriteString("\n")
		for _, p := range d.deps {
			b.WriteString(theme.StatusStyle(p.Status).Render(fmt.Sprintf("  %s %s", p.Status.Icon(), p.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.dependents) > 0 {
		b.WriteString(theme.Section.Render("  Unlocks"))
		b.WriteString("\n")
		for _, dep := range d.dependents {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", dep.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.materials) > 0 {
		b.WriteString(theme.Section.Render(fmt.Sprintf("  Resources (%d)", len(d.materials))))
		b.WriteString("\n")
		for _, r := range d.materials {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %-22s %s", resources.DisplayName(r.Type), r.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, q := range d.moduleQuiz {
		b.WriteString(theme.Section.Render("  Quiz  ") + valStyle.Render(q.Title))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
