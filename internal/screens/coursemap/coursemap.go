// Package coursemap lists modules in dependency order and shows module
// details.
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
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

// CourseMapScreen lists every module after its prerequisites.
type CourseMapScreen struct {
	cat          *catalog.Catalog
	index        *resources.Index
	quizzes      *quiz.Service
	modules      []catalog.Module
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CourseMapScreen)(nil)
var _ screen.KeyHintProvider = (*CourseMapScreen)(nil)

// New creates a CourseMapScreen. quizzes may be nil.
func New(cat *catalog.Catalog, index *resources.Index, quizzes *quiz.Service) *CourseMapScreen {
	return &CourseMapScreen{
		cat:     cat,
		index:   index,
		quizzes: quizzes,
		modules: cat.TopologicalOrder(),
	}
}

func (s *CourseMapScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextOpen()
		case "enter":
			return s, s.selectModule()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CourseMapScreen) View(width, height int) string {
	if len(s.modules) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("The catalog has no modules."))
	}

	// Each module takes two lines: the row and its dependency list.
	visibleModules := max(height/2, 1)
	s.adjustScroll(visibleModules)

	var lines []string
	end := min(s.scrollOffset+visibleModules, len(s.modules))
	for i := s.scrollOffset; i < end; i++ {
		lines = append(lines, s.renderRow(s.modules[i], i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (s *CourseMapScreen) Title() string {
	return "Course Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *CourseMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next open"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CourseMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	if next >= 0 && next < len(s.modules) {
		s.cursor = next
	}
}

// nextOpen jumps to the next module that is unlocked but not completed,
// wrapping around.
func (s *CourseMapScreen) nextOpen() {
	n := len(s.modules)
	for step := 1; step <= n; step++ {
		i := (s.cursor + step) % n
		m := s.modules[i]
		if m.Status != catalog.StatusCompleted && s.cat.IsUnlocked(m.ID) {
			s.cursor = i
			return
		}
	}
}

func (s *CourseMapScreen) adjustScroll(visible int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.cursor - visible + 1
	}
}

func (s *CourseMapScreen) selectModule() tea.Cmd {
	if s.cursor >= len(s.modules) {
		return nil
	}
	detail := newModuleDetail(s.modules[s.cursor], s.cat, s.index, s.quizzes)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// renderRow renders the module line plus an indented dependency line.
func (s *CourseMapScreen) renderRow(m catalog.Module, selected bool, width int) string {
	unlocked := s.cat.IsUnlocked(m.ID)

	label := m.Status.Label()
	if !unlocked && m.Status != catalog.StatusCompleted {
		label = "Locked"
	}

	nameWidth := max(width-30, 10)
	name := m.Title
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth-1]) + "…"
	}

	nameStyle := theme.StatusStyle(m.Status)
	labelStyle := theme.StatusStyle(m.Status)
	switch {
	case selected:
		nameStyle = theme.Selected
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case m.Status == catalog.StatusNotStarted && unlocked:
		nameStyle = theme.Unselected
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	row := fmt.Sprintf("  %s%s %s  %s",
		cursor,
		m.Status.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		labelStyle.Render(fmt.Sprintf("%11s", label)),
	)

	deps := s.cat.ResolveDependencies(m.ID)
	var depLine string
	if len(deps) == 0 {
		depLine = "starting point"
	} else {
		names := make([]string, len(deps))
		for i, d := range deps {
			names[i] = d.Status.Icon() + " " + d.ID
		}
		depLine = "after " + strings.Join(names, ", ")
	}
	return row + "\n" + theme.Hint.Render("        "+depLine)
}
