package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/store"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	summaries []store.SummaryEvent
	err       error
}

// HistoryScreen lists past summarization requests, newest first.
type HistoryScreen struct {
	events    store.EventRepo
	summaries []store.SummaryEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		out, err := s.events.QuerySummaries(context.Background(), "", store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{summaries: out, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Summary History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Expand"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.summaries = msg.summaries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.summaries)-1 {
				s.selected++
			}
		case "enter":
			if len(s.summaries) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\nLoading history...")
	}
	if len(s.summaries) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo summaries yet. Try the summarizer!")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.summaries {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		target := e.ModuleID
		if target == "" {
			target = "free text"
		}
		status := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !e.Success {
			status = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		line := fmt.Sprintf("%s%s  %-10s  %5d chars  %s",
			prefix, e.Timestamp.Local().Format("Jan 02 15:04"), target, e.InputChars, e.Model)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+" "+status))
		b.WriteString("\n")

		if s.expanded[i] {
			body := e.Summary
			detail := lipgloss.NewStyle().Foreground(theme.TextDim)
			if !e.Success {
				body = e.ErrorMessage
				detail = detail.Foreground(theme.Error)
			}
			if body == "" {
				body = "(empty)"
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				detail.Width(cw-4).Render(body)))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
