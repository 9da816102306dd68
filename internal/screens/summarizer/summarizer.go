// Package summarizer lets the learner pick a module and request an AI
// summary of it.
package summarizer

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/summarizer"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

type phase int

const (
	phasePick phase = iota
	phaseLoading
	phaseDone
	phaseFailed
)

// summaryDoneMsg carries the result of the background request.
type summaryDoneMsg struct {
	moduleID string
	out      *summarizer.Output
	err      error
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// requestTimeout bounds one summary request from the TUI.
const requestTimeout = 90 * time.Second

// SummarizerScreen drives one summary request at a time.
type SummarizerScreen struct {
	svc     *summarizer.Service
	modules []catalog.Module
	menu    components.Menu

	phase   phase
	current catalog.Module
	result  *summarizer.Output
	err     error
	frame   int

	// cancel aborts the in-flight request.
	cancel context.CancelFunc
}

var _ screen.Screen = (*SummarizerScreen)(nil)
var _ screen.KeyHintProvider = (*SummarizerScreen)(nil)
var _ screen.Closer = (*SummarizerScreen)(nil)

// New creates the screen. A nil svc shows a configuration hint instead of
// the module list.
func New(cat *catalog.Catalog, svc *summarizer.Service) *SummarizerScreen {
	s := &SummarizerScreen{svc: svc, modules: cat.Modules()}
	items := make([]components.MenuItem, len(s.modules))
	for i, m := range s.modules {
		items[i] = components.MenuItem{
			Label:    m.Title,
			Hint:     m.Status.Label(),
			Disabled: svc == nil,
			Action:   func() tea.Cmd { return s.start(m) },
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *SummarizerScreen) Init() tea.Cmd { return nil }

func (s *SummarizerScreen) Title() string { return "Summarizer" }

func (s *SummarizerScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseDone, phaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Pick another"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Summarize"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SummarizerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryDoneMsg:
		if s.phase != phaseLoading || msg.moduleID != s.current.ID {
			return s, nil
		}
		s.stop()
		s.result, s.err = msg.out, msg.err
		s.phase = phaseDone
		if msg.err != nil {
			s.phase = phaseFailed
		}
		return s, nil

	case spinnerTickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		switch s.phase {
		case phasePick:
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		case phaseDone, phaseFailed:
			switch msg.String() {
			case "enter":
				s.phase = phasePick
				s.result, s.err = nil, nil
			case "r":
				return s, s.start(s.current)
			}
		}
	}
	return s, nil
}

// start switches to the loading phase and runs the request in the
// background.
func (s *SummarizerScreen) start(m catalog.Module) tea.Cmd {
	if s.svc == nil {
		return nil
	}
	s.stop()
	s.phase = phaseLoading
	s.current = m
	s.result, s.err = nil, nil

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	s.cancel = cancel

	svc := s.svc
	request := func() tea.Msg {
		out, err := svc.SummarizeModule(ctx, m)
		return summaryDoneMsg{moduleID: m.ID, out: out, err: err}
	}
	return tea.Batch(request, spinnerTick())
}

// Close aborts any in-flight request once the screen leaves the stack.
func (s *SummarizerScreen) Close() {
	s.stop()
	if s.phase == phaseLoading {
		s.phase = phasePick
	}
}

func (s *SummarizerScreen) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *SummarizerScreen) View(width, height int) string {
	cw := min(width-8, 76)

	var b strings.Builder
	b.WriteString("\n")

	switch s.phase {
	case phasePick:
		if s.svc == nil {
			b.WriteString(theme.Warning.PaddingLeft(2).Render("No LLM provider is configured. Set COURSEMAP_LLM_PROVIDER and its API key."))
			b.WriteString("\n\n")
		} else {
			b.WriteString(theme.Hint.PaddingLeft(2).Render("Pick a module to summarize."))
			b.WriteString("\n\n")
		}
		b.WriteString(s.menu.View())

	case phaseLoading:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).PaddingLeft(2).Render(
			spinnerFrames[s.frame] + " Summarizing " + s.current.Title + "…"))

	case phaseDone:
		b.WriteString(theme.Section.PaddingLeft(2).Render(s.current.Title))
		b.WriteString("\n\n")
		b.WriteString(theme.Card.Width(cw).Render(s.result.Summary))
		b.WriteString("\n")
		if s.result.Model != "" {
			b.WriteString(theme.Hint.PaddingLeft(2).Render("model: " + s.result.Model))
		}

	case phaseFailed:
		b.WriteString(theme.Incorrect.PaddingLeft(2).Render("Summary failed"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).PaddingLeft(2).Foreground(theme.Text).Render(describeError(s.err)))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

// describeError turns summarizer failures into a learner-facing sentence.
func describeError(err error) string {
	var inputErr *summarizer.InputError
	var rateErr *llm.ErrRateLimit
	switch {
	case errors.As(err, &inputErr):
		return "This module does not have enough text to summarize: " + inputErr.Error()
	case errors.Is(err, llm.ErrNotConfigured):
		return "No LLM provider is configured."
	case errors.As(err, &rateErr):
		return "The provider is rate limiting requests. Try again shortly."
	case errors.Is(err, context.DeadlineExceeded):
		return "The provider took too long to answer."
	default:
		return err.Error()
	}
}
