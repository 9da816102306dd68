// Package quiz runs a timed module quiz in the terminal.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

type phase int

const (
	phaseIntro phase = iota
	phaseAnswering
	phaseSubmitting
	phaseResult
	phaseBlocked
	phaseError
)

// remainingMsg reports how many attempts are left before starting.
type remainingMsg struct {
	n   int
	err error
}

// submittedMsg carries the graded attempt.
type submittedMsg struct {
	attempt *quiz.Attempt
	err     error
}

// clockTickMsg refreshes the countdown while answering.
type clockTickMsg time.Time

// QuizScreen walks through one quiz: intro, questions, then the result.
type QuizScreen struct {
	svc  *quiz.Service
	quiz quiz.Quiz

	phase     phase
	remaining int
	current   int
	choices   []components.MultiChoice
	answers   map[string]string
	startedAt time.Time
	now       func() time.Time

	attempt *quiz.Attempt
	err     error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a screen for the quiz with the given ID. An unknown ID
// renders an error.
func New(svc *quiz.Service, quizID string) *QuizScreen {
	s := &QuizScreen{svc: svc, remaining: -1, now: time.Now}
	q, ok := svc.Get(quizID)
	if !ok {
		s.phase = phaseError
		s.err = fmt.Errorf("%w: %s", quiz.ErrUnknownQuiz, quizID)
		return s
	}
	s.quiz = q
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.phase != phaseIntro {
		return nil
	}
	svc, id := s.svc, s.quiz.ID
	return func() tea.Msg {
		n, err := svc.Remaining(context.Background(), id)
		return remainingMsg{n: n, err: err}
	}
}

func (s *QuizScreen) Title() string {
	if s.quiz.Title == "" {
		return "Quiz"
	}
	return s.quiz.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseIntro:
		return []layout.KeyHint{{Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Back"}}
	case phaseAnswering:
		return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, {Key: "Enter", Description: "Answer"}}
	case phaseResult:
		return []layout.KeyHint{{Key: "←→", Description: "Review"}, {Key: "Esc", Description: "Back"}}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case remainingMsg:
		if msg.err != nil {
			s.phase, s.err = phaseError, msg.err
			return s, nil
		}
		s.remaining = msg.n
		if msg.n == 0 {
			s.phase = phaseBlocked
		}
		return s, nil

	case submittedMsg:
		return s.handleSubmitted(msg)

	case clockTickMsg:
		if s.phase != phaseAnswering {
			return s, nil
		}
		if s.expired() {
			return s, s.submit()
		}
		return s, clockTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseIntro:
		if msg.String() == "enter" && s.remaining != 0 {
			s.begin()
			return s, clockTick()
		}

	case phaseAnswering:
		mc, _ := s.choices[s.current].Update(msg)
		s.choices[s.current] = mc
		if !mc.Submitted {
			return s, nil
		}
		qu := s.quiz.Questions[s.current]
		s.answers[qu.ID] = qu.Options[mc.ChosenIndex].ID
		if s.current < len(s.choices)-1 {
			s.current++
			return s, nil
		}
		return s, s.submit()

	case phaseResult:
		switch msg.String() {
		case "left", "h":
			if s.current > 0 {
				s.current--
			}
		case "right", "l":
			if s.current < len(s.choices)-1 {
				s.current++
			}
		}
	}
	return s, nil
}

func (s *QuizScreen) begin() {
	s.phase = phaseAnswering
	s.current = 0
	s.answers = make(map[string]string, len(s.quiz.Questions))
	s.choices = make([]components.MultiChoice, len(s.quiz.Questions))
	for i, qu := range s.quiz.Questions {
		opts := make([]string, len(qu.Options))
		for j, o := range qu.Options {
			opts[j] = o.Text
		}
		s.choices[i] = components.NewMultiChoice(qu.Text, opts)
	}
	s.startedAt = s.now()
}

func (s *QuizScreen) expired() bool {
	return s.quiz.TimeLimit > 0 && s.now().Sub(s.startedAt) >= s.quiz.TimeLimit
}

// submit grades whatever has been answered so far.
func (s *QuizScreen) submit() tea.Cmd {
	s.phase = phaseSubmitting
	svc, id, startedAt := s.svc, s.quiz.ID, s.startedAt
	answers := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return func() tea.Msg {
		a, err := svc.Submit(context.Background(), id, answers, startedAt)
		return submittedMsg{attempt: a, err: err}
	}
}

func (s *QuizScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, quiz.ErrNoAttemptsLeft) {
			s.phase = phaseBlocked
			s.remaining = 0
			return s, nil
		}
		s.phase, s.err = phaseError, msg.err
		return s, nil
	}
	s.attempt = msg.attempt
	s.remaining = msg.attempt.Remaining
	s.phase = phaseResult
	s.current = 0
	for i, qu := range s.quiz.Questions {
		c := &s.choices[i]
		if !c.Submitted {
			c.Submitted = true
		}
		for j, o := range qu.Options {
			if o.ID == qu.CorrectOptionID {
				c.Reveal(j)
			}
		}
	}
	return s, nil
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.phase {
	case phaseIntro:
		b.WriteString(s.renderIntro())
	case phaseAnswering:
		b.WriteString(s.renderQuestion())
	case phaseSubmitting:
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Grading…"))
	case phaseResult:
		b.WriteString(s.renderResult())
	case phaseBlocked:
		b.WriteString(theme.Warning.PaddingLeft(2).Render("No attempts left for this quiz."))
	case phaseError:
		b.WriteString(theme.Incorrect.PaddingLeft(2).Render("Error: " + s.err.Error()))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func (s *QuizScreen) renderIntro() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(theme.Section.PaddingLeft(2).Render(s.quiz.Title))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("  Questions:   ") + val.Render(fmt.Sprintf("%d", len(s.quiz.Questions))) + "\n")
	b.WriteString(dim.Render("  Time limit:  ") + val.Render(formatLimit(s.quiz.TimeLimit)) + "\n")
	b.WriteString(dim.Render("  Pass mark:   ") + val.Render(fmt.Sprintf("%.0f%%", s.quiz.PassPercent)) + "\n")
	b.WriteString(dim.Render("  Attempts:    ") + val.Render(formatRemaining(s.remaining)) + "\n\n")
	b.WriteString(theme.Hint.PaddingLeft(2).Render("Press Enter to start the clock."))
	return b.String()
}

func (s *QuizScreen) renderQuestion() string {
	var b strings.Builder
	header := fmt.Sprintf("  Question %d of %d", s.current+1, len(s.choices))
	if s.quiz.TimeLimit > 0 {
		left := max(s.quiz.TimeLimit-s.now().Sub(s.startedAt), 0).Round(time.Second)
		header += "   " + theme.Warning.Render(left.String()+" left")
	}
	b.WriteString(theme.Hint.Render(header))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.choices[s.current].View()))
	return b.String()
}

func (s *QuizScreen) renderResult() string {
	a := s.attempt

	var b strings.Builder
	verdict := theme.Incorrect.Render("Not passed")
	if a.Passed {
		verdict = theme.Correct.Render("Passed")
	}
	b.WriteString("  " + verdict)
	b.WriteString(theme.Body.Render(fmt.Sprintf("  %d/%d correct (%.0f%%)", a.Correct, a.Total, a.Percent)))
	b.WriteString("\n")
	if a.TimedOut {
		b.WriteString(theme.Warning.PaddingLeft(2).Render("Time ran out before submission."))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.PaddingLeft(2).Render(fmt.Sprintf("Attempt %d · %s", a.Number, formatRemaining(a.Remaining))))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Review %d of %d", s.current+1, len(s.choices))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.choices[s.current].View()))
	return b.String()
}

func formatLimit(d time.Duration) string {
	if d <= 0 {
		return "none"
	}
	return d.String()
}

func formatRemaining(n int) string {
	switch {
	case n < 0:
		return "unlimited"
	case n == 1:
		return "1 attempt left"
	default:
		return fmt.Sprintf("%d attempts left", n)
	}
}

// ListScreen lets the learner pick a quiz.
type ListScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*ListScreen)(nil)

// NewList creates a picker over every quiz svc knows.
func NewList(svc *quiz.Service) *ListScreen {
	qs := svc.List()
	items := make([]components.MenuItem, len(qs))
	for i, q := range qs {
		items[i] = components.MenuItem{
			Label: q.Title,
			Hint:  q.ModuleID,
			Action: func() tea.Cmd {
				next := New(svc, q.ID)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		}
	}
	return &ListScreen{menu: components.NewMenu(items)}
}

func (l *ListScreen) Init() tea.Cmd { return nil }

func (l *ListScreen) Title() string { return "Quizzes" }

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *ListScreen) View(width, height int) string {
	body := "\n" + theme.Hint.PaddingLeft(2).Render("Pick a quiz.") + "\n\n" + l.menu.View()
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, body)
}
