package quiz

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/store"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func testService(t *testing.T) *quiz.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	svc, err := quiz.NewService(st.QuizRepo(), quiz.DefaultQuizzes())
	if err != nil {
		t.Fatalf("quiz.NewService: %v", err)
	}
	return svc
}

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, s *QuizScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	s.Update(cmd())
}

// answer moves the cursor down n times and confirms.
func answer(s *QuizScreen, n int) tea.Cmd {
	for range n {
		s.Update(down)
	}
	_, cmd := s.Update(enter)
	return cmd
}

func TestQuizScreen_Intro(t *testing.T) {
	s := New(testService(t), "sample-w4")
	run(t, s, s.Init())

	if s.remaining != 2 {
		t.Errorf("remaining = %d, want 2", s.remaining)
	}
	view := s.View(100, 30)
	for _, want := range []string{"Sample Quiz: Payroll Basics", "15m0s", "80%", "2 attempts left"} {
		if !strings.Contains(view, want) {
			t.Errorf("intro view missing %q", want)
		}
	}
}

func TestQuizScreen_PassingAttempt(t *testing.T) {
	s := New(testService(t), "sample-w4")
	run(t, s, s.Init())

	s.Update(enter)
	if s.phase != phaseAnswering {
		t.Fatalf("phase = %d, want phaseAnswering", s.phase)
	}

	// q1 correct is opt2, q2 correct is opt3.
	if cmd := answer(s, 1); cmd != nil {
		t.Fatal("first answer should advance without submitting")
	}
	if s.current != 1 {
		t.Fatalf("current = %d, want 1", s.current)
	}
	cmd := answer(s, 2)
	if s.phase != phaseSubmitting {
		t.Fatalf("phase = %d, want phaseSubmitting", s.phase)
	}
	run(t, s, cmd)

	if s.phase != phaseResult {
		t.Fatalf("phase = %d, want phaseResult (err %v)", s.phase, s.err)
	}
	if !s.attempt.Passed || s.attempt.Correct != 2 {
		t.Errorf("attempt = %+v, want 2 correct and passed", s.attempt.Result)
	}
	if s.remaining != 1 {
		t.Errorf("remaining = %d, want 1", s.remaining)
	}
	if !s.choices[0].IsCorrect() || !s.choices[1].IsCorrect() {
		t.Error("both choices should be revealed as correct")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Passed") || !strings.Contains(view, "1 attempt left") {
		t.Errorf("result view missing verdict or remaining attempts:\n%s", view)
	}
}

func TestQuizScreen_FailingAttemptRevealsAnswers(t *testing.T) {
	s := New(testService(t), "sample-w4")
	run(t, s, s.Init())
	s.Update(enter)

	answer(s, 0)
	run(t, s, answer(s, 0))

	if s.attempt.Passed {
		t.Error("attempt should fail")
	}
	if s.choices[0].CorrectIndex != 1 || s.choices[1].CorrectIndex != 2 {
		t.Errorf("revealed = %d,%d want 1,2", s.choices[0].CorrectIndex, s.choices[1].CorrectIndex)
	}
	if !strings.Contains(s.View(100, 30), "Not passed") {
		t.Error("view should report the failure")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.current != 1 {
		t.Errorf("right should move to the next question, current = %d", s.current)
	}
}

func TestQuizScreen_BlockedWhenNoAttemptsLeft(t *testing.T) {
	svc := testService(t)
	for range 2 {
		if _, err := svc.Submit(context.Background(), "sample-w4", map[string]string{}, time.Now()); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	s := New(svc, "sample-w4")
	run(t, s, s.Init())
	if s.phase != phaseBlocked {
		t.Fatalf("phase = %d, want phaseBlocked", s.phase)
	}
	if _, cmd := s.Update(enter); cmd != nil {
		t.Error("enter should not start a blocked quiz")
	}
	if !strings.Contains(s.View(100, 30), "No attempts left") {
		t.Error("view should say no attempts are left")
	}
}

func TestQuizScreen_TimeoutSubmits(t *testing.T) {
	s := New(testService(t), "sample-w4")
	run(t, s, s.Init())

	start := time.Now()
	s.now = func() time.Time { return start }
	s.Update(enter)
	answer(s, 1)

	s.now = func() time.Time { return start.Add(quiz.DefaultTimeLimit + time.Second) }
	_, cmd := s.Update(clockTickMsg{})
	if s.phase != phaseSubmitting {
		t.Fatalf("expired clock should submit, phase = %d", s.phase)
	}
	run(t, s, cmd)

	if s.phase != phaseResult {
		t.Fatalf("phase = %d, want phaseResult (err %v)", s.phase, s.err)
	}
	if s.attempt.Answers["q1"] != "opt2" {
		t.Errorf("answers = %v, want q1 kept", s.attempt.Answers)
	}
	if !s.choices[1].Submitted {
		t.Error("unanswered questions should be closed for review")
	}
}

func TestQuizScreen_UnknownQuiz(t *testing.T) {
	s := New(testService(t), "nope")
	if s.Init() != nil {
		t.Error("unknown quiz should not load attempts")
	}
	if !strings.Contains(s.View(100, 30), "unknown quiz") {
		t.Error("view should report the unknown quiz")
	}
}

func TestListScreen_PushesQuiz(t *testing.T) {
	l := NewList(testService(t))
	if l.Title() != "Quizzes" {
		t.Errorf("Title = %q", l.Title())
	}
	if !strings.Contains(l.View(100, 30), "Sample Quiz: Payroll Basics") {
		t.Error("list should show the quiz title")
	}

	_, cmd := l.Update(enter)
	if cmd == nil {
		t.Fatal("enter should push the quiz")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Sample Quiz: Payroll Basics" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
}
