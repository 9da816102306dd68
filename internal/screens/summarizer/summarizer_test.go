package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/summarizer"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.DefaultModules())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func testService() *summarizer.Service {
	return summarizer.NewService(llm.NewMockProvider(), summarizer.DefaultConfig(), nil)
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func TestSummarizerScreen_NotConfigured(t *testing.T) {
	s := New(testCatalog(t), nil)

	view := s.View(100, 30)
	if !strings.Contains(view, "No LLM provider is configured") {
		t.Error("view should explain that no provider is configured")
	}

	_, cmd := s.Update(enter)
	if cmd != nil {
		t.Error("enter should do nothing without a provider")
	}
	if s.phase != phasePick {
		t.Errorf("phase = %d, want phasePick", s.phase)
	}
}

func TestSummarizerScreen_SummaryFlow(t *testing.T) {
	s := New(testCatalog(t), testService())

	_, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("enter should start a request")
	}
	if s.phase != phaseLoading {
		t.Fatalf("phase = %d, want phaseLoading", s.phase)
	}
	if s.current.ID != "mppf" {
		t.Errorf("current = %q, want first module", s.current.ID)
	}
	if !strings.Contains(s.View(100, 30), "Summarizing") {
		t.Error("loading view should show progress")
	}

	s.Update(summaryDoneMsg{moduleID: "mppf", out: &summarizer.Output{Summary: "Payroll in a nutshell.", Model: "mock"}})
	if s.phase != phaseDone {
		t.Fatalf("phase = %d, want phaseDone", s.phase)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Payroll in a nutshell.") {
		t.Error("view should contain the summary")
	}
	if !strings.Contains(view, "model: mock") {
		t.Error("view should name the model")
	}

	s.Update(enter)
	if s.phase != phasePick {
		t.Errorf("enter after a result should return to the picker, got phase %d", s.phase)
	}
}

func TestSummarizerScreen_IgnoresStaleResult(t *testing.T) {
	s := New(testCatalog(t), testService())
	s.Update(enter)

	s.Update(summaryDoneMsg{moduleID: "other", out: &summarizer.Output{Summary: "stale"}})
	if s.phase != phaseLoading {
		t.Errorf("stale result should be ignored, phase = %d", s.phase)
	}
}

func TestSummarizerScreen_FailureAndRetry(t *testing.T) {
	s := New(testCatalog(t), testService())
	s.Update(enter)

	s.Update(summaryDoneMsg{moduleID: "mppf", err: fmt.Errorf("summarize: %w", &llm.ErrRateLimit{Err: errors.New("429")})})
	if s.phase != phaseFailed {
		t.Fatalf("phase = %d, want phaseFailed", s.phase)
	}
	if !strings.Contains(s.View(100, 30), "rate limiting") {
		t.Error("view should describe the rate limit")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Error("r should retry")
	}
	if s.phase != phaseLoading || s.current.ID != "mppf" {
		t.Errorf("retry should reload the same module, phase = %d current = %q", s.phase, s.current.ID)
	}
}

func TestSummarizerScreen_SpinnerStopsAfterResult(t *testing.T) {
	s := New(testCatalog(t), testService())
	s.Update(enter)
	s.Update(summaryDoneMsg{moduleID: "mppf", out: &summarizer.Output{Summary: "done"}})

	_, cmd := s.Update(spinnerTickMsg{})
	if cmd != nil {
		t.Error("spinner should stop once the request finished")
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&summarizer.InputError{Chars: 3}, "not have enough text"},
		{llm.ErrNotConfigured, "No LLM provider"},
		{fmt.Errorf("wrap: %w", context.DeadlineExceeded), "too long"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		if got := describeError(tt.err); !strings.Contains(got, tt.want) {
			t.Errorf("describeError(%v) = %q, want it to contain %q", tt.err, got, tt.want)
		}
	}
}

func TestSummarizerScreen_CloseCancelsRequest(t *testing.T) {
	s := New(testCatalog(t), testService())
	s.Update(enter)
	if s.cancel == nil {
		t.Fatal("a loading screen should hold a cancel func")
	}

	canceled := 0
	inner := s.cancel
	s.cancel = func() { canceled++; inner() }

	s.Close()
	if canceled != 1 {
		t.Errorf("Close should cancel the request once, got %d", canceled)
	}
	if s.cancel != nil {
		t.Error("cancel func should be cleared after Close")
	}
	if s.phase != phasePick {
		t.Errorf("phase = %d, want phasePick after Close", s.phase)
	}

	s.Close()
	if canceled != 1 {
		t.Error("a second Close should be a no-op")
	}
}

func TestSummarizerScreen_ResultReleasesContext(t *testing.T) {
	s := New(testCatalog(t), testService())
	s.Update(enter)
	s.Update(summaryDoneMsg{moduleID: "mppf", err: errors.New("boom")})
	if s.cancel != nil {
		t.Fatal("a finished request should release its cancel func")
	}

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	first := 0
	inner := s.cancel
	s.cancel = func() { first++; inner() }

	s.Update(summaryDoneMsg{moduleID: "mppf", out: &summarizer.Output{Summary: "ok"}})
	if first != 1 {
		t.Errorf("completing a request should release its context, got %d cancels", first)
	}
}
