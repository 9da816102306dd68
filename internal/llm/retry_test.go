package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var summaryJSON = json.RawMessage(`{"summary":"Payroll basics."}`)

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func badSchema() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"summary":1}`), Err: errors.New("summary: expected string")}}
}

// purposeRecorder remembers the purpose label each call arrived with.
type purposeRecorder struct {
	purposes []string
}

func (p *purposeRecorder) Generate(ctx context.Context, _ Request) (*Response, error) {
	p.purposes = append(p.purposes, PurposeFrom(ctx))
	if len(p.purposes) == 1 {
		return nil, &ErrProviderUnavailable{Err: errors.New("cold start")}
	}
	return &Response{Content: summaryJSON, Model: "recorder"}, nil
}

func (p *purposeRecorder) ModelID() string { return "recorder" }

func TestRetry_ZeroMaxAttemptsStillCallsOnce(t *testing.T) {
	for _, n := range []int{0, -3} {
		mock := NewMockProvider(unavailable(), MockResponse{Content: summaryJSON})
		_, err := WithRetry(mock, fastRetry(n)).Generate(context.Background(), Request{})
		if err == nil {
			t.Fatalf("MaxAttempts %d: expected the first failure to be returned", n)
		}
		if mock.CallCount() != 1 {
			t.Fatalf("MaxAttempts %d: expected 1 call, got %d", n, mock.CallCount())
		}
	}
}

func TestRetry_TransientThenSummary(t *testing.T) {
	mock := NewMockProvider(unavailable(), MockResponse{Content: summaryJSON})

	resp, err := WithRetry(mock, fastRetry(3)).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(summaryJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ReturnsLastErrorWhenExhausted(t *testing.T) {
	last := &ErrRateLimit{Err: errors.New("429")}
	mock := NewMockProvider(unavailable(), unavailable(), MockResponse{Err: last})

	_, err := WithRetry(mock, fastRetry(3)).Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected the last error (rate limit), got %T: %v", err, err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseGetsOneMoreTry(t *testing.T) {
	mock := NewMockProvider(badSchema(), MockResponse{Content: summaryJSON})

	resp, err := WithRetry(mock, fastRetry(5)).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("a single schema mismatch should be retried: %v", err)
	}
	if string(resp.Content) != string(summaryJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestRetry_SecondInvalidResponseIsFinal(t *testing.T) {
	// A transient failure in between does not reset the one-retry budget.
	mock := NewMockProvider(badSchema(), unavailable(), badSchema(), MockResponse{Content: summaryJSON})

	_, err := WithRetry(mock, fastRetry(5)).Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T: %v", err, err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_FinalErrorsNotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"max tokens", &ErrMaxTokensExceeded{Content: json.RawMessage(`{"summary":"cut`)}},
		{"canceled", context.Canceled},
		{"deadline", context.DeadlineExceeded},
		{"wrapped deadline", &ErrProviderUnavailable{Err: context.DeadlineExceeded}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: tt.err}, MockResponse{Content: summaryJSON})
			_, err := WithRetry(mock, fastRetry(3)).Generate(context.Background(), Request{})
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if mock.CallCount() != 1 {
				t.Fatalf("expected 1 call, got %d", mock.CallCount())
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want retryClass
	}{
		{&ErrProviderUnavailable{Err: errors.New("down")}, retryAlways},
		{&ErrRateLimit{Err: errors.New("429")}, retryAlways},
		{errors.New("connection reset"), retryAlways},
		{&ErrInvalidResponse{Err: errors.New("bad")}, retryOnce},
		{&ErrMaxTokensExceeded{}, retryNever},
		{context.Canceled, retryNever},
	}
	for _, tt := range tests {
		if got := retryable(tt.err); got != tt.want {
			t.Errorf("retryable(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRetry_StopsWhenContextCanceled(t *testing.T) {
	mock := NewMockProvider(unavailable(), MockResponse{Content: summaryJSON})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastRetry(3)
	cfg.InitialWait = time.Second
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call before giving up, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: summaryJSON},
	)
	cfg := fastRetry(2)
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	done := make(chan error, 1)
	go func() {
		_, err := WithRetry(mock, cfg).Generate(context.Background(), Request{})
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("RetryAfter should override the configured backoff")
	}
}

func TestRetry_KeepsPurposeAcrossAttempts(t *testing.T) {
	rec := &purposeRecorder{}
	ctx := WithPurpose(context.Background(), PurposeModuleSummary)

	if _, err := WithRetry(rec, fastRetry(3)).Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.purposes) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(rec.purposes))
	}
	for i, p := range rec.purposes {
		if p != PurposeModuleSummary {
			t.Errorf("call %d purpose = %q, want %q", i, p, PurposeModuleSummary)
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if got := WithRetry(NewMockProvider(), fastRetry(2)).ModelID(); got != "mock" {
		t.Fatalf("expected 'mock', got %q", got)
	}
}
