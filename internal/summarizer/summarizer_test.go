package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/store"
)

const payrollText = "Payroll processing starts with accurate employee setup, continues through timekeeping, and ends with a reconciled pay run."

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "summaries.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSummarize(t *testing.T) {
	s := openStore(t)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Set up employees, track time, reconcile the run."}`),
		Usage:   llm.Usage{InputTokens: 40, OutputTokens: 12},
	})
	svc := NewService(mock, DefaultConfig(), s.EventRepo())
	svc.newID = func() string { return "sum-1" }

	out, err := svc.Summarize(context.Background(), Input{ModuleContent: payrollText, ModuleID: "mppf"})
	require.NoError(t, err)
	assert.Equal(t, "sum-1", out.SummaryID)
	assert.Equal(t, "Set up employees, track time, reconcile the run.", out.Summary)
	assert.Equal(t, 12, out.Usage.OutputTokens)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Same(t, SummarySchema, req.Schema)
	assert.Contains(t, req.System, "expert learning assistant")
	assert.Equal(t, "Module Content: "+payrollText, req.Messages[0].Content)

	events, err := s.EventRepo().QuerySummaries(context.Background(), "mppf", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, "sum-1", events[0].SummaryID)
	assert.Equal(t, len([]rune(payrollText)), events[0].InputChars)
	assert.Equal(t, out.Summary, events[0].Summary)
}

func TestSummarize_SetsPurpose(t *testing.T) {
	var purpose string
	p := purposeSpy{fn: func(ctx context.Context) { purpose = llm.PurposeFrom(ctx) }}
	svc := NewService(p, DefaultConfig(), nil)

	_, err := svc.Summarize(context.Background(), Input{ModuleContent: payrollText})
	require.NoError(t, err)
	assert.Equal(t, llm.PurposeModuleSummary, purpose)
}

type purposeSpy struct{ fn func(context.Context) }

func (p purposeSpy) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return &llm.Response{Content: json.RawMessage(`{"summary":"ok"}`)}, nil
}

func (purposeSpy) ModelID() string { return "spy" }

func TestSummarize_InputBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", true},
		{"49 chars", strings.Repeat("a", 49), true},
		{"50 chars", strings.Repeat("a", 50), false},
		{"50 multibyte chars", strings.Repeat("é", 50), false},
		{"10000 chars", strings.Repeat("a", 10000), false},
		{"10001 chars", strings.Repeat("a", 10001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)})
			svc := NewService(mock, DefaultConfig(), nil)

			_, err := svc.Summarize(context.Background(), Input{ModuleContent: tt.content})
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, 1, mock.CallCount())
				return
			}
			var inErr *InputError
			require.ErrorAs(t, err, &inErr)
			assert.Equal(t, len([]rune(tt.content)), inErr.Chars)
			assert.Equal(t, 0, mock.CallCount(), "provider must not be called for invalid input")
		})
	}
}

func TestInputError_Message(t *testing.T) {
	assert.Contains(t, (&InputError{Chars: 3}).Error(), "at least 50")
	assert.Contains(t, (&InputError{Chars: 10001}).Error(), "at most 10000")
}

func TestSummarize_NotConfigured(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	assert.False(t, svc.Configured())

	_, err := svc.Summarize(context.Background(), Input{ModuleContent: payrollText})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestSummarize_ProviderFailureIsRecorded(t *testing.T) {
	s := openStore(t)
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("upstream down")}})
	svc := NewService(mock, DefaultConfig(), s.EventRepo())

	_, err := svc.Summarize(context.Background(), Input{ModuleContent: payrollText, ModuleID: "mtc"})
	var unavail *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)

	events, err := s.EventRepo().QuerySummaries(context.Background(), "", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Contains(t, events[0].ErrorMessage, "upstream down")
	assert.Equal(t, "mtc", events[0].ModuleID)
	assert.NotEmpty(t, events[0].SummaryID)
}

type failingRecorder struct{}

func (failingRecorder) AppendSummary(context.Context, store.SummaryEventData) error {
	return errors.New("database is locked")
}

func TestSummarize_RecordFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":"Pay runs, reconciled."}`)})
	svc := NewService(mock, DefaultConfig(), failingRecorder{}, WithLogger(log))

	out, err := svc.Summarize(context.Background(), Input{ModuleContent: payrollText, ModuleID: "mps"})
	require.NoError(t, err, "a failing recorder must not fail the summary")
	assert.Equal(t, "Pay runs, reconciled.", out.Summary)

	entries := logs.FilterMessage("record summary failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "mps", fields["module"])
	assert.Equal(t, "database is locked", fields["error"])
}

func TestSummarize_UndecodableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Summarize(context.Background(), Input{ModuleContent: payrollText})
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestModuleContent(t *testing.T) {
	m, ok := mustCatalog(t).GetModule("mtc")
	require.True(t, ok)

	text := ModuleContent(m)
	assert.True(t, strings.HasPrefix(text, "Module 3: Taxation & Compliance\n\n"))
	assert.Contains(t, text, m.Description)
	assert.Contains(t, text, "Learning objectives:\n- Differentiate between federal and state tax obligations.")
	assert.NoError(t, Input{ModuleContent: text}.Validate())

	bare := ModuleContent(catalog.Module{ID: "x", Title: "Only a title"})
	assert.Equal(t, "Only a title", bare)
}

func TestSummarizeModule_AllDefaultModulesAreSummarizable(t *testing.T) {
	cat := mustCatalog(t)
	mock := llm.NewMockProvider()
	mock.Fallback = llm.NewEchoProvider()
	svc := NewService(mock, DefaultConfig(), nil)

	for _, m := range cat.Modules() {
		out, err := svc.SummarizeModule(context.Background(), m)
		require.NoError(t, err, m.ID)
		assert.NotEmpty(t, out.Summary, m.ID)
	}
}

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.DefaultModules())
	require.NoError(t, err)
	return cat
}
