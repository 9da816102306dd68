package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/store"
)

// Observer receives one call per provider request.
type Observer interface {
	ObserveLLMRequest(provider, model, purpose string, ok bool, latency time.Duration, usage Usage)
}

// RecordingProvider writes each request to the event log, the logger and
// an optional observer. Recording failures never fail the request.
type RecordingProvider struct {
	inner    Provider
	name     string
	events   store.EventRepo
	log      *logger.Logger
	observer Observer
}

// WithRecording wraps p. Any of events, log and obs may be nil.
func WithRecording(p Provider, name string, events store.EventRepo, log *logger.Logger, obs Observer) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &RecordingProvider{inner: p, name: name, events: events, log: log, observer: obs}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := r.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    r.name,
		Model:       r.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	var usage Usage
	if resp != nil {
		usage = resp.Usage
		data.InputTokens = usage.InputTokens
		data.OutputTokens = usage.OutputTokens
		data.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		r.log.Warn("llm request failed", "provider", r.name, "model", data.Model, "purpose", purpose,
			"latency_ms", data.LatencyMs, "error", err)
	} else {
		r.log.Info("llm request", "provider", r.name, "model", data.Model, "purpose", purpose,
			"latency_ms", data.LatencyMs, "input_tokens", usage.InputTokens, "output_tokens", usage.OutputTokens)
	}

	if r.observer != nil {
		r.observer.ObserveLLMRequest(r.name, data.Model, purpose, err == nil, latency, usage)
	}
	if r.events != nil {
		// Use a fresh context so a cancelled request is still recorded.
		if logErr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			r.log.Warn("failed to record llm request event", "error", logErr)
		}
	}

	return resp, err
}

func (r *RecordingProvider) ModelID() string {
	return r.inner.ModelID()
}

// describeRequest renders req as readable text for the event log.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
