package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/summarizer"
)

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/modules
func (s *Server) listModules(c *gin.Context) {
	respondOK(c, gin.H{"modules": s.deps.Catalog.Modules()})
}

// lookupModule writes a 404 and returns false when id is unknown.
func (s *Server) lookupModule(c *gin.Context, id string) (catalog.Module, bool) {
	m, ok := s.deps.Catalog.GetModule(id)
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, fmt.Errorf("module %q: %w", id, catalog.ErrNotFound))
	}
	return m, ok
}

// GET /api/modules/:id
func (s *Server) getModule(c *gin.Context) {
	m, ok := s.lookupModule(c, c.Param("id"))
	if !ok {
		return
	}
	respondOK(c, gin.H{
		"module":   m,
		"unlocked": s.deps.Catalog.IsUnlocked(m.ID),
		"quizzes":  s.quizIDs(m.ID),
	})
}

// GET /api/modules/:id/dependencies
func (s *Server) moduleDependencies(c *gin.Context) {
	m, ok := s.lookupModule(c, c.Param("id"))
	if !ok {
		return
	}
	deps := s.deps.Catalog.ResolveDependencies(m.ID)
	if deps == nil {
		deps = []catalog.Module{}
	}
	respondOK(c, gin.H{"moduleId": m.ID, "dependencies": deps})
}

// GET /api/modules/:id/resources
func (s *Server) moduleResources(c *gin.Context) {
	m, ok := s.lookupModule(c, c.Param("id"))
	if !ok {
		return
	}
	list := s.deps.Resources.ByModule(m.ID)
	if list == nil {
		list = []resources.Resource{}
	}
	respondOK(c, gin.H{"moduleId": m.ID, "resources": list})
}

// GET /api/progress
func (s *Server) progress(c *gin.Context) {
	respondOK(c, s.deps.Catalog.Summarize())
}

// GET /api/resources?q=&type=
func (s *Server) listResources(c *gin.Context) {
	t, err := resources.ParseType(c.Query("type"))
	if err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, err)
		return
	}
	list := s.deps.Resources.Filter(c.Query("q"), t)
	if list == nil {
		list = []resources.Resource{}
	}
	respondOK(c, gin.H{"resources": list, "types": s.deps.Resources.FilterTypes()})
}

type summaryRequest struct {
	ModuleContent string `json:"moduleContent" binding:"required_without=ModuleID"`
	ModuleID      string `json:"moduleId"`
}

// POST /api/summaries
//
// A moduleId without content summarizes that module's rendered text; with
// content it only labels the stored summary.
func (s *Server) createSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, errors.New("provide moduleContent or moduleId"))
		return
	}

	in := summarizer.Input{ModuleContent: req.ModuleContent, ModuleID: req.ModuleID}
	if strings.TrimSpace(in.ModuleContent) == "" {
		if req.ModuleID == "" {
			respondError(c, http.StatusBadRequest, codeInvalidInput, errors.New("moduleContent is blank and no moduleId was given"))
			return
		}
		m, ok := s.lookupModule(c, req.ModuleID)
		if !ok {
			return
		}
		in.ModuleContent = summarizer.ModuleContent(m)
	}

	if s.deps.Summarizer == nil {
		respondError(c, http.StatusServiceUnavailable, codeNotConfigured, llm.ErrNotConfigured)
		return
	}
	out, err := s.deps.Summarizer.Summarize(c.Request.Context(), in)
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveSummary(err == nil)
	}
	if err != nil {
		status, code := summaryErrorStatus(err)
		if status >= 500 {
			_ = c.Error(err)
		}
		respondError(c, status, code, err)
		return
	}
	respondOK(c, out)
}

func summaryErrorStatus(err error) (int, string) {
	var inputErr *summarizer.InputError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, codeInvalidInput
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable, codeNotConfigured
	default:
		return http.StatusBadGateway, codeProviderFailed
	}
}

type quizView struct {
	ID                string          `json:"id"`
	ModuleID          string          `json:"moduleId"`
	Title             string          `json:"title"`
	TimeLimitSeconds  int             `json:"timeLimitSeconds"`
	MaxAttempts       int             `json:"maxAttempts"`
	PassPercent       float64         `json:"passPercent"`
	AttemptsRemaining int             `json:"attemptsRemaining"`
	Questions         []quiz.Question `json:"questions"`
}

func (s *Server) quizIDs(moduleID string) []string {
	ids := []string{}
	if s.deps.Quizzes == nil {
		return ids
	}
	for _, q := range s.deps.Quizzes.ForModule(moduleID) {
		ids = append(ids, q.ID)
	}
	return ids
}

func (s *Server) lookupQuiz(c *gin.Context) (quiz.Quiz, bool) {
	id := c.Param("id")
	if s.deps.Quizzes != nil {
		if q, ok := s.deps.Quizzes.Get(id); ok {
			return q, true
		}
	}
	respondError(c, http.StatusNotFound, codeNotFound, fmt.Errorf("%w: %s", quiz.ErrUnknownQuiz, id))
	return quiz.Quiz{}, false
}

// GET /api/quizzes/:id
func (s *Server) getQuiz(c *gin.Context) {
	q, ok := s.lookupQuiz(c)
	if !ok {
		return
	}
	remaining, err := s.deps.Quizzes.Remaining(c.Request.Context(), q.ID)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, codeInternal, err)
		return
	}
	respondOK(c, quizView{
		ID:                q.ID,
		ModuleID:          q.ModuleID,
		Title:             q.Title,
		TimeLimitSeconds:  int(q.TimeLimit / time.Second),
		MaxAttempts:       q.MaxAttempts,
		PassPercent:       q.PassPercent,
		AttemptsRemaining: remaining,
		Questions:         q.Questions,
	})
}

type attemptRequest struct {
	Answers   map[string]string `json:"answers" binding:"required"`
	StartedAt time.Time         `json:"startedAt"`
}

// POST /api/quizzes/:id/attempts
func (s *Server) submitAttempt(c *gin.Context) {
	q, ok := s.lookupQuiz(c)
	if !ok {
		return
	}
	var req attemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, fmt.Errorf("invalid attempt: %w", err))
		return
	}

	attempt, err := s.deps.Quizzes.Submit(c.Request.Context(), q.ID, req.Answers, req.StartedAt)
	switch {
	case errors.Is(err, quiz.ErrNoAttemptsLeft):
		respondError(c, http.StatusConflict, codeConflict, err)
		return
	case err != nil:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, codeInternal, err)
		return
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveQuizAttempt(q.ID, attempt.Passed)
	}
	c.JSON(http.StatusCreated, attempt)
}
