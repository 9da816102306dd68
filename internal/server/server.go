// Package server exposes the catalog, resources, summarizer and quizzes
// over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/metrics"
	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/summarizer"
)

// Deps are the services the handlers read from. Catalog and Resources are
// required; a nil Summarizer or Quizzes disables those routes' backends.
type Deps struct {
	Catalog    *catalog.Catalog
	Resources  *resources.Index
	Summarizer *summarizer.Service
	Quizzes    *quiz.Service
	Metrics    *metrics.Metrics
	Logger     *logger.Logger
}

// Options tune the HTTP surface.
type Options struct {
	CORSOrigins []string
	// Debug keeps gin in debug mode.
	Debug bool
}

// Server owns the gin engine.
type Server struct {
	deps   Deps
	log    *logger.Logger
	engine *gin.Engine
}

// New builds the engine with middleware and routes registered.
func New(deps Deps, opts Options) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{deps: deps, log: log.With("component", "server"), engine: gin.New()}

	s.engine.Use(gin.Recovery(), requestID(), requestLogger(s.log), instrument(deps.Metrics))
	if len(opts.CORSOrigins) > 0 {
		s.engine.Use(corsMiddleware(opts.CORSOrigins))
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/healthz", s.health)
	if s.deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/modules", s.listModules)
		api.GET("/modules/:id", s.getModule)
		api.GET("/modules/:id/dependencies", s.moduleDependencies)
		api.GET("/modules/:id/resources", s.moduleResources)
		api.GET("/progress", s.progress)
		api.GET("/resources", s.listResources)
		api.POST("/summaries", s.createSummary)
		api.GET("/quizzes/:id", s.getQuiz)
		api.POST("/quizzes/:id/attempts", s.submitAttempt)
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, codeNotFound, errors.New("route not found"))
	})
}

// Handler returns the engine as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Serve(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
