package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/metrics"
	"github.com/abhisek/coursemap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{logToStderr: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		addr := rt.cfg.HTTP.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}
		debug, _ := cmd.Flags().GetBool("debug")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := metrics.New()
		quizzes, err := rt.quizzes()
		if err != nil {
			return err
		}
		deps := server.Deps{
			Catalog:   rt.catalog,
			Resources: rt.data.Resources,
			Quizzes:   quizzes,
			Metrics:   m,
			Logger:    rt.log,
		}
		svc, err := rt.summarizer(ctx, m)
		switch {
		case err == nil:
			deps.Summarizer = svc
		case errors.Is(err, llm.ErrNotConfigured):
			rt.log.Warn("summaries disabled", "reason", err.Error())
		default:
			return err
		}

		srv := server.New(deps, server.Options{CORSOrigins: rt.cfg.HTTP.CORSOrigins, Debug: debug})

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			rt.log.Info("starting api", "addr", addr, "modules", rt.catalog.Len(), "summaries", deps.Summarizer != nil)
			return srv.Serve(gctx, addr, rt.cfg.HTTP.ShutdownTimeout)
		})
		g.Go(func() error {
			<-gctx.Done()
			rt.log.Info("stop requested")
			return nil
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr and COURSEMAP_HTTP_ADDR)")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
}
