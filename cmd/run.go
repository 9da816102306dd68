package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/app"
	"github.com/abhisek/coursemap/internal/screens/home"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd, setupOptions{})
	if err != nil {
		return err
	}
	defer rt.Close()

	quizzes, err := rt.quizzes()
	if err != nil {
		return fmt.Errorf("load quizzes: %w", err)
	}
	opts := app.Options{
		Deps: home.Deps{
			Catalog:   rt.catalog,
			Resources: rt.data.Resources,
			Quizzes:   quizzes,
			Events:    rt.store.EventRepo(),
		},
		Logger: rt.log,
	}

	svc, err := rt.summarizer(cmd.Context(), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Summaries will be unavailable.")
	} else {
		opts.Summarizer = svc
	}

	return app.Run(opts)
}
