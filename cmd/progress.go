package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/store"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show course progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		printDashboard(rt.catalog)
		return nil
	},
}

var progressSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Record progress for a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		m, ok := rt.catalog.GetModule(args[0])
		if !ok {
			return fmt.Errorf("module %q not found", args[0])
		}

		rec := store.ProgressRecord{
			ModuleID: m.ID,
			Status:   string(m.Status),
			Progress: m.Progress,
			Score:    m.Score,
		}
		flags := cmd.Flags()
		if flags.Changed("status") {
			rec.Status, _ = flags.GetString("status")
		}
		if flags.Changed("progress") {
			rec.Progress, _ = flags.GetInt("progress")
		}
		if flags.Changed("score") {
			score, _ := flags.GetInt("score")
			rec.Score = &score
		}
		if clearScore, _ := flags.GetBool("clear-score"); clearScore {
			rec.Score = nil
		}
		if err := validateProgress(rec); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := rt.store.ProgressRepo().Upsert(ctx, rec); err != nil {
			return err
		}
		rt.log.Info("progress updated", "module", rec.ModuleID, "status", rec.Status, "progress", rec.Progress)

		if err := rt.reload(ctx); err != nil {
			return err
		}
		for _, f := range rt.data.Findings {
			if f.ModuleID == rec.ModuleID {
				fmt.Printf("warning: %s\n", f.Problem)
			}
		}
		printDashboard(rt.catalog)
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all recorded progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.store.ProgressRepo().Reset(cmd.Context()); err != nil {
			return err
		}
		rt.log.Info("progress reset")
		fmt.Println("Progress reset.")
		return nil
	},
}

// validateProgress checks a record against the catalog's own field rules
// for status, progress and score.
func validateProgress(rec store.ProgressRecord) error {
	m := catalog.Module{Status: catalog.Status(rec.Status), Progress: rec.Progress, Score: rec.Score}
	if err := catalog.Validator().StructPartial(m, "Status", "Progress", "Score"); err != nil {
		return fmt.Errorf("invalid progress for %s: %s", rec.ModuleID, strings.Join(catalog.FieldProblems(err), "; "))
	}
	return nil
}

// printDashboard renders the overall bar, totals and one bar per module.
func printDashboard(cat *catalog.Catalog) {
	const width = 72
	sum := cat.Summarize()

	lipgloss.Println(components.NewProgressBar("Overall", sum.OverallProgress/100, true, width).View())
	score := "n/a"
	if sum.AverageScore != nil {
		score = fmt.Sprintf("%.1f%%", *sum.AverageScore)
	}
	lipgloss.Printf("Completed %d of %d · average score %s\n\n", sum.Completed, sum.Total, score)

	for _, m := range cat.Modules() {
		bar := components.NewProgressBar(fmt.Sprintf("%s %-8s", m.Status.Icon(), m.ID), float64(m.Progress)/100, true, width)
		switch m.Status {
		case catalog.StatusCompleted:
			bar.Fill = theme.Success
		case catalog.StatusInProgress:
			bar.Fill = theme.ArcadeYellow
		}
		line := bar.View()
		if m.HasScore() {
			line += theme.StatusStyle(m.Status).Render(fmt.Sprintf("  score %d", *m.Score))
		}
		lipgloss.Println(line)
	}
}

func init() {
	progressSetCmd.Flags().String("status", "", "not-started, in-progress or completed")
	progressSetCmd.Flags().Int("progress", 0, "Progress percentage (0-100)")
	progressSetCmd.Flags().Int("score", 0, "Score (0-100)")
	progressSetCmd.Flags().Bool("clear-score", false, "Remove the recorded score")

	progressCmd.AddCommand(progressSetCmd)
	progressCmd.AddCommand(progressResetCmd)
}
