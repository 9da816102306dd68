package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take module quizzes",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quizzes and remaining attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.quizzes()
		if err != nil {
			return err
		}
		for _, q := range svc.List() {
			left, err := svc.Remaining(cmd.Context(), q.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s  %-8s  %-40s  %s\n", q.ID, q.ModuleID, truncate(q.Title, 40), formatAttemptsLeft(left))
		}
		return nil
	},
}

var quizShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a quiz's questions and past attempts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.quizzes()
		if err != nil {
			return err
		}
		q, ok := svc.Get(args[0])
		if !ok {
			return fmt.Errorf("quiz %q not found", args[0])
		}

		fmt.Printf("%s (%s)\n", q.Title, q.ID)
		fmt.Printf("Module: %s · time limit %s · pass mark %.0f%%\n\n", q.ModuleID, q.TimeLimit, q.PassPercent)
		for i, qu := range q.Questions {
			fmt.Printf("%d. [%s] %s\n", i+1, qu.ID, qu.Text)
			for _, o := range qu.Options {
				fmt.Printf("     %-6s %s\n", o.ID, o.Text)
			}
			fmt.Println()
		}

		attempts, err := svc.Attempts(cmd.Context(), q.ID)
		if err != nil {
			return err
		}
		for _, a := range attempts {
			fmt.Printf("Attempt %d: %d/%d (%.0f%%) %s\n", a.Number, a.Correct, a.Total, a.Percent, verdict(a))
		}
		left, err := svc.Remaining(cmd.Context(), q.ID)
		if err != nil {
			return err
		}
		fmt.Println(formatAttemptsLeft(left))
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <id>",
	Short: "Submit answers, e.g. --answer q1=opt2 --answer q2=opt3",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetStringArray("answer")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}
		var startedAt time.Time
		if ago, _ := cmd.Flags().GetDuration("started"); ago > 0 {
			startedAt = time.Now().Add(-ago)
		}

		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.quizzes()
		if err != nil {
			return err
		}
		a, err := svc.Submit(cmd.Context(), args[0], answers, startedAt)
		if err != nil {
			return err
		}
		rt.log.Info("quiz attempt", "quiz", a.QuizID, "attempt", a.Number, "percent", a.Percent, "passed", a.Passed)

		fmt.Printf("Attempt %d: %d/%d correct (%.0f%%) %s\n", a.Number, a.Correct, a.Total, a.Percent, verdict(*a))
		fmt.Println(formatAttemptsLeft(a.Remaining))
		return nil
	},
}

// parseAnswers reads question=option pairs.
func parseAnswers(raw []string) (map[string]string, error) {
	answers := make(map[string]string, len(raw))
	for _, pair := range raw {
		q, opt, ok := strings.Cut(pair, "=")
		q, opt = strings.TrimSpace(q), strings.TrimSpace(opt)
		if !ok || q == "" || opt == "" {
			return nil, fmt.Errorf("invalid answer %q, want question=option", pair)
		}
		answers[q] = opt
	}
	return answers, nil
}

func verdict(a quiz.Attempt) string {
	s := "failed"
	if a.Passed {
		s = "passed"
	}
	if a.TimedOut {
		s += ", timed out"
	}
	return s
}

func formatAttemptsLeft(n int) string {
	switch {
	case n < 0:
		return "unlimited attempts"
	case n == 1:
		return "1 attempt left"
	default:
		return fmt.Sprintf("%d attempts left", n)
	}
}

func init() {
	quizSubmitCmd.Flags().StringArrayP("answer", "a", nil, "Answer as question=option (repeatable)")
	quizSubmitCmd.Flags().Duration("started", 0, "How long ago the quiz was opened, for the time limit")

	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizSubmitCmd)
}
