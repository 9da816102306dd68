package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/catalog"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Inspect course modules",
}

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		modules := rt.catalog.Modules()
		if ordered, _ := cmd.Flags().GetBool("ordered"); ordered {
			modules = rt.catalog.TopologicalOrder()
		}

		fmt.Printf("%-8s  %-44s  %-12s  %5s  %5s  %s\n", "ID", "Title", "Status", "Prog", "Score", "Unlocked")
		fmt.Println(strings.Repeat("\u2500", 92))
		for _, m := range modules {
			score := "-"
			if m.HasScore() {
				score = fmt.Sprintf("%d", *m.Score)
			}
			unlocked := "no"
			if rt.catalog.IsUnlocked(m.ID) {
				unlocked = "yes"
			}
			fmt.Printf("%-8s  %-44s  %-12s  %4d%%  %5s  %s\n",
				m.ID, truncate(m.Title, 44), m.Status, m.Progress, score, unlocked)
		}
		return nil
	},
}

var moduleShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one module",
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

		fmt.Printf("ID:           %s\n", m.ID)
		fmt.Printf("Title:        %s\n", m.Title)
		fmt.Printf("Status:       %s %s\n", m.Status.Icon(), m.Status.Label())
		fmt.Printf("Progress:     %d%%\n", m.Progress)
		if m.HasScore() {
			fmt.Printf("Score:        %d\n", *m.Score)
		}
		fmt.Printf("Unlocked:     %v\n", rt.catalog.IsUnlocked(m.ID))
		if m.VideoURL != "" {
			fmt.Printf("Video:        %s\n", m.VideoURL)
		}
		if m.Description != "" {
			fmt.Printf("\n%s\n", m.Description)
		}
		if len(m.Objectives) > 0 {
			fmt.Println("\nObjectives:")
			for _, o := range m.Objectives {
				fmt.Printf("  • %s\n", o)
			}
		}
		if res := rt.data.Resources.ByModule(m.ID); len(res) > 0 {
			fmt.Printf("\nResources: %d (coursemap resource list --module %s)\n", len(res), m.ID)
		}
		return nil
	},
}

var moduleDepsCmd = &cobra.Command{
	Use:   "deps <id>",
	Short: "Show a module's prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		id := args[0]
		if !rt.catalog.Has(id) {
			return fmt.Errorf("module %q not found", id)
		}

		printModules("Prerequisites", rt.catalog.ResolveDependencies(id))
		if missing := rt.catalog.DanglingDependencies(id); len(missing) > 0 {
			fmt.Printf("  (unknown, ignored: %s)\n", strings.Join(missing, ", "))
		}
		fmt.Println()
		printModules("Unlocks", rt.catalog.Dependents(id))
		return nil
	},
}

var moduleCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog and report status inconsistencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.catalog.ValidateAcyclic(); err != nil {
			return err
		}
		fmt.Printf("%d modules, %d resources, dependency graph is acyclic.\n",
			rt.catalog.Len(), rt.data.Resources.Len())

		if len(rt.data.Findings) == 0 {
			fmt.Println("No inconsistencies found.")
			return nil
		}
		fmt.Printf("\n%d inconsistencies:\n", len(rt.data.Findings))
		for _, f := range rt.data.Findings {
			fmt.Printf("  %-8s  %s\n", f.ModuleID, f.Problem)
		}
		return nil
	},
}

func printModules(heading string, modules []catalog.Module) {
	fmt.Printf("%s:\n", heading)
	if len(modules) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, m := range modules {
		fmt.Printf("  %s %-8s  %s\n", m.Status.Icon(), m.ID, m.Title)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func init() {
	moduleListCmd.Flags().Bool("ordered", false, "List prerequisites before the modules that need them")

	moduleCmd.AddCommand(moduleListCmd)
	moduleCmd.AddCommand(moduleShowCmd)
	moduleCmd.AddCommand(moduleDepsCmd)
	moduleCmd.AddCommand(moduleCheckCmd)
}
