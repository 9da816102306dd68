package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/summarizer"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a module, a file or stdin with the configured LLM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleID, _ := cmd.Flags().GetString("module")
		file, _ := cmd.Flags().GetString("file")
		asJSON, _ := cmd.Flags().GetBool("json")
		if moduleID != "" && file != "" {
			return fmt.Errorf("--module and --file are mutually exclusive")
		}

		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		in := summarizer.Input{ModuleID: moduleID}
		switch {
		case moduleID != "":
			m, ok := rt.catalog.GetModule(moduleID)
			if !ok {
				return fmt.Errorf("module %q not found", moduleID)
			}
			in.ModuleContent = summarizer.ModuleContent(m)
		case file != "":
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			in.ModuleContent = string(data)
		default:
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			in.ModuleContent = string(data)
		}

		// Reject bad input before asking for credentials.
		if err := in.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		svc, err := rt.summarizer(ctx, nil)
		if err != nil {
			return err
		}
		out, err := svc.Summarize(ctx, in)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringP("module", "m", "", "Module ID to summarize")
	summarizeCmd.Flags().StringP("file", "f", "", "Text file to summarize")
	summarizeCmd.Flags().Bool("json", false, "Print the result as JSON")
}
