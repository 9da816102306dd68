package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/resources"
)

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Search the resource library",
}

var resourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, _ := cmd.Flags().GetString("type")
		search, _ := cmd.Flags().GetString("search")
		module, _ := cmd.Flags().GetString("module")
		tag, _ := cmd.Flags().GetString("tag")

		t, err := resources.ParseType(typ)
		if err != nil {
			return err
		}

		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		list := rt.data.Resources.Filter(search, t)
		list = keep(list, func(r resources.Resource) bool {
			return (module == "" || r.ModuleAffiliation == module) &&
				(tag == "" || hasTag(r, tag))
		})

		if len(list) == 0 {
			fmt.Println("No resources match.")
			return nil
		}

		fmt.Printf("%-8s  %-22s  %-8s  %s\n", "ID", "Type", "Module", "Title")
		fmt.Println(strings.Repeat("─", 92))
		for _, r := range list {
			mod := r.ModuleAffiliation
			if mod == "" {
				mod = "-"
			}
			fmt.Printf("%-8s  %-22s  %-8s  %s\n", r.ID, resources.DisplayName(r.Type), mod, truncate(r.Title, 48))
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Printf("%10s%s: %s\n", "", r.Action(), r.URL)
			}
		}
		fmt.Printf("\n%d of %d resources\n", len(list), rt.data.Resources.Len())
		return nil
	},
}

var resourceTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List resource types present in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		for _, t := range rt.data.Resources.Types() {
			fmt.Printf("%-20s  %-22s  %d\n", t, resources.DisplayName(t), len(rt.data.Resources.ByType(t)))
		}
		return nil
	},
}

func keep(list []resources.Resource, pred func(resources.Resource) bool) []resources.Resource {
	out := list[:0:0]
	for _, r := range list {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func hasTag(r resources.Resource, tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func init() {
	f := resourceListCmd.Flags()
	f.String("type", "", "Resource type (see 'resource types'); all by default")
	f.String("search", "", "Case-insensitive search in title and description")
	f.String("module", "", "Only resources affiliated with this module")
	f.String("tag", "", "Only resources with this tag")
	f.BoolP("verbose", "v", false, "Show each resource's URL")

	resourceCmd.AddCommand(resourceListCmd)
	resourceCmd.AddCommand(resourceTypesCmd)
}
