package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/loader"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version and supported data format",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionLine(version, buildVersion()))
	},
}

// versionLine falls back to the module version from the build info when no
// version was stamped in.
func versionLine(stamped, module string) string {
	v := stamped
	if v == "(devel)" && module != "" && module != "(devel)" {
		v = module
	}
	return fmt.Sprintf("coursemap %s (data format %s)", v, loader.SupportedVersion)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return ""
}
