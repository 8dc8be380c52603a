package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/myplugin/cmd/myplugin/internal"
	"github.com/example/myplugin/pkg/plugin"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd)
		},
	}
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "myplugin %s\n", internal.FormatVersion())
	fmt.Fprintf(out, "  Plugin API: %s\n", plugin.APIVersion)
	build, goVer := internal.FormatBuildInfo()
	if build != "" {
		fmt.Fprintf(out, "  Build: %s\n", build)
	}
	if goVer != "" {
		fmt.Fprintf(out, "  Go: %s\n", goVer)
	}
}
