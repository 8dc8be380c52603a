package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/myplugin/cmd/myplugin/internal"
	"github.com/example/myplugin/cmd/myplugin/internal/plugin"
	"github.com/example/myplugin/cmd/myplugin/internal/run"
	"github.com/example/myplugin/cmd/myplugin/internal/version"
)

func NewMyPluginCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "myplugin",
		Short:         "Console host for the MyPlugin game-server plugin",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			internal.SetConfigPath(configPath)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json (default ~/.myplugin/config.json)")

	cmd.AddCommand(
		run.NewRunCommand(),
		plugin.NewPluginCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	if err := NewMyPluginCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
