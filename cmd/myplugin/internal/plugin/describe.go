package plugin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/myplugin/pkg/logger"
	pluginapi "github.com/example/myplugin/pkg/plugin"
	"github.com/example/myplugin/pkg/plugin/builtin"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Print a builtin plugin's plugin.yml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := builtin.Catalog()[pluginapi.NormalizeName(args[0])]
			if !ok {
				return fmt.Errorf("unknown plugin %q (available: %v)", args[0], builtin.Names())
			}

			data, err := entry.New(logger.ForComponent(entry.Name)).Descriptor().Marshal()
			if err != nil {
				return fmt.Errorf("rendering descriptor: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
