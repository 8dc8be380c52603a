package plugin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/myplugin/pkg/plugin/scaffold"
)

func newInitCommand() *cobra.Command {
	var (
		opts  scaffold.Options
		force bool
	)

	cmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   "Write a plugin.yml for a new hello plugin",
		Example: `myplugin plugin init ./greeter --name Greeter --package org.acme.greeter`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			path, err := scaffold.Write(dir, opts, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	defaults := scaffold.DefaultOptions()
	cmd.Flags().StringVar(&opts.Name, "name", defaults.Name, "Plugin name")
	cmd.Flags().StringVar(&opts.Package, "package", defaults.Package, "Package holding the entry point")
	cmd.Flags().StringVar(&opts.Version, "version", defaults.Version, "Plugin version")
	cmd.Flags().StringVar(&opts.APIVersion, "api-version", defaults.APIVersion, "Host API version")
	cmd.Flags().StringVar(&opts.Author, "author", defaults.Author, "Author")
	cmd.Flags().StringVar(&opts.Description, "description", "", "One-line description")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing plugin.yml")

	return cmd
}
