package run

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/myplugin/cmd/myplugin/internal"
	"github.com/example/myplugin/pkg/console"
	"github.com/example/myplugin/pkg/logger"
	"github.com/example/myplugin/pkg/plugin"
)

func NewRunCommand() *cobra.Command {
	var (
		as      string
		lines   []string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the console host with the configured plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, as, lines, noColor)
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "Issue commands as this player instead of the console")
	cmd.Flags().StringArrayVarP(&lines, "command", "c", nil, "Run a command line and exit (repeatable)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Strip chat colour codes from output")

	return cmd
}

func runServer(cmd *cobra.Command, as string, lines []string, noColor bool) error {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := internal.SetupLogging(cfg); err != nil {
		return fmt.Errorf("error configuring logging: %w", err)
	}
	defer logger.DisableFileLogging()

	manager, _, err := internal.LoadPlugins(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var sender plugin.Sender = console.NewConsoleSender(out, cfg.Console.Color && !noColor)
	if as != "" {
		sender = console.NewPlayerSender(as, out)
	}

	srv := &console.Server{
		Manager:     manager,
		Sender:      sender,
		Prompt:      cfg.Console.Prompt,
		HistoryFile: cfg.Console.HistoryFile,
		Stdout:      out,
		Stderr:      cmd.ErrOrStderr(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(lines) > 0 {
		_, err := srv.Exec(ctx, lines...)
		return err
	}

	logger.InfoCF("console", "Console host started", map[string]any{
		"plugins": manager.Names(),
	})
	return srv.Run(ctx, os.Stdin)
}
