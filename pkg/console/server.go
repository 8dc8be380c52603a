package console

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/example/myplugin/pkg/logger"
	"github.com/example/myplugin/pkg/plugin"
)

var stopWords = map[string]struct{}{
	"stop": {},
	"exit": {},
	"quit": {},
}

// Server is a local stand-in for the game server: it enables the loaded
// plugins, feeds console lines to the command dispatcher and disables the
// plugins on the way out.
type Server struct {
	Manager     *plugin.Manager
	Sender      plugin.Sender
	Prompt      string
	HistoryFile string
	Stdout      io.Writer
	Stderr      io.Writer
}

func isStop(line string) bool {
	_, ok := stopWords[strings.ToLower(line)]
	return ok
}

// Exec runs lines non-interactively and returns their results.
func (s *Server) Exec(ctx context.Context, lines ...string) ([]plugin.Result, error) {
	if err := s.Manager.EnableAll(ctx); err != nil {
		logger.WarnCF("console", "Some plugins failed to enable", map[string]any{"error": err.Error()})
	}
	defer s.shutdown(ctx)

	results := make([]plugin.Result, 0, len(lines))
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isStop(line) {
			break
		}
		results = append(results, s.Manager.Dispatch(ctx, s.Sender, line))
	}
	return results, nil
}

// Run drives an interactive readline loop over in until EOF, interrupt,
// a stop command or ctx cancellation.
func (s *Server) Run(ctx context.Context, in io.ReadCloser) error {
	cfg := &readline.Config{
		Prompt:          s.Prompt,
		HistoryFile:     s.HistoryFile,
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "stop",
		Stdin:           in,
		Stdout:          s.Stdout,
		Stderr:          s.Stderr,
	}
	if in != os.Stdin {
		cfg.FuncIsTerminal = func() bool { return false }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	if err := s.Manager.EnableAll(ctx); err != nil {
		logger.WarnCF("console", "Some plugins failed to enable", map[string]any{"error": err.Error()})
	}
	defer s.shutdown(ctx)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			rl.Close()
		case <-done:
		}
	}()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isStop(line) {
			logger.InfoC("console", "Stopping server")
			return nil
		}

		s.Manager.Dispatch(ctx, s.Sender, line)
	}
}

func (s *Server) shutdown(ctx context.Context) {
	if err := s.Manager.DisableAll(context.WithoutCancel(ctx)); err != nil {
		logger.WarnCF("console", "Some plugins failed to disable", map[string]any{"error": err.Error()})
	}
}
