package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/myplugin/pkg/chat"
	"github.com/example/myplugin/pkg/hooks"
	"github.com/example/myplugin/pkg/logger"
)

const UnknownCommandMessage = `Unknown command. Type "/help" for help.`

var InternalErrorMessage = chat.Red.Prefix("An internal error occurred while attempting to perform this command")

type Outcome int

const (
	// OutcomeUnknown means no enabled plugin owns the label.
	OutcomeUnknown Outcome = iota
	OutcomeHandled
	// OutcomeUnhandled means the owning plugin returned false.
	OutcomeUnhandled
	OutcomeCanceled
	OutcomeFailed
)

var outcomeNames = [...]string{
	OutcomeUnknown:   "unknown",
	OutcomeHandled:   "handled",
	OutcomeUnhandled: "unhandled",
	OutcomeCanceled:  "canceled",
	OutcomeFailed:    "failed",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

type Result struct {
	Outcome Outcome
	Plugin  string
	Command string
	Label   string
	Args    []string
	Err     error
}

// ParseLine splits a command line into its label and arguments. A leading
// slash is optional.
func ParseLine(line string) (label string, args []string) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Dispatch resolves a command line to its owning plugin and invokes it.
// When the plugin returns false the host falls back to the command's usage
// text, one message per line, or to UnknownCommandMessage when none is
// declared. A blank line is
// ignored.
func (m *Manager) Dispatch(ctx context.Context, sender Sender, line string) Result {
	pre := &hooks.CommandPreprocessEvent{Sender: senderName(sender), Line: line}
	m.registry.TriggerCommandPreprocess(ctx, pre)
	if pre.Cancel {
		logger.DebugCF("plugin", "Command canceled", map[string]any{
			"sender": pre.Sender,
			"line":   line,
			"reason": pre.CancelReason,
		})
		return Result{Outcome: OutcomeCanceled}
	}

	label, args := ParseLine(pre.Line)
	if label == "" {
		return Result{Outcome: OutcomeUnknown}
	}
	res := Result{Label: label, Args: args}

	m.mu.RLock()
	c, ok := m.commands[NormalizeName(label)]
	enabled := ok && c.owner.enabled
	m.mu.RUnlock()

	if !enabled {
		sender.SendMessage(UnknownCommandMessage)
		res.Outcome = OutcomeUnknown
		m.fireExecuted(ctx, pre.Sender, res)
		return res
	}

	res.Plugin = c.owner.desc.Name
	res.Command = c.name

	handled, err := invoke(c.owner.plugin, sender, c.name, label, args)
	switch {
	case err != nil:
		logger.ErrorCF("plugin", "Unhandled exception executing command", map[string]any{
			"plugin":  res.Plugin,
			"command": res.Command,
			"sender":  pre.Sender,
			"error":   err.Error(),
		})
		sender.SendMessage(InternalErrorMessage)
		res.Outcome = OutcomeFailed
		res.Err = err
	case handled:
		res.Outcome = OutcomeHandled
	default:
		if usage := strings.TrimRight(c.spec.RenderUsage(label), "\n"); usage != "" {
			for _, line := range strings.Split(usage, "\n") {
				sender.SendMessage(line)
			}
		} else {
			sender.SendMessage(UnknownCommandMessage)
		}
		res.Outcome = OutcomeUnhandled
	}

	m.fireExecuted(ctx, pre.Sender, res)
	return res
}

func invoke(p Plugin, sender Sender, name, label string, args []string) (handled bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return p.OnCommand(sender, name, label, args), nil
}

func (m *Manager) fireExecuted(ctx context.Context, sender string, res Result) {
	m.registry.TriggerCommandExecuted(ctx, &hooks.CommandEvent{
		Plugin:  res.Plugin,
		Sender:  sender,
		Command: res.Command,
		Label:   res.Label,
		Args:    res.Args,
		Outcome: res.Outcome.String(),
	})
}
