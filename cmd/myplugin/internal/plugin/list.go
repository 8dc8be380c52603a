package plugin

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/myplugin/cmd/myplugin/internal"
	"github.com/example/myplugin/pkg/logger"
	pluginapi "github.com/example/myplugin/pkg/plugin"
	"github.com/example/myplugin/pkg/plugin/builtin"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// pluginRow is one line of `plugin list`. Descriptor fields stay empty for
// names the catalog does not know.
type pluginRow struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Version    string   `json:"version,omitempty"`
	APIVersion string   `json:"api_version,omitempty"`
	Commands   []string `json:"commands,omitempty"`
}

func newListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builtin plugins with their status and commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("invalid value for --format: %q (allowed: %s, %s)", format, formatText, formatJSON)
			}

			cfg, err := internal.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			// Resolve still reports a partial summary on error; list what it found.
			_, summary, resolveErr := builtin.Resolve(cfg.Plugins.Enabled, cfg.Plugins.Disabled, nil)
			if err := renderRows(cmd.OutOrStdout(), format, buildRows(summary)); err != nil {
				return err
			}
			if resolveErr != nil {
				return fmt.Errorf("error resolving configured plugins: %w", resolveErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text|json)")

	return cmd
}

func buildRows(summary builtin.Summary) []pluginRow {
	catalog := builtin.Catalog()
	var rows []pluginRow

	add := func(status string, names []string) {
		for _, name := range names {
			e, ok := catalog[name]
			if !ok {
				rows = append(rows, pluginRow{Name: name, Status: status})
				continue
			}
			d := e.New(logger.ForComponent(e.Name)).Descriptor()
			rows = append(rows, pluginRow{
				Name:       d.Name,
				Status:     status,
				Version:    d.Version,
				APIVersion: d.APIVersion,
				Commands:   commandLabels(d),
			})
		}
	}
	add("enabled", summary.Enabled)
	add("disabled", summary.Disabled)
	add("unknown-enabled", summary.UnknownEnabled)
	add("unknown-disabled", summary.UnknownDisabled)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := pluginapi.NormalizeName(rows[i].Name), pluginapi.NormalizeName(rows[j].Name)
		if a == b {
			return rows[i].Status < rows[j].Status
		}
		return a < b
	})
	return rows
}

// commandLabels renders each declared command as "/name", followed by its
// aliases in parentheses.
func commandLabels(d pluginapi.Descriptor) []string {
	labels := make([]string, 0, len(d.Commands))
	for _, name := range d.CommandNames() {
		label := "/" + name
		if aliases := d.Commands[name].Aliases; len(aliases) > 0 {
			label += " (" + strings.Join(aliases, ", ") + ")"
		}
		labels = append(labels, label)
	}
	return labels
}

func renderRows(w io.Writer, format string, rows []pluginRow) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case formatText:
		if _, err := fmt.Fprintln(w, "NAME\tSTATUS\tVERSION\tAPI\tCOMMANDS"); err != nil {
			return err
		}
		for _, r := range rows {
			_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.Name, r.Status, orDash(r.Version), orDash(r.APIVersion), orDash(strings.Join(r.Commands, " ")))
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid value for --format: %q (allowed: %s, %s)", format, formatText, formatJSON)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
