package plugin

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/myplugin/cmd/myplugin/internal"
	pluginapi "github.com/example/myplugin/pkg/plugin"
	"github.com/example/myplugin/pkg/plugin/builtin"
)

func TestNewPluginCommand(t *testing.T) {
	cmd := NewPluginCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "plugin", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "describe", "init"}, names)
}

func TestNewListSubcommand(t *testing.T) {
	cmd := newListCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.False(t, cmd.HasSubCommands())

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, formatText, formatFlag.DefValue)
}

func TestNewListSubcommand_RejectsUnknownFormat(t *testing.T) {
	cmd := newListCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, `invalid value for --format: "yaml"`)
}

func runList(t *testing.T, config string, args ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))
	internal.SetConfigPath(path)
	t.Cleanup(func() { internal.SetConfigPath("") })

	cmd := newListCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestListSubcommand_JSONIncludesDescriptor(t *testing.T) {
	out := runList(t, `{"plugins": {"disabled": ["ghost"]}}`, "--format", "json")

	var got []pluginRow
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []pluginRow{
		{Name: "ghost", Status: "unknown-disabled"},
		{
			Name:       "MyPlugin",
			Status:     "enabled",
			Version:    "1.0-SNAPSHOT",
			APIVersion: pluginapi.APIVersion,
			Commands:   []string{"/hello"},
		},
	}, got)
}

func TestListSubcommand_TextDisabledPlugin(t *testing.T) {
	out := runList(t, `{"plugins": {"disabled": ["MYPLUGIN"]}}`)

	assert.Equal(t,
		"NAME\tSTATUS\tVERSION\tAPI\tCOMMANDS\n"+
			"MyPlugin\tdisabled\t1.0-SNAPSHOT\t1.21\t/hello\n",
		out)
}

func TestBuildRows_UnknownNamesSortedWithKnown(t *testing.T) {
	rows := buildRows(builtin.Summary{
		Enabled:         []string{"myplugin"},
		UnknownEnabled:  []string{"zeta"},
		UnknownDisabled: []string{"alpha"},
	})

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name+"/"+r.Status)
	}
	assert.Equal(t, []string{"alpha/unknown-disabled", "MyPlugin/enabled", "zeta/unknown-enabled"}, names)
}

func TestCommandLabels(t *testing.T) {
	d := pluginapi.Descriptor{Commands: map[string]pluginapi.CommandSpec{
		"wave":  {},
		"hello": {Aliases: pluginapi.StringList{"hi", "hey"}},
	}}

	assert.Equal(t, []string{"/hello (hi, hey)", "/wave"}, commandLabels(d))
}

func TestRenderRows_TextUsesDashForMissingFields(t *testing.T) {
	var out bytes.Buffer
	err := renderRows(&out, formatText, []pluginRow{{Name: "ghost", Status: "unknown-enabled"}})

	require.NoError(t, err)
	assert.Equal(t, "NAME\tSTATUS\tVERSION\tAPI\tCOMMANDS\nghost\tunknown-enabled\t-\t-\t-\n", out.String())
}
