package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePluginYML = `name: MyPlugin
main: com.example.myplugin.MyPlugin
version: 1.0-SNAPSHOT
api-version: '1.21'
author: you
commands:
  hello:
    description: Say hello
    usage: /<command>
    aliases: hi
  greet:
    aliases: [g, wave]
`

func TestParseDescriptor(t *testing.T) {
	d, err := ParseDescriptor([]byte(samplePluginYML))
	require.NoError(t, err)

	assert.Equal(t, "MyPlugin", d.Name)
	assert.Equal(t, "com.example.myplugin.MyPlugin", d.Main)
	assert.Equal(t, "1.0-SNAPSHOT", d.Version)
	assert.Equal(t, "1.21", d.APIVersion)
	assert.Equal(t, []string{"you"}, d.AllAuthors())
	assert.Equal(t, []string{"greet", "hello"}, d.CommandNames())

	hello := d.Commands["hello"]
	assert.Equal(t, "Say hello", hello.Description)
	assert.Equal(t, StringList{"hi"}, hello.Aliases)
	assert.Equal(t, StringList{"g", "wave"}, d.Commands["greet"].Aliases)
}

func TestParseDescriptor_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		want error
	}{
		{name: "no name", yml: "version: 1\nmain: a.B\n", want: ErrMissingName},
		{name: "no version", yml: "name: X\nmain: a.B\n", want: ErrMissingVersion},
		{name: "no main", yml: "name: X\nversion: 1\n", want: ErrMissingMain},
		{name: "bad command", yml: "name: X\nversion: 1\nmain: a.B\ncommands:\n  'say hi': {}\n", want: ErrInvalidCommand},
		{name: "bad alias", yml: "name: X\nversion: 1\nmain: a.B\ncommands:\n  hello:\n    aliases: ['x:y']\n", want: ErrInvalidCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptor([]byte(tt.yml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDescriptor_MalformedYAML(t *testing.T) {
	_, err := ParseDescriptor([]byte("name: [unterminated"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "plugin descriptor")
}

func TestStringList_RejectsMapping(t *testing.T) {
	_, err := ParseDescriptor([]byte("name: X\nversion: 1\nmain: a.B\ncommands:\n  hello:\n    aliases: {a: b}\n"))
	require.Error(t, err)
}

func TestDescriptorMarshalRoundTrip(t *testing.T) {
	d, err := ParseDescriptor([]byte(samplePluginYML))
	require.NoError(t, err)

	out, err := d.Marshal()
	require.NoError(t, err)

	again, err := ParseDescriptor(out)
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestRenderUsage(t *testing.T) {
	spec := CommandSpec{Usage: "Usage: /<command> [player]"}
	assert.Equal(t, "Usage: /hi [player]", spec.RenderUsage("hi"))
	assert.Equal(t, "", CommandSpec{}.RenderUsage("hi"))
}

func TestMustParseDescriptorPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseDescriptor([]byte("version: 1")) })
}
