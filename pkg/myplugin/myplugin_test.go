package myplugin

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/myplugin/pkg/chat"
	"github.com/example/myplugin/pkg/plugin"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(msg string)  { l.lines = append(l.lines, "INFO "+msg) }
func (l *recordingLogger) Warn(msg string)  { l.lines = append(l.lines, "WARN "+msg) }
func (l *recordingLogger) Error(msg string) { l.lines = append(l.lines, "ERROR "+msg) }

type recordingSender struct {
	msgs []string
}

func (s *recordingSender) SendMessage(text string) { s.msgs = append(s.msgs, text) }

var _ plugin.Plugin = (*MyPlugin)(nil)

func TestGreeting(t *testing.T) {
	assert.Equal(t, "MyPlugin", Name)
	assert.Equal(t, "§aHello from MyPlugin!", Greeting)
	assert.Equal(t, "Hello from MyPlugin!", chat.Strip(Greeting))
}

func TestOnLoadEnable(t *testing.T) {
	log := &recordingLogger{}
	New(log).OnLoadEnable()

	require.Len(t, log.lines, 1)
	assert.Equal(t, "INFO MyPlugin enabled!", log.lines[0])
	assert.Contains(t, log.lines[0], "enabled")
}

func TestOnUnloadDisable(t *testing.T) {
	log := &recordingLogger{}
	New(log).OnUnloadDisable()

	require.Len(t, log.lines, 1)
	assert.Equal(t, "INFO MyPlugin disabled!", log.lines[0])
	assert.Contains(t, log.lines[0], "disabled")
}

func TestOnCommand_HelloAnyCase(t *testing.T) {
	for _, name := range []string{"hello", "HELLO", "HeLLo", "hELLO"} {
		t.Run(name, func(t *testing.T) {
			s := &recordingSender{}
			handled := New(&recordingLogger{}).OnCommand(s, name, name, nil)

			assert.True(t, handled)
			assert.Equal(t, []string{Greeting}, s.msgs)
		})
	}
}

func TestOnCommand_OtherNames(t *testing.T) {
	for _, name := range []string{"goodbye", "", "hello world", "hell", "helloo", " hello"} {
		t.Run(name, func(t *testing.T) {
			s := &recordingSender{}
			handled := New(&recordingLogger{}).OnCommand(s, name, "hello", []string{"x"})

			assert.False(t, handled)
			assert.Empty(t, s.msgs)
		})
	}
}

func TestOnCommand_LabelAndArgsIgnored(t *testing.T) {
	p := New(&recordingLogger{})
	cases := []struct {
		label string
		args  []string
	}{
		{label: "", args: nil},
		{label: "hello", args: []string{}},
		{label: "hi", args: []string{"a", "b", "c"}},
		{label: "myplugin:hello", args: []string{""}},
	}

	for _, c := range cases {
		s := &recordingSender{}
		assert.True(t, p.OnCommand(s, "hello", c.label, c.args))
		assert.Equal(t, []string{Greeting}, s.msgs)

		s = &recordingSender{}
		assert.False(t, p.OnCommand(s, "goodbye", c.label, c.args))
		assert.Empty(t, s.msgs)
	}
}

func TestOnCommand_Idempotent(t *testing.T) {
	p := New(&recordingLogger{})
	s := &recordingSender{}

	first := p.OnCommand(s, "hello", "hello", nil)
	second := p.OnCommand(s, "hello", "hello", nil)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{Greeting, Greeting}, s.msgs)
}

func TestDescriptor(t *testing.T) {
	p := New(&recordingLogger{})
	d := p.Descriptor()

	assert.Equal(t, Name, p.Name())
	assert.Equal(t, plugin.APIVersion, p.APIVersion())
	assert.Equal(t, "MyPlugin", d.Name)
	assert.Equal(t, "1.0-SNAPSHOT", d.Version)
	assert.Equal(t, "com.example.myplugin.MyPlugin", d.Main)
	assert.Equal(t, plugin.APIVersion, d.APIVersion)
	assert.Equal(t, []string{"hello"}, d.CommandNames())
	assert.Equal(t, "/hello", d.Commands["hello"].Usage)
	assert.True(t, strings.HasPrefix(string(DescriptorYAML()), "name: MyPlugin"))
}

func TestHostedLifecycle(t *testing.T) {
	log := &recordingLogger{}
	m := plugin.NewManager()
	require.NoError(t, m.Register(New(log)))
	require.NoError(t, m.EnableAll(context.Background()))

	s := &recordingSender{}
	res := m.Dispatch(context.Background(), s, "/Hello extra args")
	assert.Equal(t, plugin.OutcomeHandled, res.Outcome)
	assert.Equal(t, []string{Greeting}, s.msgs)

	other := &recordingSender{}
	res = m.Dispatch(context.Background(), other, "/goodbye")
	assert.Equal(t, plugin.OutcomeUnknown, res.Outcome)
	assert.Equal(t, []string{plugin.UnknownCommandMessage}, other.msgs)

	require.NoError(t, m.DisableAll(context.Background()))
	assert.Equal(t, []string{"INFO MyPlugin enabled!", "INFO MyPlugin disabled!"}, log.lines)
}
