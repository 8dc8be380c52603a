// Package myplugin is the hello plugin: it logs its lifecycle and answers
// the hello command with a fixed greeting.
package myplugin

import (
	_ "embed"
	"strings"

	"github.com/example/myplugin/pkg/chat"
	"github.com/example/myplugin/pkg/plugin"
)

const helloCommand = "hello"

//go:embed plugin.yml
var descriptorYAML []byte

var (
	descriptor = plugin.MustParseDescriptor(descriptorYAML)

	// Name is the plugin name declared in plugin.yml.
	Name = descriptor.Name

	// Greeting is the message sent in reply to /hello.
	Greeting = chat.Green.Prefix("Hello from " + Name + "!")
)

// MyPlugin keeps no state between calls.
type MyPlugin struct {
	log plugin.Logger
}

func New(log plugin.Logger) *MyPlugin {
	return &MyPlugin{log: log}
}

func (p *MyPlugin) Name() string {
	return Name
}

func (p *MyPlugin) APIVersion() string {
	return plugin.APIVersion
}

func (p *MyPlugin) Descriptor() plugin.Descriptor {
	return descriptor
}

func (p *MyPlugin) OnLoadEnable() {
	p.log.Info(Name + " enabled!")
}

func (p *MyPlugin) OnUnloadDisable() {
	p.log.Info(Name + " disabled!")
}

func (p *MyPlugin) OnCommand(sender plugin.Sender, commandName, _ string, _ []string) bool {
	if !strings.EqualFold(commandName, helloCommand) {
		return false
	}
	sender.SendMessage(Greeting)
	return true
}

// DescriptorYAML returns the raw embedded plugin.yml.
func DescriptorYAML() []byte {
	return append([]byte(nil), descriptorYAML...)
}
