// MyPlugin - game-server plugin host harness
// License: MIT
//
// Copyright (c) 2026 MyPlugin contributors

package plugin

// APIVersion identifies the host API a plugin is compiled against.
// A descriptor that declares an api-version must declare this one.
const APIVersion = "1.21"

// Sender is whoever issued a command: a player or the console.
type Sender interface {
	SendMessage(text string)
}

// NamedSender is implemented by senders the host can identify in logs and hooks.
type NamedSender interface {
	Sender
	Name() string
}

// Logger is the host-provided log sink handed to each plugin.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Plugin is the contract the host invokes. Callbacks run synchronously on
// the host's command thread and must not block.
type Plugin interface {
	Name() string
	APIVersion() string
	Descriptor() Descriptor

	// OnLoadEnable is called once after the plugin is loaded.
	OnLoadEnable()
	// OnUnloadDisable is called once before the plugin is unloaded.
	OnUnloadDisable()
	// OnCommand reports whether the command was handled. Returning false
	// lets the host apply its default behaviour.
	OnCommand(sender Sender, commandName, label string, args []string) bool
}

func senderName(s Sender) string {
	if named, ok := s.(NamedSender); ok {
		return named.Name()
	}
	return "unknown"
}
