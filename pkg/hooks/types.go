// MyPlugin - game-server plugin host harness
// License: MIT
//
// Copyright (c) 2026 MyPlugin contributors

package hooks

// PluginEvent is fired after a plugin is enabled or disabled.
type PluginEvent struct {
	Plugin  string
	Version string
}

// CommandPreprocessEvent is fired before a command line is resolved.
// Handlers can rewrite Line or set Cancel to drop the command silently.
type CommandPreprocessEvent struct {
	Sender       string
	Line         string // Modifiable
	Cancel       bool
	CancelReason string
}

// CommandEvent is fired after a command has been dispatched.
type CommandEvent struct {
	Plugin  string
	Sender  string
	Command string
	Label   string
	Args    []string
	Outcome string
}
