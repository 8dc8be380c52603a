// MyPlugin - game-server plugin host harness
// License: MIT
//
// Copyright (c) 2026 MyPlugin contributors

package plugin

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/example/myplugin/pkg/hooks"
	"github.com/example/myplugin/pkg/logger"
)

type entry struct {
	plugin  Plugin
	desc    Descriptor
	enabled bool
}

type command struct {
	owner *entry
	name  string
	spec  CommandSpec
}

// Manager owns loaded plugins, their command index and the shared hook registry.
type Manager struct {
	// lifecycle serializes EnableAll and DisableAll; mu guards state and is
	// never held while plugin callbacks run.
	lifecycle sync.Mutex
	mu        sync.RWMutex
	registry  *hooks.HookRegistry
	entries   []*entry
	seen      map[string]*entry
	commands  map[string]*command
}

type Option func(*Manager)

// WithHooks shares an existing hook registry instead of creating one.
func WithHooks(r *hooks.HookRegistry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager creates an empty plugin manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		registry: hooks.NewHookRegistry(),
		seen:     make(map[string]*entry),
		commands: make(map[string]*command),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HookRegistry returns the registry lifecycle and command hooks fire on.
func (m *Manager) HookRegistry() *hooks.HookRegistry {
	return m.registry
}

// Names returns loaded plugin names in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		names = append(names, e.desc.Name)
	}
	return names
}

// Commands returns every resolvable label (names, aliases and namespaced
// forms), sorted.
func (m *Manager) Commands() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	labels := make([]string, 0, len(m.commands))
	for label := range m.commands {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// Enabled reports whether the named plugin is loaded and enabled.
func (m *Manager) Enabled(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.seen[NormalizeName(name)]
	return ok && e.enabled
}

// Descriptor returns the descriptor of a loaded plugin.
func (m *Manager) Descriptor(name string) (Descriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.seen[NormalizeName(name)]
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

// NormalizeName folds plugin and command names for lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register loads one plugin and indexes its commands.
func (m *Manager) Register(p Plugin) error {
	if p == nil {
		return errors.New("plugin is nil")
	}
	name := strings.TrimSpace(p.Name())
	if name == "" {
		return errors.New("plugin name is required")
	}
	if got := strings.TrimSpace(p.APIVersion()); got != APIVersion {
		if got == "" {
			got = "<empty>"
		}
		return fmt.Errorf(
			"plugin %q api version mismatch: got %s, want %s",
			name,
			got,
			APIVersion,
		)
	}

	desc := p.Descriptor()
	if err := desc.Validate(); err != nil {
		return fmt.Errorf("register plugin %q: %w", name, err)
	}
	if desc.Name != name {
		return fmt.Errorf("plugin %q descriptor names %q", name, desc.Name)
	}
	if v := strings.TrimSpace(desc.APIVersion); v != "" && v != APIVersion {
		return fmt.Errorf("register plugin %q: %w: got %s, want %s", name, ErrAPIVersion, v, APIVersion)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := NormalizeName(name)
	if _, exists := m.seen[key]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}

	e := &entry{plugin: p, desc: desc}
	index := make(map[string]*command)
	for cmdName, spec := range desc.Commands {
		c := &command{owner: e, name: cmdName, spec: spec}
		labels := append([]string{cmdName, key + ":" + cmdName}, spec.Aliases...)
		for _, label := range labels {
			label = NormalizeName(label)
			if owner, taken := m.commands[label]; taken {
				return fmt.Errorf("plugin %q command %q conflicts with plugin %q", name, label, owner.owner.desc.Name)
			}
			if _, dup := index[label]; dup {
				return fmt.Errorf("plugin %q declares command %q twice", name, label)
			}
			index[label] = c
		}
	}

	for label, c := range index {
		m.commands[label] = c
	}
	m.seen[key] = e
	m.entries = append(m.entries, e)
	logger.DebugCF("plugin", "Plugin registered", map[string]any{
		"plugin":   name,
		"version":  desc.Version,
		"commands": len(desc.Commands),
	})
	return nil
}

// RegisterAll loads plugins sequentially.
func (m *Manager) RegisterAll(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := m.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// EnableAll enables registered plugins in registration order. A plugin whose
// enable callback panics stays disabled; the others are still enabled.
func (m *Manager) EnableAll(ctx context.Context) error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()

	var (
		enabled []*entry
		errs    []error
	)
	for _, e := range m.snapshot() {
		if m.isEnabled(e) {
			continue
		}
		if err := safeCall(e.plugin.OnLoadEnable); err != nil {
			logger.ErrorCF("plugin", "Error occurred while enabling plugin", map[string]any{
				"plugin": e.desc.Name,
				"error":  err.Error(),
			})
			errs = append(errs, fmt.Errorf("enable plugin %q: %w", e.desc.Name, err))
			continue
		}
		m.setEnabled(e, true)
		enabled = append(enabled, e)
	}

	for _, e := range enabled {
		m.registry.TriggerPluginEnabled(ctx, &hooks.PluginEvent{Plugin: e.desc.Name, Version: e.desc.Version})
	}
	return errors.Join(errs...)
}

// DisableAll disables enabled plugins in reverse registration order.
// A plugin is marked disabled even if its disable callback panics.
func (m *Manager) DisableAll(ctx context.Context) error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()

	var (
		disabled []*entry
		errs     []error
	)
	entries := m.snapshot()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !m.isEnabled(e) {
			continue
		}
		m.setEnabled(e, false)
		disabled = append(disabled, e)
		if err := safeCall(e.plugin.OnUnloadDisable); err != nil {
			logger.ErrorCF("plugin", "Error occurred while disabling plugin", map[string]any{
				"plugin": e.desc.Name,
				"error":  err.Error(),
			})
			errs = append(errs, fmt.Errorf("disable plugin %q: %w", e.desc.Name, err))
		}
	}

	for _, e := range disabled {
		m.registry.TriggerPluginDisabled(ctx, &hooks.PluginEvent{Plugin: e.desc.Name, Version: e.desc.Version})
	}
	return errors.Join(errs...)
}

func (m *Manager) snapshot() []*entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.entries)
}

func (m *Manager) isEnabled(e *entry) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return e.enabled
}

func (m *Manager) setEnabled(e *entry, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.enabled = enabled
}

func safeCall(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
