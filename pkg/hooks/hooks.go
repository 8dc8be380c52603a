// MyPlugin - game-server plugin host harness
// License: MIT
//
// Copyright (c) 2026 MyPlugin contributors

package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/myplugin/pkg/logger"
)

// HookHandler is the callback signature for all hooks.
type HookHandler[T any] func(ctx context.Context, event *T) error

// HookRegistration tracks a handler with its priority and name.
type HookRegistration[T any] struct {
	Handler  HookHandler[T]
	Priority int // Lower = runs first
	Name     string
}

// HookRegistry manages plugin lifecycle and command hooks.
type HookRegistry struct {
	pluginEnabled     []HookRegistration[PluginEvent]
	pluginDisabled    []HookRegistration[PluginEvent]
	commandPreprocess []HookRegistration[CommandPreprocessEvent]
	commandExecuted   []HookRegistration[CommandEvent]
	mu                sync.RWMutex
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{}
}

// insertSorted inserts a registration into a new slice sorted by priority.
// Always allocates a new backing array so concurrent readers of the old slice are safe.
func insertSorted[T any](slice []HookRegistration[T], reg HookRegistration[T]) []HookRegistration[T] {
	i := 0
	for i < len(slice) && slice[i].Priority <= reg.Priority {
		i++
	}
	result := make([]HookRegistration[T], len(slice)+1)
	copy(result, slice[:i])
	result[i] = reg
	copy(result[i+1:], slice[i:])
	return result
}

// Registration methods

func (r *HookRegistry) OnPluginEnabled(name string, priority int, handler HookHandler[PluginEvent]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pluginEnabled = insertSorted(r.pluginEnabled, HookRegistration[PluginEvent]{
		Handler: handler, Priority: priority, Name: name,
	})
}

func (r *HookRegistry) OnPluginDisabled(name string, priority int, handler HookHandler[PluginEvent]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pluginDisabled = insertSorted(r.pluginDisabled, HookRegistration[PluginEvent]{
		Handler: handler, Priority: priority, Name: name,
	})
}

func (r *HookRegistry) OnCommandPreprocess(name string, priority int, handler HookHandler[CommandPreprocessEvent]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commandPreprocess = insertSorted(r.commandPreprocess, HookRegistration[CommandPreprocessEvent]{
		Handler: handler, Priority: priority, Name: name,
	})
}

func (r *HookRegistry) OnCommandExecuted(name string, priority int, handler HookHandler[CommandEvent]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commandExecuted = insertSorted(r.commandExecuted, HookRegistration[CommandEvent]{
		Handler: handler, Priority: priority, Name: name,
	})
}

// Trigger methods

// triggerVoid runs all handlers concurrently and waits for completion.
// Handlers MUST NOT mutate the event, it is shared across goroutines.
// Errors are logged but do not propagate to the caller.
func triggerVoid[T any](ctx context.Context, hooks []HookRegistration[T], event *T, hookName string) {
	if len(hooks) == 0 {
		return
	}
	var wg sync.WaitGroup
	for _, h := range hooks {
		wg.Add(1)
		go func(reg HookRegistration[T]) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorCF("hooks", "Hook panic",
						map[string]any{
							"hook":    hookName,
							"handler": reg.Name,
							"panic":   fmt.Sprintf("%v", r),
						})
				}
			}()
			if err := reg.Handler(ctx, event); err != nil {
				logger.WarnCF("hooks", "Hook error",
					map[string]any{
						"hook":    hookName,
						"handler": reg.Name,
						"error":   err.Error(),
					})
			}
		}(h)
	}
	wg.Wait()
}

// triggerModifying runs handlers sequentially by priority, stopping if Cancel is set.
func triggerModifying[T any](ctx context.Context, hooks []HookRegistration[T], event *T, hookName string, cancelCheck func(*T) bool) {
	for _, h := range hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorCF("hooks", "Hook panic",
						map[string]any{
							"hook":    hookName,
							"handler": h.Name,
							"panic":   fmt.Sprintf("%v", r),
						})
				}
			}()
			if err := h.Handler(ctx, event); err != nil {
				logger.WarnCF("hooks", "Hook error",
					map[string]any{
						"hook":    hookName,
						"handler": h.Name,
						"error":   err.Error(),
					})
			}
		}()
		if cancelCheck(event) {
			logger.DebugCF("hooks", "Hook canceled operation",
				map[string]any{
					"hook":    hookName,
					"handler": h.Name,
				})
			return
		}
	}
}

// TriggerPluginEnabled fires all plugin_enabled handlers concurrently.
func (r *HookRegistry) TriggerPluginEnabled(ctx context.Context, event *PluginEvent) {
	r.mu.RLock()
	hooks := r.pluginEnabled
	r.mu.RUnlock()
	triggerVoid(ctx, hooks, event, "plugin_enabled")
}

// TriggerPluginDisabled fires all plugin_disabled handlers concurrently.
func (r *HookRegistry) TriggerPluginDisabled(ctx context.Context, event *PluginEvent) {
	r.mu.RLock()
	hooks := r.pluginDisabled
	r.mu.RUnlock()
	triggerVoid(ctx, hooks, event, "plugin_disabled")
}

func (r *HookRegistry) TriggerCommandPreprocess(ctx context.Context, event *CommandPreprocessEvent) {
	r.mu.RLock()
	hooks := r.commandPreprocess
	r.mu.RUnlock()
	triggerModifying(ctx, hooks, event, "command_preprocess", func(e *CommandPreprocessEvent) bool {
		return e.Cancel
	})
}

// TriggerCommandExecuted fires all command_executed handlers concurrently.
// Handlers must not mutate the event.
func (r *HookRegistry) TriggerCommandExecuted(ctx context.Context, event *CommandEvent) {
	r.mu.RLock()
	hooks := r.commandExecuted
	r.mu.RUnlock()
	triggerVoid(ctx, hooks, event, "command_executed")
}
