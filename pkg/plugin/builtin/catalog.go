package builtin

import (
	"fmt"
	"sort"

	"github.com/example/myplugin/pkg/logger"
	"github.com/example/myplugin/pkg/myplugin"
	"github.com/example/myplugin/pkg/plugin"
)

// Factory creates one builtin plugin instance bound to its host logger.
type Factory func(log plugin.Logger) plugin.Plugin

// LoggerFunc returns the logger handed to the named plugin.
type LoggerFunc func(pluginName string) plugin.Logger

func defaultLogger(pluginName string) plugin.Logger {
	return logger.ForComponent(pluginName)
}

// Entry is one compile-time builtin plugin.
type Entry struct {
	// Name is the display name, also used as the logger component.
	Name string
	New  Factory
}

// Catalog returns builtin plugins keyed by normalized name.
func Catalog() map[string]Entry {
	return map[string]Entry{
		plugin.NormalizeName(myplugin.Name): {
			Name: myplugin.Name,
			New: func(log plugin.Logger) plugin.Plugin {
				return myplugin.New(log)
			},
		},
	}
}

// Names returns sorted builtin plugin names.
func Names() []string {
	catalog := Catalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary reports how a plugin selection was resolved against the catalog.
type Summary struct {
	Enabled         []string
	Disabled        []string
	UnknownEnabled  []string
	UnknownDisabled []string
}

// Resolve instantiates the selected builtin plugins. An empty enabled list
// selects every builtin; a name in disabled always wins. A nil loggerFor
// logs through the host logger under the plugin's display name.
func Resolve(enabled, disabled []string, loggerFor LoggerFunc) ([]plugin.Plugin, Summary, error) {
	if loggerFor == nil {
		loggerFor = defaultLogger
	}
	catalog := Catalog()
	var summary Summary

	off := make(map[string]struct{}, len(disabled))
	for _, name := range disabled {
		name = plugin.NormalizeName(name)
		if name == "" {
			continue
		}
		off[name] = struct{}{}
		if _, ok := catalog[name]; !ok {
			summary.UnknownDisabled = append(summary.UnknownDisabled, name)
		}
	}

	want := make(map[string]struct{}, len(enabled))
	for _, name := range enabled {
		name = plugin.NormalizeName(name)
		if name == "" {
			continue
		}
		if _, ok := catalog[name]; !ok {
			summary.UnknownEnabled = append(summary.UnknownEnabled, name)
			continue
		}
		want[name] = struct{}{}
	}

	var instances []plugin.Plugin
	for _, name := range Names() {
		_, selected := want[name]
		if len(enabled) == 0 {
			selected = true
		}
		if _, isOff := off[name]; isOff || !selected {
			summary.Disabled = append(summary.Disabled, name)
			continue
		}

		e := catalog[name]
		instance := e.New(loggerFor(e.Name))
		if instance == nil {
			return nil, summary, fmt.Errorf("builtin plugin %q factory returned nil", name)
		}
		summary.Enabled = append(summary.Enabled, name)
		instances = append(instances, instance)
	}

	sort.Strings(summary.UnknownEnabled)
	sort.Strings(summary.UnknownDisabled)
	return instances, summary, nil
}
