package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/example/myplugin/pkg/config"
	"github.com/example/myplugin/pkg/logger"
	"github.com/example/myplugin/pkg/plugin"
	"github.com/example/myplugin/pkg/plugin/builtin"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string

	configPathOverride string
)

// SetConfigPath makes GetConfigPath return path instead of the default.
func SetConfigPath(path string) {
	configPathOverride = path
}

func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".myplugin", "config.json")
}

func LoadConfig() (*config.Config, error) {
	return config.LoadConfig(GetConfigPath())
}

// SetupLogging applies the configured level and optional log file.
func SetupLogging(cfg *config.Config) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if cfg.Log.File != "" {
		if err := logger.EnableFileLogging(cfg.Log.File); err != nil {
			return err
		}
	}
	return nil
}

// LoadPlugins resolves the configured builtin plugins and registers them
// with a fresh manager.
func LoadPlugins(cfg *config.Config) (*plugin.Manager, builtin.Summary, error) {
	plugins, summary, err := builtin.Resolve(cfg.Plugins.Enabled, cfg.Plugins.Disabled, nil)
	if err != nil {
		return nil, summary, err
	}
	for _, name := range summary.UnknownEnabled {
		logger.WarnCF("plugin", "Unknown plugin in enabled list", map[string]any{"plugin": name})
	}

	m := plugin.NewManager()
	if err := m.RegisterAll(plugins...); err != nil {
		return nil, summary, fmt.Errorf("registering plugins: %w", err)
	}
	return m, summary, nil
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}
