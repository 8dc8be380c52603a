package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

type LogConfig struct {
	Level string `json:"level" label:"Log Level" env:"MYPLUGIN_LOG_LEVEL"`
	File  string `json:"file" label:"Log File" env:"MYPLUGIN_LOG_FILE"`
}

type PluginsConfig struct {
	Enabled  []string `json:"enabled" label:"Enabled Plugins" env:"MYPLUGIN_PLUGINS_ENABLED"`
	Disabled []string `json:"disabled" label:"Disabled Plugins" env:"MYPLUGIN_PLUGINS_DISABLED"`
}

type ConsoleConfig struct {
	Prompt      string `json:"prompt" label:"Prompt" env:"MYPLUGIN_CONSOLE_PROMPT"`
	HistoryFile string `json:"history_file" label:"History File" env:"MYPLUGIN_CONSOLE_HISTORY_FILE"`
	Color       bool   `json:"color" label:"Color Output" env:"MYPLUGIN_CONSOLE_COLOR"`
}

type Config struct {
	Log     LogConfig     `json:"log" label:"Logging"`
	Plugins PluginsConfig `json:"plugins" label:"Plugins"`
	Console ConsoleConfig `json:"console" label:"Console"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Plugins: PluginsConfig{
			Enabled:  []string{},
			Disabled: []string{},
		},
		Console: ConsoleConfig{
			Prompt:      "> ",
			HistoryFile: filepath.Join(os.TempDir(), ".myplugin_history"),
			Color:       true,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Log.File = expandHome(cfg.Log.File)
	cfg.Console.HistoryFile = expandHome(cfg.Console.HistoryFile)
	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
