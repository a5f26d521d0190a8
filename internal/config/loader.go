package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/echoarea"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Booleans are
// pointers and durations are strings so absent keys keep their
// defaults.
type rawConfig struct {
	Region rawRegionConfig `json:"region"`
	UI     rawUIConfig     `json:"ui"`
	Editor rawEditorConfig `json:"editor"`
}

type rawRegionConfig struct {
	MaxLines    *int   `json:"maxLines"`
	Duration    string `json:"duration"`
	RemoveOnKey *bool  `json:"removeOnKey"`
	ClearAlways *bool  `json:"clearAlways"`
}

type rawUIConfig struct {
	Ruler   *bool  `json:"ruler"`
	ShowCmd *bool  `json:"showcmd"`
	Theme   string `json:"theme"`
}

type rawEditorConfig struct {
	TabWidth    *int `json:"tabWidth"`
	HistorySize *int `json:"historySize"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/echoarea/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Region
	if raw.Region.MaxLines != nil {
		cfg.Region.MaxLines = *raw.Region.MaxLines
	}
	if raw.Region.Duration != "" {
		if d, err := time.ParseDuration(raw.Region.Duration); err == nil {
			if d < MinDuration {
				slog.Warn("region.duration below floor, clamping", "configured", d, "floor", MinDuration)
				d = MinDuration
			}
			cfg.Region.Duration = d
		} else {
			slog.Warn("invalid region.duration, keeping default", "value", raw.Region.Duration)
		}
	}
	if raw.Region.RemoveOnKey != nil {
		cfg.Region.RemoveOnKey = *raw.Region.RemoveOnKey
	}
	if raw.Region.ClearAlways != nil {
		cfg.Region.ClearAlways = *raw.Region.ClearAlways
	}

	// UI
	if raw.UI.Ruler != nil {
		cfg.UI.Ruler = *raw.UI.Ruler
	}
	if raw.UI.ShowCmd != nil {
		cfg.UI.ShowCmd = *raw.UI.ShowCmd
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}

	// Editor
	if raw.Editor.TabWidth != nil {
		cfg.Editor.TabWidth = *raw.Editor.TabWidth
	}
	if raw.Editor.HistorySize != nil {
		cfg.Editor.HistorySize = *raw.Editor.HistorySize
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
