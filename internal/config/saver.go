package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Region saveRegionConfig `json:"region"`
	UI     saveUIConfig     `json:"ui"`
	Editor saveEditorConfig `json:"editor"`
}

type saveRegionConfig struct {
	MaxLines    int    `json:"maxLines"`
	Duration    string `json:"duration"`
	RemoveOnKey *bool  `json:"removeOnKey"`
	ClearAlways *bool  `json:"clearAlways"`
}

type saveUIConfig struct {
	Ruler   *bool  `json:"ruler"`
	ShowCmd *bool  `json:"showcmd"`
	Theme   string `json:"theme,omitempty"`
}

type saveEditorConfig struct {
	TabWidth    int `json:"tabWidth"`
	HistorySize int `json:"historySize"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Region: saveRegionConfig{
			MaxLines:    cfg.Region.MaxLines,
			Duration:    cfg.Region.Duration.String(),
			RemoveOnKey: &cfg.Region.RemoveOnKey,
			ClearAlways: &cfg.Region.ClearAlways,
		},
		UI: saveUIConfig{
			Ruler:   &cfg.UI.Ruler,
			ShowCmd: &cfg.UI.ShowCmd,
			Theme:   cfg.UI.Theme,
		},
		Editor: saveEditorConfig{
			TabWidth:    cfg.Editor.TabWidth,
			HistorySize: cfg.Editor.HistorySize,
		},
	}
}

// Save writes the config to ~/.config/echoarea/config.json
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to a specific path, preserving any keys in
// the existing file that this version does not manage.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Merge over existing raw JSON so unknown keys survive a save.
	merged := map[string]json.RawMessage{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &merged)
	}

	sc := toSaveConfig(cfg)
	managed, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	var managedKeys map[string]json.RawMessage
	if err := json.Unmarshal(managed, &managedKeys); err != nil {
		return err
	}
	for k, v := range managedKeys {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
