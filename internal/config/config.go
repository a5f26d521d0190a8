package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Region RegionConfig `json:"region"`
	UI     UIConfig     `json:"ui"`
	Editor EditorConfig `json:"editor"`
}

// RegionConfig controls the transient echo-area height manager.
type RegionConfig struct {
	MaxLines    int           `json:"maxLines"`    // hard cap on region growth
	Duration    time.Duration `json:"duration"`    // how long a grown region lingers
	RemoveOnKey bool          `json:"removeOnKey"` // wait for a key press after the timer fires
	ClearAlways bool          `json:"clearAlways"` // clear/revert cycle for every message
}

// UIConfig holds display settings.
type UIConfig struct {
	Ruler   bool   `json:"ruler"`   // line:col indicator in the status line
	ShowCmd bool   `json:"showcmd"` // pending key display in the status line
	Theme   string `json:"theme"`   // color theme name
}

// EditorConfig holds buffer and history settings.
type EditorConfig struct {
	TabWidth    int `json:"tabWidth"`    // columns per tab stop in buffers
	HistorySize int `json:"historySize"` // message log capacity
}

// Defaults and limits applied by Validate and the loader.
const (
	MinDuration        = 100 * time.Millisecond
	DefaultMaxLines    = 5
	DefaultDuration    = 2 * time.Second
	DefaultTabWidth    = 8
	DefaultHistorySize = 200
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Region: RegionConfig{
			MaxLines:    DefaultMaxLines,
			Duration:    DefaultDuration,
			RemoveOnKey: true,
			ClearAlways: false,
		},
		UI: UIConfig{
			Ruler:   true,
			ShowCmd: true,
			Theme:   "default",
		},
		Editor: EditorConfig{
			TabWidth:    DefaultTabWidth,
			HistorySize: DefaultHistorySize,
		},
	}
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.Region.MaxLines < 1 {
		return fmt.Errorf("region.maxLines must be at least 1, got %d", c.Region.MaxLines)
	}
	if c.Region.Duration < MinDuration {
		return fmt.Errorf("region.duration must be at least %v, got %v", MinDuration, c.Region.Duration)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("editor.tabWidth must be at least 1, got %d", c.Editor.TabWidth)
	}
	if c.Editor.HistorySize < 1 {
		return fmt.Errorf("editor.historySize must be at least 1, got %d", c.Editor.HistorySize)
	}
	return nil
}
