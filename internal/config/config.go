package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	Figures FiguresConfig `toml:"figures"`
	History HistoryConfig `toml:"history"`
	Display DisplayConfig `toml:"display"`
}

type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type FiguresConfig struct {
	Dir string `toml:"dir"`
}

type HistoryConfig struct {
	DBPath string `toml:"db_path"`
}

type DisplayConfig struct {
	Color bool `toml:"color"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Canvas: CanvasConfig{
			Width:  32,
			Height: 16,
		},
		Figures: FiguresConfig{
			Dir: filepath.Join(home, ".config", "penplot", "figures"),
		},
		History: HistoryConfig{
			DBPath: filepath.Join(home, ".local", "share", "penplot", "history.db"),
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}

// Load reads config from file, merging with defaults. Returns defaults if file missing.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := configPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func configPath() string {
	if p := os.Getenv("PENPLOT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "penplot", "config.toml")
}
