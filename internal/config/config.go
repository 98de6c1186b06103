// Package config holds presentation preferences: theme and layout only,
// never calculator state.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const DefaultTheme = "retro"

type Config struct {
	Theme       string `yaml:"theme" env:"DESKCALC_THEME"`
	Keypad      bool   `yaml:"keypad" env:"DESKCALC_KEYPAD"`
	CompactHelp bool   `yaml:"compact_help" env:"DESKCALC_COMPACT_HELP"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:  DefaultTheme,
		Keypad: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromEnv overlays DESKCALC_* environment variables onto cfg. Unset
// variables leave the current values alone.
func FromEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
