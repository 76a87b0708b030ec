package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Theme  string `json:"theme"`
	Sound  bool   `json:"sound"`
	Volume int    `json:"volume"`
	Shadow bool   `json:"shadow"`
	Scale  int    `json:"scale"`
}

func defaultConfig() Config {
	return Config{
		Theme:  themes[0].Name,
		Sound:  true,
		Volume: 70,
		Shadow: true,
		Scale:  1,
	}
}

func (c Config) normalized() Config {
	if themeIndexByName(c.Theme) < 0 {
		c.Theme = themes[0].Name
	}
	c.Scale = clampScale(c.Scale)
	c.Volume = clampVolumePercent(c.Volume)
	return c
}

// loadConfig returns defaults when no file exists yet. A malformed file is
// reported but the defaults are still usable.
func loadConfig() (Config, error) {
	config := defaultConfig()
	path, err := configPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return config.normalized(), nil
}

func saveConfig(config Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(config.normalized(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configDir() (string, error) {
	dir := strings.TrimSpace(os.Getenv(envConfigDir))
	if dir == "" {
		root, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locate config dir: %w", err)
		}
		dir = filepath.Join(root, "tetris-tui")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
