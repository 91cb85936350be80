// Package config provides configuration management.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"DesiresAfterDuties/pkg/text"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds all configuration settings
type Config struct {
	// Language the survey opens in ("en" or "bn")
	Language string `json:"language" env:"SURVEY_LANGUAGE"`

	// QuestionsFile overrides the embedded question bank (YAML)
	QuestionsFile string `json:"questions_file,omitempty" env:"SURVEY_QUESTIONS_FILE"`

	UI  UIConfig  `json:"ui"`
	Log LogConfig `json:"log"`
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	AnimationIntervalMS int      `json:"animation_interval_ms" env:"SURVEY_ANIMATION_INTERVAL_MS"`
	Palette             []string `json:"palette,omitempty" env:"SURVEY_PALETTE" envSeparator:","`
	CellWidth           int      `json:"cell_width" env:"SURVEY_CELL_WIDTH"` // pixels per terminal column, for the title size tiers
	AltScreen           bool     `json:"alt_screen" env:"SURVEY_ALT_SCREEN"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `json:"level" env:"SURVEY_LOG_LEVEL"` // DEBUG, INFO, WARN, ERROR
	Dir   string `json:"dir" env:"SURVEY_LOG_DIR"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Language: text.Default.Code(),
		UI: UIConfig{
			AnimationIntervalMS: 100,
			CellWidth:           10,
			AltScreen:           true,
		},
		Log: LogConfig{
			Level: "INFO",
			Dir:   ".survey",
		},
	}
}

// GetConfigPaths returns a prioritized list of configuration file paths
func GetConfigPaths(cliPath string) []string {
	if cliPath != "" {
		return []string{cliPath}
	}

	paths := []string{
		".survey/config.json",
		"config.json",
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".survey", "config.json"))
	}
	return paths
}

// Load reads the first configuration file found, applies .env and
// environment overrides and validates the result. The returned path is the
// file that was used, or empty when running on defaults.
func Load(cliPath string) (*Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	used := ""
	for _, path := range GetConfigPaths(cliPath) {
		data, err := os.ReadFile(path)
		if err != nil {
			if cliPath != "" {
				return nil, path, fmt.Errorf("read config file %s: %w", path, err)
			}
			continue
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, path, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
		}
		used = path
		break
	}

	if err := env.Parse(cfg); err != nil {
		return nil, used, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		if used == "" {
			return nil, used, fmt.Errorf("configuration validation failed: %w", err)
		}
		return nil, used, fmt.Errorf("configuration validation failed in %s: %w", used, err)
	}
	return cfg, used, nil
}

// StartLanguage returns the parsed starting language.
func (c *Config) StartLanguage() text.Language {
	lang, err := text.ParseLanguage(c.Language)
	if err != nil {
		return text.Default
	}
	return lang
}

// AnimationInterval returns the frame interval.
func (c *Config) AnimationInterval() time.Duration {
	return time.Duration(c.UI.AnimationIntervalMS) * time.Millisecond
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if _, err := text.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("invalid language: %w", err)
	}

	if c.UI.AnimationIntervalMS < 10 || c.UI.AnimationIntervalMS > 5000 {
		return fmt.Errorf("animation_interval_ms must be between 10 and 5000, got %d", c.UI.AnimationIntervalMS)
	}
	if c.UI.CellWidth < 1 || c.UI.CellWidth > 100 {
		return fmt.Errorf("cell_width must be between 1 and 100, got %d", c.UI.CellWidth)
	}
	for _, hex := range c.UI.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("invalid palette colour %q", hex)
		}
	}

	switch strings.ToUpper(c.Log.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("log level must be DEBUG, INFO, WARN or ERROR, got %q", c.Log.Level)
	}
	if c.Log.Dir == "" {
		return fmt.Errorf("log dir is required")
	}
	return nil
}
