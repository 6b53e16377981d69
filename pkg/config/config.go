// Package config provides configuration management.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"SnapSheet/pkg/sheet"
)

// Config holds all configuration settings
type Config struct {
	// Documentation fields (present in JSON only)
	PanelDoc string `json:"// panel,omitempty"`
	UIDoc    string `json:"// ui,omitempty"`
	LogDoc   string `json:"// log,omitempty"`

	Panel PanelConfig `json:"panel"`
	UI    UIConfig    `json:"ui"`
	Log   LogConfig   `json:"log"`
}

// PanelConfig holds bottom sheet geometry, measured in terminal rows.
type PanelConfig struct {
	MinHeight      int      `json:"min_height"`
	Detents        []string `json:"detents"`        // "6", "40%", "medium", "large"
	InitialDetent  string   `json:"initial_detent"` // Resting height at startup
	TopInset       int      `json:"top_inset"`      // Rows kept free above a fully raised sheet
	CancelRestores bool     `json:"cancel_restores"`
	Animate        bool     `json:"animate"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme         string `json:"theme"` // "dark", "light", "auto"
	ShowDragDebug bool   `json:"show_drag_debug"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `json:"level"` // DEBUG, INFO, WARN, ERROR
	Dir   string `json:"dir"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PanelDoc: "Bottom sheet geometry in terminal rows. Detents: N rows, N%, medium, large",
		UIDoc:    "Terminal UI theme and debug overlay",
		LogDoc:   "Debug log level and directory",

		Panel: PanelConfig{
			MinHeight:      6,
			Detents:        []string{"6", "medium", "large"},
			InitialDetent:  "medium",
			TopInset:       1,
			CancelRestores: true,
			Animate:        true,
		},

		UI: UIConfig{
			Theme:         "dark",
			ShowDragDebug: false,
		},

		Log: LogConfig{
			Level: "INFO",
			Dir:   ".snapsheet",
		},
	}
}

// GetConfigPaths returns a prioritized list of configuration file paths
func GetConfigPaths(cliPath string) []string {
	var paths []string

	// 1. CLI Override
	if cliPath != "" {
		paths = append(paths, cliPath)
		return paths // If explicit, only use that
	}

	// 2. Project local paths
	paths = append(paths, ".snapsheet/config.json")
	paths = append(paths, "config.json")

	// 3. User global path
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".snapsheet", "config.json"))
	}

	return paths
}

// Load loads configuration from the first available path in the prioritized list
func Load(cliPath string) (*Config, string, error) {
	loadDotEnv(".env")

	paths := GetConfigPaths(cliPath)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			cfg := DefaultConfig()
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, path, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
			}
			applyEnvOverrides(cfg)
			if err := cfg.Validate(); err != nil {
				return nil, path, fmt.Errorf("configuration validation failed in %s: %w", path, err)
			}
			return cfg, path, nil
		}
	}

	// No config found: use defaults and save them where an explicit path or
	// the project-local path points.
	defaultPath := ".snapsheet/config.json"
	if cliPath != "" {
		defaultPath = cliPath
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, defaultPath, fmt.Errorf("default configuration validation failed: %w", err)
	}

	return cfg, defaultPath, cfg.Save(defaultPath)
}

// allowedEnvVars is a whitelist of environment variable names that may be set from .env
var allowedEnvVars = map[string]bool{
	"SNAPSHEET_MIN_HEIGHT": true,
	"SNAPSHEET_DETENTS":    true,
	"SNAPSHEET_LOG_LEVEL":  true,
	"SNAPSHEET_THEME":      true,
}

// loadDotEnv loads environment variables from a .env file
func loadDotEnv(envFile string) {
	file, err := os.Open(envFile)
	if err != nil {
		return // .env doesn't exist, that's ok
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !allowedEnvVars[key] {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Set environment variable (only if not already set)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				fmt.Printf("Warning: failed to set environment variable %s: %v\n", key, err)
			}
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SNAPSHEET_MIN_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Panel.MinHeight = n
		}
	}

	if v := os.Getenv("SNAPSHEET_DETENTS"); v != "" {
		var detents []string
		for _, d := range strings.Split(v, ",") {
			if d = strings.TrimSpace(d); d != "" {
				detents = append(detents, d)
			}
		}
		cfg.Panel.Detents = detents
	}

	if v := os.Getenv("SNAPSHEET_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToUpper(v)
	}

	if v := os.Getenv("SNAPSHEET_THEME"); v != "" {
		cfg.UI.Theme = strings.ToLower(v)
	}
}

// ParsedDetents returns the configured detents in parsed form.
func (c *Config) ParsedDetents() ([]sheet.Detent, error) {
	return sheet.ParseDetents(c.Panel.Detents)
}

// GetInitialDetent returns the startup detent, defaulting to "medium".
func (c *Config) GetInitialDetent() sheet.Detent {
	if d, err := sheet.ParseDetent(c.Panel.InitialDetent); err == nil {
		return d
	}
	return sheet.Medium
}

// GetCancelPolicy maps CancelRestores onto the controller's cancel policy.
func (c *Config) GetCancelPolicy() sheet.CancelPolicy {
	if c.Panel.CancelRestores {
		return sheet.CancelRestore
	}
	return sheet.CancelSnap
}

// GetLogDir returns the log directory, defaulting to ".snapsheet".
func (c *Config) GetLogDir() string {
	if c.Log.Dir != "" {
		return c.Log.Dir
	}
	return ".snapsheet"
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if err := validatePanel(c.Panel); err != nil {
		return fmt.Errorf("invalid panel settings: %w", err)
	}

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("theme must be dark, light or auto, got %q", c.UI.Theme)
	}

	if err := validateLogLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// validatePanel checks the parts of the panel geometry that do not depend on
// the terminal size. Bounds are checked again when the controller is built.
func validatePanel(p PanelConfig) error {
	if p.MinHeight < 1 {
		return fmt.Errorf("min_height must be at least 1, got %d", p.MinHeight)
	}
	if p.TopInset < 0 {
		return fmt.Errorf("top_inset must not be negative, got %d", p.TopInset)
	}
	if len(p.Detents) == 0 {
		return fmt.Errorf("at least one detent is required")
	}
	detents, err := sheet.ParseDetents(p.Detents)
	if err != nil {
		return err
	}
	for _, d := range detents {
		if d.Kind == sheet.DetentFixed && d.Value < float64(p.MinHeight) {
			return fmt.Errorf("detent %s is below min_height %d", d, p.MinHeight)
		}
	}
	if p.InitialDetent != "" {
		if _, err := sheet.ParseDetent(p.InitialDetent); err != nil {
			return fmt.Errorf("initial_detent: %w", err)
		}
	}
	return nil
}

func validateLogLevel(level string) error {
	switch strings.ToUpper(level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	}
	return fmt.Errorf("log level must be DEBUG, INFO, WARN or ERROR, got %q", level)
}
