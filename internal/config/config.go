// relnotes - Changelog release-notes toolkit
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/relnotes

// Package config provides hierarchical configuration management for relnotes using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.relnotes/config.yml) > user config (~/.config/relnotes/config.yml) > defaults.
// Both YAML and JSON file formats are supported; YAML wins when both exist.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigSource tracks where a configuration value came from
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceUser    ConfigSource = "user"
	SourceProject ConfigSource = "project"
	SourceEnv     ConfigSource = "env"
)

// Configuration represents the relnotes CLI tool configuration
type Configuration struct {
	// Changelog overrides where the changelog document is read from.
	// Accepts a local path or an HTTP(S) URL. Empty means the default
	// location: CHANGELOG.md one directory above the relnotes binary.
	// Can be set via RELNOTES_CHANGELOG env var.
	Changelog string `koanf:"changelog"`

	// Plain disables colors and icons in rendered output.
	// Can be set via RELNOTES_PLAIN env var.
	Plain bool `koanf:"plain"`

	// Sort controls section ordering for the list command.
	// Valid values: "document" (file order), "semver" (newest first).
	Sort string `koanf:"sort"`

	// RequireDates makes verify insist on a YYYY-MM-DD release date
	// for every released section.
	RequireDates bool `koanf:"require_dates"`

	// WatchInterval is the backup polling interval for the watch command.
	// fsnotify events are primary; polling catches editors that bypass them.
	WatchInterval time.Duration `koanf:"watch_interval"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relnotes/config.yml)
	ProjectConfigPath string
	// WarningWriter receives configuration warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses configuration warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
//
// Config paths:
//   - User config: ~/.config/relnotes/config.yml (XDG compliant)
//   - Project config: .relnotes/config.yml
//
// JSON variants (config.json) are read when no YAML file exists.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}
}

// loadUserConfig loads user-level config (YAML preferred, JSON supported).
// Priority: YAML (~/.config/relnotes/config.yml) > JSON (~/.config/relnotes/config.json).
// Warns if both exist (YAML used, JSON ignored).
func loadUserConfig(k *koanf.Koanf, warningWriter io.Writer, skipWarnings bool) error {
	userYAMLPath, _ := UserConfigPath()
	userJSONPath, _ := UserJSONConfigPath()

	return loadLayer(k, userYAMLPath, userJSONPath, "user", warningWriter, skipWarnings)
}

// loadProjectConfig loads project-level config (YAML preferred, JSON supported).
// Supports custom path override (for testing and the --config flag).
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	projectYAMLPath := ProjectConfigPath()
	if customPath != "" {
		projectYAMLPath = customPath
	}
	projectJSONPath := ProjectJSONConfigPath()

	return loadLayer(k, projectYAMLPath, projectJSONPath, "project", warningWriter, skipWarnings)
}

// loadLayer loads one config layer, preferring the YAML path over the JSON path.
func loadLayer(k *koanf.Koanf, yamlPath, jsonPath, configType string, warningWriter io.Writer, skipWarnings bool) error {
	yamlExists := fileExists(yamlPath)
	jsonExists := fileExists(jsonPath)

	if yamlExists {
		if err := loadYAMLConfig(k, yamlPath, configType); err != nil {
			return fmt.Errorf("loading %s YAML config: %w", configType, err)
		}
		if jsonExists && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: both %s and %s exist (using %s)\n", yamlPath, jsonPath, yamlPath)
		}
		return nil
	}

	if jsonExists {
		if err := k.Load(file.Provider(jsonPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", configType, jsonPath, err)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("RELNOTES_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Changelog = expandHomePath(cfg.Changelog)

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: RELNOTES_REQUIRE_DATES -> require_dates
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELNOTES_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
