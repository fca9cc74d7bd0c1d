package config

import (
	"fmt"
	"os"
	"strings"
)

// EffectiveValue resolves one known key to its effective value and the
// source layer that supplied it, mirroring Load's precedence:
// environment > project config > user config > default.
// projectConfigPath overrides the project config location when non-empty.
//
// Only the YAML config files are consulted, matching what the config
// editing commands write.
func EffectiveValue(key, projectConfigPath string) (string, ConfigSource, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return "", "", err
	}

	if value, ok := os.LookupEnv(envName(key)); ok {
		return value, SourceEnv, nil
	}

	projectPath := projectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath()
	}
	value, found, err := fileValue(projectPath, key)
	if err != nil {
		return "", "", err
	}
	if found {
		return value, SourceProject, nil
	}

	userPath, err := UserConfigPath()
	if err != nil {
		return "", "", err
	}
	value, found, err = fileValue(userPath, key)
	if err != nil {
		return "", "", err
	}
	if found {
		return value, SourceUser, nil
	}

	return fmt.Sprintf("%v", schema.Default), SourceDefault, nil
}

// envName maps a config key to its environment variable,
// e.g. "watch_interval" to "RELNOTES_WATCH_INTERVAL".
func envName(key string) string {
	return "RELNOTES_" + strings.ToUpper(key)
}

// fileValue reads one key from a YAML config file. A missing file or key
// is not an error.
func fileValue(path, key string) (string, bool, error) {
	node, err := GetConfigValue(path, key)
	if err != nil {
		return "", false, err
	}
	if node == nil {
		return "", false, nil
	}
	return node.Value, true, nil
}
