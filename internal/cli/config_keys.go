package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relnotes/internal/config"
)

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all known configuration keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(config.KnownKeys))
		for name := range config.KnownKeys {
			names = append(names, name)
		}
		sort.Strings(names)

		out := cmd.OutOrStdout()
		for _, name := range names {
			schema := config.KnownKeys[name]
			fmt.Fprintf(out, "%s (%s, default: %s)\n    %s\n", name, schema.Type, formatDefault(schema.Default), schema.Description)
		}
	},
}

// formatDefault renders an empty string default as "" so the keys listing
// never shows a blank value.
func formatDefault(v interface{}) string {
	if s, ok := v.(string); ok && s == "" {
		return `""`
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	configCmd.AddCommand(configKeysCmd)
}
