package config

import "time"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# Relnotes Configuration
# See 'relnotes config -h' for commands, 'relnotes config keys' for all options

# Changelog location
changelog: ""                         # Path or HTTP(S) URL (empty = CHANGELOG.md next to the install dir)

# Output settings
plain: false                          # Plain text output (no colors/icons)

# List settings
sort: document                        # Section order: document | semver

# Verify settings
require_dates: true                   # Released sections must carry a YYYY-MM-DD date

# Watch settings
watch_interval: 500ms                 # Backup polling interval (e.g. 500ms, 2s)
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// changelog: Empty means the executable-relative default, i.e.
		// CHANGELOG.md one directory above the directory holding the binary.
		"changelog": "",
		"plain":     false,
		// sort: "document" keeps sections in file order; "semver" orders
		// newest-first and is what release dashboards usually want.
		"sort":          "document",
		"require_dates": true,
		// watch_interval: fsnotify misses events from some editors that
		// write via rename, so watch also polls at this interval.
		"watch_interval": (500 * time.Millisecond).String(),
	}
}
