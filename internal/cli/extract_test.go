package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: Command tests cannot run in parallel because they drive the global
// rootCmd, whose flags are bound to package variables. Each test isolates
// its working directory and config environment instead, and runCommand
// restores flag defaults when the test finishes.

const releaseChangelog = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

### Added
- Dark mode toggle

## [1.2.0] - 2024-03-15

### Added
- CSV export for reports
- Keyboard shortcuts for navigation

### Fixed
- Crash when opening empty projects

## [1.1.0] - 2024-02-01

### Changed
- Faster startup by lazy-loading plugins

## [1.0.0] - 2024-01-01

Initial release.

[Unreleased]: https://example.com/compare/v1.2.0...HEAD
[1.2.0]: https://example.com/compare/v1.1.0...v1.2.0
`

// wantSection120 is the exact file form extract writes for 1.2.0 above.
const wantSection120 = `## [1.2.0] - 2024-03-15

### Added
- CSV export for reports
- Keyboard shortcuts for navigation

### Fixed
- Crash when opening empty projects
`

// testWorkspace moves the test into a fresh temp directory and points config
// lookups away from the developer's real files.
func testWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("HOME", dir)

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	return dir
}

func writeChangelog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCommand executes the CLI with the given arguments and returns what it
// wrote to stdout and stderr.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(resetCommandState)

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// resetCommandState restores flag defaults across the command tree. Flag
// values and their Changed state live in package globals bound once in init,
// so they leak between executions otherwise.
func resetCommandState() {
	rootCmd.SetArgs(nil)
	resetFlags(rootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestExtractCmdRegistration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "extract <version> <output_path>" {
			found = true
			assert.Equal(t, GroupExtraction, cmd.GroupID)
			break
		}
	}
	assert.True(t, found, "extract command should be registered")
}

func TestExtractCommand_WritesSection(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, releaseChangelog)
	outPath := filepath.Join(dir, "dist", "release", "notes.md")

	stdout, stderr, err := runCommand(t, "extract", "v1.2.0", outPath, "--changelog", path)

	require.NoError(t, err)
	assert.Empty(t, stdout, "extract should be silent on success")
	assert.Empty(t, stderr)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err, "missing parent directories should have been created")
	assert.Equal(t, wantSection120, string(data))
}

func TestExtractCommand_OverwritesExistingFile(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, releaseChangelog)
	outPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(outPath, []byte("stale notes\n"), 0o644))

	_, _, err := runCommand(t, "extract", "1.2.0", outPath, "--changelog", path)

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, wantSection120, string(data))
}

func TestExtractCommand_VersionForms(t *testing.T) {
	tests := map[string]struct {
		changelog   string
		version     string
		wantHeading string
		wantBody    string
	}{
		"v prefix against bracketed heading": {
			changelog:   releaseChangelog,
			version:     "v1.1.0",
			wantHeading: "## [1.1.0] - 2024-02-01",
			wantBody:    "### Changed\n- Faster startup by lazy-loading plugins",
		},
		"bare version against bracketed heading": {
			changelog:   releaseChangelog,
			version:     "1.1.0",
			wantHeading: "## [1.1.0] - 2024-02-01",
			wantBody:    "### Changed\n- Faster startup by lazy-loading plugins",
		},
		"heading without brackets or date": {
			changelog:   "# Changelog\n\n## 2.0.0\n\nBig rewrite.\n",
			version:     "v2.0.0",
			wantHeading: "## 2.0.0",
			wantBody:    "Big rewrite.",
		},
		"unreleased section by name": {
			changelog:   releaseChangelog,
			version:     "Unreleased",
			wantHeading: "## [Unreleased]",
			wantBody:    "### Added\n- Dark mode toggle",
		},
		"only the first v is stripped": {
			changelog:   "# Changelog\n\n## v1\n\nStill here.\n",
			version:     "vv1",
			wantHeading: "## v1",
			wantBody:    "Still here.",
		},
		"regex metacharacters in version are literal": {
			changelog:   "# Changelog\n\n## [1.0.0-rc.1] - 2024-01-01\n\nCandidate.\n",
			version:     "1.0.0-rc.1",
			wantHeading: "## [1.0.0-rc.1] - 2024-01-01",
			wantBody:    "Candidate.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := testWorkspace(t)
			path := writeChangelog(t, dir, tt.changelog)
			outPath := filepath.Join(dir, "notes.md")

			_, _, err := runCommand(t, "extract", tt.version, outPath, "--changelog", path)

			require.NoError(t, err)
			data, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeading+"\n\n"+tt.wantBody+"\n", string(data))
		})
	}
}

func TestExtractCommand_FirstMatchWins(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, `# Changelog

## [3.0.0] - 2024-05-01

First occurrence.

## [3.0.0] - 2024-05-01

Second occurrence.
`)
	outPath := filepath.Join(dir, "notes.md")

	_, _, err := runCommand(t, "extract", "3.0.0", outPath, "--changelog", path)

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "First occurrence.")
	assert.NotContains(t, string(data), "Second occurrence.")
}

func TestExtractCommand_SubHeadingsDoNotEndSection(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, `# Changelog

## [0.5.0] - 2024-04-01

### Added
- One

### Removed
- Two
`)
	outPath := filepath.Join(dir, "notes.md")

	_, _, err := runCommand(t, "extract", "0.5.0", outPath, "--changelog", path)

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "## [0.5.0] - 2024-04-01\n\n### Added\n- One\n\n### Removed\n- Two\n", string(data))
}

func TestExtractCommand_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"no arguments":   {"extract"},
		"one argument":   {"extract", "v1.2.0"},
		"three arguments": {"extract", "v1.2.0", "out.md", "extra"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			dir := testWorkspace(t)

			_, _, err := runCommand(t, args...)

			require.Error(t, err)
			assert.Equal(t, "usage: relnotes extract <version> <output_path>", err.Error())
			assert.NoFileExists(t, filepath.Join(dir, "out.md"))
		})
	}
}

func TestExtractCommand_Failures(t *testing.T) {
	tests := map[string]struct {
		changelog string
		version   string
		wantErr   string
	}{
		"version not found": {
			changelog: releaseChangelog,
			version:   "9.9.9",
			wantErr:   "changelog entry for 9.9.9 not found",
		},
		"v prefix normalized in diagnostics": {
			changelog: releaseChangelog,
			version:   "v9.9.9",
			wantErr:   "changelog entry for 9.9.9 not found",
		},
		"empty section": {
			changelog: "# Changelog\n\n## [0.2.0] - 2024-01-02\n\n## [0.1.0] - 2024-01-01\n\nFirst.\n",
			version:   "0.2.0",
			wantErr:   "changelog entry for 0.2.0 is empty",
		},
		"empty version after normalization": {
			changelog: releaseChangelog,
			version:   "v",
			wantErr:   "version must be non-empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := testWorkspace(t)
			path := writeChangelog(t, dir, tt.changelog)
			outPath := filepath.Join(dir, "notes.md")

			_, _, err := runCommand(t, "extract", tt.version, outPath, "--changelog", path)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.NoFileExists(t, outPath, "failed extraction must not produce output")
			assert.Equal(t, ExitFailure, ExitCode(err))
		})
	}
}

func TestExtractCommand_MissingChangelog(t *testing.T) {
	dir := testWorkspace(t)
	missing := filepath.Join(dir, "CHANGELOG.md")
	outPath := filepath.Join(dir, "notes.md")

	_, _, err := runCommand(t, "extract", "1.0.0", outPath, "--changelog", missing)

	require.Error(t, err)
	assert.Equal(t, "changelog not found at "+missing, err.Error())
	assert.NoFileExists(t, outPath)
}

func TestExtractCommand_FailureKeepsExistingOutput(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, releaseChangelog)
	outPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(outPath, []byte("previous release notes\n"), 0o644))

	_, _, err := runCommand(t, "extract", "9.9.9", outPath, "--changelog", path)

	require.Error(t, err)
	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, "previous release notes\n", string(data), "failed extraction must not touch the output file")
}

func TestExtractCommand_ChangelogFromProjectConfig(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, releaseChangelog)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".relnotes"), 0o755))
	configYAML := "changelog: " + path + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".relnotes", "config.yml"), []byte(configYAML), 0o644))
	outPath := filepath.Join(dir, "notes.md")

	_, _, err := runCommand(t, "extract", "1.2.0", outPath)

	require.NoError(t, err)
	assert.FileExists(t, outPath)
}

func TestExtractCommand_ChangelogFromEnvironment(t *testing.T) {
	dir := testWorkspace(t)
	path := writeChangelog(t, dir, releaseChangelog)
	t.Setenv("RELNOTES_CHANGELOG", path)
	outPath := filepath.Join(dir, "notes.md")

	_, _, err := runCommand(t, "extract", "1.2.0", outPath)

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, wantSection120, string(data))
}
