package errors

import "fmt"

// Common error messages for the relnotes CLI.
// These templates ensure consistent, parseable diagnostics.
//
// The extract contract allows exactly one diagnostic line per failure, so
// the constructors on that path carry no remediation steps.

// EmptyVersion creates an error for a version that is empty after
// normalization (stripping a single leading "v").
func EmptyVersion() *CLIError {
	return NewArgumentError("version must be non-empty")
}

// InvalidSortOrder creates an error for an unrecognized list sort order.
func InvalidSortOrder(value string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid sort order: %s", value),
		"Valid orders: document, semver",
		"Example: relnotes list --sort semver",
	)
}

// NoVersionSections creates an error for a changelog without any
// "## <version>" sections.
func NoVersionSections(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("no version sections found in %s", path),
		"Sections are introduced by lines like '## [1.2.3] - 2024-01-01'",
	)
}

// NoReleasedVersions creates an error for a changelog whose only section
// is an unreleased one.
func NoReleasedVersions(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("no released versions in %s", path),
		"Add a dated release section, e.g. '## [0.1.0] - 2024-01-01'",
	)
}

// GitNotRepository creates an error when tag verification runs outside
// a git repository.
func GitNotRepository() *CLIError {
	return NewPrerequisiteError(
		"not a git repository",
		"Run from inside the repository whose tags should be checked",
		"Or drop --tags to verify the changelog alone",
	)
}
