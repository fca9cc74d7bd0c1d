package changelog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Document is one changelog file read fully into memory. The content is
// never mutated during an invocation.
type Document struct {
	Path    string
	Content string
}

// MissingChangelogError is returned when the changelog does not exist as a
// regular file at the resolved path.
type MissingChangelogError struct {
	Path string
}

func (e *MissingChangelogError) Error() string {
	return fmt.Sprintf("changelog not found at %s", e.Path)
}

// DefaultPath derives the changelog location from the running executable:
// CHANGELOG.md one directory above the directory containing the binary.
// For a tool installed under <repo>/bin/ that is the repository root.
// Symlinked installs resolve to the real binary location first.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "CHANGELOG.md"), nil
}

// ResolvePath returns override when non-empty, falling back to DefaultPath.
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultPath()
}

// Load reads the changelog at path. A missing path, a directory, or any
// other non-regular file yields MissingChangelogError naming the path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &MissingChangelogError{Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}

	return &Document{Path: path, Content: string(content)}, nil
}

// Extract runs section extraction against the loaded document.
func (d *Document) Extract(version string) (*Section, error) {
	return Extract(d.Content, version)
}
