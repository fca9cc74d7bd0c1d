package changelog

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteSection writes the section's file form (heading, blank line, body,
// trailing newline) to path in UTF-8, overwriting any existing file.
// Missing parent directories are created, any number of levels deep.
func WriteSection(path string, section *Section) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(section.Content()), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return nil
}
