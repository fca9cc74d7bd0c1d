package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// Section is one extracted version section: the matched heading line and
// the text between it and the next version heading, both trimmed.
type Section struct {
	Heading string
	Body    string
}

// Content returns the file form of the section: heading, one blank line,
// body, trailing newline.
func (s *Section) Content() string {
	return s.Heading + "\n\n" + s.Body + "\n"
}

// NotFoundError is returned when no heading matches the requested version.
type NotFoundError struct {
	Version string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("changelog entry for %s not found", e.Version)
}

// EmptySectionError is returned when a matched section has no body text
// after trimming.
type EmptySectionError struct {
	Version string
}

func (e *EmptySectionError) Error() string {
	return fmt.Sprintf("changelog entry for %s is empty", e.Version)
}

// nextHeading matches the start of the next version-level heading. The
// trailing whitespace requirement keeps "###" sub-headings inside the body.
var nextHeading = regexp.MustCompile(`(?m)^##\s+`)

// NormalizeVersion strips a single leading "v" from a version string.
// The strip is case-sensitive and applies at most once: "v1.2.3" becomes
// "1.2.3", "vv1" becomes "v1", and "V1" is left unchanged.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(version, "v")
}

// headingPattern builds the matcher for one version's heading line:
// "##", whitespace, the version itself (matched literally, optionally
// wrapped in brackets), an optional "- YYYY-MM-DD" tail, and optional
// trailing whitespace. The version is escaped so none of its characters
// act as pattern metacharacters.
func headingPattern(version string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^##\s+\[?` + regexp.QuoteMeta(version) + `\]?(?:\s*-\s*\d{4}-\d{2}-\d{2})?\s*$`,
	)
}

// Extract locates the section for version in document. When duplicate
// headings match, the first occurrence from the top wins; later ones are
// ignored. The body spans from the end of the heading line to the next
// "##" heading, or the end of the document.
func Extract(document, version string) (*Section, error) {
	loc := headingPattern(version).FindStringIndex(document)
	if loc == nil {
		return nil, &NotFoundError{Version: version}
	}

	heading := strings.TrimSpace(document[loc[0]:loc[1]])

	rest := document[loc[1]:]
	end := len(rest)
	if next := nextHeading.FindStringIndex(rest); next != nil {
		end = next[0]
	}

	body := strings.TrimSpace(rest[:end])
	if body == "" {
		return nil, &EmptySectionError{Version: version}
	}

	return &Section{Heading: heading, Body: body}, nil
}
