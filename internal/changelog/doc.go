// Package changelog provides CHANGELOG.md section extraction for relnotes.
//
// This package implements:
//   - Literal heading matching and section extraction for release publishing
//   - Changelog location resolution relative to the installed binary
//   - Structural parsing (goldmark) for listing and verification
//   - Styled terminal rendering of extracted sections
//
// Extraction is line-oriented and exact: the requested version is matched
// literally against "## ..." heading lines, and the section body runs until
// the next "##" heading. The structural parser exists for inspection
// commands only and never influences what extraction returns.
package changelog
