package changelog

import (
	"fmt"
	"regexp"
)

// dateFormat matches ISO 8601 release dates (YYYY-MM-DD).
var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// VerifyOptions controls which release-readiness checks run.
type VerifyOptions struct {
	// RequireDates flags released sections that carry no valid ISO date.
	RequireDates bool
	// Tags is the set of repository tags to cross-check, already filtered
	// to version-shaped names. Nil skips the tag check.
	Tags []string
}

// VerifyResult collects findings from one verification run.
type VerifyResult struct {
	// Sections is the number of version sections inspected.
	Sections int
	// Issues contains one message per finding, in document order.
	Issues []string
}

// Ok returns true when verification produced no findings.
func (r *VerifyResult) Ok() bool {
	return len(r.Issues) == 0
}

// Verify lints a changelog document for release readiness: version
// identifiers must be unique, at most one unreleased section may exist,
// released sections need ISO dates when opts.RequireDates is set, every
// released section must be extractable with a non-empty body, and every
// supplied tag needs a matching section.
func Verify(doc *Document, opts VerifyOptions) *VerifyResult {
	parsed := Parse([]byte(doc.Content))
	result := &VerifyResult{Sections: len(parsed.Entries)}

	if len(parsed.Entries) == 0 {
		result.Issues = append(result.Issues,
			fmt.Sprintf("no version sections found in %s", doc.Path))
		return result
	}

	checkDuplicates(parsed, result)
	checkUnreleased(parsed, result)
	if opts.RequireDates {
		checkDates(parsed, result)
	}
	checkExtractable(doc, parsed, result)
	checkTags(parsed, opts.Tags, result)

	return result
}

// VerifyVersions checks that each requested version resolves to a
// non-empty section of the document.
func VerifyVersions(doc *Document, versions []string) *VerifyResult {
	result := &VerifyResult{Sections: len(versions)}
	for _, v := range versions {
		if _, err := doc.Extract(v); err != nil {
			result.Issues = append(result.Issues, err.Error())
		}
	}
	return result
}

// checkDuplicates flags versions that appear in more than one heading.
// Extraction always takes the first occurrence, so duplicates are dead
// content.
func checkDuplicates(parsed *Changelog, result *VerifyResult) {
	seen := make(map[string]bool)
	for _, e := range parsed.Entries {
		key := NormalizeVersion(e.Version)
		if seen[key] {
			result.Issues = append(result.Issues,
				fmt.Sprintf("duplicate section for version %s", e.Version))
			continue
		}
		seen[key] = true
	}
}

// checkUnreleased flags documents with more than one unreleased section.
func checkUnreleased(parsed *Changelog, result *VerifyResult) {
	count := 0
	for i := range parsed.Entries {
		if parsed.Entries[i].IsUnreleased() {
			count++
		}
	}
	if count > 1 {
		result.Issues = append(result.Issues,
			fmt.Sprintf("%d unreleased sections, expected at most one", count))
	}
}

// checkDates flags released sections without a valid YYYY-MM-DD date.
func checkDates(parsed *Changelog, result *VerifyResult) {
	for i := range parsed.Entries {
		e := &parsed.Entries[i]
		if e.IsUnreleased() {
			continue
		}
		switch {
		case e.Date == "":
			result.Issues = append(result.Issues,
				fmt.Sprintf("version %s: missing release date", e.Version))
		case !dateFormat.MatchString(e.Date):
			result.Issues = append(result.Issues,
				fmt.Sprintf("version %s: invalid release date %q (expected YYYY-MM-DD)", e.Version, e.Date))
		}
	}
}

// checkExtractable runs every released section through extraction, so that
// verify reports exactly what a later extract run would fail on. Extraction
// normalizes its input, so the probe uses the normalized version: a heading
// like "## v1.2.3" is unreachable and gets flagged here. The unreleased
// section is exempt since an empty one is normal between releases.
func checkExtractable(doc *Document, parsed *Changelog, result *VerifyResult) {
	for i := range parsed.Entries {
		e := &parsed.Entries[i]
		if e.IsUnreleased() {
			continue
		}
		if _, err := doc.Extract(NormalizeVersion(e.Version)); err != nil {
			result.Issues = append(result.Issues,
				fmt.Sprintf("version %s: %v", e.Version, err))
		}
	}
}

// checkTags flags tags that have no matching changelog section.
func checkTags(parsed *Changelog, tags []string, result *VerifyResult) {
	for _, tag := range tags {
		if parsed.Find(tag) == nil {
			result.Issues = append(result.Issues,
				fmt.Sprintf("tag %s has no changelog section", tag))
		}
	}
}
