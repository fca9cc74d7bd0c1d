package changelog

import (
	"sort"

	goversion "github.com/hashicorp/go-version"
)

// SortBySemver returns the entries ordered newest-first by semantic
// version. Entries whose version does not parse (e.g. "Unreleased") keep
// their document order and sort ahead of the parsed tail, matching the
// Keep a Changelog convention of an unreleased section on top.
func SortBySemver(entries []Entry) []Entry {
	type keyed struct {
		entry   Entry
		version *goversion.Version
	}

	var unparsed []Entry
	var parsed []keyed
	for _, e := range entries {
		v, err := goversion.NewVersion(NormalizeVersion(e.Version))
		if err != nil {
			unparsed = append(unparsed, e)
			continue
		}
		parsed = append(parsed, keyed{entry: e, version: v})
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].version.GreaterThan(parsed[j].version)
	})

	out := make([]Entry, 0, len(entries))
	out = append(out, unparsed...)
	for _, k := range parsed {
		out = append(out, k.entry)
	}
	return out
}

// FilterVersionTags returns the tags that parse as versions, preserving
// order. Release tags like "v1.2.3" qualify; deployment markers and other
// non-version tags are dropped.
func FilterVersionTags(tags []string) []string {
	var versions []string
	for _, tag := range tags {
		if _, err := goversion.NewVersion(NormalizeVersion(tag)); err == nil {
			versions = append(versions, tag)
		}
	}
	return versions
}
