package changelog

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Entry is one structurally parsed version section.
type Entry struct {
	// Version as written in the heading, brackets stripped
	// (e.g. "1.2.3" or "Unreleased").
	Version string
	// Date is the ISO 8601 release date, empty when the heading has none.
	Date string
	// Heading is the heading text as written, e.g. "[1.2.3] - 2024-01-01".
	Heading string
	// Content is the raw markdown between this heading and the next, trimmed.
	Content string
}

// IsUnreleased reports whether the entry is the unreleased section.
func (e *Entry) IsUnreleased() bool {
	return strings.EqualFold(e.Version, "unreleased")
}

// Changelog is the structural view of a changelog document: version entries
// in document order (newest first by convention) plus the document's link
// reference definitions.
type Changelog struct {
	Entries []Entry
	Links   map[string]string
}

// Find returns the first entry whose version matches, comparing both sides
// with a single leading "v" stripped. Returns nil when absent.
func (c *Changelog) Find(version string) *Entry {
	want := NormalizeVersion(version)
	for i := range c.Entries {
		if NormalizeVersion(c.Entries[i].Version) == want {
			return &c.Entries[i]
		}
	}
	return nil
}

// Versions returns all version identifiers in document order.
func (c *Changelog) Versions() []string {
	versions := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		versions[i] = e.Version
	}
	return versions
}

// LatestRelease returns the first entry that is not the unreleased section.
// Returns nil when the document has no released section.
func (c *Changelog) LatestRelease() *Entry {
	for i := range c.Entries {
		if !c.Entries[i].IsUnreleased() {
			return &c.Entries[i]
		}
	}
	return nil
}

// Parse builds the structural view of a changelog document. Level-2
// headings open entries; everything up to the next level-2 heading is the
// entry's content. Link reference definitions are collected from the
// parser context.
//
// Inspection commands work from this view. Extraction does not: it keeps
// its own line-oriented matching in Extract.
func Parse(source []byte) *Changelog {
	md := goldmark.New()
	reader := text.NewReader(source)
	ctx := parser.NewContext()
	doc := md.Parser().Parse(reader, parser.WithContext(ctx))

	c := &Changelog{Links: make(map[string]string)}
	for _, ref := range ctx.References() {
		c.Links[string(ref.Label())] = string(ref.Destination())
	}

	type headingSpan struct {
		text         string
		headingStart int
		contentStart int
	}
	var spans []headingSpan

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}
		lines := heading.Lines()
		if lines.Len() == 0 {
			return ast.WalkContinue, nil
		}

		// The AST segments cover the heading text, not the "##" marker, so
		// widen both offsets to full line boundaries.
		spans = append(spans, headingSpan{
			text:         headingText(heading, source),
			headingStart: lineStart(source, lines.At(0).Start),
			contentStart: nextLineStart(source, lines.At(lines.Len()-1).Stop),
		})
		return ast.WalkContinue, nil
	})

	for i, span := range spans {
		contentEnd := len(source)
		if i+1 < len(spans) {
			contentEnd = spans[i+1].headingStart
		}

		content := ""
		if span.contentStart < contentEnd {
			content = strings.TrimSpace(string(source[span.contentStart:contentEnd]))
		}

		version, date := splitVersionHeading(span.text)
		c.Entries = append(c.Entries, Entry{
			Version: version,
			Date:    date,
			Heading: strings.TrimSpace(span.text),
			Content: content,
		})
	}

	return c
}

// lineStart walks back from pos to the beginning of its line.
func lineStart(source []byte, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

// nextLineStart walks forward from pos past the end of its line.
func nextLineStart(source []byte, pos int) int {
	for pos < len(source) && source[pos] != '\n' {
		pos++
	}
	if pos < len(source) {
		pos++
	}
	return pos
}

// headingText flattens a heading node to its source text. Version headings
// written as link references ("## [1.2.3]") surface the link's inner text.
func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
		case *ast.Link:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
				}
			}
		}
	}
	return buf.String()
}

// splitVersionHeading splits heading text of the forms "[1.2.3] - date",
// "1.2.3 - date", or a bare version into version and date parts.
func splitVersionHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)

	if rest, wrapped := strings.CutPrefix(heading, "["); wrapped {
		if idx := strings.Index(rest, "]"); idx != -1 {
			version = rest[:idx]
			tail := strings.TrimSpace(rest[idx+1:])
			if after, dashed := strings.CutPrefix(tail, "-"); dashed {
				date = strings.TrimSpace(after)
			}
			return version, date
		}
		heading = rest
	}

	if idx := strings.Index(heading, " - "); idx != -1 {
		return strings.TrimSpace(heading[:idx]), strings.TrimSpace(heading[idx+3:])
	}

	return heading, ""
}
