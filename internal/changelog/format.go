package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// CategoryStyle defines the color and icon for a Keep a Changelog category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps "###" sub-heading names to their terminal styling.
var categoryStyles = map[string]CategoryStyle{
	"added":      {Color: color.New(color.FgGreen), Icon: "✓"},
	"changed":    {Color: color.New(color.FgBlue), Icon: "~"},
	"deprecated": {Color: color.New(color.FgRed), Icon: "⚠"},
	"removed":    {Color: color.New(color.FgRed), Icon: "✗"},
	"fixed":      {Color: color.New(color.FgYellow), Icon: "⚡"},
	"security":   {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

// defaultStyle applies to list items before any sub-heading and under
// sub-headings that are not Keep a Changelog categories.
var defaultStyle = CategoryStyle{Color: color.New(color.FgCyan), Icon: "§"}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatSection writes an extracted section to the writer. Plain output is
// byte-identical to the extract file format. Styled output bolds the
// heading, renders "###" sub-headings with category icons and colors, and
// wraps list items to the terminal width.
func FormatSection(s *Section, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := io.WriteString(w, s.Content())
		return err
	}

	width := resolveWidth(opts.MaxWidth)
	bold := color.New(color.Bold).SprintFunc()

	if _, err := fmt.Fprintf(w, "%s\n", bold(s.Heading)); err != nil {
		return err
	}

	current := defaultStyle
	for _, line := range strings.Split(s.Body, "\n") {
		if err := writeBodyLine(line, &current, w, width); err != nil {
			return fmt.Errorf("formatting section %s: %w", s.Heading, err)
		}
	}

	return nil
}

// writeBodyLine styles one body line. Sub-headings switch the active
// category style; list items inherit it. Blank lines are dropped since
// sub-headings reintroduce their own spacing.
func writeBodyLine(line string, current *CategoryStyle, w io.Writer, width int) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	if name, ok := strings.CutPrefix(trimmed, "### "); ok {
		name = strings.TrimSpace(name)
		style, known := categoryStyles[strings.ToLower(name)]
		if !known {
			style = defaultStyle
		}
		*current = style

		colored := style.Color.SprintFunc()
		_, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(name))
		return err
	}

	text, bullet := strings.CutPrefix(trimmed, "- ")
	if !bullet {
		text, bullet = strings.CutPrefix(trimmed, "* ")
	}
	if bullet {
		prefix := "  - "
		wrapped := wrapText(text, width-len(prefix), "    ")
		colored := current.Color.SprintFunc()
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
		return err
	}

	_, err := fmt.Fprintln(w, line)
	return err
}

// FormatVersionLine renders one list row: the version identifier plus its
// release date when present.
func FormatVersionLine(e *Entry, opts FormatOptions) string {
	if opts.Plain {
		if e.Date == "" {
			return e.Version
		}
		return fmt.Sprintf("%s  %s", e.Version, e.Date)
	}

	bold := color.New(color.Bold).SprintFunc()
	if e.Date == "" {
		return bold(e.Version)
	}
	dim := color.New(color.Faint).SprintFunc()
	return fmt.Sprintf("%s  %s", bold(e.Version), dim(e.Date))
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		// Find the last space within maxWidth
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
