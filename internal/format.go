package internal

import (
	"regexp"
	"strings"
	"time"
)

// NoContentPlaceholder is rendered for empty or whitespace-only bodies.
const NoContentPlaceholder = "<p>No content available.</p>"

var (
	brPattern        = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankLinePattern = regexp.MustCompile(`\n[ \t]*\n`)
	multiGapPattern  = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML neutralizes the five HTML-significant characters. It is a plain
// string transform so formatting stays testable without a DOM.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// FormatContent turns a memo's free-text body into paragraph-structured
// HTML. Pre-formatted bodies (containing <p> tags) pass through unescaped,
// only whitespace-normalized; bodies with <br> tags are split into
// paragraphs without escaping; plain text is escaped segment by segment with
// single newlines becoming <br>.
func FormatContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return NoContentPlaceholder
	}

	content = brPattern.ReplaceAllString(content, "<br>")

	if strings.Contains(content, "<p>") || strings.Contains(content, "</p>") {
		return normalizePreformatted(content)
	}

	if strings.Contains(content, "<br>") {
		return wrapSections(content)
	}

	return formatPlainText(content)
}

// normalizePreformatted trims each line, collapses runs of three or more
// newlines to exactly two, and trusts the markup as-is.
func normalizePreformatted(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	content = strings.Join(lines, "\n")
	content = multiGapPattern.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// wrapSections handles bodies with <br> markup but no paragraph tags: split
// on blank lines, wrap each non-empty section in a paragraph.
func wrapSections(content string) string {
	sections := splitParagraphs(content)
	if len(sections) == 0 {
		return "<p>" + strings.TrimSpace(content) + "</p>"
	}

	wrapped := make([]string, 0, len(sections))
	for _, section := range sections {
		wrapped = append(wrapped, "<p>"+section+"</p>")
	}
	return strings.Join(wrapped, "\n")
}

// formatPlainText escapes plain text and converts internal newlines to <br>.
// Each <br>-separated segment is escaped independently so literal angle
// brackets are neutralized while the break markup survives.
func formatPlainText(content string) string {
	paragraphs := splitParagraphs(content)
	if len(paragraphs) == 0 {
		paragraphs = []string{strings.TrimSpace(content)}
	}

	wrapped := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		wrapped = append(wrapped, "<p>"+escapeWithBreaks(para)+"</p>")
	}
	return strings.Join(wrapped, "\n")
}

func escapeWithBreaks(para string) string {
	if !strings.Contains(para, "\n") {
		return EscapeHTML(para)
	}

	segments := strings.Split(para, "\n")
	for i, seg := range segments {
		segments[i] = EscapeHTML(seg)
	}
	return strings.Join(segments, "<br>")
}

// splitParagraphs splits on blank-line boundaries and drops empty segments.
func splitParagraphs(content string) []string {
	parts := blankLinePattern.Split(content, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO date string as "January 2, 2006". Unparseable
// input is passed through untouched.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

// Truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
