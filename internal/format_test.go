package internal

import (
	"strings"
	"testing"
)

func TestFormatContentEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", " \t\n "} {
		if got := FormatContent(input); got != NoContentPlaceholder {
			t.Errorf("FormatContent(%q) = %q, want placeholder", input, got)
		}
	}
}

func TestFormatContentSingleParagraph(t *testing.T) {
	got := FormatContent("Just one line of text.")
	want := "<p>Just one line of text.</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatContentEscapesPlainText(t *testing.T) {
	got := FormatContent(`Tom & Jerry say "hi" to <everyone>'s cat`)
	if strings.Contains(got, "<everyone>") {
		t.Errorf("raw angle brackets survived: %q", got)
	}
	for _, want := range []string{"&amp;", "&lt;everyone&gt;", "&quot;hi&quot;", "&#39;s"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestFormatContentPlainParagraphs(t *testing.T) {
	got := FormatContent("First paragraph.\n\nSecond paragraph.")
	want := "<p>First paragraph.</p>\n<p>Second paragraph.</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatContentSingleNewlinesBecomeBreaks(t *testing.T) {
	got := FormatContent("line one\nline two")
	want := "<p>line one<br>line two</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatContentEscapesAroundBreaks(t *testing.T) {
	got := FormatContent("a <b\nc> d")
	want := "<p>a &lt;b<br>c&gt; d</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatContentParagraphPassthrough(t *testing.T) {
	input := "<p>Already <em>formatted</em> & trusted.</p>"
	got := FormatContent(input)
	if got != input {
		t.Errorf("pre-formatted content was altered: %q", got)
	}
}

func TestFormatContentParagraphNormalizesWhitespace(t *testing.T) {
	input := "  <p>One</p>  \n\n\n\n  <p>Two</p>  "
	got := FormatContent(input)
	want := "<p>One</p>\n\n<p>Two</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatContentBrSections(t *testing.T) {
	input := "first<br/>line\n\nsecond<BR />line"
	got := FormatContent(input)
	want := "<p>first<br>line</p>\n<p>second<br>line</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`&<>"'`)
	want := "&amp;&lt;&gt;&quot;&#39;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if EscapeHTML("") != "" {
		t.Error("empty input must stay empty")
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2025-12-30T00:00:00": "December 30, 2025",
		"2025-01-02":          "January 2, 2025",
		"not a date":          "not a date",
	}
	for input, want := range cases {
		if got := FormatDate(input); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("got %q", got)
	}

	long := strings.Repeat("x", 150)
	got := Truncate(long, 100)
	if len(got) != 103 || !strings.HasSuffix(got, "...") {
		t.Errorf("got %d chars: %q", len(got), got[:20])
	}
}
