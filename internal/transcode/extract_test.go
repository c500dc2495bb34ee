// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"strings"
	"testing"
)

func extractText(t *testing.T, html string) string {
	t.Helper()
	out, err := (&GoqueryExtractor{}).ExtractVisibleText(html)
	if err != nil {
		t.Fatalf("ExtractVisibleText(%q) error: %v", html, err)
	}
	return out
}

func TestExtractVisibleText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"single paragraph",
			"<p>Hello world</p>",
			"Hello world",
		},
		{
			"inline markup dropped",
			"<p>This is <strong>bold</strong> and <em>italic</em>.</p>",
			"This is bold and italic.",
		},
		{
			"adjacent blocks separated",
			"<h1>Title</h1><p>Body text.</p>",
			"Title\nBody text.",
		},
		{
			"line break separates lines",
			"<p>first<br>second</p>",
			"first\nsecond",
		},
		{
			"list items on own lines",
			"<li>one</li><li>two</li>",
			"one\ntwo",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(t, tt.html); got != tt.want {
				t.Errorf("ExtractVisibleText(%q) = %q, want %q", tt.html, got, tt.want)
			}
		})
	}
}

func TestExtractDropsScriptAndStyle(t *testing.T) {
	html := `<html><head><style>p { color: red; }</style></head>` +
		`<body><script>alert("hi")</script><p>Visible</p><noscript>fallback</noscript></body></html>`
	got := extractText(t, html)
	if got != "Visible" {
		t.Errorf("ExtractVisibleText() = %q, want %q", got, "Visible")
	}
}

func TestExtractPreservesReadingOrder(t *testing.T) {
	html := "<h1>One</h1><p>Two</p><h2>Three</h2><p>Four</p>"
	got := extractText(t, html)
	order := []string{"One", "Two", "Three", "Four"}
	last := -1
	for _, word := range order {
		idx := strings.Index(got, word)
		if idx < 0 {
			t.Fatalf("ExtractVisibleText() = %q, missing %q", got, word)
		}
		if idx < last {
			t.Errorf("ExtractVisibleText() = %q, %q out of order", got, word)
		}
		last = idx
	}
}

func TestExtractCollapsesBlankRuns(t *testing.T) {
	html := "<p>first</p>\n\n\n\n<p>second</p>"
	got := extractText(t, html)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("ExtractVisibleText() = %q, contains run of 3+ newlines", got)
	}
}
