// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"strings"
	"testing"

	"github.com/pdiddy/textmill/pkg/types"
)

func htmlToMd(t *testing.T, input string) string {
	t.Helper()
	out, err := New().Transcode(input, types.FormatHTML, types.FormatMarkdown, types.DefaultOptions())
	if err != nil {
		t.Fatalf("Transcode() error = %v", err)
	}
	return out
}

func TestHTMLToMarkdownElements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"heading 1", "<h1>Title</h1>", "# Title"},
		{"heading 3", "<h3>Sub</h3>", "### Sub"},
		{"heading 6", "<h6>Deep</h6>", "###### Deep"},
		{"bold", "<p><strong>x</strong></p>", "**x**"},
		{"italic", "<p><em>x</em></p>", "*x*"},
		{"bold italic", "<p><strong><em>x</em></strong></p>", "***x***"},
		{"strikethrough", "<p><del>x</del></p>", "~~x~~"},
		{"link", `<p><a href="https://example.com">site</a></p>`, "[site](https://example.com)"},
		{"image", `<img src="logo.png" alt="logo">`, "![logo](logo.png)"},
		{"image without alt", `<img src="logo.png">`, "![](logo.png)"},
		{"blockquote", "<blockquote>quoted</blockquote>", "> quoted"},
		{"horizontal rule", "<hr>", "---"},
		{"self-closing rule", "<hr/>", "---"},
		{"list item", "<li>item</li>", "- item"},
		{"line break", "<p>a<br>b</p>", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlToMd(t, tt.input)
			if got != tt.want {
				t.Errorf("htmlToMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLToMarkdownDocumentScenario(t *testing.T) {
	got := htmlToMd(t, "<h1>Title</h1><p>Some <em>text</em>.</p>")

	if !strings.HasPrefix(got, "# Title") {
		t.Errorf("output must start with # Title: %q", got)
	}
	if !strings.Contains(got, "*text*") {
		t.Errorf("output missing *text*: %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("output must contain no residual tags: %q", got)
	}
}

// Head contents are dropped wholesale, not converted.
func TestHTMLToMarkdownStripsDocumentWrapper(t *testing.T) {
	input := "<!DOCTYPE html>\n<html>\n<head>\n<title>Ignored</title>\n<style>body{}</style>\n</head>\n<body>\n<h1>Kept</h1>\n</body>\n</html>"
	got := htmlToMd(t, input)

	if got != "# Kept" {
		t.Errorf("htmlToMarkdown() = %q, want %q", got, "# Kept")
	}
	if strings.Contains(got, "Ignored") {
		t.Errorf("head contents must be dropped: %q", got)
	}
}

func TestHTMLToMarkdownCodeBlocks(t *testing.T) {
	got := htmlToMd(t, `<pre><code class="language-go">x := *p // **kept**</code></pre>`)
	want := "```go\nx := *p // **kept**\n```"
	if got != want {
		t.Errorf("code block = %q, want %q", got, want)
	}

	got = htmlToMd(t, "<pre><code>plain</code></pre>")
	want = "```\nplain\n```"
	if got != want {
		t.Errorf("code block = %q, want %q", got, want)
	}

	got = htmlToMd(t, "<p>use <code>a *b*</code></p>")
	want = "use `a *b*`"
	if got != want {
		t.Errorf("inline code = %q, want %q", got, want)
	}
}

func TestHTMLToMarkdownEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"basic set", "<p>a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;</p>", `a & b <c> "d" 'e'`},
		{"nbsp becomes space", "<p>a&nbsp;b</p>", "a b"},
		{"double-encoded ampersand stays literal", "<p>&amp;lt;</p>", "&lt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlToMd(t, tt.input)
			if got != tt.want {
				t.Errorf("htmlToMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLToMarkdownCollapsesNewlines(t *testing.T) {
	got := htmlToMd(t, "<p>a</p>\n\n\n\n<p>b</p>")
	if got != "a\n\nb" {
		t.Errorf("htmlToMarkdown() = %q, want %q", got, "a\n\nb")
	}
}

func TestHTMLToMarkdownStripsUnknownTags(t *testing.T) {
	got := htmlToMd(t, `<p><span class="x">text</span></p>`)
	if got != "text" {
		t.Errorf("htmlToMarkdown() = %q, want %q", got, "text")
	}
}

// Single-line constructs survive a Markdown -> HTML -> Markdown round
// trip: heading level, emphasis markers, and link text+URL are
// preserved. Nested lists and multi-paragraph blocks are out of scope.
func TestMarkdownRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"heading and bold", "# Hello\n\nThis is **bold**."},
		{"all heading levels", "# a\n\n## b\n\n### c"},
		{"emphasis", "*it* and **b** and ***bi***"},
		{"link", "[text](https://example.com)"},
	}
	tc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := tc.Transcode(tt.input, types.FormatMarkdown, types.FormatHTML, types.DefaultOptions())
			if err != nil {
				t.Fatalf("forward Transcode() error = %v", err)
			}
			back, err := tc.Transcode(html, types.FormatHTML, types.FormatMarkdown, types.DefaultOptions())
			if err != nil {
				t.Fatalf("reverse Transcode() error = %v", err)
			}
			if back != tt.input {
				t.Errorf("round trip changed input:\n in:   %q\n html: %q\n back: %q", tt.input, html, back)
			}
		})
	}
}
