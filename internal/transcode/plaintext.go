// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"strings"

	"github.com/pdiddy/textmill/pkg/types"
)

// plainToHTML escapes markup characters, splits the text into paragraphs
// on blank-line boundaries, and joins single newlines within a paragraph
// as <br>. Each paragraph is wrapped in <p>. The same standalone shell as
// Markdown->HTML applies when requested.
func plainToHTML(text string, opts types.ConversionOptions) string {
	s := escapeHTML(text)

	paragraphs := splitParagraphs(s)
	for i, p := range paragraphs {
		joined := strings.Join(strings.Split(p, "\n"), "<br>\n")
		paragraphs[i] = "<p>" + joined + "</p>"
	}
	out := strings.Join(paragraphs, "\n")

	if opts.Standalone {
		out = standaloneShell(out, opts)
	}
	return out
}

// escapeHTML escapes the three characters that would otherwise read as
// markup. The ampersand goes first so the other replacements are not
// double-escaped.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// splitParagraphs splits text on blank-line boundaries, dropping empty
// segments.
func splitParagraphs(s string) []string {
	var out []string
	for _, block := range strings.Split(s, "\n\n") {
		block = strings.Trim(block, "\n")
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
