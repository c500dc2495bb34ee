// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// reBlockClose matches the end of block-level elements and explicit line
// breaks. A newline is inserted after each so text from adjacent blocks
// does not run together once markup is dropped.
var reBlockClose = regexp.MustCompile(`(?i)(</(?:p|h[1-6]|li|blockquote|pre|div|tr)>|<br ?/?>|<hr ?/?>)`)

// GoqueryExtractor extracts visible text from HTML using a real HTML
// parser. It satisfies the TextExtractor contract: readable text order is
// preserved and all markup is dropped.
type GoqueryExtractor struct{}

// ExtractVisibleText parses html and returns its visible text. Script and
// style contents are dropped along with the markup.
func (g *GoqueryExtractor) ExtractVisibleText(html string) (string, error) {
	prepared := reBlockClose.ReplaceAllString(html, "$1\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(prepared))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Text()
	text = reNewlineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
