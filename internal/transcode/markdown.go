// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/textmill/pkg/types"
)

// The Markdown->HTML conversion is a pipeline of rewrite stages applied
// in a fixed order. The order is load-bearing:
//
//  1. fenced code blocks   (before inline code and emphasis, so code
//  2. inline code spans     interiors are never rewritten)
//  3. headings, level 6 down to 1 (longer marker prefixes first)
//  4. emphasis: bold-italic before bold before italic
//  5. strikethrough
//  6. links, then images (the link rule skips a leading "!")
//  7. blockquotes (single-line prefix form only)
//  8. horizontal rules
//  9. list items (no surrounding <ul>/<ol> is emitted)
// 10. line-granular paragraph wrapping
// 11. optional standalone document shell
//
// Code stages 1-2 swap the rendered HTML for comment placeholders and a
// final pass restores them, so the stages in between can stay simple
// line/inline rewrites without corrupting code contents.

var (
	reFencedBlock = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)\n(.*?)\n?```")
	reInlineCode  = regexp.MustCompile("`([^`\n]+)`")

	// Heading patterns, level 6 down to 1. Processing longer prefixes
	// first keeps the level-1 rule from matching a level-6 line.
	reHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^###### (.+)$`),
		regexp.MustCompile(`(?m)^##### (.+)$`),
		regexp.MustCompile(`(?m)^#### (.+)$`),
		regexp.MustCompile(`(?m)^### (.+)$`),
		regexp.MustCompile(`(?m)^## (.+)$`),
		regexp.MustCompile(`(?m)^# (.+)$`),
	}

	reBoldItalicStar       = regexp.MustCompile(`\*\*\*([^*\n]+)\*\*\*`)
	reBoldItalicUnderscore = regexp.MustCompile(`___([^_\n]+)___`)
	reBoldStar             = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	reBoldUnderscore       = regexp.MustCompile(`__([^_\n]+)__`)
	reItalicStar           = regexp.MustCompile(`\*([^*\n]+)\*`)
	reItalicUnderscore     = regexp.MustCompile(`_([^_\n]+)_`)

	reStrikethrough = regexp.MustCompile(`~~([^~\n]+)~~`)

	// The leading capture keeps the link rule from consuming the "!" of
	// an image, which the image rule needs intact.
	reLink  = regexp.MustCompile(`(^|[^!])\[([^\]]+)\]\(([^)\s]+)\)`)
	reImage = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)

	reBlockquote = regexp.MustCompile(`(?m)^> (.+)$`)

	reHorizontalRule = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)

	reUnorderedItem = regexp.MustCompile(`(?m)^[-*+] (.+)$`)
	reOrderedItem   = regexp.MustCompile(`(?m)^[0-9]+\. (.+)$`)
)

// codePlaceholder formats the stand-in token for protected code. It
// begins with "<" so the paragraph stage treats it as markup.
func codePlaceholder(i int) string {
	return fmt.Sprintf("<!--tmcode%d-->", i)
}

func markdownToHTML(text string, opts types.ConversionOptions) string {
	var code []string

	s := protectFencedBlocks(text, &code)
	s = protectInlineCode(s, &code)
	s = rewriteHeadings(s)
	s = rewriteEmphasis(s)
	s = rewriteStrikethrough(s)
	s = rewriteLinks(s)
	s = rewriteImages(s)
	s = rewriteBlockquotes(s)
	s = rewriteHorizontalRules(s)
	s = rewriteListItems(s)
	s = wrapParagraphs(s)
	s = restoreCode(s, code)

	if opts.Standalone {
		s = standaloneShell(s, opts)
	}
	return s
}

// protectFencedBlocks renders fenced code blocks to <pre><code> and swaps
// them for placeholders so no later stage touches their contents.
func protectFencedBlocks(s string, code *[]string) string {
	return reFencedBlock.ReplaceAllStringFunc(s, func(m string) string {
		sub := reFencedBlock.FindStringSubmatch(m)
		lang, body := sub[1], sub[2]
		var rendered string
		if lang != "" {
			rendered = fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>", lang, body)
		} else {
			rendered = fmt.Sprintf("<pre><code>%s</code></pre>", body)
		}
		*code = append(*code, rendered)
		return codePlaceholder(len(*code) - 1)
	})
}

// protectInlineCode renders inline code spans and swaps them for
// placeholders.
func protectInlineCode(s string, code *[]string) string {
	return reInlineCode.ReplaceAllStringFunc(s, func(m string) string {
		sub := reInlineCode.FindStringSubmatch(m)
		*code = append(*code, "<code>"+sub[1]+"</code>")
		return codePlaceholder(len(*code) - 1)
	})
}

// restoreCode substitutes the protected code renderings back in.
func restoreCode(s string, code []string) string {
	for i := len(code) - 1; i >= 0; i-- {
		s = strings.Replace(s, codePlaceholder(i), code[i], 1)
	}
	return s
}

func rewriteHeadings(s string) string {
	for i, re := range reHeadings {
		level := 6 - i
		s = re.ReplaceAllString(s, fmt.Sprintf("<h%d>$1</h%d>", level, level))
	}
	return s
}

// rewriteEmphasis applies bold-italic before bold before italic; the
// greedy shorter patterns would otherwise corrupt the longer markers.
func rewriteEmphasis(s string) string {
	s = reBoldItalicStar.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = reBoldItalicUnderscore.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = reBoldStar.ReplaceAllString(s, "<strong>$1</strong>")
	s = reBoldUnderscore.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalicStar.ReplaceAllString(s, "<em>$1</em>")
	s = reItalicUnderscore.ReplaceAllString(s, "<em>$1</em>")
	return s
}

func rewriteStrikethrough(s string) string {
	return reStrikethrough.ReplaceAllString(s, "<del>$1</del>")
}

func rewriteLinks(s string) string {
	return reLink.ReplaceAllString(s, `$1<a href="$3">$2</a>`)
}

func rewriteImages(s string) string {
	return reImage.ReplaceAllString(s, `<img src="$2" alt="$1">`)
}

// rewriteBlockquotes handles the single-line prefix form only; multi-line
// quotes are not merged.
func rewriteBlockquotes(s string) string {
	return reBlockquote.ReplaceAllString(s, "<blockquote>$1</blockquote>")
}

func rewriteHorizontalRules(s string) string {
	return reHorizontalRule.ReplaceAllString(s, "<hr>")
}

// rewriteListItems wraps each item line in <li>. No <ul>/<ol> container
// is emitted and nested lists are not computed; this known structural
// limitation is kept for output parity.
func rewriteListItems(s string) string {
	s = reUnorderedItem.ReplaceAllString(s, "<li>$1</li>")
	s = reOrderedItem.ReplaceAllString(s, "<li>$1</li>")
	return s
}

// wrapParagraphs wraps every non-empty line that does not already start
// with a tag in <p>. The rule is line-granular, not block-granular:
// consecutive text lines become separate paragraph elements. Kept as-is
// for output parity even though a block-based processor would merge them.
func wrapParagraphs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" || strings.HasPrefix(line, "<") {
			continue
		}
		lines[i] = "<p>" + line + "</p>"
	}
	return strings.Join(lines, "\n")
}

// standaloneStylesheet is the inline stylesheet of the standalone shell.
const standaloneStylesheet = `body { font-family: -apple-system, Helvetica, Arial, sans-serif; max-width: 42em; margin: 2em auto; padding: 0 1em; line-height: 1.5; }
pre { background: #f4f4f4; padding: 1em; overflow-x: auto; }
code { font-family: ui-monospace, monospace; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1em; color: #555; }`

// tocPlaceholder is injected when a table of contents is requested. No
// heading scan or link generation happens locally; the block is a
// placeholder only.
const tocPlaceholder = `<nav id="TOC"><!-- table of contents --></nav>`

// standaloneShell wraps body in the fixed document shell.
func standaloneShell(body string, opts types.ConversionOptions) string {
	title := opts.Metadata["title"]
	if title == "" {
		title = "Document"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n", standaloneStylesheet)
	b.WriteString("</head>\n<body>\n")
	if opts.TableOfContents {
		b.WriteString(tocPlaceholder)
		b.WriteString("\n")
	}
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
