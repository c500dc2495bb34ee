// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"fmt"
	"regexp"
	"strings"
)

// The HTML->Markdown conversion mirrors the forward pipeline in reverse:
// code first (protected through the remaining stages), then headings,
// emphasis, strikethrough, links and images, blockquotes, rules, list
// items, and paragraphs. Document wrapper tags are stripped up front with
// head contents dropped wholesale. The final steps run strictly after all
// tag handling: strip leftover tags, decode the fixed entity set, collapse
// runs of three or more newlines to two, and trim the result.

var (
	reMdFencedLang = regexp.MustCompile(`(?s)<pre><code class="language-([^"]*)">(.*?)</code></pre>`)
	reMdFenced     = regexp.MustCompile(`(?s)<pre><code>(.*?)</code></pre>`)
	reMdInlineCode = regexp.MustCompile(`(?s)<code>(.*?)</code>`)

	reDoctype  = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	reHeadWrap = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	reDocWrap  = regexp.MustCompile(`(?i)</?(?:html|body)[^>]*>`)

	reMdHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<h6>(.*?)</h6>\n?`),
		regexp.MustCompile(`(?s)<h5>(.*?)</h5>\n?`),
		regexp.MustCompile(`(?s)<h4>(.*?)</h4>\n?`),
		regexp.MustCompile(`(?s)<h3>(.*?)</h3>\n?`),
		regexp.MustCompile(`(?s)<h2>(.*?)</h2>\n?`),
		regexp.MustCompile(`(?s)<h1>(.*?)</h1>\n?`),
	}

	reMdBoldItalic = regexp.MustCompile(`(?s)<strong><em>(.*?)</em></strong>`)
	reMdBold       = regexp.MustCompile(`(?s)<strong>(.*?)</strong>`)
	reMdItalic     = regexp.MustCompile(`(?s)<em>(.*?)</em>`)
	reMdStrike     = regexp.MustCompile(`(?s)<del>(.*?)</del>`)

	reMdLink     = regexp.MustCompile(`(?s)<a href="([^"]*)"[^>]*>(.*?)</a>`)
	reMdImageAlt = regexp.MustCompile(`<img src="([^"]*)" alt="([^"]*)"[^>]*>`)
	reMdImage    = regexp.MustCompile(`<img src="([^"]*)"[^>]*>`)

	reMdBlockquote = regexp.MustCompile(`(?s)<blockquote>(.*?)</blockquote>\n?`)
	reMdRule       = regexp.MustCompile(`<hr ?/?>\n?`)
	reMdListItem   = regexp.MustCompile(`(?s)<li>(.*?)</li>\n?`)
	reMdParagraph  = regexp.MustCompile(`(?s)<p>(.*?)</p>\n?`)
	reMdLineBreak  = regexp.MustCompile(`<br ?/?>`)

	reLeftoverTag = regexp.MustCompile(`<[^>]+>`)
	reNewlineRun  = regexp.MustCompile(`\n{3,}`)
)

// mdCodePlaceholder is the stand-in for protected code during the
// HTML->Markdown rewrite. It must not look like a tag so the leftover-tag
// strip leaves it alone.
func mdCodePlaceholder(i int) string {
	return fmt.Sprintf("\x00tmcode%d\x00", i)
}

func htmlToMarkdown(text string) string {
	var code []string

	s := protectHTMLCode(text, &code)
	s = reDoctype.ReplaceAllString(s, "")
	s = reHeadWrap.ReplaceAllString(s, "")
	s = reDocWrap.ReplaceAllString(s, "")

	for i, re := range reMdHeadings {
		marker := strings.Repeat("#", 6-i)
		s = re.ReplaceAllString(s, marker+" $1\n\n")
	}

	s = reMdBoldItalic.ReplaceAllString(s, "***$1***")
	s = reMdBold.ReplaceAllString(s, "**$1**")
	s = reMdItalic.ReplaceAllString(s, "*$1*")
	s = reMdStrike.ReplaceAllString(s, "~~$1~~")

	s = reMdImageAlt.ReplaceAllString(s, "![$2]($1)")
	s = reMdImage.ReplaceAllString(s, "![]($1)")
	s = reMdLink.ReplaceAllString(s, "[$2]($1)")

	s = reMdBlockquote.ReplaceAllString(s, "> $1\n\n")
	s = reMdRule.ReplaceAllString(s, "---\n\n")
	s = reMdListItem.ReplaceAllString(s, "- $1\n")
	s = reMdParagraph.ReplaceAllString(s, "$1\n\n")
	s = reMdLineBreak.ReplaceAllString(s, "\n")

	s = reLeftoverTag.ReplaceAllString(s, "")
	s = decodeEntities(s)
	s = reNewlineRun.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	return restoreMdCode(s, code)
}

// protectHTMLCode converts <pre><code> blocks and inline <code> spans to
// fenced/backtick Markdown and parks them behind placeholders so no later
// stage (including entity decoding) rewrites their contents.
func protectHTMLCode(s string, code *[]string) string {
	s = reMdFencedLang.ReplaceAllStringFunc(s, func(m string) string {
		sub := reMdFencedLang.FindStringSubmatch(m)
		*code = append(*code, fmt.Sprintf("```%s\n%s\n```", sub[1], sub[2]))
		return mdCodePlaceholder(len(*code) - 1)
	})
	s = reMdFenced.ReplaceAllStringFunc(s, func(m string) string {
		sub := reMdFenced.FindStringSubmatch(m)
		*code = append(*code, fmt.Sprintf("```\n%s\n```", sub[1]))
		return mdCodePlaceholder(len(*code) - 1)
	})
	s = reMdInlineCode.ReplaceAllStringFunc(s, func(m string) string {
		sub := reMdInlineCode.FindStringSubmatch(m)
		*code = append(*code, "`"+sub[1]+"`")
		return mdCodePlaceholder(len(*code) - 1)
	})
	return s
}

func restoreMdCode(s string, code []string) string {
	for i := len(code) - 1; i >= 0; i-- {
		s = strings.Replace(s, mdCodePlaceholder(i), code[i], 1)
	}
	return s
}

// decodeEntities decodes the fixed named-entity set. The ampersand is
// decoded last so "&amp;lt;" yields the literal "&lt;" rather than "<".
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
