// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcode converts text between lightweight markup formats
// (Markdown variants, HTML, plain text) through ordered pattern-rewrite
// pipelines. Conversions are pure: the same input, format pair, and
// options always produce the same output, and nothing is read or written
// outside the arguments.
//
// The rewrite pipelines are deliberately pragmatic rather than
// CommonMark-conformant: there is no AST, no nested-list handling, and no
// table support. Known structural limitations are kept as-is for output
// parity with earlier releases; see the notes on wrapParagraphs.
package transcode

import (
	"github.com/pdiddy/textmill/pkg/types"
)

// conversionKind tags one entry of the closed (source, target) dispatch
// relation.
type conversionKind int

const (
	kindUnsupported conversionKind = iota
	kindIdentity
	kindMarkdownToHTML
	kindHTMLToMarkdown
	kindHTMLToPlain
	kindPlainToHTML
	kindMarkdownToPlain
	kindPlainToMarkdown
)

// family collapses the format enumeration into the tags the dispatch
// table is keyed by.
type family int

const (
	familyOther family = iota
	familyMarkdown
	familyHTML
	familyPlain
)

func familyOf(f types.Format) family {
	switch {
	case types.IsMarkdownFamily(f):
		return familyMarkdown
	case types.IsHTMLFamily(f):
		return familyHTML
	case f == types.FormatPlain:
		return familyPlain
	default:
		return familyOther
	}
}

// dispatch is the tagged-pair lookup over source/target families. Pairs
// absent from the table are unsupported.
var dispatch = map[[2]family]conversionKind{
	{familyMarkdown, familyMarkdown}: kindIdentity,
	{familyHTML, familyHTML}:         kindIdentity,
	{familyPlain, familyPlain}:       kindIdentity,
	{familyMarkdown, familyHTML}:     kindMarkdownToHTML,
	{familyHTML, familyMarkdown}:     kindHTMLToMarkdown,
	{familyHTML, familyPlain}:        kindHTMLToPlain,
	{familyPlain, familyHTML}:        kindPlainToHTML,
	{familyMarkdown, familyPlain}:    kindMarkdownToPlain,
	{familyPlain, familyMarkdown}:    kindPlainToMarkdown,
}

// TextExtractor is the pluggable strategy for turning HTML into plain
// text. Implementations must preserve visible text order and drop all
// markup; no particular parser is mandated.
type TextExtractor interface {
	ExtractVisibleText(html string) (string, error)
}

// Transcoder converts text between the locally supported formats.
// The zero value is not usable; construct with New.
type Transcoder struct {
	extractor TextExtractor
}

// New returns a Transcoder using the goquery-backed text extractor.
func New() *Transcoder {
	return &Transcoder{extractor: &GoqueryExtractor{}}
}

// NewWithExtractor returns a Transcoder with a custom HTML-to-text
// extraction strategy.
func NewWithExtractor(e TextExtractor) *Transcoder {
	return &Transcoder{extractor: e}
}

// CanHandle reports whether the (source, target) pair is inside the
// closed relation this package converts. Exposed so callers can decide
// routing without attempting a conversion.
func CanHandle(source, target types.Format) bool {
	return dispatch[[2]family{familyOf(source), familyOf(target)}] != kindUnsupported
}

// Transcode converts text from source to target. Identity pairs return
// the input unchanged. Pairs outside the supported relation fail with
// *types.UnsupportedConversionError; that is the only error condition
// this package originates.
func (t *Transcoder) Transcode(text string, source, target types.Format, opts types.ConversionOptions) (string, error) {
	switch dispatch[[2]family{familyOf(source), familyOf(target)}] {
	case kindIdentity:
		return text, nil
	case kindMarkdownToHTML:
		return markdownToHTML(text, opts), nil
	case kindHTMLToMarkdown:
		return htmlToMarkdown(text), nil
	case kindHTMLToPlain:
		return t.extractor.ExtractVisibleText(text)
	case kindPlainToHTML:
		return plainToHTML(text, opts), nil
	case kindMarkdownToPlain:
		// Two-stage composition. The intermediate HTML is produced by the
		// same stage pipeline as a direct Markdown->HTML conversion, so
		// its artifacts carry through to the extracted text.
		return t.extractor.ExtractVisibleText(markdownToHTML(text, opts))
	case kindPlainToMarkdown:
		// Plain text is already valid Markdown.
		return text, nil
	default:
		return "", &types.UnsupportedConversionError{Source: source, Target: target}
	}
}
