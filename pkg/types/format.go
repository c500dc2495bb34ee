// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Format identifies a document markup format by its stable wire name
// (e.g. "markdown", "html5"). The set of formats is closed: every Format
// used by the system appears in the registry below, and formats are never
// created at runtime.
type Format string

const (
	FormatMarkdown       Format = "markdown"
	FormatCommonMark     Format = "commonmark"
	FormatGFM            Format = "gfm"
	FormatMarkdownStrict Format = "markdown_strict"
	FormatHTML           Format = "html"
	FormatHTML5          Format = "html5"
	FormatPlain          Format = "plain"
	FormatDocx           Format = "docx"
	FormatODT            Format = "odt"
	FormatRTF            Format = "rtf"
	FormatPDF            Format = "pdf"
	FormatPptx           Format = "pptx"
	FormatLaTeX          Format = "latex"
	FormatRST            Format = "rst"
	FormatMediaWiki      Format = "mediawiki"
	FormatJSON           Format = "json"
	FormatCSV            Format = "csv"
	FormatEPUB           Format = "epub"
)

// Category groups formats for display purposes.
type Category string

const (
	CategoryMarkdown     Category = "Markdown"
	CategoryDocument     Category = "Document"
	CategoryWeb          Category = "Web"
	CategoryPresentation Category = "Presentation"
	CategoryAcademic     Category = "Academic"
	CategoryWiki         Category = "Wiki"
	CategoryData         Category = "Data"
	CategoryText         Category = "Text"
	CategoryOther        Category = "Other"
)

// FormatInfo holds the display metadata for one registry entry.
type FormatInfo struct {
	// ID is the stable wire name used on the conversion protocol.
	ID Format `json:"id" yaml:"id"`

	// DisplayName is the human-readable format name.
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Category groups the format in listings.
	Category Category `json:"category" yaml:"category"`

	// Extension is the canonical file extension, without dot.
	Extension string `json:"extension" yaml:"extension"`

	// MIMEType is the content type associated with the format.
	MIMEType string `json:"mime_type" yaml:"mime_type"`

	// Input reports whether the format is eligible as a conversion source.
	Input bool `json:"input" yaml:"input"`

	// Output reports whether the format is eligible as a conversion target.
	Output bool `json:"output" yaml:"output"`
}

// registry is the closed format catalog. Every format has exactly one
// category and one canonical extension. Input and output eligibility may
// differ (PDF is output-only, CSV is input-only).
var registry = []FormatInfo{
	{FormatMarkdown, "Markdown", CategoryMarkdown, "md", "text/markdown", true, true},
	{FormatCommonMark, "CommonMark", CategoryMarkdown, "md", "text/markdown", true, true},
	{FormatGFM, "GitHub Flavored Markdown", CategoryMarkdown, "md", "text/markdown", true, true},
	{FormatMarkdownStrict, "Markdown (strict)", CategoryMarkdown, "md", "text/markdown", true, true},
	{FormatHTML, "HTML", CategoryWeb, "html", "text/html", true, true},
	{FormatHTML5, "HTML5", CategoryWeb, "html", "text/html", true, true},
	{FormatPlain, "Plain Text", CategoryText, "txt", "text/plain", true, true},
	{FormatDocx, "Word Document", CategoryDocument, "docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true, true},
	{FormatODT, "OpenDocument Text", CategoryDocument, "odt", "application/vnd.oasis.opendocument.text", true, true},
	{FormatRTF, "Rich Text Format", CategoryDocument, "rtf", "application/rtf", true, true},
	{FormatPDF, "PDF", CategoryDocument, "pdf", "application/pdf", false, true},
	{FormatPptx, "PowerPoint Presentation", CategoryPresentation, "pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation", true, true},
	{FormatLaTeX, "LaTeX", CategoryAcademic, "tex", "application/x-latex", true, true},
	{FormatRST, "reStructuredText", CategoryAcademic, "rst", "text/x-rst", true, true},
	{FormatMediaWiki, "MediaWiki", CategoryWiki, "wiki", "text/x-wiki", true, true},
	{FormatJSON, "Pandoc JSON", CategoryData, "json", "application/json", true, true},
	{FormatCSV, "CSV", CategoryData, "csv", "text/csv", true, false},
	{FormatEPUB, "EPUB", CategoryOther, "epub", "application/epub+zip", true, true},
}

// index maps each Format to its registry entry for O(1) lookups.
var index = func() map[Format]FormatInfo {
	m := make(map[Format]FormatInfo, len(registry))
	for _, fi := range registry {
		m[fi.ID] = fi
	}
	return m
}()

// Formats returns the full registry in declaration order. The returned
// slice is a copy; callers may reorder it freely.
func Formats() []FormatInfo {
	out := make([]FormatInfo, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registry entry for f. The second return value is
// false for identifiers outside the closed set.
func Lookup(f Format) (FormatInfo, bool) {
	fi, ok := index[f]
	return fi, ok
}

// IsValidSource reports whether f is eligible as a conversion source.
func IsValidSource(f Format) bool {
	fi, ok := index[f]
	return ok && fi.Input
}

// IsValidTarget reports whether f is eligible as a conversion target.
func IsValidTarget(f Format) bool {
	fi, ok := index[f]
	return ok && fi.Output
}

// CategoryOf returns the category of f, or CategoryOther for unknown
// identifiers.
func CategoryOf(f Format) Category {
	if fi, ok := index[f]; ok {
		return fi.Category
	}
	return CategoryOther
}

// ExtensionOf returns the canonical file extension of f (without dot),
// or "txt" for unknown identifiers.
func ExtensionOf(f Format) string {
	if fi, ok := index[f]; ok {
		return fi.Extension
	}
	return "txt"
}

// FormatForExtension returns the first registry format whose canonical
// extension matches ext (without dot, case-insensitive). The second
// return value is false when no format claims the extension.
func FormatForExtension(ext string) (Format, bool) {
	for _, fi := range registry {
		if strings.EqualFold(fi.Extension, ext) {
			return fi.ID, true
		}
	}
	return "", false
}

// IsMarkdownFamily reports whether f is one of the Markdown variants the
// local transcoder treats interchangeably.
func IsMarkdownFamily(f Format) bool {
	return CategoryOf(f) == CategoryMarkdown
}

// IsHTMLFamily reports whether f is an HTML variant.
func IsHTMLFamily(f Format) bool {
	return f == FormatHTML || f == FormatHTML5
}
