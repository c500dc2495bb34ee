// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PreviewLimit bounds the number of characters retained in a result's
// output preview.
const PreviewLimit = 2000

// ConversionDocument is one input unit: text with a filename, or raw
// bytes resolved from a source location. Immutable once constructed.
type ConversionDocument struct {
	// Filename is the name the document was supplied under.
	Filename string `json:"filename" yaml:"filename"`

	// Content holds the raw bytes of the document.
	Content []byte `json:"-" yaml:"-"`

	// Text is the best-effort decoded text view of Content. Empty with
	// TextValid false when the content is binary and not decodable.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// TextValid reports whether Text holds a usable decoding of Content.
	TextValid bool `json:"text_valid" yaml:"text_valid"`
}

// NewTextDocument builds a document from already-decoded text.
func NewTextDocument(filename, text string) ConversionDocument {
	return ConversionDocument{
		Filename:  filename,
		Content:   []byte(text),
		Text:      text,
		TextValid: true,
	}
}

// NewBinaryDocument builds a document from raw bytes, attempting a UTF-8
// text view. Content containing NUL bytes is treated as binary.
func NewBinaryDocument(filename string, content []byte) ConversionDocument {
	doc := ConversionDocument{Filename: filename, Content: content}
	for _, b := range content {
		if b == 0 {
			return doc
		}
	}
	doc.Text = string(content)
	doc.TextValid = true
	return doc
}

// ConversionResult is the unified outcome of a conversion. Exactly one of
// the two shapes holds: Success true with OutputPath set, or Success
// false with ErrorMessage set.
type ConversionResult struct {
	// Success reports whether the conversion produced output.
	Success bool `json:"success" yaml:"success"`

	// OutputPath locates the persisted output artifact on success.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Preview holds the first PreviewLimit characters of the output.
	Preview string `json:"preview,omitempty" yaml:"preview,omitempty"`

	// ErrorMessage describes the failure on non-success.
	ErrorMessage string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// SuccessResult builds a success outcome from an output path and the full
// output text, computing the bounded preview.
func SuccessResult(outputPath, output string) ConversionResult {
	return ConversionResult{
		Success:    true,
		OutputPath: outputPath,
		Preview:    TruncatePreview(output),
	}
}

// FailureResult builds a failure outcome carrying the error message.
func FailureResult(msg string) ConversionResult {
	return ConversionResult{ErrorMessage: msg}
}

// TruncatePreview bounds s to PreviewLimit characters. Truncation is by
// rune so multi-byte sequences are never split.
func TruncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= PreviewLimit {
		return s
	}
	return string(runes[:PreviewLimit])
}
