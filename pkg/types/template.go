// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TemplateKind identifies the document family a reference template
// styles. Fixed at creation from the imported file's extension.
type TemplateKind string

const (
	TemplateDocx TemplateKind = "docx"
	TemplateODT  TemplateKind = "odt"
	TemplatePptx TemplateKind = "pptx"
)

// TemplateKindForExtension maps a file extension (without dot, lower
// case) to its template kind. The second return value is false for
// extensions outside the supported set.
func TemplateKindForExtension(ext string) (TemplateKind, bool) {
	switch TemplateKind(ext) {
	case TemplateDocx, TemplateODT, TemplatePptx:
		return TemplateKind(ext), true
	}
	return "", false
}

// TargetFormat returns the output format a template kind applies to.
func (k TemplateKind) TargetFormat() Format {
	switch k {
	case TemplateODT:
		return FormatODT
	case TemplatePptx:
		return FormatPptx
	default:
		return FormatDocx
	}
}

// ReferenceTemplate is the metadata record for a user-imported styled
// document used by the remote service for output styling. The backing
// file lives in durable storage keyed by ID; only ID pairs with exactly
// one file.
type ReferenceTemplate struct {
	// ID is the storage key for the backing file.
	ID string `json:"id" yaml:"id"`

	// Name is the user-facing display name. Mutable via rename.
	Name string `json:"name" yaml:"name"`

	// OriginalFilename is the name of the imported source file.
	OriginalFilename string `json:"original_filename" yaml:"original_filename"`

	// CreatedAt is the import timestamp. Immutable.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Size is the backing file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// Kind is the template document family, fixed at creation.
	Kind TemplateKind `json:"kind" yaml:"kind"`
}
