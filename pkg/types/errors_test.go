// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"unsupported conversion",
			&UnsupportedConversionError{Source: FormatMarkdown, Target: FormatDocx},
			"local conversion not supported for markdown -> docx",
		},
		{
			"remote server",
			&RemoteServerError{StatusCode: 422, Message: "bad format"},
			"conversion service returned HTTP 422: bad format",
		},
		{
			"unsupported template format",
			&TemplateUnsupportedFormatError{Extension: "pdf"},
			`unsupported template format "pdf": expected docx, odt, or pptx`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := fs.ErrNotExist

	tests := []struct {
		name string
		err  error
	}{
		{"remote network", &RemoteNetworkError{Cause: cause}},
		{"remote invalid response", &RemoteInvalidResponseError{Cause: cause}},
		{"template access", &TemplateAccessError{Path: "/tmp/t.docx", Cause: cause}},
		{"template save", &TemplateSaveError{Name: "t", Cause: cause}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%T, cause) = false", tt.err)
			}
		})
	}
}

func TestTemplateKindForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want TemplateKind
		ok   bool
	}{
		{"docx", TemplateDocx, true},
		{"odt", TemplateODT, true},
		{"pptx", TemplatePptx, true},
		{"pdf", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := TemplateKindForExtension(tt.ext)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TemplateKindForExtension(%q) = (%s, %v), want (%s, %v)", tt.ext, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTemplateKindTargetFormat(t *testing.T) {
	if TemplateDocx.TargetFormat() != FormatDocx {
		t.Error("docx template must target docx output")
	}
	if TemplateODT.TargetFormat() != FormatODT {
		t.Error("odt template must target odt output")
	}
	if TemplatePptx.TargetFormat() != FormatPptx {
		t.Error("pptx template must target pptx output")
	}
}
