// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
)

func TestNewTextDocument(t *testing.T) {
	doc := NewTextDocument("note.md", "# Hello")
	if !doc.TextValid {
		t.Fatal("NewTextDocument().TextValid = false")
	}
	if doc.Text != "# Hello" || string(doc.Content) != "# Hello" {
		t.Errorf("document content mismatch: %+v", doc)
	}
}

func TestNewBinaryDocument(t *testing.T) {
	tests := []struct {
		name      string
		content   []byte
		textValid bool
	}{
		{"plain bytes", []byte("just text"), true},
		{"utf-8 text", []byte("héllo wörld"), true},
		{"empty", nil, true},
		{"nul byte means binary", []byte{'a', 0x00, 'b'}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewBinaryDocument("f", tt.content)
			if doc.TextValid != tt.textValid {
				t.Errorf("TextValid = %v, want %v", doc.TextValid, tt.textValid)
			}
			if !tt.textValid && doc.Text != "" {
				t.Errorf("binary document carries text %q", doc.Text)
			}
		})
	}
}

func TestResultShapes(t *testing.T) {
	ok := SuccessResult("/tmp/out.html", "<p>hi</p>")
	if !ok.Success || ok.OutputPath != "/tmp/out.html" || ok.Preview != "<p>hi</p>" || ok.ErrorMessage != "" {
		t.Errorf("SuccessResult() = %+v", ok)
	}

	fail := FailureResult("it broke")
	if fail.Success || fail.ErrorMessage != "it broke" || fail.OutputPath != "" {
		t.Errorf("FailureResult() = %+v", fail)
	}
}

func TestTruncatePreview(t *testing.T) {
	short := "short output"
	if got := TruncatePreview(short); got != short {
		t.Errorf("TruncatePreview(short) = %q", got)
	}

	exact := strings.Repeat("x", PreviewLimit)
	if got := TruncatePreview(exact); got != exact {
		t.Error("TruncatePreview must keep output at exactly the limit")
	}

	long := strings.Repeat("x", PreviewLimit+1)
	if got := TruncatePreview(long); len([]rune(got)) != PreviewLimit {
		t.Errorf("TruncatePreview(long) length = %d, want %d", len([]rune(got)), PreviewLimit)
	}
}

func TestTruncatePreviewRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", PreviewLimit+10)
	got := TruncatePreview(long)
	if len([]rune(got)) != PreviewLimit {
		t.Fatalf("rune length = %d, want %d", len([]rune(got)), PreviewLimit)
	}
	if !strings.HasSuffix(got, "é") {
		t.Error("truncation split a multi-byte sequence")
	}
}
