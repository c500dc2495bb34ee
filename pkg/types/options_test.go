// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Wrap != WrapAuto {
		t.Errorf("DefaultOptions().Wrap = %q, want %q", opts.Wrap, WrapAuto)
	}
	if opts.Standalone || opts.TableOfContents || opts.NumberSections {
		t.Error("DefaultOptions() must not enable any document features")
	}
}

func TestCloneDeepCopiesMaps(t *testing.T) {
	orig := ConversionOptions{
		Wrap:      WrapNone,
		Variables: map[string]string{"margin": "1in"},
		Metadata:  map[string]string{"title": "Report"},
	}

	clone := orig.Clone()
	clone.Variables["margin"] = "2in"
	clone.Metadata["author"] = "nobody"

	if orig.Variables["margin"] != "1in" {
		t.Errorf("clone mutation leaked into original variables: %v", orig.Variables)
	}
	if _, ok := orig.Metadata["author"]; ok {
		t.Errorf("clone mutation leaked into original metadata: %v", orig.Metadata)
	}
	if clone.Wrap != WrapNone {
		t.Errorf("Clone().Wrap = %q, want %q", clone.Wrap, WrapNone)
	}
}

func TestCloneNilMaps(t *testing.T) {
	clone := ConversionOptions{}.Clone()
	if clone.Variables != nil || clone.Metadata != nil {
		t.Error("Clone() of nil maps must stay nil")
	}
}
