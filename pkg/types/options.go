// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WrapMode controls line wrapping of converted output.
type WrapMode string

const (
	WrapAuto     WrapMode = "auto"
	WrapNone     WrapMode = "none"
	WrapPreserve WrapMode = "preserve"
)

// ConversionMode selects how the router chooses between the local
// transcoder and the remote conversion service.
type ConversionMode string

const (
	// ModeAuto tries the local transcoder first and falls back to the
	// remote service on any local failure.
	ModeAuto ConversionMode = "auto"

	// ModeLocalOnly never contacts the remote service.
	ModeLocalOnly ConversionMode = "local"

	// ModeRemoteOnly always delegates to the remote service.
	ModeRemoteOnly ConversionMode = "remote"
)

// ConversionOptions is the per-call option set. A value is immutable for
// the duration of one conversion: callers pass it by value and the maps
// are never mutated after construction.
type ConversionOptions struct {
	// Standalone wraps the output in a complete document shell.
	Standalone bool `json:"standalone" yaml:"standalone"`

	// TableOfContents requests a table-of-contents block.
	TableOfContents bool `json:"toc" yaml:"toc"`

	// NumberSections requests numbered section headings.
	NumberSections bool `json:"number_sections" yaml:"number_sections"`

	// Wrap selects the text-wrap mode (auto, none, preserve).
	Wrap WrapMode `json:"wrap" yaml:"wrap"`

	// HighlightStyle names the syntax highlighting style, if any.
	HighlightStyle string `json:"highlight_style,omitempty" yaml:"highlight_style,omitempty"`

	// TemplatePath points at a custom output template, if any.
	TemplatePath string `json:"template_path,omitempty" yaml:"template_path,omitempty"`

	// Variables holds template variable assignments.
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`

	// Metadata holds document metadata assignments.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DefaultOptions returns the option set used when the caller specifies
// nothing: auto wrapping, no document shell.
func DefaultOptions() ConversionOptions {
	return ConversionOptions{Wrap: WrapAuto}
}

// Clone returns a deep copy of o so concurrent conversions never share
// the variable and metadata maps.
func (o ConversionOptions) Clone() ConversionOptions {
	out := o
	if o.Variables != nil {
		out.Variables = make(map[string]string, len(o.Variables))
		for k, v := range o.Variables {
			out.Variables[k] = v
		}
	}
	if o.Metadata != nil {
		out.Metadata = make(map[string]string, len(o.Metadata))
		for k, v := range o.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}
