// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// UnsupportedConversionError reports a (source, target) pair the local
// transcoder cannot handle. Under auto mode it is recoverable: the router
// falls back to the remote service instead of surfacing it.
type UnsupportedConversionError struct {
	Source Format
	Target Format
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("local conversion not supported for %s -> %s", e.Source, e.Target)
}

// RemoteServerError reports a failure the conversion service explicitly
// returned with a non-200 status.
type RemoteServerError struct {
	StatusCode int
	Message    string
}

func (e *RemoteServerError) Error() string {
	return fmt.Sprintf("conversion service returned HTTP %d: %s", e.StatusCode, e.Message)
}

// RemoteNetworkError reports a transport-level failure (DNS, timeout,
// connection refusal) reaching the conversion service. Distinct from a
// server-reported error.
type RemoteNetworkError struct {
	Cause error
}

func (e *RemoteNetworkError) Error() string {
	return fmt.Sprintf("network error contacting conversion service: %v", e.Cause)
}

func (e *RemoteNetworkError) Unwrap() error { return e.Cause }

// RemoteInvalidResponseError reports a malformed body on a success
// status from the conversion service.
type RemoteInvalidResponseError struct {
	Cause error
}

func (e *RemoteInvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response from conversion service: %v", e.Cause)
}

func (e *RemoteInvalidResponseError) Unwrap() error { return e.Cause }

// Template management errors, independent of the conversion taxonomy.

// TemplateAccessError reports that a template's source or backing file
// could not be read or written.
type TemplateAccessError struct {
	Path  string
	Cause error
}

func (e *TemplateAccessError) Error() string {
	return fmt.Sprintf("cannot access template file %s: %v", e.Path, e.Cause)
}

func (e *TemplateAccessError) Unwrap() error { return e.Cause }

// TemplateUnsupportedFormatError reports an import of a file whose
// extension is not a reference-template kind.
type TemplateUnsupportedFormatError struct {
	Extension string
}

func (e *TemplateUnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported template format %q: expected docx, odt, or pptx", e.Extension)
}

// TemplateSaveError reports a failure persisting a template's file or
// metadata.
type TemplateSaveError struct {
	Name  string
	Cause error
}

func (e *TemplateSaveError) Error() string {
	return fmt.Sprintf("saving template %s: %v", e.Name, e.Cause)
}

func (e *TemplateSaveError) Unwrap() error { return e.Cause }
