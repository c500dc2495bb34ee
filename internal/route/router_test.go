// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package route

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/textmill/pkg/types"
)

// stubRemote records calls and serves a canned response.
type stubRemote struct {
	calls  int
	output string
	err    error

	lastText   string
	lastSource types.Format
	lastTarget types.Format
}

func (s *stubRemote) Convert(_ context.Context, text string, source, target types.Format, _ types.ConversionOptions, _ []byte, _ types.TemplateKind) (string, error) {
	s.calls++
	s.lastText = text
	s.lastSource = source
	s.lastTarget = target
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func newTestRouter(t *testing.T, mode types.ConversionMode, rc Remote) *Router {
	t.Helper()
	return NewRouter(types.RouterConfig{Mode: mode, ArtifactDir: t.TempDir()}, rc, nil)
}

func TestLocalOnlySupportedPair(t *testing.T) {
	rc := &stubRemote{}
	r := newTestRouter(t, types.ModeLocalOnly, rc)

	doc := types.NewTextDocument("note.md", "# Hello\n\nBody text.")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatHTML, types.DefaultOptions(), nil, "")

	require.True(t, res.Success, "unexpected failure: %s", res.ErrorMessage)
	assert.Zero(t, rc.calls, "remote must not be contacted in local-only mode")
	assert.Contains(t, res.Preview, "<h1>Hello</h1>")

	content, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<h1>Hello</h1>")
	assert.Equal(t, ".html", filepath.Ext(res.OutputPath))
}

func TestLocalOnlyUnsupportedPair(t *testing.T) {
	rc := &stubRemote{}
	r := newTestRouter(t, types.ModeLocalOnly, rc)

	doc := types.NewTextDocument("note.md", "content")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatDocx, types.DefaultOptions(), nil, "")

	assert.False(t, res.Success)
	assert.Equal(t, "local conversion not supported for markdown -> docx", res.ErrorMessage)
	assert.Zero(t, rc.calls, "remote must not be contacted in local-only mode")
}

func TestRemoteOnlyIgnoresLocalCapability(t *testing.T) {
	rc := &stubRemote{output: "<p>from remote</p>"}
	r := newTestRouter(t, types.ModeRemoteOnly, rc)

	doc := types.NewTextDocument("note.md", "plain words")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatHTML, types.DefaultOptions(), nil, "")

	require.True(t, res.Success, "unexpected failure: %s", res.ErrorMessage)
	assert.Equal(t, 1, rc.calls)
	assert.Equal(t, "<p>from remote</p>", res.Preview)
}

func TestAutoUsesLocalWhenSupported(t *testing.T) {
	rc := &stubRemote{output: "should not appear"}
	r := newTestRouter(t, types.ModeAuto, rc)

	doc := types.NewTextDocument("note.md", "just text")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatHTML, types.DefaultOptions(), nil, "")

	require.True(t, res.Success, "unexpected failure: %s", res.ErrorMessage)
	assert.Zero(t, rc.calls, "supported pair must convert locally")
}

func TestAutoDelegatesUnsupportedPair(t *testing.T) {
	rc := &stubRemote{output: "binary stand-in"}
	r := newTestRouter(t, types.ModeAuto, rc)

	doc := types.NewTextDocument("note.md", "# Title")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatDocx, types.DefaultOptions(), nil, "")

	require.True(t, res.Success, "unexpected failure: %s", res.ErrorMessage)
	assert.Equal(t, 1, rc.calls)
	assert.Equal(t, "# Title", rc.lastText)
	assert.Equal(t, types.FormatMarkdown, rc.lastSource)
	assert.Equal(t, types.FormatDocx, rc.lastTarget)
}

func TestAutoRemoteFailureSurfaces(t *testing.T) {
	rc := &stubRemote{err: errors.New("service unavailable")}
	r := newTestRouter(t, types.ModeAuto, rc)

	doc := types.NewTextDocument("note.md", "content")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatPDF, types.DefaultOptions(), nil, "")

	assert.False(t, res.Success)
	assert.Equal(t, "service unavailable", res.ErrorMessage)
	assert.Equal(t, 1, rc.calls)
}

func TestConvertRejectsBinaryDocument(t *testing.T) {
	rc := &stubRemote{}
	r := newTestRouter(t, types.ModeAuto, rc)

	doc := types.NewBinaryDocument("blob.bin", []byte{0x00, 0x01, 0x02})
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatHTML, types.DefaultOptions(), nil, "")

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "blob.bin")
	assert.Zero(t, rc.calls)
}

func TestPreviewTruncation(t *testing.T) {
	long := strings.Repeat("y", types.PreviewLimit+500)
	rc := &stubRemote{output: long}
	r := newTestRouter(t, types.ModeRemoteOnly, rc)

	doc := types.NewTextDocument("note.md", "content")
	res := r.Convert(context.Background(), doc, types.FormatMarkdown, types.FormatHTML, types.DefaultOptions(), nil, "")

	require.True(t, res.Success)
	assert.Len(t, res.Preview, types.PreviewLimit)

	content, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Len(t, content, types.PreviewLimit+500, "artifact must hold the full output")
}

func TestModeGetSet(t *testing.T) {
	r := newTestRouter(t, "", &stubRemote{})
	assert.Equal(t, types.ModeAuto, r.Mode(), "empty mode defaults to auto")

	r.SetMode(types.ModeRemoteOnly)
	assert.Equal(t, types.ModeRemoteOnly, r.Mode())
}

func TestCanHandleLocally(t *testing.T) {
	r := newTestRouter(t, types.ModeAuto, &stubRemote{})
	assert.True(t, r.CanHandleLocally(types.FormatMarkdown, types.FormatHTML))
	assert.False(t, r.CanHandleLocally(types.FormatMarkdown, types.FormatDocx))
}
