// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package route orchestrates conversion requests between the local
// transcoder and the remote conversion service according to the active
// conversion mode.
package route

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/textmill/internal/transcode"
	"github.com/pdiddy/textmill/pkg/types"
)

// Remote is the conversion-service dependency of the router. Satisfied
// by *remote.Client in production and by stubs in tests.
type Remote interface {
	Convert(ctx context.Context, text string, source, target types.Format, opts types.ConversionOptions, template []byte, templateKind types.TemplateKind) (string, error)
}

// Router selects between the local transcoder and the remote service per
// the active ConversionMode and turns every path's outcome into a
// ConversionResult. The mode is the only state retained between calls;
// it is guarded so concurrent conversions may read it while explicit
// configuration calls mutate it.
type Router struct {
	mu   sync.RWMutex
	mode types.ConversionMode

	transcoder  *transcode.Transcoder
	remote      Remote
	artifactDir string
	log         *logrus.Logger
}

// NewRouter builds a Router. An empty artifactDir means a textmill
// subdirectory of the system temp directory. The log argument may be
// nil, in which case a discarding logger is used.
func NewRouter(cfg types.RouterConfig, rc Remote, log *logrus.Logger) *Router {
	mode := cfg.Mode
	if mode == "" {
		mode = types.ModeAuto
	}
	dir := cfg.ArtifactDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "textmill")
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Router{
		mode:        mode,
		transcoder:  transcode.New(),
		remote:      rc,
		artifactDir: dir,
		log:         log,
	}
}

// Mode returns the active conversion mode.
func (r *Router) Mode() types.ConversionMode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode
}

// SetMode changes the routing policy. Expected to be called rarely, by
// explicit user action, relative to conversion frequency.
func (r *Router) SetMode(mode types.ConversionMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

// CanHandleLocally reports whether the pair converts without the remote
// service. Exposed so callers can decide affordances without attempting
// a conversion.
func (r *Router) CanHandleLocally(source, target types.Format) bool {
	return transcode.CanHandle(source, target)
}

// Convert runs one conversion of doc from source to target. Every
// failure path terminates in a non-success result naming the
// responsible stage; no error escapes as a panic or a bare return.
//
// Under auto mode a local failure of any kind triggers a full remote
// re-attempt with the original request. Under local-only mode the remote
// service is never contacted. Under remote-only mode local capability is
// ignored.
func (r *Router) Convert(ctx context.Context, doc types.ConversionDocument, source, target types.Format, opts types.ConversionOptions, template []byte, templateKind types.TemplateKind) types.ConversionResult {
	if !doc.TextValid {
		return types.FailureResult(fmt.Sprintf("document %s has no decodable text content", doc.Filename))
	}

	opts = opts.Clone()
	local := transcode.CanHandle(source, target)
	mode := r.Mode()

	r.log.WithFields(logrus.Fields{
		"from":  source,
		"to":    target,
		"mode":  mode,
		"local": local,
	}).Debug("routing conversion")

	switch mode {
	case types.ModeLocalOnly:
		if !local {
			return types.FailureResult(fmt.Sprintf("local conversion not supported for %s -> %s", source, target))
		}
		out, err := r.transcoder.Transcode(doc.Text, source, target, opts)
		if err != nil {
			return types.FailureResult(err.Error())
		}
		return r.persist(out, target)

	case types.ModeRemoteOnly:
		return r.convertRemote(ctx, doc.Text, source, target, opts, template, templateKind)

	default: // auto
		if local {
			out, err := r.transcoder.Transcode(doc.Text, source, target, opts)
			if err == nil {
				return r.persist(out, target)
			}
			r.log.WithError(err).Debug("local conversion failed, falling back to remote")
		}
		return r.convertRemote(ctx, doc.Text, source, target, opts, template, templateKind)
	}
}

func (r *Router) convertRemote(ctx context.Context, text string, source, target types.Format, opts types.ConversionOptions, template []byte, templateKind types.TemplateKind) types.ConversionResult {
	out, err := r.remote.Convert(ctx, text, source, target, opts, template, templateKind)
	if err != nil {
		return types.FailureResult(err.Error())
	}
	return r.persist(out, target)
}

// persist writes output to a new uniquely named artifact and builds the
// success result with its bounded preview. Writing the artifact is the
// only side effect of a conversion; orphaned artifacts are reclaimed by
// an external cleanup sweep, not here.
func (r *Router) persist(output string, target types.Format) types.ConversionResult {
	if err := os.MkdirAll(r.artifactDir, 0o755); err != nil {
		return types.FailureResult(fmt.Sprintf("creating artifact directory: %v", err))
	}

	name := uuid.NewString() + "." + types.ExtensionOf(target)
	path := filepath.Join(r.artifactDir, name)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return types.FailureResult(fmt.Sprintf("writing output artifact: %v", err))
	}

	return types.SuccessResult(path, output)
}
