// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package route

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/textmill/pkg/types"
)

// FileStatus indicates the outcome of one file in a batch run.
type FileStatus string

const (
	FileConverted FileStatus = "converted"
	FileSkipped   FileStatus = "skipped"
	FileFailed    FileStatus = "failed"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts a single file to target, writing the result into
// outDir under the source basename with the target's extension. If the
// output already exists, it skips conversion. The source format is
// inferred from the file extension. A non-nil template is forwarded to
// the router for remote styling.
func ConvertFile(ctx context.Context, r *Router, path string, target types.Format, opts types.ConversionOptions, template []byte, templateKind types.TemplateKind, outDir string, w io.Writer) FileStatus {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+"."+types.ExtensionOf(target))

	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		return FileSkipped
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	source, ok := types.FormatForExtension(ext)
	if !ok {
		fmt.Fprintf(w, "failed:  %s (unrecognized extension %q)\n", base, ext)
		return FileFailed
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return FileFailed
	}

	doc := types.NewBinaryDocument(filepath.Base(path), data)
	res := r.Convert(ctx, doc, source, target, opts, template, templateKind)
	if !res.Success {
		fmt.Fprintf(w, "failed:  %s (%s)\n", base, res.ErrorMessage)
		return FileFailed
	}

	output, err := os.ReadFile(res.OutputPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (reading artifact: %v)\n", base, err)
		return FileFailed
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return FileFailed
	}
	if err := os.WriteFile(outPath, output, 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return FileFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", base, outPath)
	return FileConverted
}

// ConvertFiles processes a list of files through the router, printing
// per-file status to w and returning a summary.
func ConvertFiles(ctx context.Context, r *Router, paths []string, target types.Format, opts types.ConversionOptions, template []byte, templateKind types.TemplateKind, outDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		switch ConvertFile(ctx, r, p, target, opts, template, templateKind, outDir, w) {
		case FileConverted:
			result.Converted++
		case FileSkipped:
			result.Skipped++
		case FileFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
