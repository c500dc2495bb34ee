// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template persists reference templates: user-imported styled
// documents (docx/odt/pptx) forwarded to the remote conversion service
// for output styling. Metadata lives in a SQLite database; backing files
// are copied into durable storage keyed by the template's identifier.
package template

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/textmill/pkg/types"
)

const (
	filesDir = "files"
	indexDir = "index"
	dbFile   = "templates.db"
)

// Store manages reference-template files and their metadata database.
type Store struct {
	db      *sql.DB
	baseDir string
}

// NewStore opens or creates the template store under baseDir (contains
// files/ and index/templates.db), creating the schema if it does not
// exist.
func NewStore(cfg types.TemplateStoreConfig) (*Store, error) {
	for _, dir := range []string{filesDir, indexDir} {
		if err := os.MkdirAll(filepath.Join(cfg.TemplatesDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating template directory: %w", err)
		}
	}

	dbPath := filepath.Join(cfg.TemplatesDir, indexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening template database: %w", err)
	}

	s := &Store{db: db, baseDir: cfg.TemplatesDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		original_filename TEXT NOT NULL,
		created_at TEXT NOT NULL,
		size INTEGER NOT NULL,
		kind TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// filePath returns the backing file location for a template record.
func (s *Store) filePath(id string, kind types.TemplateKind) string {
	return filepath.Join(s.baseDir, filesDir, id+"."+string(kind))
}

// FilePath returns the backing file location of t.
func (s *Store) FilePath(t types.ReferenceTemplate) string {
	return s.filePath(t.ID, t.Kind)
}

// Save imports template content under displayName. The template kind is
// fixed here from declaredExtension; extensions outside docx/odt/pptx
// fail with *types.TemplateUnsupportedFormatError. The content is copied
// into durable storage keyed by a fresh identifier before the metadata
// row is written; a failed metadata write removes the copied file again
// so no undiscoverable file is left behind.
func (s *Store) Save(content []byte, declaredExtension, displayName string) (types.ReferenceTemplate, error) {
	ext := strings.ToLower(strings.TrimPrefix(declaredExtension, "."))
	kind, ok := types.TemplateKindForExtension(ext)
	if !ok {
		return types.ReferenceTemplate{}, &types.TemplateUnsupportedFormatError{Extension: ext}
	}

	t := types.ReferenceTemplate{
		ID:               uuid.NewString(),
		Name:             displayName,
		OriginalFilename: displayName + "." + ext,
		CreatedAt:        time.Now().UTC(),
		Size:             int64(len(content)),
		Kind:             kind,
	}

	path := s.filePath(t.ID, t.Kind)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return types.ReferenceTemplate{}, &types.TemplateSaveError{Name: displayName, Cause: err}
	}

	_, err := s.db.Exec(
		`INSERT INTO templates (id, name, original_filename, created_at, size, kind) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.OriginalFilename, t.CreatedAt.Format(time.RFC3339Nano), t.Size, string(t.Kind),
	)
	if err != nil {
		os.Remove(path)
		return types.ReferenceTemplate{}, &types.TemplateSaveError{Name: displayName, Cause: err}
	}

	return t, nil
}

// SaveFile imports the file at sourcePath, deriving the kind from its
// extension and the display name from its basename. Unreadable files
// fail with *types.TemplateAccessError.
func (s *Store) SaveFile(sourcePath string) (types.ReferenceTemplate, error) {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return types.ReferenceTemplate{}, &types.TemplateAccessError{Path: sourcePath, Cause: err}
	}
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return s.Save(content, filepath.Ext(base), name)
}

// List returns all templates whose backing file still exists, in
// creation order. Rows whose file has gone missing are pruned from the
// metadata database as they are encountered.
func (s *Store) List() ([]types.ReferenceTemplate, error) {
	rows, err := s.db.Query(`SELECT id, name, original_filename, created_at, size, kind FROM templates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var templates []types.ReferenceTemplate
	var stale []string
	for rows.Next() {
		var t types.ReferenceTemplate
		var created, kind string
		if err := rows.Scan(&t.ID, &t.Name, &t.OriginalFilename, &created, &t.Size, &kind); err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		t.Kind = types.TemplateKind(kind)
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			t.CreatedAt = ts
		}

		if _, err := os.Stat(s.filePath(t.ID, t.Kind)); err != nil {
			stale = append(stale, t.ID)
			continue
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}

	for _, id := range stale {
		s.db.Exec(`DELETE FROM templates WHERE id = ?`, id)
	}

	return templates, nil
}

// ListKind returns the valid templates of one kind.
func (s *Store) ListKind(kind types.TemplateKind) ([]types.ReferenceTemplate, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var out []types.ReferenceTemplate
	for _, t := range all {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out, nil
}

// Get returns the template with the given identifier, provided its
// backing file exists.
func (s *Store) Get(id string) (types.ReferenceTemplate, error) {
	all, err := s.List()
	if err != nil {
		return types.ReferenceTemplate{}, err
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return types.ReferenceTemplate{}, fmt.Errorf("template %s not found", id)
}

// Content reads the backing file of t.
func (s *Store) Content(t types.ReferenceTemplate) ([]byte, error) {
	data, err := os.ReadFile(s.FilePath(t))
	if err != nil {
		return nil, &types.TemplateAccessError{Path: s.FilePath(t), Cause: err}
	}
	return data, nil
}

// Delete removes t's backing file and metadata as a pair. The file goes
// first: when its removal fails the metadata row is kept, so the
// template stays discoverable and the deletion can be retried. A file
// that is already gone does not block metadata removal.
func (s *Store) Delete(t types.ReferenceTemplate) error {
	path := s.FilePath(t)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &types.TemplateAccessError{Path: path, Cause: err}
	}
	if _, err := s.db.Exec(`DELETE FROM templates WHERE id = ?`, t.ID); err != nil {
		return fmt.Errorf("deleting template metadata: %w", err)
	}
	return nil
}

// Rename updates the user-facing name of t.
func (s *Store) Rename(t types.ReferenceTemplate, newName string) error {
	if _, err := s.db.Exec(`UPDATE templates SET name = ? WHERE id = ?`, newName, t.ID); err != nil {
		return fmt.Errorf("renaming template: %w", err)
	}
	return nil
}
