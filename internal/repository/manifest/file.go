package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oshokin/xa-init/internal/config"
	domain "github.com/oshokin/xa-init/internal/domain/manifest"
)

// Repository defines persistence operations for a package manifest.
type Repository interface {
	Load(ctx context.Context) (*domain.Manifest, error)
	Save(ctx context.Context, m *domain.Manifest) error
}

// FileRepository reads and writes one manifest file.
// It does not guard against concurrent writers of the same path.
type FileRepository struct {
	// path is the filesystem location of the manifest.
	path string
}

// NewFileRepository creates a repository for the manifest named filename inside dir.
// An empty dir means the current directory, an empty filename means package.json.
func NewFileRepository(dir, filename string) *FileRepository {
	if filename == "" {
		filename = config.DefaultManifestFilename
	}

	return &FileRepository{
		path: filepath.Join(dir, filename),
	}
}

// Path returns the manifest location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads, decodes and validates the manifest.
func (r *FileRepository) Load(_ context.Context) (*domain.Manifest, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m := domain.New()
	if err = json.Unmarshal(contents, m); err != nil {
		if errors.Is(err, domain.ErrNotObject) {
			return nil, fmt.Errorf("decode manifest %s: %w: %w", r.path, ErrInvalid, err)
		}

		return nil, fmt.Errorf("decode manifest %s: %w", r.path, err)
	}

	if err = validate(contents); err != nil {
		return nil, fmt.Errorf("validate manifest %s: %w", r.path, err)
	}

	return m, nil
}

// Save writes the manifest with two-space indentation and a trailing newline.
// The permissions of an existing file are kept.
func (r *FileRepository) Save(_ context.Context, m *domain.Manifest) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	// Encoder terminates the document with a newline.
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	perm := fs.FileMode(config.DefaultFilePermissions)
	if info, err := os.Stat(r.path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(r.path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
