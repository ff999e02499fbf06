package manifest

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/xa-init/internal/domain/manifest"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(contents), 0o600))

	return dir
}

// TestFileRepository_NotFound verifies Load surfaces a missing file as fs.ErrNotExist.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(t.TempDir(), "")
	m, err := repo.Load(context.Background())
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Nil(t, m)
}

// TestFileRepository_Malformed returns the decoder's syntax error.
func TestFileRepository_Malformed(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(writeManifest(t, `{"name": `), "")

	_, err := repo.Load(context.Background())

	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

// TestFileRepository_NotObject rejects a manifest whose root is not an object.
func TestFileRepository_NotObject(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(writeManifest(t, `["xa"]`), "")

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorIs(t, err, domain.ErrNotObject)
}

// TestFileRepository_SchemaViolation reports the offending path.
func TestFileRepository_SchemaViolation(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(writeManifest(t, `{"scripts":{"test":42}}`), "")

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrInvalid)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Issues)
	require.Equal(t, "/scripts/test", ve.Issues[0].Path)
}

// TestFileRepository_SaveFormat checks indentation, trailing newline, key order and permissions.
func TestFileRepository_SaveFormat(t *testing.T) {
	t.Parallel()

	dir := writeManifest(t, `{"name":"demo","scripts":{"start":"node ."},"private":true}`)
	repo := NewFileRepository(dir, "package.json")

	m, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, m.SetTestScript("xa && node test.js > /dev/null"))
	require.NoError(t, repo.Save(context.Background(), m))

	got, err := os.ReadFile(repo.Path())
	require.NoError(t, err)

	want := `{
  "name": "demo",
  "scripts": {
    "start": "node .",
    "test": "xa && node test.js > /dev/null"
  },
  "private": true
}
`
	require.Equal(t, want, string(got))

	info, err := os.Stat(repo.Path())
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

// TestFileRepository_SaveEmpty writes an empty manifest as a bare object.
func TestFileRepository_SaveEmpty(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(t.TempDir(), "")
	require.NoError(t, repo.Save(context.Background(), domain.New()))

	got, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	require.Equal(t, "{}\n", string(got))
}
