package challenge

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const secretCompose = `services:
  app:
    image: nginx
x-ctf-metadata:
  name: Rot13
  authors: [alice]
  description_md: Spin the wheel.
  difficulty: easy
  attachments: [cipher.txt]
  flag: flag{super-secret}
  flag_validation_fn: "setFlagValidationFunction(s => s === 'x')"
`

// writeTree lays out files under dir, creating parent directories.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// unpack reads a gzipped tar back into contents and headers keyed by
// entry name.
func unpack(t *testing.T, data []byte) (map[string][]byte, map[string]*tar.Header) {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	contents := map[string][]byte{}
	headers := map[string]*tar.Header{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(tr)
		require.NoError(t, err)
		contents[hdr.Name] = body
		headers[hdr.Name] = hdr
	}
	return contents, headers
}

// TestPackSanitizesCompose tests that exported manifests carry no flag
// material while everything else survives.
func TestPackSanitizesCompose(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"docker-compose.yml": secretCompose,
		"cipher.txt":         "uryyb",
	})

	archive, err := Pack(dir)
	require.NoError(t, err)

	contents, _ := unpack(t, archive)
	require.Contains(t, contents, "docker-compose.yml")
	require.Contains(t, contents, "cipher.txt")

	sanitized := contents["docker-compose.yml"]
	assert.NotContains(t, string(sanitized), "flag{super-secret}")
	assert.NotContains(t, string(sanitized), "setFlagValidationFunction")

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(sanitized, &doc))
	md, ok := doc["x-ctf-metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, md, "flag")
	assert.NotContains(t, md, "flag_validation_fn")
	assert.Equal(t, "Rot13", md["name"])
	assert.Contains(t, doc, "services")
}

// TestPackIgnoreFiles tests .pflignore handling: nested files, negation,
// directory patterns, and that ignore files themselves stay out of the
// archive.
func TestPackIgnoreFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"docker-compose.yml": secretCompose,
		".pflignore":         "*.log\n!keep.log\nsecret/\n",
		"app.log":            "dropped",
		"keep.log":           "kept by negation",
		"secret/key.txt":     "dropped with directory",
		"src/main.c":         "int main() { return 0; }",
		"src/.pflignore":     "*.o\n",
		"src/main.o":         "\x7fELF",
		"_helpers/gen.js":    "function gen() {}",
		"docs/notes.md":      "notes",
	})

	archive, err := Pack(dir)
	require.NoError(t, err)

	contents, _ := unpack(t, archive)
	assert.Contains(t, contents, "docker-compose.yml")
	assert.Contains(t, contents, "keep.log")
	assert.Contains(t, contents, "src/main.c")
	assert.Contains(t, contents, "docs/notes.md")

	assert.NotContains(t, contents, "app.log")
	assert.NotContains(t, contents, "secret/key.txt")
	assert.NotContains(t, contents, "secret/")
	assert.NotContains(t, contents, "src/main.o")
	assert.NotContains(t, contents, ".pflignore")
	assert.NotContains(t, contents, "src/.pflignore")
	assert.NotContains(t, contents, "_helpers/gen.js")
	assert.NotContains(t, contents, "_helpers/")
}

// TestPackHeaders tests the normalized ownership and modes of archive
// entries.
func TestPackHeaders(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"docker-compose.yml": secretCompose,
		"src/main.c":         "int main() { return 0; }",
	})

	archive, err := Pack(dir)
	require.NoError(t, err)

	_, headers := unpack(t, archive)

	file := headers["src/main.c"]
	require.NotNil(t, file)
	assert.Equal(t, byte(tar.TypeReg), file.Typeflag)
	assert.EqualValues(t, 0o644, file.Mode)
	assert.Equal(t, 1000, file.Uid)
	assert.Equal(t, 1000, file.Gid)
	assert.False(t, file.ModTime.IsZero())

	srcDir := headers["src/"]
	require.NotNil(t, srcDir)
	assert.Equal(t, byte(tar.TypeDir), srcDir.Typeflag)
	assert.EqualValues(t, 0o755, srcDir.Mode)
	assert.Equal(t, 1000, srcDir.Uid)
	assert.Equal(t, 1000, srcDir.Gid)
}

// TestPackDeterminism tests that packing the same tree twice yields
// identical bytes.
func TestPackDeterminism(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"docker-compose.yml": secretCompose,
		"b.txt":              "b",
		"a.txt":              "a",
		"sub/c.txt":          "c",
	})

	first, err := Pack(dir)
	require.NoError(t, err)
	second, err := Pack(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSanitizeIdempotent tests that stripping an already stripped manifest
// changes nothing.
func TestSanitizeIdempotent(t *testing.T) {
	once, err := sanitizeCompose([]byte(secretCompose))
	require.NoError(t, err)
	twice, err := sanitizeCompose(once)
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

// TestSanitizeNoMetadata tests that manifests without the extension pass
// through untouched.
func TestSanitizeNoMetadata(t *testing.T) {
	in := []byte("services:\n  app:\n    image: nginx\n")
	out, err := sanitizeCompose(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
