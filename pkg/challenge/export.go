package challenge

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"

	"github.com/plfanzen/plfanzen/pkg/template"
)

// IgnoreFileName is the per-directory ignore file consulted while packing
// a challenge for export. It follows gitignore syntax.
const IgnoreFileName = ".pflignore"

const (
	exportFileMode = 0o644
	exportDirMode  = 0o755
	exportOwnerID  = 1000
)

// Pack builds the publishable source archive of a rendered challenge
// directory: a gzipped tar honoring .pflignore files, with the
// flag-bearing metadata fields stripped from the compose manifest. File
// modes and ownership are normalized so the archive does not leak
// anything about the build host; mtimes are preserved.
func Pack(dir string) ([]byte, error) {
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve export directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	if err := packTree(tw, root, root, nil); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish compression: %w", err)
	}
	return buf.Bytes(), nil
}

// scopedIgnore is one compiled ignore file together with the directory its
// patterns are relative to.
type scopedIgnore struct {
	base string
	ign  *ignore.GitIgnore
}

func packTree(tw *tar.Writer, root, dir string, scopes []scopedIgnore) error {
	if ign, err := loadIgnoreFile(dir); err != nil {
		return err
	} else if ign != nil {
		scopes = append(scopes, scopedIgnore{base: dir, ign: ign})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == IgnoreFileName {
			continue
		}
		if dir == root && name == template.HelpersDir {
			continue
		}

		path := filepath.Join(dir, name)
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		if isIgnored(scopes, path, entry.IsDir()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if entry.IsDir() {
			if err := writeDirEntry(tw, rel, info.ModTime()); err != nil {
				return err
			}
			if err := packTree(tw, root, path, scopes); err != nil {
				return err
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if dir == root && name == ComposeFileName {
			content, err = sanitizeCompose(content)
			if err != nil {
				return fmt.Errorf("failed to sanitize %s: %w", name, err)
			}
		}
		if err := writeFileEntry(tw, rel, content, info.ModTime()); err != nil {
			return err
		}
	}
	return nil
}

func loadIgnoreFile(dir string) (*ignore.GitIgnore, error) {
	path := filepath.Join(dir, IgnoreFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	ign, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile ignore file %s: %w", path, err)
	}
	return ign, nil
}

// isIgnored checks the ignore files from the deepest directory outward.
// The first file with an opinion on the path wins, matching how nested
// gitignore files shadow their parents.
func isIgnored(scopes []scopedIgnore, path string, isDir bool) bool {
	for i := len(scopes) - 1; i >= 0; i-- {
		rel, err := filepath.Rel(scopes[i].base, path)
		if err != nil {
			continue
		}
		probe := filepath.ToSlash(rel)
		if isDir {
			probe += "/"
		}
		if matched, pattern := scopes[i].ign.MatchesPathHow(probe); pattern != nil {
			return matched
		}
	}
	return false
}

func writeDirEntry(tw *tar.Writer, rel string, mtime time.Time) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeDir,
		Name:     filepath.ToSlash(rel) + "/",
		Mode:     exportDirMode,
		Uid:      exportOwnerID,
		Gid:      exportOwnerID,
		ModTime:  mtime.Truncate(time.Second),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", rel, err)
	}
	return nil
}

func writeFileEntry(tw *tar.Writer, rel string, content []byte, mtime time.Time) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     filepath.ToSlash(rel),
		Mode:     exportFileMode,
		Uid:      exportOwnerID,
		Gid:      exportOwnerID,
		Size:     int64(len(content)),
		ModTime:  mtime.Truncate(time.Second),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", rel, err)
	}
	if _, err := tw.Write(content); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", rel, err)
	}
	return nil
}

// strippedMetadataKeys are removed from x-ctf-metadata before export so
// published sources never carry the flag or the validator script.
var strippedMetadataKeys = []string{"flag", "flag_validation_fn"}

// sanitizeCompose removes the flag-bearing metadata fields from a compose
// manifest. The surgery happens on the yaml node tree so every other
// author choice (comments aside) survives the round trip, and stripping an
// already stripped manifest is a no-op.
func sanitizeCompose(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse compose file: %w", err)
	}
	if len(doc.Content) == 0 {
		return data, nil
	}
	md := mappingValue(doc.Content[0], "x-ctf-metadata")
	if md == nil {
		return data, nil
	}
	removeMappingKeys(md, strippedMetadataKeys)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to serialize compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to serialize compose file: %w", err)
	}
	return buf.Bytes(), nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func removeMappingKeys(node *yaml.Node, keys []string) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	kept := make([]*yaml.Node, 0, len(node.Content))
	for i := 0; i+1 < len(node.Content); i += 2 {
		drop := false
		for _, key := range keys {
			if node.Content[i].Value == key {
				drop = true
				break
			}
		}
		if drop {
			continue
		}
		kept = append(kept, node.Content[i], node.Content[i+1])
	}
	node.Content = kept
}
