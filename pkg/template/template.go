package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/rs/zerolog"

	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/script"
)

const (
	// TemplateSuffix marks files that pass through the template engine.
	// The rendered output drops the suffix.
	TemplateSuffix = ".tpl"
	// HelpersDir is the top-level directory of JavaScript helpers loaded
	// into the render sandbox. It is never copied into the output.
	HelpersDir = "_helpers"
)

// ErrPathEscape reports a directory entry that resolves outside the
// challenge source tree after symlink resolution.
var ErrPathEscape = errors.New("path escapes the challenge directory")

// Renderer renders one challenge directory for one actor. The JavaScript
// sandbox persists across files so helpers are loaded once.
type Renderer struct {
	sandbox *script.Sandbox
	data    map[string]interface{}
	logger  zerolog.Logger
}

// NewRenderer builds a renderer whose template context exposes the actor
// slug and whether this render feeds a source export.
func NewRenderer(actor string, isExport bool) *Renderer {
	return &Renderer{
		sandbox: script.New(),
		data: map[string]interface{}{
			"actor":     actor,
			"is_export": isExport,
		},
		logger: log.WithComponent("template"),
	}
}

// RenderDir walks src recursively into dst. Files ending in .tpl are
// rendered, everything else is copied byte for byte with its permissions.
// Every entry is resolved through symlinks and must stay inside src.
func (r *Renderer) RenderDir(src, dst string) error {
	root, err := filepath.EvalSymlinks(src)
	if err != nil {
		return fmt.Errorf("failed to resolve source directory %s: %w", src, err)
	}
	if err := r.loadHelpers(root); err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dst, err)
	}
	return r.renderTree(root, root, dst)
}

// loadHelpers evaluates every _helpers/*.js file in name order so helper
// definitions are deterministic regardless of filesystem ordering.
func (r *Renderer) loadHelpers(root string) error {
	entries, err := os.ReadDir(filepath.Join(root, HelpersDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read helpers directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".js") {
			continue
		}
		src, err := os.ReadFile(filepath.Join(root, HelpersDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read helper %s: %w", entry.Name(), err)
		}
		if err := r.sandbox.Run(string(src)); err != nil {
			return fmt.Errorf("failed to load helper %s: %w", entry.Name(), err)
		}
		r.logger.Debug().Str("helper", entry.Name()).Msg("loaded template helper")
	}
	return nil
}

func (r *Renderer) renderTree(root, dir, dst string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(dir, entry.Name())

		resolved, err := filepath.EvalSymlinks(srcPath)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", srcPath, err)
		}
		if !contained(root, resolved) {
			return fmt.Errorf("%w: %s", ErrPathEscape, srcPath)
		}
		// A symlink pointing back at the source root would recurse forever.
		if resolved == root {
			continue
		}
		if dir == root && entry.Name() == HelpersDir {
			continue
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if info.IsDir() {
			target := filepath.Join(dst, entry.Name())
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			if err := r.renderTree(root, resolved, target); err != nil {
				return err
			}
			continue
		}

		content, err := os.ReadFile(resolved)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", srcPath, err)
		}

		if strings.HasSuffix(entry.Name(), TemplateSuffix) {
			rendered, err := r.renderFile(entry.Name(), content)
			if err != nil {
				return err
			}
			out := filepath.Join(dst, strings.TrimSuffix(entry.Name(), TemplateSuffix))
			if err := os.WriteFile(out, rendered, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write rendered file %s: %w", out, err)
			}
			continue
		}

		out := filepath.Join(dst, entry.Name())
		if err := os.WriteFile(out, content, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to copy file %s: %w", out, err)
		}
	}
	return nil
}

func (r *Renderer) renderFile(name string, content []byte) ([]byte, error) {
	tpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"js": r.sandbox.EvalString}).
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func contained(root, path string) bool {
	return path == root || strings.HasPrefix(path, root+string(os.PathSeparator))
}
