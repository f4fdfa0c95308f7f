package repo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// Kind classifies sync failures so operators can tell a flaky network from
// a bad deploy key without reading stack traces.
type Kind string

const (
	KindNetwork   Kind = "network"
	KindAuth      Kind = "auth"
	KindDirExists Kind = "dir_exists"
	KindIO        Kind = "io"
	KindOther     Kind = "other"
)

// Error wraps a sync failure with its kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("repository sync failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind, defaulting to KindOther.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// Sync brings dest up to date with the given branch of url by cloning a
// fresh shallow copy. An existing repository is replaced only after the new
// clone succeeded, so a failed sync never corrupts the working tree. A
// destination that exists but is not a git repository is refused.
func Sync(dest, url, branch string) error {
	logger := log.WithComponent("repo")

	info, statErr := os.Stat(dest)
	existed := statErr == nil

	switch {
	case existed && isGitRepo(dest):
		logger.Info().Str("url", url).Str("branch", branch).Msg("replacing existing repository clone")
		return replaceClone(dest, url, branch)
	case existed && (!info.IsDir() || !isEmptyDir(dest)):
		return &Error{
			Kind: KindDirExists,
			Err:  fmt.Errorf("destination %s exists and is not a git repository", dest),
		}
	default:
		logger.Info().Str("url", url).Str("branch", branch).Msg("cloning repository")
		if err := clone(dest, url, branch); err != nil {
			if !existed {
				// do not leave a partial clone behind
				_ = os.RemoveAll(dest)
			}
			return classify(err)
		}
		return nil
	}
}

// HeadInfo reads the HEAD commit of a synced repository. The second return
// is false when dest is not a repository or has no commits yet.
func HeadInfo(dest string) (*types.CommitInfo, bool) {
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return nil, false
	}
	head, err := repo.Head()
	if err != nil {
		return nil, false
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, false
	}

	title := commit.Message
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	return &types.CommitInfo{
		Hash:      commit.Hash.String(),
		Timestamp: commit.Committer.When.Unix(),
		Author:    commit.Committer.Name,
		Title:     strings.TrimSpace(title),
	}, true
}

func clone(path, url, branch string) error {
	_, err := git.PlainClone(path, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         1,
		Tags:          git.NoTags,
	})
	return err
}

// replaceClone clones into a sibling temp directory, then swaps it in with
// renames. The sibling location keeps the final rename on one filesystem;
// if it still crosses devices, the tree is copied instead.
func replaceClone(dest, url, branch string) error {
	tmp, err := os.MkdirTemp(filepath.Dir(dest), ".repo-sync-")
	if err != nil {
		return &Error{Kind: KindIO, Err: err}
	}
	defer os.RemoveAll(tmp)

	cloneDir := filepath.Join(tmp, "clone")
	if err := clone(cloneDir, url, branch); err != nil {
		return classify(err)
	}

	old := filepath.Join(tmp, "old")
	if err := os.Rename(dest, old); err != nil {
		return &Error{Kind: KindIO, Err: err}
	}
	if err := os.Rename(cloneDir, dest); err != nil {
		if copyErr := copyTree(cloneDir, dest); copyErr != nil {
			_ = os.RemoveAll(dest)
			_ = os.Rename(old, dest)
			return &Error{Kind: KindIO, Err: copyErr}
		}
	}
	return nil
}

func classify(err error) *Error {
	if errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, transport.ErrAuthorizationFailed) ||
		errors.Is(err, transport.ErrInvalidAuthMethod) {
		return &Error{Kind: KindAuth, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Error{Kind: KindNetwork, Err: err}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &Error{Kind: KindIO, Err: err}
	}
	return &Error{Kind: KindOther, Err: err}
}

func isGitRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func isEmptyDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) == 0
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o755)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			info, err := d.Info()
			if err != nil {
				return err
			}
			return copyFile(path, target, info.Mode().Perm())
		}
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
