// Package git finds the image a user is working on from git worktree state.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/imgresize/internal/domain"
)

// Ensure Client implements domain.ActiveFileResolver.
var _ domain.ActiveFileResolver = (*Client)(nil)

// Client resolves the active image from the git worktree containing workingDir.
type Client struct {
	workingDir string
}

// NewClient creates a new Client rooted at workingDir.
func NewClient(workingDir string) *Client {
	return &Client{workingDir: workingDir}
}

// ActiveFile returns the most recently modified image that is modified, added
// or untracked in the worktree. It returns "" when workingDir is not inside a
// repository or no changed image exists.
func (c *Client) ActiveFile() (string, error) {
	files, err := c.ChangedImages()
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepository) {
			return "", nil
		}
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	return files[0], nil
}

// ChangedImages lists absolute paths of changed supported images, newest first.
func (c *Client) ChangedImages() ([]string, error) {
	repo, err := git.PlainOpenWithOptions(c.workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("get worktree status: %w", err)
	}

	root := wt.Filesystem.Root()
	type candidate struct {
		path    string
		modUnix int64
	}
	var candidates []candidate
	for rel, st := range status {
		if !isChanged(st) || !domain.IsSupportedImage(rel) {
			continue
		}
		abs := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			continue
		}
		candidates = append(candidates, candidate{path: abs, modUnix: info.ModTime().UnixNano()})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].modUnix != candidates[j].modUnix {
			return candidates[i].modUnix > candidates[j].modUnix
		}
		return candidates[i].path < candidates[j].path
	})

	paths := make([]string, len(candidates))
	for i, cand := range candidates {
		paths[i] = cand.path
	}
	return paths, nil
}

// isChanged reports whether a file has pending changes that leave it on disk.
func isChanged(st *git.FileStatus) bool {
	if st.Worktree == git.Deleted || st.Staging == git.Deleted {
		return false
	}
	return st.Worktree != git.Unmodified || st.Staging != git.Unmodified
}
