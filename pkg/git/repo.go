// Package git provides repository-root detection and remote URL extraction
// without shelling out to the git binary.
package git

import (
	"os"
	"path/filepath"
)

// IsRepoRoot checks if a path is the top of a git working copy. The `.git`
// marker may be a directory (standard clone) or a plain file (worktree and
// submodule layouts); both are accepted identically.
func IsRepoRoot(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// HasConfigStore reports whether the repository's `.git` marker is a real
// directory with an addressable config file. Worktree/submodule layouts use
// a `.git` file whose backing config lives elsewhere, so they have no
// directly readable config store.
func HasConfigStore(repoRoot string) bool {
	info, err := os.Stat(filepath.Join(repoRoot, ".git"))
	return err == nil && info.IsDir()
}
