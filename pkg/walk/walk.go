// Package walk implements deterministic directory traversal with pruning.
package walk

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultIgnore returns the default set of directory names pruned during
// traversal: version-control internals, dependency caches, build output,
// and editor metadata.
func DefaultIgnore() map[string]bool {
	return map[string]bool{
		".git":          true,
		".venv":         true,
		"venv":          true,
		"__pycache__":   true,
		".pytest_cache": true,
		".mypy_cache":   true,
		".ruff_cache":   true,
		"node_modules":  true,
		"vendor":        true,
		".terraform":    true,
		".idea":         true,
		".vscode":       true,
		"dist":          true,
		"build":         true,
	}
}

// Walker walks directory trees depth-first in sorted name order, pruning
// ignored directory names before descending.
type Walker struct {
	Ignore map[string]bool
	logger *slog.Logger
}

// NewWalker creates a walker with the given ignore set. A nil ignore set
// falls back to DefaultIgnore. A nil logger falls back to slog.Default.
func NewWalker(ignore map[string]bool, logger *slog.Logger) *Walker {
	if ignore == nil {
		ignore = DefaultIgnore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{Ignore: ignore, logger: logger}
}

// Walk returns root plus every descendant directory, depth-first with
// children in sorted name order. Ignored directories are pruned entirely:
// neither returned nor descended into. Unreadable directories are skipped
// with a warning rather than aborting the walk.
//
// A root that does not exist or is not a directory yields an empty result.
func (w *Walker) Walk(root string) []string {
	info, err := os.Stat(root)
	if err != nil {
		w.logger.Warn("walk requested for inaccessible path", "path", root, "error", err)
		return nil
	}
	if !info.IsDir() {
		w.logger.Warn("walk requested for non-directory path", "path", root)
		return nil
	}

	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			w.logger.Warn("skipping unreadable path", "path", path, "error", walkErr)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.Ignore[d.Name()] {
			w.logger.Debug("pruning ignored directory", "path", path)
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})

	return dirs
}
