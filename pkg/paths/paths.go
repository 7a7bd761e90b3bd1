// Package paths provides canonical path identity for the scan pipeline.
//
// Every record's location and every deduplication decision keys off the
// output of Normalize, so two different spellings of the same filesystem
// entity must map to the identical string.
package paths

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"

	codeinverrors "codeinv/pkg/errors"
)

// Normalize resolves a path to its canonical absolute form: `~` expansion,
// relative segment cleanup, and symlink resolution.
//
// Paths that do not exist are not an error; the cleaned absolute form is
// returned instead. An unresolvable symlink cycle returns a *PathError.
func Normalize(path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", codeinverrors.NewPathErrorWithCause(path, "cannot make path absolute", err)
	}
	abs = filepath.Clean(abs)

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, syscall.ELOOP) {
			return "", codeinverrors.NewPathErrorWithCause(abs, "symlink cycle detected", err)
		}
		if os.IsNotExist(err) {
			// Scanning only normalizes paths already confirmed to exist, but
			// callers like ID derivation may pass hypothetical ones.
			return abs, nil
		}
		return "", codeinverrors.NewPathErrorWithCause(abs, "cannot resolve symlinks", err)
	}

	return resolved, nil
}

// expandHome replaces a leading `~` with the current user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", codeinverrors.NewPathErrorWithCause(path, "cannot determine home directory", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
