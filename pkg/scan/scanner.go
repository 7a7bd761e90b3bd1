// Package scan orchestrates the inventory pipeline: repository root
// discovery, per-root classification, nested project detection,
// deduplication, and deterministic ordering.
package scan

import (
	"log/slog"
	"os"
	"sort"
	"strings"

	"codeinv/pkg/detect"
	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/git"
	"codeinv/pkg/inventory"
	"codeinv/pkg/paths"
	"codeinv/pkg/walk"
)

// Scanner scans a directory tree for repositories and nested projects.
type Scanner struct {
	detectors []detect.Detector
	walker    *walk.Walker
	logger    *slog.Logger
}

// NewScanner creates a scanner. Nil arguments fall back to the default
// detector pipeline, walker, and slog.Default.
func NewScanner(detectors []detect.Detector, walker *walk.Walker, logger *slog.Logger) *Scanner {
	if detectors == nil {
		detectors = detect.DefaultPipeline()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if walker == nil {
		walker = walk.NewWalker(nil, logger)
	}
	return &Scanner{detectors: detectors, walker: walker, logger: logger}
}

// Scan walks root and returns one record per detected project, deduplicated
// by canonical location and sorted by location for deterministic output.
//
// An invalid root (missing, not a directory, unreadable) is a fatal
// *PreconditionError raised before any traversal. Failures inside single
// directories are logged and skipped, never fatal.
func (s *Scanner) Scan(root string) ([]inventory.Record, error) {
	normalizedRoot, err := paths.Normalize(root)
	if err != nil {
		return nil, codeinverrors.NewPreconditionErrorWithCause(root, "cannot resolve scan root", err)
	}
	if err := validateRoot(normalizedRoot); err != nil {
		return nil, err
	}

	s.logger.Info("scanning root folder", "path", normalizedRoot)

	records := make([]inventory.Record, 0)
	seen := make(map[string]bool)

	repoRoots := s.findRepoRoots(normalizedRoot)
	s.logger.Info("detected repository roots", "count", len(repoRoots))

	for _, repoRoot := range repoRoots {
		s.logger.Info("processing repository root", "path", repoRoot)
		githubURL := git.RemoteURL(repoRoot)

		rootRecord, err := inventory.NewRepoRootRecord(repoRoot, s.detect(repoRoot), githubURL)
		if err != nil {
			s.logger.Warn("skipping repository root", "path", repoRoot, "error", err)
			continue
		}
		s.appendIfNew(&records, seen, rootRecord)

		for _, dir := range s.walker.Walk(repoRoot) {
			if dir == repoRoot {
				continue
			}
			detection := s.detect(dir)
			if detection == nil {
				continue
			}
			record, err := inventory.NewNestedRecord(dir, detection, repoRoot)
			if err != nil {
				s.logger.Warn("skipping nested project", "path", dir, "error", err)
				continue
			}
			s.logger.Debug("nested project detected", "path", dir, "source", detection.Source)
			s.appendIfNew(&records, seen, record)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].Location) < strings.ToLower(records[j].Location)
	})

	s.logger.Info("scan complete", "records", len(records))
	return records, nil
}

// findRepoRoots returns every directory under root (root inclusive) whose
// .git marker is a directory or plain file, in walker order. A nested
// repository does not suppress discovery of repositories deeper inside it.
func (s *Scanner) findRepoRoots(root string) []string {
	var repoRoots []string
	for _, dir := range s.walker.Walk(root) {
		if git.IsRepoRoot(dir) {
			s.logger.Debug("repository root detected", "path", dir)
			repoRoots = append(repoRoots, dir)
		}
	}
	return repoRoots
}

// detect runs the detector pipeline against a directory. The first match
// wins. A detector probe failure is isolated to that detector: it is logged
// and the next detector gets its turn.
func (s *Scanner) detect(dir string) *inventory.DetectionResult {
	for _, detector := range s.detectors {
		result, err := detector.Detect(dir)
		if err != nil {
			s.logger.Debug("detector probe failed", "detector", detector.Name(), "path", dir, "error", err)
			continue
		}
		if result != nil {
			s.logger.Debug("detector matched", "detector", detector.Name(), "path", dir, "source", result.Source)
			return result
		}
	}
	return nil
}

// appendIfNew appends a record unless its location has already been seen.
// First occurrence wins; duplicates happen when traversal reaches the same
// canonical path via more than one route, such as symlinked trees.
func (s *Scanner) appendIfNew(records *[]inventory.Record, seen map[string]bool, record inventory.Record) {
	if seen[record.Location] {
		s.logger.Debug("skipping duplicate record", "path", record.Location)
		return
	}
	seen[record.Location] = true
	*records = append(*records, record)
}

// validateRoot enforces the scan precondition: the root must exist, be a
// directory, and be readable.
func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return codeinverrors.NewPreconditionError(root, "does not exist")
		}
		return codeinverrors.NewPreconditionErrorWithCause(root, "cannot stat", err)
	}
	if !info.IsDir() {
		return codeinverrors.NewPreconditionError(root, "not a directory")
	}
	if _, err := os.ReadDir(root); err != nil {
		return codeinverrors.NewPreconditionErrorWithCause(root, "not readable", err)
	}
	return nil
}
