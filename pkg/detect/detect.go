// Package detect classifies project directories by marker files.
//
// Detectors are held in an explicit ordered list; the first detector to
// classify a directory wins, so ordering encodes precedence. Specific
// ecosystem detectors run before the generic table-driven one.
package detect

import (
	"os"
	"path/filepath"

	"codeinv/pkg/inventory"
)

// Detector classifies a single directory or declines.
type Detector interface {
	// Name identifies the detector in logs.
	Name() string

	// Detect inspects a directory and returns a classification, or nil to
	// decline. I/O failures while probing are returned so the caller can
	// isolate them to the offending directory.
	Detect(dir string) (*inventory.DetectionResult, error)
}

// DefaultPipeline creates the detectors in evaluation order. More specific
// detectors run before the generic one so classifications don't get
// flattened into a vague fallback.
func DefaultPipeline() []Detector {
	return []Detector{
		NewPythonDetector(),
		NewNodeDetector(),
		NewGenericDetector(DefaultGenericRules()),
	}
}

// fileExists reports whether a name exists inside dir. Permission and other
// I/O failures are surfaced so the directory can be skipped.
func fileExists(dir, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// dirExists reports whether a name exists inside dir and is a directory.
func dirExists(dir, name string) (bool, error) {
	info, err := os.Stat(filepath.Join(dir, name))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
