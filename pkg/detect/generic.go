package detect

import (
	"os"
	"path/filepath"
	"strings"

	"codeinv/pkg/inventory"
)

// GenericRule maps a marker file to a classification. A marker starting
// with a dot and containing no other dots is treated as a filename suffix
// pattern (for example ".csproj"); anything else must match exactly.
type GenericRule struct {
	Marker      string
	ProjectType string
	Language    string
	Keywords    []string
}

// DefaultGenericRules returns the rules for ecosystems identified by a
// single canonical manifest file. Rule order is the match order.
func DefaultGenericRules() []GenericRule {
	return []GenericRule{
		{Marker: "Cargo.toml", ProjectType: "Library", Language: "Rust", Keywords: []string{"rust", "cargo"}},
		{Marker: "go.mod", ProjectType: "Library", Language: "Go", Keywords: []string{"go", "gomod"}},
		{Marker: ".csproj", ProjectType: "Library", Language: "C#", Keywords: []string{"dotnet", "csharp"}},
		{Marker: "composer.json", ProjectType: "Web App", Language: "PHP", Keywords: []string{"php", "composer"}},
	}
}

// GenericDetector detects projects via a table of marker rules. It covers
// ecosystems outside the scope of the specific detectors and therefore runs
// last in the pipeline.
type GenericDetector struct {
	rules []GenericRule
}

// NewGenericDetector creates a detector over the given rule table.
func NewGenericDetector(rules []GenericRule) *GenericDetector {
	return &GenericDetector{rules: rules}
}

// Name implements Detector.
func (d *GenericDetector) Name() string { return "generic" }

// Detect implements Detector.
func (d *GenericDetector) Detect(dir string) (*inventory.DetectionResult, error) {
	for _, rule := range d.rules {
		matched, err := d.matches(dir, rule.Marker)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}
		return &inventory.DetectionResult{
			ProjectType:     rule.ProjectType,
			PrimaryLanguage: rule.Language,
			Keywords:        append([]string(nil), rule.Keywords...),
			Source:          "generic-marker:" + rule.Marker,
		}, nil
	}
	return nil, nil
}

func (d *GenericDetector) matches(dir, marker string) (bool, error) {
	if strings.HasPrefix(marker, ".") {
		return containsFileWithSuffix(dir, marker)
	}
	return fileExists(dir, marker)
}

// containsFileWithSuffix reports whether dir directly contains a regular
// file whose extension equals suffix (including the leading dot).
func containsFileWithSuffix(dir, suffix string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && filepath.Ext(entry.Name()) == suffix {
			return true, nil
		}
	}
	return false, nil
}
