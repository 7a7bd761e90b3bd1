// Package inventory defines the project inventory data model: the transient
// DetectionResult produced by detectors and the persistent Record emitted for
// every detected project.
package inventory

import (
	"crypto/sha1"
	"encoding/hex"
	"path/filepath"
	"sort"
	"strings"

	"codeinv/pkg/paths"
)

const (
	// KeywordSeparator joins keywords into a single cell for tabular output.
	KeywordSeparator = ";"

	// ProjectIDPrefix is the fixed textual prefix of every project ID.
	ProjectIDPrefix = "proj-"

	// projectIDHexLength is the number of digest hex characters kept.
	projectIDHexLength = 10

	// DefaultStatus is the placeholder lifecycle status for new records.
	DefaultStatus = "Active"

	// Fallback classification for repo roots no detector matched.
	FallbackProjectType     = "Repository"
	FallbackPrimaryLanguage = "Unknown"
	FallbackSource          = "repo-root"

	// Relationship tags added at record construction.
	repoRootTag      = "repo-root"
	nestedProjectTag = "nested-project"
)

// DetectionResult represents a successful project classification. It is
// produced by a detector and consumed immediately by the record builders;
// it carries no identity of its own.
type DetectionResult struct {
	ProjectType     string   // Classified project type (for example, "CLI Tool")
	PrimaryLanguage string   // Primary implementation language
	Keywords        []string // Lowercase tags describing the project
	Source          string   // Identifier for the rule or detector that matched
}

// Record represents a single inventory row for a detected project.
// Records are built once by the constructor functions below and never
// mutated afterward; all field normalization happens at construction.
type Record struct {
	ProjectID       string   `json:"project_id" yaml:"project_id"`
	ProjectName     string   `json:"project_name" yaml:"project_name"`
	ProjectType     string   `json:"project_type" yaml:"project_type"`
	PrimaryLanguage string   `json:"primary_language" yaml:"primary_language"`
	Location        string   `json:"location" yaml:"location"`
	GitHubURL       string   `json:"github_url" yaml:"github_url"`
	Status          string   `json:"status" yaml:"status"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	Purpose         string   `json:"purpose" yaml:"purpose"`
	RepoRoot        string   `json:"repo_root" yaml:"repo_root"`
	IsRepoRoot      bool     `json:"is_repo_root" yaml:"is_repo_root"`
	ParentRepo      string   `json:"parent_repo" yaml:"parent_repo"`
	Source          string   `json:"detection_source" yaml:"detection_source"`
}

// NewRepoRootRecord builds the inventory record for a repository root.
// A nil detection falls back to the generic repository classification.
// The "repo-root" tag is added either way.
func NewRepoRootRecord(repoRoot string, detection *DetectionResult, githubURL string) (Record, error) {
	if detection == nil {
		detection = &DetectionResult{
			ProjectType:     FallbackProjectType,
			PrimaryLanguage: FallbackPrimaryLanguage,
			Keywords:        []string{"git", "repository"},
			Source:          FallbackSource,
		}
	}
	return buildRecord(repoRoot, repoRoot, true, githubURL, detection)
}

// NewNestedRecord builds the inventory record for a project nested inside a
// repository. The "nested-project" tag is added to the detector's keywords
// and ParentRepo is set to the owning repository root.
func NewNestedRecord(dir string, detection *DetectionResult, repoRoot string) (Record, error) {
	return buildRecord(dir, repoRoot, false, "", detection)
}

func buildRecord(projectPath, repoRoot string, isRepoRoot bool, githubURL string, detection *DetectionResult) (Record, error) {
	location, err := paths.Normalize(projectPath)
	if err != nil {
		return Record{}, err
	}
	normalizedRoot, err := paths.Normalize(repoRoot)
	if err != nil {
		return Record{}, err
	}

	keywords := make([]string, 0, len(detection.Keywords)+1)
	keywords = append(keywords, detection.Keywords...)
	if isRepoRoot {
		keywords = append(keywords, repoRootTag)
	} else {
		keywords = append(keywords, nestedProjectTag)
	}

	parentRepo := ""
	if !isRepoRoot {
		parentRepo = normalizedRoot
	}

	return Record{
		ProjectID:       ProjectID(location),
		ProjectName:     filepath.Base(location),
		ProjectType:     strings.TrimSpace(detection.ProjectType),
		PrimaryLanguage: strings.TrimSpace(detection.PrimaryLanguage),
		Location:        location,
		GitHubURL:       strings.TrimSpace(githubURL),
		Status:          DefaultStatus,
		Keywords:        NormalizeKeywords(keywords),
		Purpose:         "",
		RepoRoot:        normalizedRoot,
		IsRepoRoot:      isRepoRoot,
		ParentRepo:      parentRepo,
		Source:          strings.TrimSpace(detection.Source),
	}, nil
}

// ProjectID derives the stable identifier for a normalized location string.
// It is a pure function of the path: identical path means identical ID across
// runs and machines. Separators are normalized to forward slashes first so
// the digest is platform independent.
func ProjectID(location string) string {
	normalized := filepath.ToSlash(location)
	digest := sha1.Sum([]byte(normalized))
	return ProjectIDPrefix + hex.EncodeToString(digest[:])[:projectIDHexLength]
}

// NormalizeKeywords trims whitespace, drops blanks, de-duplicates, and sorts
// keywords alphabetically for stable output.
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		trimmed := strings.TrimSpace(keyword)
		if trimmed == "" {
			continue
		}
		seen[trimmed] = true
	}

	cleaned := make([]string, 0, len(seen))
	for keyword := range seen {
		cleaned = append(cleaned, keyword)
	}
	sort.Strings(cleaned)
	return cleaned
}
