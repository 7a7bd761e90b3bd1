package git

import (
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/ini.v1"
)

// Remote URL rewrite patterns.
var (
	// SSH format: git@host:owner/repo.git or git@host:owner/repo
	sshRemoteRegex = regexp.MustCompile(`^git@([a-zA-Z0-9_.-]+):([a-zA-Z0-9_./-]+?)(?:\.git)?$`)

	remoteSectionPrefix = `remote "`
)

// RemoteURL extracts and normalizes the first remote URL found in a
// repository's local config. Only repositories whose `.git` marker is a real
// directory are inspected; worktree/submodule layouts and repositories with
// missing or malformed config all yield the empty string, never an error.
//
// Remotes are considered in config file order with no preference for a
// conventionally primary remote name; the first section with a non-empty
// url key wins.
func RemoteURL(repoRoot string) string {
	if !HasConfigStore(repoRoot) {
		return ""
	}

	configPath := filepath.Join(repoRoot, ".git", "config")
	cfg, err := ini.Load(configPath)
	if err != nil {
		return ""
	}

	for _, section := range cfg.Sections() {
		if !strings.HasPrefix(section.Name(), remoteSectionPrefix) {
			continue
		}
		url := strings.TrimSpace(section.Key("url").String())
		if url != "" {
			return NormalizeRemoteURL(url)
		}
	}

	return ""
}

// NormalizeRemoteURL rewrites an SSH-style host:owner/repo remote into the
// equivalent HTTPS browsing URL and strips any trailing .git suffix. Other
// URL forms pass through with only the suffix stripped.
func NormalizeRemoteURL(url string) string {
	normalized := strings.TrimSpace(url)

	if matches := sshRemoteRegex.FindStringSubmatch(normalized); len(matches) == 3 {
		return "https://" + matches[1] + "/" + matches[2]
	}

	return strings.TrimSuffix(normalized, ".git")
}
