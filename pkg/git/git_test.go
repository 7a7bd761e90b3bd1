package git

import (
	"os"
	"path/filepath"
	"testing"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("Failed to create dir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func writeGitConfig(t *testing.T, repo, content string) {
	t.Helper()
	mustMkdir(t, filepath.Join(repo, ".git"))
	mustWriteFile(t, filepath.Join(repo, ".git", "config"), content)
}

func TestIsRepoRoot(t *testing.T) {
	tmpDir := t.TempDir()

	dirRepo := filepath.Join(tmpDir, "standard")
	mustMkdir(t, filepath.Join(dirRepo, ".git"))

	fileRepo := filepath.Join(tmpDir, "worktree")
	mustMkdir(t, fileRepo)
	mustWriteFile(t, filepath.Join(fileRepo, ".git"), "gitdir: ../standard/.git/worktrees/wt\n")

	plain := filepath.Join(tmpDir, "plain")
	mustMkdir(t, plain)

	if !IsRepoRoot(dirRepo) {
		t.Error("directory .git should mark a repo root")
	}
	if !IsRepoRoot(fileRepo) {
		t.Error("plain-file .git should mark a repo root")
	}
	if IsRepoRoot(plain) {
		t.Error("directory without .git should not be a repo root")
	}
}

func TestRemoteURL(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		expected string
	}{
		{
			name: "ssh remote rewritten to https",
			config: `[core]
	repositoryformatversion = 0
[remote "origin"]
	url = git@github.com:acme/widget.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`,
			expected: "https://github.com/acme/widget",
		},
		{
			name: "https remote suffix stripped",
			config: `[remote "origin"]
	url = https://github.com/acme/widget.git
`,
			expected: "https://github.com/acme/widget",
		},
		{
			name: "first remote in file order wins",
			config: `[remote "upstream"]
	url = https://github.com/upstream/widget
[remote "origin"]
	url = https://github.com/fork/widget
`,
			expected: "https://github.com/upstream/widget",
		},
		{
			name: "non-github remote passes through",
			config: `[remote "origin"]
	url = ssh://git.internal.example/team/widget.git
`,
			expected: "ssh://git.internal.example/team/widget",
		},
		{
			name:     "no remote section",
			config:   "[core]\n\trepositoryformatversion = 0\n",
			expected: "",
		},
		{
			name: "remote with empty url skipped",
			config: `[remote "origin"]
	fetch = +refs/heads/*:refs/remotes/origin/*
[remote "backup"]
	url = https://github.com/acme/backup
`,
			expected: "https://github.com/acme/backup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := t.TempDir()
			writeGitConfig(t, repo, tt.config)

			if got := RemoteURL(repo); got != tt.expected {
				t.Errorf("RemoteURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRemoteURL_MalformedConfig(t *testing.T) {
	repo := t.TempDir()
	writeGitConfig(t, repo, "[remote \"origin\"\nurl = broken\n")

	if got := RemoteURL(repo); got != "" {
		t.Errorf("malformed config should yield empty URL, got %q", got)
	}
}

func TestRemoteURL_GitFileLayout(t *testing.T) {
	repo := t.TempDir()
	mustWriteFile(t, filepath.Join(repo, ".git"), "gitdir: elsewhere\n")

	if got := RemoteURL(repo); got != "" {
		t.Errorf("git-file layout should yield empty URL, got %q", got)
	}
}

func TestRemoteURL_MissingConfig(t *testing.T) {
	repo := t.TempDir()
	mustMkdir(t, filepath.Join(repo, ".git"))

	if got := RemoteURL(repo); got != "" {
		t.Errorf("missing config should yield empty URL, got %q", got)
	}
}

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"git@github.com:acme/widget.git", "https://github.com/acme/widget"},
		{"git@github.com:acme/widget", "https://github.com/acme/widget"},
		{"git@gitlab.example.com:team/sub/widget.git", "https://gitlab.example.com/team/sub/widget"},
		{"https://github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"https://github.com/acme/widget", "https://github.com/acme/widget"},
		{"https://example.org/repos/widget.git", "https://example.org/repos/widget"},
		{"  git@github.com:acme/widget.git  ", "https://github.com/acme/widget"},
	}

	for _, tt := range tests {
		if got := NormalizeRemoteURL(tt.input); got != tt.expected {
			t.Errorf("NormalizeRemoteURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
