package detect

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("Failed to create dir %s: %v", path, err)
	}
}

func mustTouch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

func TestPythonDetector(t *testing.T) {
	tests := []struct {
		name         string
		files        []string
		dirs         []string
		wantNil      bool
		wantType     string
		wantKeywords []string
	}{
		{
			name:         "pyproject with src layout",
			files:        []string{"pyproject.toml"},
			dirs:         []string{"src"},
			wantType:     "CLI Tool",
			wantKeywords: []string{"python", "pyproject", "src-layout"},
		},
		{
			name:         "requirements only",
			files:        []string{"requirements.txt"},
			wantType:     "Script",
			wantKeywords: []string{"python", "requirements"},
		},
		{
			name:         "all markers flat layout",
			files:        []string{"pyproject.toml", "setup.py", "requirements.txt"},
			wantType:     "Script",
			wantKeywords: []string{"python", "pyproject", "setuptools", "requirements"},
		},
		{
			name:    "no markers",
			files:   []string{"README.md"},
			wantNil: true,
		},
		{
			name:    "src dir alone is not a marker",
			dirs:    []string{"src"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				mustTouch(t, filepath.Join(dir, f))
			}
			for _, d := range tt.dirs {
				mustMkdir(t, filepath.Join(dir, d))
			}

			result, err := NewPythonDetector().Detect(dir)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if tt.wantNil {
				if result != nil {
					t.Fatalf("expected decline, got %+v", result)
				}
				return
			}
			if result == nil {
				t.Fatal("expected a detection, got nil")
			}
			if result.ProjectType != tt.wantType {
				t.Errorf("ProjectType = %q, want %q", result.ProjectType, tt.wantType)
			}
			if result.PrimaryLanguage != "Python" {
				t.Errorf("PrimaryLanguage = %q, want Python", result.PrimaryLanguage)
			}
			if result.Source != "python-markers" {
				t.Errorf("Source = %q", result.Source)
			}
			if !reflect.DeepEqual(result.Keywords, tt.wantKeywords) {
				t.Errorf("Keywords = %v, want %v", result.Keywords, tt.wantKeywords)
			}
		})
	}
}

func TestNodeDetector(t *testing.T) {
	t.Run("javascript", func(t *testing.T) {
		dir := t.TempDir()
		mustTouch(t, filepath.Join(dir, "package.json"))

		result, err := NewNodeDetector().Detect(dir)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if result == nil {
			t.Fatal("expected a detection, got nil")
		}
		if result.PrimaryLanguage != "JavaScript" {
			t.Errorf("PrimaryLanguage = %q, want JavaScript", result.PrimaryLanguage)
		}
		if result.ProjectType != "Web App" {
			t.Errorf("ProjectType = %q, want Web App", result.ProjectType)
		}
	})

	t.Run("typescript upgrade", func(t *testing.T) {
		dir := t.TempDir()
		mustTouch(t, filepath.Join(dir, "package.json"))
		mustTouch(t, filepath.Join(dir, "tsconfig.json"))

		result, err := NewNodeDetector().Detect(dir)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if result == nil {
			t.Fatal("expected a detection, got nil")
		}
		if result.PrimaryLanguage != "TypeScript" {
			t.Errorf("PrimaryLanguage = %q, want TypeScript", result.PrimaryLanguage)
		}
		want := []string{"node", "javascript", "typescript"}
		if !reflect.DeepEqual(result.Keywords, want) {
			t.Errorf("Keywords = %v, want %v", result.Keywords, want)
		}
	})

	t.Run("tsconfig without manifest declines", func(t *testing.T) {
		dir := t.TempDir()
		mustTouch(t, filepath.Join(dir, "tsconfig.json"))

		result, err := NewNodeDetector().Detect(dir)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if result != nil {
			t.Errorf("expected decline, got %+v", result)
		}
	})
}

func TestGenericDetector(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		wantNil    bool
		wantLang   string
		wantSource string
	}{
		{
			name:       "cargo",
			files:      []string{"Cargo.toml"},
			wantLang:   "Rust",
			wantSource: "generic-marker:Cargo.toml",
		},
		{
			name:       "gomod",
			files:      []string{"go.mod"},
			wantLang:   "Go",
			wantSource: "generic-marker:go.mod",
		},
		{
			name:       "csproj suffix",
			files:      []string{"Widget.Api.csproj"},
			wantLang:   "C#",
			wantSource: "generic-marker:.csproj",
		},
		{
			name:       "composer",
			files:      []string{"composer.json"},
			wantLang:   "PHP",
			wantSource: "generic-marker:composer.json",
		},
		{
			name:    "unknown files",
			files:   []string{"Makefile", "README.md"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				mustTouch(t, filepath.Join(dir, f))
			}

			result, err := NewGenericDetector(DefaultGenericRules()).Detect(dir)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if tt.wantNil {
				if result != nil {
					t.Fatalf("expected decline, got %+v", result)
				}
				return
			}
			if result == nil {
				t.Fatal("expected a detection, got nil")
			}
			if result.PrimaryLanguage != tt.wantLang {
				t.Errorf("PrimaryLanguage = %q, want %q", result.PrimaryLanguage, tt.wantLang)
			}
			if result.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", result.Source, tt.wantSource)
			}
		})
	}
}

func TestGenericDetector_CustomRules(t *testing.T) {
	dir := t.TempDir()
	mustTouch(t, filepath.Join(dir, "mix.exs"))

	rules := []GenericRule{
		{Marker: "mix.exs", ProjectType: "Library", Language: "Elixir", Keywords: []string{"elixir"}},
	}
	result, err := NewGenericDetector(rules).Detect(dir)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if result == nil || result.PrimaryLanguage != "Elixir" {
		t.Errorf("custom rule table not honored: %+v", result)
	}
}

func TestPipeline_FirstMatchWins(t *testing.T) {
	// Directory with both python and generic markers classifies python
	// because the python detector runs first.
	dir := t.TempDir()
	mustTouch(t, filepath.Join(dir, "pyproject.toml"))
	mustTouch(t, filepath.Join(dir, "Cargo.toml"))

	for _, detector := range DefaultPipeline() {
		result, err := detector.Detect(dir)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if result != nil {
			if result.Source != "python-markers" {
				t.Errorf("first match = %q, want python-markers", result.Source)
			}
			return
		}
	}
	t.Fatal("no detector matched")
}

func TestPipeline_Order(t *testing.T) {
	pipeline := DefaultPipeline()
	names := make([]string, 0, len(pipeline))
	for _, d := range pipeline {
		names = append(names, d.Name())
	}
	want := []string{"python", "node", "generic"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("pipeline order = %v, want %v", names, want)
	}
}
