package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// testCommand mirrors the persistent flags main registers.
func testCommand(manifest string) (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "rlc"}
	pf := root.PersistentFlags()
	pf.String("manifest", manifest, "")
	pf.StringArrayP("include", "I", nil, "")
	pf.Bool("no-cache", false, "")
	sub := &cobra.Command{Use: "check", RunE: func(*cobra.Command, []string) error { return nil }}
	sub.Flags().Int("jobs", 0, "")
	root.AddCommand(sub)
	return root, sub
}

func TestFindManifestWalksUp(t *testing.T) {
	dir := t.TempDir()
	want := writeManifest(t, dir, "[build]\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := findManifest(nested)
	if err != nil || !ok {
		t.Fatalf("findManifest: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("found %s, want %s", got, want)
	}
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `[build]
sources = ["src/main.rl"]
include_dirs = ["lib"]
jobs = 3
cache = false
`)
	m, err := loadProjectManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(m.Config.Build.Sources) != 1 || m.Config.Build.Sources[0] != filepath.Join(dir, "src", "main.rl") {
		t.Fatalf("sources = %v", m.Config.Build.Sources)
	}
	if m.Config.Build.IncludeDirs[0] != filepath.Join(dir, "lib") {
		t.Fatalf("include_dirs = %v", m.Config.Build.IncludeDirs)
	}
	if !m.jobsSet || !m.cacheSet || m.Config.Build.Jobs != 3 || m.Config.Build.Cache {
		t.Fatalf("jobs/cache = %+v set=%v/%v", m.Config.Build, m.jobsSet, m.cacheSet)
	}
}

func TestLoadProjectManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing build", "[other]\nx = 1\n", "missing [build]"},
		{"unknown key", "[build]\nsourcez = []\n", "unknown key"},
		{"negative jobs", "[build]\njobs = -1\n", "must not be negative"},
		{"empty source", "[build]\nsources = [\" \"]\n", "empty entry"},
		{"bad toml", "[build\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := loadProjectManifest(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestBuildSettingsFlagsOverrideManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[build]\nsources = [\"main.rl\"]\ninclude_dirs = [\"lib\"]\njobs = 2\n")
	root, sub := testCommand(path)
	if err := root.PersistentFlags().Parse([]string{"-I", "extra", "--no-cache"}); err != nil {
		t.Fatal(err)
	}
	if err := sub.Flags().Parse([]string{"--jobs", "7"}); err != nil {
		t.Fatal(err)
	}

	s, err := loadBuildSettings(sub, nil)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if len(s.Sources) != 1 || s.Sources[0] != filepath.Join(dir, "main.rl") {
		t.Fatalf("sources = %v", s.Sources)
	}
	if len(s.IncludeDirs) != 2 || s.IncludeDirs[0] != "extra" || s.IncludeDirs[1] != filepath.Join(dir, "lib") {
		t.Fatalf("include dirs = %v", s.IncludeDirs)
	}
	if s.Jobs != 7 || s.Cache {
		t.Fatalf("jobs=%d cache=%v", s.Jobs, s.Cache)
	}

	s, err = loadBuildSettings(sub, []string{"other.rl"})
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if len(s.Sources) != 1 || s.Sources[0] != "other.rl" {
		t.Fatalf("arguments must replace sources, got %v", s.Sources)
	}
}

func TestBuildSettingsNeedSources(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[build]\njobs = 1\n")
	_, sub := testCommand(path)
	if _, err := loadBuildSettings(sub, nil); err == nil || !strings.Contains(err.Error(), "sources is empty") {
		t.Fatalf("err = %v", err)
	}
}

func TestWantUI(t *testing.T) {
	tests := []struct {
		value          string
		quiet, machine bool
		want           bool
	}{
		{"on", false, false, true},
		{" ON ", true, false, true},
		{"on", false, true, false},
		{"off", false, false, false},
		{"auto", true, false, false},
		{"auto", false, true, false},
	}
	for _, tt := range tests {
		got, err := wantUI(tt.value, tt.quiet, tt.machine)
		if err != nil || got != tt.want {
			t.Errorf("wantUI(%q, %v, %v) = %v, %v", tt.value, tt.quiet, tt.machine, got, err)
		}
	}
	if _, err := wantUI("maybe", false, false); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}
