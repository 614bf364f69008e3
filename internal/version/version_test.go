package version_test

import (
	"strings"
	"testing"

	"rlc/internal/version"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := version.Version
	version.Version = v
	t.Cleanup(func() { version.Version = orig })
}

func TestVersion_DefaultValues(t *testing.T) {
	if version.Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(version.Version, "\x1b[") {
		t.Errorf("Version must be plain text, got %q", version.Version)
	}
}

func TestBanner_Plain(t *testing.T) {
	cases := []string{"0.1.0-dev", "1.2.3", "1.2.3-rc.1+build.123", "2.0.0+meta"}
	for _, v := range cases {
		withVersion(t, v)
		if got := version.Banner(false); got != v {
			t.Errorf("Banner(false) for %q = %q", v, got)
		}
	}
}

func TestBanner_Colored(t *testing.T) {
	withVersion(t, "1.2.3-dev")
	got := version.Banner(true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("Banner(true) = %q, want ANSI escapes", got)
	}
	if !strings.HasSuffix(got, "-dev") {
		t.Fatalf("suffix lost: %q", got)
	}
}

func TestBanner_Malformed(t *testing.T) {
	withVersion(t, "nightly")
	if got := version.Banner(true); got != "nightly" {
		t.Fatalf("Banner = %q, want the raw version", got)
	}
	withVersion(t, "  ")
	if got := version.Banner(false); got != "dev" {
		t.Fatalf("Banner = %q, want dev", got)
	}
}
