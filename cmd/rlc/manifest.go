package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const manifestName = "rlc.toml"

const noManifestMessage = "no rlc.toml found\nplease specify the source files explicitly, e.g.:\n  rlc check path/to/main.rl"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig

	jobsSet  bool
	cacheSet bool
}

type projectConfig struct {
	Build buildConfig `toml:"build"`
}

type buildConfig struct {
	Sources     []string `toml:"sources"`
	IncludeDirs []string `toml:"include_dirs"`
	Jobs        int      `toml:"jobs"`
	Cache       bool     `toml:"cache"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(path string) (*projectManifest, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("build") {
		return nil, fmt.Errorf("%s: missing [build]", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("build", "jobs") && cfg.Build.Jobs < 0 {
		return nil, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	for _, src := range cfg.Build.Sources {
		if strings.TrimSpace(src) == "" {
			return nil, fmt.Errorf("%s: empty entry in [build].sources", path)
		}
	}
	root := filepath.Dir(path)
	m := &projectManifest{
		Path:     path,
		Root:     root,
		Config:   cfg,
		jobsSet:  meta.IsDefined("build", "jobs"),
		cacheSet: meta.IsDefined("build", "cache"),
	}
	m.Config.Build.Sources = m.relocate(cfg.Build.Sources)
	m.Config.Build.IncludeDirs = m.relocate(cfg.Build.IncludeDirs)
	return m, nil
}

// relocate делает пути манифеста относительными к его каталогу.
func (m *projectManifest) relocate(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.FromSlash(strings.TrimSpace(p))
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		out = append(out, p)
	}
	return out
}

// buildSettings is what a multi-file command builds with after merging the
// manifest and the command line.
type buildSettings struct {
	Sources     []string
	IncludeDirs []string
	Jobs        int
	Cache       bool
	Manifest    *projectManifest // nil when none was used
}

// loadBuildSettings reads rlc.toml (from --manifest or found upwards from the
// working directory) and applies flags on top. File arguments replace
// [build].sources; -I directories are searched before the manifest ones.
func loadBuildSettings(cmd *cobra.Command, args []string) (buildSettings, error) {
	pf := cmd.Root().PersistentFlags()
	manifestPath, err := pf.GetString("manifest")
	if err != nil {
		return buildSettings{}, fmt.Errorf("failed to get manifest flag: %w", err)
	}
	includeDirs, err := pf.GetStringArray("include")
	if err != nil {
		return buildSettings{}, fmt.Errorf("failed to get include flag: %w", err)
	}
	noCache, err := pf.GetBool("no-cache")
	if err != nil {
		return buildSettings{}, fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	settings := buildSettings{Sources: args, Cache: true}
	if manifestPath == "" {
		found, ok, err := findManifest(".")
		if err != nil {
			return buildSettings{}, err
		}
		if ok {
			manifestPath = found
		}
	}
	if manifestPath != "" {
		m, err := loadProjectManifest(manifestPath)
		if err != nil {
			return buildSettings{}, err
		}
		settings.Manifest = m
		if len(settings.Sources) == 0 {
			settings.Sources = m.Config.Build.Sources
		}
		if m.jobsSet {
			settings.Jobs = m.Config.Build.Jobs
		}
		if m.cacheSet {
			settings.Cache = m.Config.Build.Cache
		}
	}

	settings.IncludeDirs = append(settings.IncludeDirs, includeDirs...)
	if settings.Manifest != nil {
		settings.IncludeDirs = append(settings.IncludeDirs, settings.Manifest.Config.Build.IncludeDirs...)
	}
	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		settings.Jobs, _ = cmd.Flags().GetInt("jobs")
	}
	if noCache {
		settings.Cache = false
	}

	if len(settings.Sources) == 0 {
		if settings.Manifest == nil {
			return buildSettings{}, errors.New(noManifestMessage)
		}
		return buildSettings{}, fmt.Errorf("%s: [build].sources is empty", settings.Manifest.Path)
	}
	return settings, nil
}
