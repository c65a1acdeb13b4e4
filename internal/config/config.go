// Package config loads aoc.toml, the per-checkout settings file.
//
// The file is looked up from the working directory upwards. Every key is
// optional; missing keys keep their defaults and CLI flags override both.
//
//	[project]
//	year = 2023
//	inputs = "inputs"
//
//	[output]
//	color = "auto"
//	max_diagnostics = 100
//	locale = "en"  # digit grouping of answers; "none" disables it
//
//	[cache]
//	enabled = true
//	dir = ""
//
//	[scan]
//	jobs = 0
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// FileName is the manifest looked up by Find.
const FileName = "aoc.toml"

// Config is the decoded aoc.toml.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Output  OutputConfig  `toml:"output"`
	Cache   CacheConfig   `toml:"cache"`
	Scan    ScanConfig    `toml:"scan"`

	// Root is the directory holding aoc.toml (or the working directory when
	// no file was found). Relative paths resolve against it.
	Root string `toml:"-"`
	// Path is the manifest path, empty when defaults are in use.
	Path string `toml:"-"`
}

type ProjectConfig struct {
	Year   int    `toml:"year"`
	Inputs string `toml:"inputs"`
}

type OutputConfig struct {
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Locale         string `toml:"locale"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type ScanConfig struct {
	Jobs int `toml:"jobs"`
}

// Default returns the settings used when aoc.toml is absent.
func Default() Config {
	return Config{
		Project: ProjectConfig{Year: 2023, Inputs: "inputs"},
		Output:  OutputConfig{Color: "auto", MaxDiagnostics: 100, Locale: "en"},
		Cache:   CacheConfig{Enabled: true},
	}
}

// Find walks up from startDir looking for aoc.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover finds and loads aoc.toml starting at startDir, falling back to
// Default rooted at startDir.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		cfg := Default()
		root, err := filepath.Abs(startDir)
		if err != nil {
			return Config{}, err
		}
		cfg.Root = root
		return cfg, nil
	}
	return Load(path)
}

// Load decodes path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("project", "inputs") && strings.TrimSpace(cfg.Project.Inputs) == "" {
		return Config{}, fmt.Errorf("%s: [project].inputs must not be empty", path)
	}
	switch cfg.Output.Color {
	case "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: [output].color must be auto|on|off, got %q", path, cfg.Output.Color)
	}
	if cfg.Output.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [output].max_diagnostics must be >= 0", path)
	}
	if _, err := cfg.Language(); err != nil {
		return Config{}, fmt.Errorf("%s: [output].locale: %w", path, err)
	}
	if cfg.Scan.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [scan].jobs must be >= 0", path)
	}

	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	return cfg, nil
}

// InputPath returns the default input file for day ("<inputs>/03.txt").
func (c Config) InputPath(day int) string {
	dir := c.Project.Inputs
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Root, filepath.FromSlash(dir))
	}
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// CacheDir returns the configured cache directory, resolved against Root.
// Empty means the platform default.
func (c Config) CacheDir() string {
	dir := strings.TrimSpace(c.Cache.Dir)
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, filepath.FromSlash(dir))
}

// Language returns the tag used to group answer digits. "none" and ""
// yield language.Und, which prints plain digits.
func (c Config) Language() (language.Tag, error) {
	switch loc := strings.TrimSpace(c.Output.Locale); loc {
	case "", "none":
		return language.Und, nil
	default:
		return language.Parse(loc)
	}
}
