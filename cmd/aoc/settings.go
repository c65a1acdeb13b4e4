package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"aoc/internal/answercache"
	"aoc/internal/config"
	"aoc/internal/observ"
)

// settings merges aoc.toml with the persistent flags. Flags win when set.
type settings struct {
	cfg            config.Config
	colorStdout    bool
	colorStderr    bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	locale         language.Tag
	timer          *observ.Timer
}

var (
	current      *settings
	traceCleanup func(failed bool)
)

func setup(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	current = s

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup
	return setupProfiling(cmd)
}

func teardown(err error) {
	stopProfiling()
	if traceCleanup != nil {
		traceCleanup(err != nil)
	}
	if current != nil && current.timings {
		fmt.Fprint(os.Stderr, current.timer.Summary())
	}
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, maxDiagnostics: cfg.Output.MaxDiagnostics}

	colorMode := cfg.Output.Color
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch colorMode {
	case "on":
		s.colorStdout, s.colorStderr = true, true
	case "off":
		s.colorStdout, s.colorStderr = false, false
	case "auto":
		s.colorStdout, s.colorStderr = isTerminal(os.Stdout), isTerminal(os.Stderr)
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}
	color.NoColor = !s.colorStdout

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.locale, err = cfg.Language(); err != nil {
		return nil, err
	}
	if s.timings {
		s.timer = observ.NewTimer()
	}
	return s, nil
}

// openCache returns nil when caching is disabled by config or flag.
func (s *settings) openCache(disabled bool) (*answercache.Cache, error) {
	if disabled || !s.cfg.Cache.Enabled {
		return nil, nil
	}
	dir := s.cfg.CacheDir()
	if dir == "" {
		var err error
		if dir, err = answercache.DefaultDir("aoc"); err != nil {
			return nil, fmt.Errorf("answer cache: %w", err)
		}
	}
	cache, err := answercache.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("answer cache: %w", err)
	}
	return cache, nil
}
