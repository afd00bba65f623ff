package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rnglib/rng/internal/config"
	"github.com/rnglib/rng/internal/logger"
	"github.com/rnglib/rng/pkg/languages"
	"github.com/rnglib/rng/pkg/rng"
	"github.com/spf13/cobra"
)

// Runtime is what every command needs once flags and config are resolved.
type Runtime struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *languages.Registry
	Stdout   io.Writer
	Stderr   io.Writer
}

func LoadRuntime(cmd *cobra.Command) (*Runtime, error) {
	configPath, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.Sources{File: configPath})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := ApplyFlagOverrides(cmd, &cfg); err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logFormat, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logFormat),
		logger.WithOutput(cmd.ErrOrStderr()),
	)

	registry, err := languages.NewDefaultRegistry(
		languages.WithCacheSize(cfg.CacheSize),
		languages.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	if cfg.LanguageDir != "" {
		if _, err := registry.RegisterDir(cfg.LanguageDir); err != nil {
			return nil, fmt.Errorf("failed to load language directory: %w", err)
		}
	}

	log.Debug("configuration resolved",
		"language", cfg.Language,
		"count", cfg.Count,
		"short", cfg.Short,
		"seed", cfg.Seed,
		"language_dir", cfg.LanguageDir,
		"format", cfg.Format,
	)

	return &Runtime{
		Config:   cfg,
		Logger:   log,
		Registry: registry,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}, nil
}

// LoadLanguage resolves --file, then the named language. An invalid language
// is returned along with its error so callers can still inspect it.
func (rt *Runtime) LoadLanguage(file, name string) (*rng.Generator, error) {
	if file != "" {
		return rt.Registry.LoadFile(file)
	}
	if name == "" {
		return nil, fmt.Errorf("no language given (available: %s)", strings.Join(rt.Registry.Names(), ", "))
	}
	return rt.Registry.Load(name)
}

// ReportInvalidLanguage prints why g cannot generate names.
func ReportInvalidLanguage(w io.Writer, err error) {
	var invalid *rng.InvalidLanguageError
	if !errors.As(err, &invalid) || invalid.Generator == nil {
		return
	}
	g := invalid.Generator
	for _, line := range g.InvalidLines {
		fmt.Fprintf(w, "[error] %s: %s\n", g.Name, line)
	}
	for _, problem := range g.Problems() {
		fmt.Fprintf(w, "[error] %s: %s\n", g.Name, problem)
	}
}
