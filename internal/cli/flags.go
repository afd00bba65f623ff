package cli

import (
	"fmt"
	"strings"

	"github.com/rnglib/rng/internal/config"
	"github.com/rnglib/rng/internal/output"
	"github.com/spf13/cobra"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func OptionalBoolFlag(cmd *cobra.Command, name string, fallback bool) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return fallback, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func ParseOutputFormat(cmd *cobra.Command) (output.Format, error) {
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to read --format flag: %w", err)
	}
	return output.ParseFormat(value)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// ApplyFlagOverrides copies explicitly set flags over cfg.
func ApplyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	if flagChanged(cmd, "language") {
		if cfg.Language, err = OptionalStringFlag(cmd, "language"); err != nil {
			return err
		}
	}
	if flagChanged(cmd, "language-dir") {
		if cfg.LanguageDir, err = OptionalStringFlag(cmd, "language-dir"); err != nil {
			return err
		}
	}
	if flagChanged(cmd, "format") {
		if cfg.Format, err = OptionalStringFlag(cmd, "format"); err != nil {
			return err
		}
	}
	if flagChanged(cmd, "count") {
		if cfg.Count, err = cmd.Flags().GetInt("count"); err != nil {
			return fmt.Errorf("failed to read --count flag: %w", err)
		}
	}
	if flagChanged(cmd, "seed") {
		if cfg.Seed, err = cmd.Flags().GetUint64("seed"); err != nil {
			return fmt.Errorf("failed to read --seed flag: %w", err)
		}
	}
	if flagChanged(cmd, "short") {
		if cfg.Short, err = OptionalBoolFlag(cmd, "short", cfg.Short); err != nil {
			return err
		}
	}
	if flagChanged(cmd, "plain") {
		if cfg.Plain, err = OptionalBoolFlag(cmd, "plain", cfg.Plain); err != nil {
			return err
		}
	}
	verbose, err := OptionalBoolFlag(cmd, "verbose", false)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg.Validate()
}
