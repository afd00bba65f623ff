package cli

import (
	"context"
	"fmt"

	"github.com/rnglib/rng/internal/output"
	"github.com/rnglib/rng/pkg/random"
	"github.com/rnglib/rng/pkg/rng"
	"github.com/spf13/cobra"
)

func RunName(cmd *cobra.Command, args []string) error {
	rt, err := LoadRuntime(cmd)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(rt.Config.Format)
	if err != nil {
		return err
	}
	file, err := OptionalStringFlag(cmd, "file")
	if err != nil {
		return err
	}
	full, err := OptionalBoolFlag(cmd, "full", false)
	if err != nil {
		return err
	}

	language := rt.Config.Language
	if file == "" && language == "" {
		var src random.Source
		if rt.Config.Seed != 0 {
			src = random.NewSeeded(rt.Config.Seed)
		}
		if language, err = rt.Registry.Random(src); err != nil {
			return err
		}
		rt.Logger.Debug("picked random language", "language", language)
	}

	g, err := rt.LoadLanguage(file, language)
	if err != nil {
		ReportInvalidLanguage(rt.Stderr, err)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	names, err := rng.GenerateMany(ctx, g, rng.BatchOptions{
		Count: rt.Config.Count,
		Short: rt.Config.Short,
		Full:  full,
		Seed:  rt.Config.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to generate %s names: %w", g.Name, err)
	}

	records := make([]output.NameRecord, 0, len(names))
	for _, name := range names {
		records = append(records, output.NameRecord{Language: g.Name, Name: name})
	}
	return output.NewPrinter(rt.Stdout, format, rt.Config.Plain).Names(records)
}
