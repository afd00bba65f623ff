package cli

import (
	"context"
	"errors"

	"github.com/rnglib/rng/internal/output"
	"github.com/rnglib/rng/pkg/rng"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// RunDoctor checks every language (or only --language) concurrently. Dead
// ends are warnings: they do not make a language unhealthy.
func RunDoctor(cmd *cobra.Command, args []string) error {
	rt, err := LoadRuntime(cmd)
	if err != nil {
		return err
	}
	format, err := ParseOutputFormat(cmd)
	if err != nil {
		return err
	}

	names := rt.Registry.Names()
	if rt.Config.Language != "" {
		if !rt.Registry.Has(rt.Config.Language) {
			_, err := rt.Registry.Load(rt.Config.Language)
			return err
		}
		names = []string{rt.Config.Language}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	records := make([]output.DiagnosisRecord, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := diagnose(rt, name)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	unhealthy := 0
	for _, r := range records {
		if !r.Healthy {
			unhealthy++
		}
	}
	rt.Logger.Debug("doctor finished", "languages", len(records), "unhealthy", unhealthy)

	return output.NewPrinter(rt.Stdout, format, rt.Config.Plain).Diagnoses(records)
}

func diagnose(rt *Runtime, name string) (output.DiagnosisRecord, error) {
	g, err := rt.Registry.Load(name)
	if err != nil && (g == nil || !errors.Is(err, rng.ErrInvalidLanguage)) {
		return output.DiagnosisRecord{}, err
	}

	record := output.DiagnosisRecord{
		Language:     g.Name,
		Healthy:      g.IsValid(),
		Problems:     g.Problems(),
		InvalidLines: g.InvalidLines,
	}
	for _, d := range g.DeadEnds() {
		record.DeadEnds = append(record.DeadEnds, output.DeadEndRecord{
			Syllable: d.Syllable.String(),
			Missing:  d.Missing.String(),
		})
	}
	return record, nil
}
