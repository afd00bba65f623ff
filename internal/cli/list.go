package cli

import (
	"errors"
	"fmt"

	"github.com/rnglib/rng/internal/fileutil"
	"github.com/rnglib/rng/internal/output"
	"github.com/rnglib/rng/pkg/rng"
	"github.com/spf13/cobra"
)

const embeddedSource = "embedded"

func RunList(cmd *cobra.Command, args []string) error {
	rt, err := LoadRuntime(cmd)
	if err != nil {
		return err
	}
	format, err := ParseOutputFormat(cmd)
	if err != nil {
		return err
	}

	names := rt.Registry.Names()
	records := make([]output.LanguageRecord, 0, len(names))
	for _, name := range names {
		g, err := rt.Registry.Load(name)
		if err != nil && (g == nil || !errors.Is(err, rng.ErrInvalidLanguage)) {
			return err
		}
		source, checksum, err := languageSource(rt, name)
		if err != nil {
			return err
		}
		records = append(records, output.LanguageRecord{
			Name:     g.Name,
			Source:   source,
			Checksum: checksum,
			Valid:    g.IsValid(),
			Prefixes: g.Prefixes.Len(),
			Centers:  g.Centers.Len(),
			Suffixes: g.Suffixes.Len(),
		})
	}
	return output.NewPrinter(rt.Stdout, format, rt.Config.Plain).Languages(records)
}

// languageSource reports where name comes from and a short hash of its data.
func languageSource(rt *Runtime, name string) (string, string, error) {
	path, err := rt.Registry.Path(name)
	if err != nil {
		return "", "", err
	}
	if path != "" {
		checksum, err := fileutil.HashFile(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to hash %s: %w", path, err)
		}
		return path, checksum, nil
	}
	data, err := rt.Registry.Bytes(name)
	if err != nil {
		return "", "", err
	}
	return embeddedSource, fileutil.HashBytes(data), nil
}
