package cli

import (
	"errors"
	"strings"

	"github.com/rnglib/rng/internal/output"
	"github.com/rnglib/rng/pkg/rng"
	"github.com/spf13/cobra"
)

// RunDump prints the parsed syllables of a language. An invalid language is
// still dumped so its valid lines can be audited; the problems go to stderr.
func RunDump(cmd *cobra.Command, args []string) error {
	rt, err := LoadRuntime(cmd)
	if err != nil {
		return err
	}
	format, err := ParseOutputFormat(cmd)
	if err != nil {
		return err
	}
	file, err := OptionalStringFlag(cmd, "file")
	if err != nil {
		return err
	}

	g, err := rt.LoadLanguage(file, rt.Config.Language)
	if err != nil {
		if g == nil || !errors.Is(err, rng.ErrInvalidLanguage) {
			return err
		}
		ReportInvalidLanguage(rt.Stderr, err)
	}

	syllables := g.Syllables()
	records := make([]output.SyllableRecord, 0, len(syllables))
	for _, s := range syllables {
		records = append(records, output.SyllableRecord{
			Language:       g.Name,
			Classification: s.Classification.String(),
			Value:          s.Value,
			Previous:       strings.TrimSpace(s.Previous.ValuePrevious()),
			Next:           strings.TrimSpace(s.Next.ValueNext()),
			Line:           s.String(),
		})
	}
	return output.NewPrinter(rt.Stdout, format, rt.Config.Plain).Syllables(records)
}
