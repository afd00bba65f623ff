package cli

import (
	"fmt"

	"github.com/rnglib/rng/internal/output"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rng",
		Short: "Generate fantasy names from syllable languages",
		Long: `rng builds names by chaining syllables from a language file.

Each language lists prefix, center and suffix syllables with optional
directives (+v, -c, ...) restricting which syllables may sit next to
each other. Five languages are built in; more can be loaded from disk.`,
		Args:         cobra.NoArgs,
		RunE:         RunName,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: $RNG_CONFIG or ./.rng.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log at debug level")
	rootCmd.PersistentFlags().String("language-dir", "", "Directory of extra *.txt languages")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable terminal styling")
	addNameFlags(rootCmd)

	nameCmd := &cobra.Command{
		Use:   "name",
		Short: "Generate one or more names",
		Args:  cobra.NoArgs,
		RunE:  RunName,
	}
	addNameFlags(nameCmd)

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every syllable of a language as it was parsed",
		Args:  cobra.NoArgs,
		RunE:  RunDump,
	}
	dumpCmd.Flags().StringP("language", "l", "", "Language to dump")
	dumpCmd.Flags().String("file", "", "Language file to dump")
	dumpCmd.Flags().String("format", string(output.FormatText), "Output format: text|jsonl")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available languages",
		Args:  cobra.NoArgs,
		RunE:  RunList,
	}
	listCmd.Flags().String("format", string(output.FormatText), "Output format: text|json|jsonl")

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate languages and report dead ends",
		Args:  cobra.NoArgs,
		RunE:  RunDoctor,
	}
	doctorCmd.Flags().StringP("language", "l", "", "Only check this language")
	doctorCmd.Flags().String("format", string(output.FormatText), "Output format: text|json|jsonl")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rng %s\n", version)
		},
	}

	rootCmd.AddCommand(
		nameCmd,
		dumpCmd,
		listCmd,
		doctorCmd,
		versionCmd,
	)

	return rootCmd
}

func addNameFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", "", "Language to use (default: random)")
	cmd.Flags().IntP("count", "n", 1, "Number of names")
	cmd.Flags().BoolP("short", "s", false, "Generate short names")
	cmd.Flags().Bool("full", false, "Generate first and last names")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible output (0: random)")
	cmd.Flags().String("file", "", "Language file to use instead of a named language")
	cmd.Flags().String("format", string(output.FormatText), "Output format: text|json|jsonl")
}
