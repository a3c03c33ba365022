package commands

import (
	"fmt"
	"strings"

	"journal-fixtures/internal/config"
	"journal-fixtures/internal/journal"
	"journal-fixtures/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// NewRootCmd builds the journal-fixtures command with its own flag state.
func NewRootCmd() *cobra.Command {
	var (
		verbose        bool
		listActivities bool
	)
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "journal-fixtures [flags] <dir>",
		Short: "Populate a journal directory with fake dated entries",
		Long: `Generates one markdown entry per selected day between --start (inclusive)
and --end (exclusive), written to <dir>/<year>/<YYYY-MM-DD>.md.

Examples:
  journal-fixtures --start 2023-03-01 --end 2023-05-01 --frequency 0.5 --activities Work fixtures/work
  journal-fixtures --start 2022-12-01 --end 2023-05-01 --frequency 0.8 --days MTWTFSS \
    --activities Gratitude,Sport,Meditation,Family,Hobbies fixtures/life`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listActivities {
				return printCatalog(cmd)
			}
			if len(args) == 1 {
				opts.Dir = args[0]
			}

			cfg, err := config.New(opts)
			if err != nil {
				return err
			}

			log.Info().
				Str("version", Version).
				Str("dir", cfg.Journal.Dir).
				Str("start", opts.Start).
				Str("end", opts.End).
				Stringer("days", cfg.Journal.Days).
				Float64("frequency", cfg.Journal.Frequency).
				Strs("activities", cfg.Journal.Activities).
				Msg("Generating journal entries")

			gen := journal.NewGenerator(
				journal.WithSeed(cfg.Seed),
				journal.WithDryRun(cfg.DryRun),
			)
			_, err = gen.Generate(cfg.Journal)
			return err
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.Activities, "activities", nil, "comma-separated activity categories (default: all)")
	f.StringVar(&opts.Days, "days", opts.Days, "Monday-first weekday mask, '_' skips a day")
	f.Float64Var(&opts.Frequency, "frequency", opts.Frequency, "probability between 0 and 1 that a selected day gets an entry")
	f.StringVar(&opts.Start, "start", "", "first date of the journal, YYYY-MM-DD (inclusive)")
	f.StringVar(&opts.End, "end", "", "end date of the journal, YYYY-MM-DD (exclusive)")
	f.Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible output (0 seeds from the clock)")
	f.BoolVar(&opts.DryRun, "dry-run", false, "select days and log entries without writing files")
	f.BoolVar(&listActivities, "list-activities", false, "print the activity catalog and exit")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

func printCatalog(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, category := range journal.Categories() {
		if _, err := fmt.Fprintf(out, "%s:\n", category); err != nil {
			return err
		}
		for _, a := range journal.Activities(category) {
			if _, err := fmt.Fprintf(out, "  %s\n", strings.TrimSpace(a)); err != nil {
				return err
			}
		}
	}
	return nil
}

func Execute() error {
	return NewRootCmd().Execute()
}
