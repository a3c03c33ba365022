package journal

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MaxActivitiesPerEntry bounds the number of bullets in one entry.
const MaxActivitiesPerEntry = 4

// Config describes one generation run.
type Config struct {
	Start      time.Time // inclusive
	End        time.Time // exclusive
	Days       WeekMask
	Frequency  float64 // probability that an allowed day gets an entry
	Activities []string
	Dir        string
}

// Summary reports what a run did.
type Summary struct {
	Days             int `json:"days"`
	SkippedWeekday   int `json:"skipped_weekday"`
	SkippedFrequency int `json:"skipped_frequency"`
	Written          int `json:"written"`
}

// Generator writes synthetic journal entries.
type Generator struct {
	rng    *rand.Rand
	logger zerolog.Logger
	dryRun bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for every draw.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed makes the run reproducible. A zero seed keeps the random default.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// WithLogger overrides the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithDryRun selects days and builds entries without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) { g.dryRun = dryRun }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate walks [cfg.Start, cfg.End) day by day and writes one entry for
// every qualifying day. The first filesystem error aborts the run.
func (g *Generator) Generate(cfg Config) (Summary, error) {
	var sum Summary

	categories := cfg.Activities
	if len(categories) == 0 {
		categories = Categories()
	}
	for _, c := range categories {
		if !HasCategory(c) {
			return sum, fmt.Errorf("unknown activity category %q", c)
		}
	}

	for day := cfg.Start; day.Before(cfg.End); day = day.AddDate(0, 0, 1) {
		sum.Days++

		if !cfg.Days.Allows(day.Weekday()) {
			sum.SkippedWeekday++
			continue
		}

		// Full frequency never consumes a draw.
		if cfg.Frequency != 1.0 && !g.bernoulli(cfg.Frequency) {
			sum.SkippedFrequency++
			continue
		}

		entry := g.NewEntry(day, categories)
		path := filepath.Join(cfg.Dir, entry.RelPath())
		if g.dryRun {
			g.logger.Debug().Str("path", path).Int("activities", len(entry.Activities)).Msg("Dry run, entry not written")
			sum.Written++
			continue
		}
		if err := Write(cfg.Dir, entry); err != nil {
			return sum, err
		}
		g.logger.Debug().Str("path", path).Int("activities", len(entry.Activities)).Msg("Wrote journal entry")
		sum.Written++
	}

	g.logger.Info().
		Int("days", sum.Days).
		Int("skippedWeekday", sum.SkippedWeekday).
		Int("skippedFrequency", sum.SkippedFrequency).
		Int("written", sum.Written).
		Bool("dryRun", g.dryRun).
		Msg("Journal generation finished")

	return sum, nil
}

// NewEntry draws between 1 and MaxActivitiesPerEntry activities for date.
// Each line picks a category, then a line from it; repeats are allowed.
func (g *Generator) NewEntry(date time.Time, categories []string) Entry {
	n := 1 + g.rng.IntN(MaxActivitiesPerEntry)
	lines := make([]string, 0, n)
	for range n {
		category := categories[g.rng.IntN(len(categories))]
		choices := catalog[category]
		lines = append(lines, choices[g.rng.IntN(len(choices))])
	}
	return Entry{Date: date, Activities: lines}
}

func (g *Generator) bernoulli(p float64) bool {
	return g.rng.Float64() < p
}

// Write stores the entry under root/<year>/<date>.md, creating the year
// directory if needed and truncating any previous file.
func Write(root string, e Entry) error {
	yearDir := filepath.Join(root, e.YearDir())
	if err := os.MkdirAll(yearDir, 0755); err != nil {
		return fmt.Errorf("failed to create year directory %q: %w", yearDir, err)
	}

	path := filepath.Join(root, e.RelPath())
	if err := os.WriteFile(path, []byte(e.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", path, err)
	}

	return nil
}
