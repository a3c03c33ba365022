package config

import (
	"errors"
	"math"
	"testing"
	"time"

	"journal-fixtures/internal/journal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() Options {
	opts := DefaultOptions()
	opts.Start = "2023-01-02"
	opts.End = "2023-01-09"
	opts.Dir = "journal"
	return opts
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(validOptions())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), cfg.Journal.Start)
	assert.Equal(t, time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), cfg.Journal.End)
	assert.Equal(t, 1.0, cfg.Journal.Frequency)
	assert.Equal(t, journal.Categories(), cfg.Journal.Activities)
	assert.Equal(t, "MTWTF__", cfg.Journal.Days.String())
	assert.Equal(t, "journal", cfg.Journal.Dir)
	assert.False(t, cfg.DryRun)
}

func TestNew_TrimsActivities(t *testing.T) {
	opts := validOptions()
	raw := []string{"Work", " Hobbies"}
	opts.Activities = raw
	opts.Seed = 7

	cfg, err := New(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Work", "Hobbies"}, cfg.Journal.Activities)
	assert.Equal(t, " Hobbies", raw[1], "caller slice must be left untouched")
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestNew_StartEqualsEndIsEmptyRange(t *testing.T) {
	opts := validOptions()
	opts.End = opts.Start

	_, err := New(opts)
	assert.NoError(t, err)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		want   string
	}{
		{"missing start", func(o *Options) { o.Start = "" }, "--start is required"},
		{"malformed end", func(o *Options) { o.End = "2023-13-01" }, "--end must be a YYYY-MM-DD date"},
		{"start after end", func(o *Options) { o.Start = "2023-02-01" }, "is after end date"},
		{"frequency above one", func(o *Options) { o.Frequency = 1.5 }, "--frequency must be between 0 and 1"},
		{"negative frequency", func(o *Options) { o.Frequency = -0.1 }, "--frequency must be between 0 and 1"},
		{"NaN frequency", func(o *Options) { o.Frequency = math.NaN() }, "--frequency must be between 0 and 1"},
		{"short mask", func(o *Options) { o.Days = "MTWTF" }, "--days must have exactly 7 markers"},
		{"long mask", func(o *Options) { o.Days = "MTWTFSSS" }, "--days must have exactly 7 markers"},
		{"unknown category", func(o *Options) { o.Activities = []string{"Work", "Chess"} }, `unknown activity category "Chess"`},
		{"empty category", func(o *Options) { o.Activities = []string{"Work", ""} }, "--activities contains an empty category"},
		{"missing dir", func(o *Options) { o.Dir = "" }, "journal directory is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			cfg, err := New(opts)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_ReportsEveryProblem(t *testing.T) {
	opts := validOptions()
	opts.Days = "MT"
	opts.Frequency = 2
	opts.Dir = ""

	_, err := New(opts)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "--days")
	assert.Contains(t, msg, "--frequency")
	assert.Contains(t, msg, "journal directory")
	assert.NotContains(t, msg, "weekday mask", "mask length must be reported once")
}
