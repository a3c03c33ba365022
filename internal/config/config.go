package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"journal-fixtures/internal/journal"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every validation failure returned by New.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// Options holds the raw command line values before validation.
type Options struct {
	Activities []string `validate:"dive,required"`
	Days       string   `validate:"len=7"`
	Frequency  float64  `validate:"gte=0,lte=1"`
	Start      string   `validate:"required,datetime=2006-01-02"`
	End        string   `validate:"required,datetime=2006-01-02"`
	Dir        string   `validate:"required"`
	Seed       uint64
	DryRun     bool
}

// DefaultOptions returns the options used when a flag is not given.
func DefaultOptions() Options {
	return Options{
		Days:      journal.DefaultWeekMask,
		Frequency: 1.0,
	}
}

// AppConfig holds the complete, validated application configuration.
type AppConfig struct {
	Journal journal.Config
	Seed    uint64
	DryRun  bool
}

// New validates opts and resolves defaults. No filesystem access happens here;
// every problem found is reported in the returned error.
func New(opts Options) (*AppConfig, error) {
	opts.Activities = slices.Clone(opts.Activities)
	for i, a := range opts.Activities {
		opts.Activities[i] = strings.TrimSpace(a)
	}

	var problems []error
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	start, startErr := time.Parse(journal.DateLayout, opts.Start)
	end, endErr := time.Parse(journal.DateLayout, opts.End)
	if startErr == nil && endErr == nil && start.After(end) {
		problems = append(problems, fmt.Errorf("start date %s is after end date %s", opts.Start, opts.End))
	}

	days, err := journal.ParseWeekMask(opts.Days)
	if err != nil && !hasField(problems, "Days") {
		problems = append(problems, err)
	}

	activities := opts.Activities
	if len(activities) == 0 {
		activities = journal.Categories()
	}
	for _, a := range activities {
		if a != "" && !journal.HasCategory(a) {
			problems = append(problems, fmt.Errorf("unknown activity category %q (known: %s)", a, strings.Join(journal.Categories(), ", ")))
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
	}

	return &AppConfig{
		Journal: journal.Config{
			Start:      start,
			End:        end,
			Days:       days,
			Frequency:  opts.Frequency,
			Activities: activities,
			Dir:        opts.Dir,
		},
		Seed:   opts.Seed,
		DryRun: opts.DryRun,
	}, nil
}

type fieldError struct {
	field string
	msg   string
}

func (e *fieldError) Error() string { return e.msg }

func describe(fe validator.FieldError) error {
	var msg string
	if strings.HasPrefix(fe.StructField(), "Activities") {
		return &fieldError{field: "Activities", msg: "--activities contains an empty category"}
	}
	switch fe.Field() {
	case "Days":
		msg = fmt.Sprintf("--days must have exactly 7 markers, got %q", fe.Value())
	case "Frequency":
		msg = fmt.Sprintf("--frequency must be between 0 and 1, got %v", fe.Value())
	case "Start", "End":
		name := "--" + strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			msg = name + " is required"
		} else {
			msg = fmt.Sprintf("%s must be a YYYY-MM-DD date, got %q", name, fe.Value())
		}
	case "Dir":
		msg = "journal directory is required"
	default:
		msg = fmt.Sprintf("%s failed %q validation", fe.Namespace(), fe.Tag())
	}
	return &fieldError{field: fe.StructField(), msg: msg}
}

func hasField(problems []error, field string) bool {
	for _, p := range problems {
		var fe *fieldError
		if errors.As(p, &fe) && fe.field == field {
			return true
		}
	}
	return false
}
