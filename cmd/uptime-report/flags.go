package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
)

const usage = `uptime-report - uptime per Pingdom check over a date range

Usage:
  uptime-report --start-date MM/DD/YYYY --end-date MM/DD/YYYY

Example:
  uptime-report -s 01/01/2024 -e 12/31/2024

PINGDOM_API_KEY and PINGDOM_API_URL must be set in the environment or in .env.
`

// dateLayout accepts one- or two-digit month and day.
const dateLayout = "1/2/2006"

var errUsage = errors.New("usage requested")

type args struct {
	From time.Time
	To   time.Time
}

func parseArgs(argv []string) (args, error) {
	fs := pflag.NewFlagSet("uptime-report", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	start := fs.StringP("start-date", "s", "", "first day of the range, MM/DD/YYYY")
	end := fs.StringP("end-date", "e", "", "last day of the range, MM/DD/YYYY")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return args{}, errUsage
		}
		return args{}, err
	}
	if *start == "" || *end == "" {
		return args{}, errUsage
	}

	from, err := parseDate(*start)
	if err != nil {
		return args{}, fmt.Errorf("start date: %w", err)
	}
	to, err := parseDate(*end)
	if err != nil {
		return args{}, fmt.Errorf("end date: %w", err)
	}
	if to.Before(from) {
		return args{}, fmt.Errorf("end date %s is before start date %s", *end, *start)
	}
	return args{From: from, To: to}, nil
}

// parseDate reads MM/DD/YYYY as midnight UTC.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not MM/DD/YYYY", s)
	}
	return t, nil
}
