package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	got, err := parseArgs([]string{"--start-date", "01/01/2024", "--end-date", "12/31/2024"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got.From)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got.To)
	assert.Equal(t, int64(1704067200), got.From.Unix())
}

func TestParseArgs_ShortFlagsAndSingleDigits(t *testing.T) {
	got, err := parseArgs([]string{"-s", "3/5/2024", "-e", "3/5/2024"})
	require.NoError(t, err)
	assert.Equal(t, got.From, got.To)
	assert.Equal(t, time.March, got.From.Month())
	assert.Equal(t, 5, got.From.Day())
}

func TestParseArgs_Usage(t *testing.T) {
	for _, argv := range [][]string{
		nil,
		{"-s", "01/01/2024"},
		{"--end-date", "01/01/2024"},
		{"--help"},
	} {
		_, err := parseArgs(argv)
		assert.ErrorIs(t, err, errUsage, "%v", argv)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	cases := map[string][]string{
		"bad start":    {"-s", "2024-01-01", "-e", "01/02/2024"},
		"bad end":      {"-s", "01/01/2024", "-e", "13/40/2024"},
		"end first":    {"-s", "02/01/2024", "-e", "01/01/2024"},
		"unknown flag": {"-s", "01/01/2024", "-e", "01/02/2024", "--verbose"},
	}
	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseArgs(argv)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errUsage)
		})
	}
}
