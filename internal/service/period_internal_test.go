package service

import (
	"testing"
	"time"

	apperrors "pg-management-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, 10, 18, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		month    string
		year     string
		expected Period
		invalid  bool
	}{
		{"defaults to now", "", "", Period{Month: 10, Year: 2025}, false},
		{"month only", "3", "", Period{Month: 3, Year: 2025}, false},
		{"year only", "", "2024", Period{Month: 10, Year: 2024}, false},
		{"both", " 12 ", "2023", Period{Month: 12, Year: 2023}, false},
		{"month too high", "13", "", Period{}, true},
		{"month zero", "0", "", Period{}, true},
		{"not a number", "oct", "", Period{}, true},
		{"short year", "", "25", Period{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := resolvePeriod(tc.month, tc.year, now)
			if tc.invalid {
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestPeriodWindow(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)

	w := Period{Month: 12, Year: 2025}.Window(kolkata)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, kolkata), w.From)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, kolkata), w.To)
	// month starts are local, so the UTC instant is the previous evening
	assert.Equal(t, time.Date(2025, 11, 30, 18, 30, 0, 0, time.UTC), w.From.UTC())
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 10, 18, 9, 0, 0, 0, time.UTC)
	str := func(s string) *string { return &s }

	got, err := parseDate("d", nil, time.UTC, now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseDate("d", str("  "), time.UTC, now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseDate("d", str("2025-10-05"), time.UTC, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("d", str("2025-10-05T10:30:00Z"), time.UTC, now)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 10, 5, 10, 30, 0, 0, time.UTC)))

	_, err = parseDate("d", str("yesterday"), time.UTC, now)
	assert.True(t, apperrors.IsValidation(err))
}
