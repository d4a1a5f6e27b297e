package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestParseCalendarDate(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"plain date", "2024-12-25", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"rfc3339 utc", "2024-12-25T00:00:00Z", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"rfc3339 millis", "2024-12-25T00:00:00.000Z", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"rfc3339 with offset", "2024-12-25T23:30:00-03:00", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"no offset", "2025-02-01T00:00:00", time.Date(2025, 2, 1, 0, 0, 0, 0, loc)},
		{"no offset with millis", "2024-12-25T10:00:00.000", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"no offset late evening", "2024-12-25T23:59:59.123456789", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"minutes with zulu", "2024-12-25T10:00Z", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"minutes with offset", "2024-12-25T22:00-03:00", time.Date(2024, 12, 25, 0, 0, 0, 0, loc)},
		{"minutes no offset", "2025-02-01T10:00", time.Date(2025, 2, 1, 0, 0, 0, 0, loc)},
		{"surrounding spaces", " 2024-01-02 ", time.Date(2024, 1, 2, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	for _, input := range []string{"25/12/2024", "", "2024-12-25T", "2024-13-01", "tomorrow"} {
		_, err := ParseCalendarDate(input, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	ny := mustLocation(t, "America/New_York")

	// 2024-03-10 переход на летнее время: сутки длятся 23 часа
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, ny)
	end := time.Date(2024, 3, 11, 0, 0, 0, 0, ny)
	assert.Equal(t, 2, DaysBetween(start, end))

	// 2024-11-03 обратный переход: сутки длятся 25 часов
	start = time.Date(2024, 11, 2, 0, 0, 0, 0, ny)
	end = time.Date(2024, 11, 4, 0, 0, 0, 0, ny)
	assert.Equal(t, 2, DaysBetween(start, end))

	assert.Equal(t, -2, DaysBetween(end, start))
}

func TestAddDays(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")

	got := AddDays(time.Date(2024, 12, 31, 0, 0, 0, 0, loc), 1)
	assert.Equal(t, "2025-01-01", FormatDate(got))

	got = AddDays(time.Date(2024, 3, 1, 0, 0, 0, 0, loc), -1)
	assert.Equal(t, "2024-02-29", FormatDate(got))
}

func TestTomorrow(t *testing.T) {
	loc := mustLocation(t, "America/Sao_Paulo")

	// 01:00 UTC 2024-12-10 это ещё 2024-12-09 в Сан-Паулу
	now := time.Date(2024, 12, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-12-10", FormatDate(Tomorrow(now, loc)))
}
