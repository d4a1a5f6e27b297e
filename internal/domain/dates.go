package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string is neither YYYY-MM-DD nor an ISO-8601 timestamp
var ErrInvalidDate = errors.New("domain: invalid date")

// CalendarDay returns midnight of the calendar day t falls on in loc
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AddDays shifts a calendar day by n days, keeping it a calendar day
func AddDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, day.Location())
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
// Only the Y/M/D of each value is used, so DST offsets never affect the result.
func DaysBetween(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

// Tomorrow returns the first selectable day relative to now
func Tomorrow(now time.Time, loc *time.Location) time.Time {
	return AddDays(CalendarDay(now, loc), 1)
}

// isoLayouts are the ISO-8601 timestamp forms accepted besides a plain date.
// Layouts without an offset are read as wall-clock values.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseCalendarDate parses "2024-12-25" or an ISO-8601 timestamp and returns
// midnight of the written calendar day in loc.
func ParseCalendarDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.ParseInLocation(DateFormat, s, loc); err == nil {
		return t, nil
	}

	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate formats a calendar day as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
