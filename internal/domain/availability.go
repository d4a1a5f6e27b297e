package domain

import "time"

// DisabledInterval is a server-declared span during which new reservations
// cannot start or end. Both bounds are inclusive calendar days.
type DisabledInterval struct {
	StartDate time.Time
	EndDate   time.Time
}

// IsValid returns true if the interval is well-formed
func (i DisabledInterval) IsValid() bool {
	return !i.StartDate.IsZero() && !i.EndDate.IsZero() && DaysBetween(i.StartDate, i.EndDate) >= 0
}

// Shift moves both bounds by n calendar days
func (i DisabledInterval) Shift(n int) DisabledInterval {
	return DisabledInterval{
		StartDate: AddDays(i.StartDate, n),
		EndDate:   AddDays(i.EndDate, n),
	}
}

// Overlaps returns true if the range shares at least one day with the interval
func (i DisabledInterval) Overlaps(r DateRange) bool {
	if !r.IsComplete() {
		return false
	}
	return DaysBetween(*r.StartDate, i.EndDate) >= 0 && DaysBetween(i.StartDate, *r.EndDate) >= 0
}

// PlaceholderInterval returns the unshifted fallback interval in loc
func PlaceholderInterval(loc *time.Location) DisabledInterval {
	start, _ := ParseCalendarDate(PlaceholderStartDate, loc)
	end, _ := ParseCalendarDate(PlaceholderEndDate, loc)
	return DisabledInterval{StartDate: start, EndDate: end}
}
