package domain

import (
	"errors"
	"time"
)

var (
	// ErrIncompleteSelection is returned when a confirm is attempted without both bounds
	ErrIncompleteSelection = errors.New("domain: incomplete date selection")

	// ErrInvalidRange is returned when the end date is before the start date
	ErrInvalidRange = errors.New("domain: end date is before start date")
)

// DateRange is the user's current selection in the date-range picker.
// Either bound may be unset while the user is still selecting.
// The range is replaced wholesale on every picker change.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// NewDateRange builds a complete range
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{StartDate: &start, EndDate: &end}
}

// IsComplete returns true if both bounds are set
func (r DateRange) IsComplete() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// Validate checks the only invariant of a range: end not before start
func (r DateRange) Validate() error {
	if !r.IsComplete() {
		return ErrIncompleteSelection
	}
	if DaysBetween(*r.StartDate, *r.EndDate) < 0 {
		return ErrInvalidRange
	}
	return nil
}

// RecordKind distinguishes user bookings from synthetic blocks
type RecordKind string

const (
	KindBooking     RecordKind = "booking"
	KindUnavailable RecordKind = "unavailable"
)

// ReservationRecord is a confirmed booking materialized as a calendar event
type ReservationRecord struct {
	ID    string // assigned at creation, survives edits
	Title string
	Start time.Time
	End   time.Time
	Kind  RecordKind
}

// IsEditable returns true for records that may be targets of an edit
func (r *ReservationRecord) IsEditable() bool {
	return r.Kind == KindBooking
}

// PricingResult derived from a DateRange, never stored
type PricingResult struct {
	Days  int
	Total float64
}
