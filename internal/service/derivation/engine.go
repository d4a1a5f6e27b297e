package derivation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// Engine derives day counts, prices and calendar records from a picker selection.
// All operations are pure apart from identifier generation.
type Engine struct {
	dailyRate float64
	defaults  domain.SelectedAttributes
	location  *time.Location
	newID     func() string
}

// NewEngine создает движок расчета
func NewEngine(dailyRate float64, defaults domain.SelectedAttributes, location *time.Location) *Engine {
	return &Engine{
		dailyRate: dailyRate,
		defaults:  defaults,
		location:  location,
		newID:     uuid.NewString,
	}
}

// DailyRate returns the per-day price
func (e *Engine) DailyRate() float64 {
	return e.dailyRate
}

// ComputeDayCount returns the inclusive number of days in the range, 0 if a bound is unset.
// Both bounds are reduced to their calendar day first, so time of day and DST do not matter.
func (e *Engine) ComputeDayCount(r domain.DateRange) int {
	if !r.IsComplete() {
		return 0
	}

	start := domain.CalendarDay(*r.StartDate, e.location)
	end := domain.CalendarDay(*r.EndDate, e.location)

	days := domain.DaysBetween(start, end) + 1
	if days < 0 {
		return 0
	}
	return days
}

// ComputePrice returns days * daily rate
func (e *Engine) ComputePrice(days int) (float64, error) {
	if days < 0 {
		return 0, fmt.Errorf("%w: days=%d", ErrNegativeDays, days)
	}
	return float64(days) * e.dailyRate, nil
}

// Quote computes the pricing result for the current selection
func (e *Engine) Quote(r domain.DateRange) (domain.PricingResult, error) {
	days := e.ComputeDayCount(r)

	total, err := e.ComputePrice(days)
	if err != nil {
		return domain.PricingResult{}, err
	}

	return domain.PricingResult{Days: days, Total: total}, nil
}

// ToReservationRecord materializes the selection as a calendar record.
// Dates are copied verbatim; the remote display shift never applies to user input.
func (e *Engine) ToReservationRecord(r domain.DateRange, attrs domain.SelectedAttributes) (*domain.ReservationRecord, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &domain.ReservationRecord{
		ID:    e.newID(),
		Title: attrs.Product,
		Start: *r.StartDate,
		End:   *r.EndDate,
		Kind:  domain.KindBooking,
	}, nil
}

// FromReservationRecord rehydrates the form for edit mode.
// Only the product survives in a record; vertical and location fall back to the form defaults.
func (e *Engine) FromReservationRecord(record *domain.ReservationRecord) (domain.DateRange, domain.SelectedAttributes, error) {
	if record == nil {
		return domain.DateRange{}, domain.SelectedAttributes{}, ErrNilRecord
	}

	attrs := e.defaults
	attrs.Product = record.Title

	return domain.NewDateRange(record.Start, record.End), attrs, nil
}
