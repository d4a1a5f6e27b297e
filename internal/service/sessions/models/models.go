package models

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// SessionResponse состояние новой сессии страницы бронирования
type SessionResponse struct {
	ID            string
	CreatedAt     time.Time
	MinDate       time.Time
	DisabledDates []DisabledDate
	Fallback      bool
	DailyRate     float64
	Attributes    AttributesResponse
	Reservations  []Reservation
}

// AvailabilityResponse данные для date-range picker
type AvailabilityResponse struct {
	SessionID     string
	MinDate       time.Time
	DisabledDates []DisabledDate
	Fallback      bool
}

// DisabledDate занятый интервал (границы включительно)
type DisabledDate struct {
	StartDate time.Time
	EndDate   time.Time
}

// Reservation событие календаря
type Reservation struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Kind     string
	Editable bool
}

// ReservationListResponse события календаря сессии
type ReservationListResponse struct {
	SessionID    string
	Reservations []Reservation
}

// EditFormResponse состояние формы в режиме редактирования
type EditFormResponse struct {
	Reservation Reservation
	StartDate   time.Time
	EndDate     time.Time
	Attributes  domain.SelectedAttributes
	Pricing     domain.PricingResult
}

// AttributesResponse варианты выпадающих списков и значения по умолчанию
type AttributesResponse struct {
	Products  []string
	Verticals []string
	Locations []string
	Defaults  domain.SelectedAttributes
}

// FromDomainIntervals конвертирует доменные интервалы
func FromDomainIntervals(intervals []domain.DisabledInterval) []DisabledDate {
	result := make([]DisabledDate, len(intervals))
	for i, interval := range intervals {
		result[i] = DisabledDate{StartDate: interval.StartDate, EndDate: interval.EndDate}
	}
	return result
}

// FromDomainRecord конвертирует запись ledger
func FromDomainRecord(record domain.ReservationRecord) Reservation {
	return Reservation{
		ID:       record.ID,
		Title:    record.Title,
		Start:    record.Start,
		End:      record.End,
		Kind:     string(record.Kind),
		Editable: record.IsEditable(),
	}
}

// FromDomainRecords конвертирует список записей ledger с сохранением порядка
func FromDomainRecords(records []domain.ReservationRecord) []Reservation {
	result := make([]Reservation, len(records))
	for i, record := range records {
		result[i] = FromDomainRecord(record)
	}
	return result
}

// FromDomainOptions конвертирует варианты выпадающих списков
func FromDomainOptions(options domain.AttributeOptions) AttributesResponse {
	return AttributesResponse{
		Products:  options.Products,
		Verticals: options.Verticals,
		Locations: options.Locations,
		Defaults:  options.Defaults(),
	}
}
