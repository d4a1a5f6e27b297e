package handlers

import (
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

// DisabledDateResponse занятый интервал (границы включительно)
type DisabledDateResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReservationResponse событие календаря
type ReservationResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Kind     string `json:"kind"`
	Editable bool   `json:"editable"`
}

// AttributesRequest выбранные значения выпадающих списков
type AttributesRequest struct {
	Product  string `json:"product" validate:"required"`
	Vertical string `json:"vertical" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// AttributesResponse выбранные значения выпадающих списков
type AttributesResponse struct {
	Product  string `json:"product"`
	Vertical string `json:"vertical"`
	Location string `json:"location"`
}

// PricingResponse результат расчета цены
type PricingResponse struct {
	Days  int     `json:"days"`
	Total float64 `json:"total"`
}

// AttributeOptionsResponse варианты выпадающих списков
type AttributeOptionsResponse struct {
	Products  []string           `json:"products"`
	Verticals []string           `json:"verticals"`
	Locations []string           `json:"locations"`
	Defaults  AttributesResponse `json:"defaults"`
}

// ToDomain конвертирует атрибуты запроса
func (a AttributesRequest) ToDomain() domain.SelectedAttributes {
	return domain.SelectedAttributes{
		Product:  a.Product,
		Vertical: a.Vertical,
		Location: a.Location,
	}
}

func FromDisabledDates(dates []models.DisabledDate) []DisabledDateResponse {
	result := make([]DisabledDateResponse, len(dates))
	for i, d := range dates {
		result[i] = DisabledDateResponse{
			StartDate: domain.FormatDate(d.StartDate),
			EndDate:   domain.FormatDate(d.EndDate),
		}
	}
	return result
}

func FromReservation(r models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:       r.ID,
		Title:    r.Title,
		Start:    domain.FormatDate(r.Start),
		End:      domain.FormatDate(r.End),
		Kind:     r.Kind,
		Editable: r.Editable,
	}
}

func FromReservations(reservations []models.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		result[i] = FromReservation(r)
	}
	return result
}

func FromAttributes(a domain.SelectedAttributes) AttributesResponse {
	return AttributesResponse{
		Product:  a.Product,
		Vertical: a.Vertical,
		Location: a.Location,
	}
}

func FromPricing(p domain.PricingResult) PricingResponse {
	return PricingResponse{Days: p.Days, Total: p.Total}
}

func FromAttributeOptions(o models.AttributesResponse) AttributeOptionsResponse {
	return AttributeOptionsResponse{
		Products:  o.Products,
		Verticals: o.Verticals,
		Locations: o.Locations,
		Defaults:  FromAttributes(o.Defaults),
	}
}
