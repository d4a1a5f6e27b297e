package get_availability

import (
	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SessionID     string                          `json:"sessionId"`
	MinDate       string                          `json:"minDate"`
	DisabledDates []handlers.DisabledDateResponse `json:"disabledDates"`
	Fallback      bool                            `json:"fallback"`
}

func FromServiceResponse(resp *models.AvailabilityResponse) *AvailabilityResponse {
	return &AvailabilityResponse{
		SessionID:     resp.SessionID,
		MinDate:       domain.FormatDate(resp.MinDate),
		DisabledDates: handlers.FromDisabledDates(resp.DisabledDates),
		Fallback:      resp.Fallback,
	}
}
