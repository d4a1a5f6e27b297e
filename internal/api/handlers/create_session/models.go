package create_session

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	ID            string                            `json:"id"`
	CreatedAt     string                            `json:"createdAt"`
	MinDate       string                            `json:"minDate"`
	DisabledDates []handlers.DisabledDateResponse   `json:"disabledDates"`
	Fallback      bool                              `json:"fallback"`
	DailyRate     float64                           `json:"dailyRate"`
	Attributes    handlers.AttributeOptionsResponse `json:"attributes"`
	Reservations  []handlers.ReservationResponse    `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SessionResponse) *SessionResponse {
	return &SessionResponse{
		ID:            resp.ID,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		MinDate:       domain.FormatDate(resp.MinDate),
		DisabledDates: handlers.FromDisabledDates(resp.DisabledDates),
		Fallback:      resp.Fallback,
		DailyRate:     resp.DailyRate,
		Attributes:    handlers.FromAttributeOptions(resp.Attributes),
		Reservations:  handlers.FromReservations(resp.Reservations),
	}
}
