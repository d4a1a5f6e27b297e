package list_reservations

import (
	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	SessionID    string                         `json:"sessionId"`
	Reservations []handlers.ReservationResponse `json:"reservations"`
}

func FromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	return &ReservationListResponse{
		SessionID:    resp.SessionID,
		Reservations: handlers.FromReservations(resp.Reservations),
	}
}
