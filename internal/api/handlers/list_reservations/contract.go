package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

type SessionService interface {
	ListReservations(ctx context.Context, sessionID string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
