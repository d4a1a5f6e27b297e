package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetReservationForEdit(ctx context.Context, sessionID, reservationID string) (*models.EditFormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
