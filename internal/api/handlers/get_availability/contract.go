package get_availability

import (
	"context"

	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetAvailability(ctx context.Context, sessionID string) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
