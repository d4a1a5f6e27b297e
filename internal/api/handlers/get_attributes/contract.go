package get_attributes

import (
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetAttributeOptions() models.AttributesResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
