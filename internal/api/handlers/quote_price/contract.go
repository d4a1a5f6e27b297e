package quote_price

import (
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

type PricingEngine interface {
	Quote(r domain.DateRange) (domain.PricingResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
