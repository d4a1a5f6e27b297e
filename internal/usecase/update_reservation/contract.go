package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
}

// DerivationEngine расчет записи и цены по выбранному диапазону
type DerivationEngine interface {
	ToReservationRecord(r domain.DateRange, attrs domain.SelectedAttributes) (*domain.ReservationRecord, error)
	Quote(r domain.DateRange) (domain.PricingResult, error)
}

// Metrics метрики записей
type Metrics interface {
	ObserveReservation(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) ObserveReservation(string) {}
