package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	loadAvailability "github.com/m04kA/SMC-BannerBookingService/internal/usecase/load_availability"
)

// AvailabilityLoader загрузчик занятых дат
type AvailabilityLoader interface {
	Execute(ctx context.Context) *loadAvailability.Response
}

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Count() int
	DeleteInactiveSince(threshold time.Time) int
}

// DerivationEngine расчет дней, цены и восстановление формы
type DerivationEngine interface {
	DailyRate() float64
	Quote(r domain.DateRange) (domain.PricingResult, error)
	FromReservationRecord(record *domain.ReservationRecord) (domain.DateRange, domain.SelectedAttributes, error)
}

// Metrics метрики сессий
type Metrics interface {
	SetActiveSessions(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) SetActiveSessions(int) {}
