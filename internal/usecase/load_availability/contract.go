package load_availability

import (
	"context"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// AvailabilitySource источник занятых интервалов (GraphQL сервис или PostgreSQL)
type AvailabilitySource interface {
	Name() string
	// GetDisabledDates возвращает интервалы в том виде, в каком их отдает источник (без сдвига)
	GetDisabledDates(ctx context.Context) ([]domain.DisabledInterval, error)
}

// Metrics метрики загрузки
type Metrics interface {
	ObserveAvailabilityLoad(source string)
	ObserveAvailabilityFallback(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) ObserveAvailabilityLoad(string)     {}
func (noopMetrics) ObserveAvailabilityFallback(string) {}
