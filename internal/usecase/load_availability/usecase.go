package load_availability

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// UseCase загрузчик занятых дат
// Никогда не возвращает ошибку: любой сбой источника деградирует до интервала-заглушки
type UseCase struct {
	source   AvailabilitySource
	timeout  time.Duration
	location *time.Location
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	source AvailabilitySource,
	timeout time.Duration,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &UseCase{
		source:   source,
		timeout:  timeout,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute загружает занятые интервалы и применяет сдвиг на один день
func (uc *UseCase) Execute(ctx context.Context) *Response {
	source := uc.source.Name()
	uc.logger.Info("LoadAvailability: loading disabled dates from source=%s", source)
	uc.metrics.ObserveAvailabilityLoad(source)

	// 1. Ограничиваем время ожидания источника, чтобы зависший запрос не блокировал сессию
	loadCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	// 2. Запрашиваем интервалы
	raw, err := uc.source.GetDisabledDates(loadCtx)
	if err != nil {
		reason := ReasonError
		if errors.Is(loadCtx.Err(), context.DeadlineExceeded) {
			reason = ReasonTimeout
		}
		uc.logger.Warn("LoadAvailability: using placeholder dates, source=%s failed (%s): %v", source, reason, err)
		return uc.fallback(source, reason)
	}

	// 3. Отбрасываем некорректные интервалы и применяем сдвиг
	intervals := make([]domain.DisabledInterval, 0, len(raw))
	for i, interval := range raw {
		if !interval.IsValid() {
			uc.logger.Warn("LoadAvailability: skipping invalid interval #%d from source=%s: %s..%s",
				i, source, domain.FormatDate(interval.StartDate), domain.FormatDate(interval.EndDate))
			continue
		}
		intervals = append(intervals, interval.Shift(domain.RemoteDisplayShiftDays))
	}

	// 4. Пустой результат тоже заменяется заглушкой
	if len(intervals) == 0 {
		uc.logger.Warn("LoadAvailability: using placeholder dates, source=%s returned no intervals", source)
		return uc.fallback(source, ReasonEmpty)
	}

	uc.logger.Info("LoadAvailability: loaded %d disabled intervals from source=%s", len(intervals), source)

	return &Response{
		Intervals: intervals,
		Source:    source,
	}
}

func (uc *UseCase) fallback(source, reason string) *Response {
	uc.metrics.ObserveAvailabilityFallback(reason)

	placeholder := domain.PlaceholderInterval(uc.location).Shift(domain.RemoteDisplayShiftDays)

	return &Response{
		Intervals: []domain.DisabledInterval{placeholder},
		Source:    source,
		Fallback:  true,
		Reason:    reason,
	}
}
