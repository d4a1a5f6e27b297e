package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, options domain.AttributeOptions) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	// Проверяем, что выбор дат завершён и корректен
	if err := req.dateRange().Validate(); err != nil {
		return mapRangeError(err)
	}

	// Проверяем атрибуты по спискам вариантов
	if err := options.Validate(req.Attributes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAttribute, err)
	}

	return nil
}

// mapRangeError переводит доменные ошибки диапазона в ошибки usecase
func mapRangeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrIncompleteSelection):
		return ErrIncompleteSelection
	case errors.Is(err, domain.ErrInvalidRange):
		return ErrInvalidRange
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// findOverlap возвращает первый занятый интервал, пересекающийся с диапазоном
// Блокировка пересечений - задача date-range picker, здесь только диагностика
func findOverlap(r domain.DateRange, intervals []domain.DisabledInterval) (domain.DisabledInterval, bool) {
	for _, interval := range intervals {
		if interval.Overlaps(r) {
			return interval, true
		}
	}
	return domain.DisabledInterval{}, false
}

func (r *Request) dateRange() domain.DateRange {
	return domain.DateRange{StartDate: r.StartDate, EndDate: r.EndDate}
}
