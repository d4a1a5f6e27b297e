package handlers

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// ParseOptionalDate парсит дату из JSON; nil или пустая строка означают "не выбрана"
func ParseOptionalDate(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := domain.ParseCalendarDate(*s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
