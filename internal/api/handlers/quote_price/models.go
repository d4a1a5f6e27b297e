package quote_price

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// QuoteRequest HTTP request model
// Границы могут быть null, пока пользователь выбирает диапазон
type QuoteRequest struct {
	StartDate *string `json:"startDate"` // "2024-12-25"
	EndDate   *string `json:"endDate"`
}

// ToDateRange конвертирует HTTP запрос в доменный диапазон
func (r *QuoteRequest) ToDateRange(loc *time.Location) (domain.DateRange, error) {
	start, err := handlers.ParseOptionalDate(r.StartDate, loc)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := handlers.ParseOptionalDate(r.EndDate, loc)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{StartDate: start, EndDate: end}, nil
}
