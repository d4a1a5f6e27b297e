package quote_price

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата окончания раньше даты начала"
)

type Handler struct {
	engine   PricingEngine
	location *time.Location
	logger   Logger
}

func NewHandler(engine PricingEngine, location *time.Location, logger Logger) *Handler {
	return &Handler{
		engine:   engine,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/quote
// Незавершённый выбор дат не ошибка: возвращается 0 дней и 0 в сумме
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dateRange, err := req.ToDateRange(h.location)
	if err != nil {
		h.logger.Warn("POST /quote - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if dateRange.IsComplete() {
		if err := dateRange.Validate(); errors.Is(err, domain.ErrInvalidRange) {
			h.logger.Warn("POST /quote - Invalid range: %s..%s",
				domain.FormatDate(*dateRange.StartDate), domain.FormatDate(*dateRange.EndDate))
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
	}

	pricing, err := h.engine.Quote(dateRange)
	if err != nil {
		h.logger.Error("POST /quote - Failed to quote: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /quote - Quote computed: days=%d, total=%.2f", pricing.Days, pricing.Total)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromPricing(pricing))
}
