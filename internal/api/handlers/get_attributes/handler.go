package get_attributes

import (
	"net/http"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/attributes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	options := h.service.GetAttributeOptions()

	h.logger.Info("GET /attributes - Options retrieved: products=%d, verticals=%d, locations=%d",
		len(options.Products), len(options.Verticals), len(options.Locations))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAttributeOptions(options))
}
