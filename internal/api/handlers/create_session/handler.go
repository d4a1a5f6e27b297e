package create_session

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if session.Fallback {
		h.logger.Warn("POST /sessions - Session created with placeholder availability: session_id=%s", session.ID)
	}

	h.logger.Info("POST /sessions - Session created successfully: session_id=%s, disabled=%d",
		session.ID, len(session.DisabledDates))
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(session))
}
