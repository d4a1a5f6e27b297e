package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions"
)

const (
	msgSessionNotFound     = "сессия не найдена"
	msgReservationNotFound = "бронирование не найдено"
	msgNotEditable         = "недоступные даты нельзя редактировать"
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

// Handle GET /api/v1/sessions/{sessionId}/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	reservationID := vars["reservationId"]

	form, err := h.service.GetReservationForEdit(r.Context(), sessionID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/reservations/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrReservationNotFound):
			h.logger.Warn("GET /sessions/{id}/reservations/{id} - Reservation not found: session_id=%s, reservation_id=%s",
				sessionID, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, sessions.ErrNotEditable):
			h.logger.Warn("GET /sessions/{id}/reservations/{id} - Not editable: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgNotEditable)

		default:
			h.logger.Error("GET /sessions/{id}/reservations/{id} - Failed to load edit form: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/reservations/{id} - Edit form loaded: session_id=%s, reservation_id=%s",
		sessionID, reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(form))
}
