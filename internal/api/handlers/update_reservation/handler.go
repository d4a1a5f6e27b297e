package update_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-BannerBookingService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgIncompleteSelection = "выберите дату начала и дату окончания"
	msgInvalidRange        = "дата окончания раньше даты начала"
	msgInvalidAttribute    = "недопустимое значение продукта, вертикали или локации"
	msgSessionNotFound     = "сессия не найдена"
	msgReservationNotFound = "редактируемое бронирование не найдено"
	msgNotEditable         = "недоступные даты нельзя редактировать"
)

type Handler struct {
	useCase  UpdateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	reservationID := vars["reservationId"]

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID, reservationID, h.location)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, updateReservation.ErrReservationNotFound),
			errors.Is(err, updateReservation.ErrEditTargetLost):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Edit target not found: session_id=%s, reservation_id=%s",
				sessionID, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Not editable: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateReservation.ErrIncompleteSelection):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Incomplete selection: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, updateReservation.ErrInvalidRange):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Invalid range: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updateReservation.ErrInvalidAttribute):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Invalid attribute: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAttribute)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /sessions/{id}/reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/reservations/{id} - Reservation updated successfully: session_id=%s, reservation_id=%s",
		sessionID, reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
