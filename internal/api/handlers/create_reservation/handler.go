package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-BannerBookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgIncompleteSelection = "выберите дату начала и дату окончания"
	msgInvalidRange        = "дата окончания раньше даты начала"
	msgInvalidAttribute    = "недопустимое значение продукта, вертикали или локации"
	msgSessionNotFound     = "сессия не найдена"
)

type Handler struct {
	useCase  CreateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID, h.location)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/reservations - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createReservation.ErrIncompleteSelection):
			h.logger.Warn("POST /sessions/{id}/reservations - Incomplete selection: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, createReservation.ErrInvalidRange):
			h.logger.Warn("POST /sessions/{id}/reservations - Invalid range: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrInvalidAttribute):
			h.logger.Warn("POST /sessions/{id}/reservations - Invalid attribute: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidAttribute)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions/{id}/reservations - Failed to create reservation: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/reservations - Reservation created successfully: session_id=%s, reservation_id=%s",
		sessionID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
