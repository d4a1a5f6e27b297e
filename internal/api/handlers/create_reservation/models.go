package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-BannerBookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StartDate  *string                    `json:"startDate"` // "2024-12-25", null = не выбрана
	EndDate    *string                    `json:"endDate"`
	Attributes handlers.AttributesRequest `json:"attributes" validate:"required"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	SessionID   string                       `json:"sessionId"`
	Reservation handlers.ReservationResponse `json:"reservation"`
	Pricing     handlers.PricingResponse     `json:"pricing"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(sessionID string, loc *time.Location) (*createReservation.Request, error) {
	start, err := handlers.ParseOptionalDate(r.StartDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDate(r.EndDate, loc)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		SessionID:  sessionID,
		StartDate:  start,
		EndDate:    end,
		Attributes: r.Attributes.ToDomain(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		SessionID: resp.SessionID,
		Reservation: handlers.ReservationResponse{
			ID:       resp.ID,
			Title:    resp.Title,
			Start:    domain.FormatDate(resp.Start),
			End:      domain.FormatDate(resp.End),
			Kind:     string(domain.KindBooking),
			Editable: true,
		},
		Pricing: handlers.FromPricing(resp.Pricing),
	}
}
