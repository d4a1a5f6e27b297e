package get_reservation

import (
	"github.com/m04kA/SMC-BannerBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/sessions/models"
)

// EditFormResponse HTTP response model: состояние формы в режиме редактирования
type EditFormResponse struct {
	Reservation handlers.ReservationResponse `json:"reservation"`
	StartDate   string                       `json:"startDate"`
	EndDate     string                       `json:"endDate"`
	Attributes  handlers.AttributesResponse  `json:"attributes"`
	Pricing     handlers.PricingResponse     `json:"pricing"`
}

func FromServiceResponse(resp *models.EditFormResponse) *EditFormResponse {
	return &EditFormResponse{
		Reservation: handlers.FromReservation(resp.Reservation),
		StartDate:   domain.FormatDate(resp.StartDate),
		EndDate:     domain.FormatDate(resp.EndDate),
		Attributes:  handlers.FromAttributes(resp.Attributes),
		Pricing:     handlers.FromPricing(resp.Pricing),
	}
}
