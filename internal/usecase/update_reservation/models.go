package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// Request модель запроса на подтверждение бронирования (режим редактирования)
type Request struct {
	SessionID     string
	ReservationID string     // ID редактируемой записи
	StartDate     *time.Time // nil = не выбрана
	EndDate       *time.Time // nil = не выбрана
	Attributes    domain.SelectedAttributes
}

// Response модель ответа с обновленной записью
type Response struct {
	SessionID string
	ID        string // совпадает с ReservationID
	Title     string
	Start     time.Time
	End       time.Time
	Pricing   domain.PricingResult
}
