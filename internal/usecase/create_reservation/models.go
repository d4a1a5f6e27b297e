package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

// Request модель запроса на подтверждение бронирования (режим создания)
type Request struct {
	SessionID  string                    // ID сессии страницы
	StartDate  *time.Time                // Дата начала (nil = не выбрана)
	EndDate    *time.Time                // Дата окончания (nil = не выбрана)
	Attributes domain.SelectedAttributes // Продукт, вертикаль, локация
}

// Response модель ответа с созданной записью
type Response struct {
	SessionID string
	ID        string    // ID записи в ledger
	Title     string    // Заголовок события (продукт)
	Start     time.Time // Дата начала
	End       time.Time // Дата окончания
	Pricing   domain.PricingResult
}
