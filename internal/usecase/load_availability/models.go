package load_availability

import "github.com/m04kA/SMC-BannerBookingService/internal/domain"

// Причины подстановки заглушки (метка метрики)
const (
	ReasonError   = "error"
	ReasonTimeout = "timeout"
	ReasonEmpty   = "empty"
)

// Response результат загрузки
type Response struct {
	Intervals []domain.DisabledInterval // уже со сдвигом RemoteDisplayShiftDays
	Source    string                    // имя источника
	Fallback  bool                      // true, если вместо данных источника подставлена заглушка
	Reason    string                    // причина подстановки, пусто если Fallback = false
}
