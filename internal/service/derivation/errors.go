package derivation

import (
	"errors"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

var (
	// ErrIncompleteSelection возвращается, если не выбрана одна из границ диапазона
	ErrIncompleteSelection = domain.ErrIncompleteSelection

	// ErrInvalidRange возвращается, если дата окончания раньше даты начала
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrNegativeDays возвращается при отрицательном количестве дней (нарушение контракта вызывающей стороной)
	ErrNegativeDays = errors.New("derivation: days must not be negative")

	// ErrNilRecord возвращается при попытке восстановить форму из пустой записи
	ErrNilRecord = errors.New("derivation: record is nil")
)
