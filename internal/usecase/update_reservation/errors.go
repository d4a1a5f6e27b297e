package update_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("update_reservation: session not found")

	// ErrReservationNotFound возвращается, когда редактируемая запись отсутствует в ledger
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrEditTargetLost возвращается, если запись исчезла между чтением и заменой
	ErrEditTargetLost = errors.New("update_reservation: edit target no longer present")

	// ErrNotEditable возвращается при попытке редактировать блок "Unavailable"
	ErrNotEditable = errors.New("update_reservation: reservation is not editable")

	// ErrIncompleteSelection возвращается, если не выбрана дата начала или окончания
	ErrIncompleteSelection = errors.New("update_reservation: incomplete date selection")

	// ErrInvalidRange возвращается, если дата окончания раньше даты начала
	ErrInvalidRange = errors.New("update_reservation: end date is before start date")

	// ErrInvalidAttribute возвращается, если значение атрибута не входит в список вариантов
	ErrInvalidAttribute = errors.New("update_reservation: unknown attribute option")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
