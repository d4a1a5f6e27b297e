package create_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("create_reservation: session not found")

	// ErrIncompleteSelection возвращается, если не выбрана дата начала или окончания
	ErrIncompleteSelection = errors.New("create_reservation: incomplete date selection")

	// ErrInvalidRange возвращается, если дата окончания раньше даты начала
	ErrInvalidRange = errors.New("create_reservation: end date is before start date")

	// ErrInvalidAttribute возвращается, если значение атрибута не входит в список вариантов
	ErrInvalidAttribute = errors.New("create_reservation: unknown attribute option")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
