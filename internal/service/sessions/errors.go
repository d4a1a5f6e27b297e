package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrReservationNotFound возвращается, когда запись не найдена в ledger сессии
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNotEditable возвращается при попытке редактировать синтетический блок "Unavailable"
	ErrNotEditable = errors.New("reservation is not editable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
