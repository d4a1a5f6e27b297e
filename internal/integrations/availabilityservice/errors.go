package availabilityservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availabilityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availabilityservice client: invalid response")

	// ErrQueryFailed возвращается, когда GraphQL ответ содержит errors
	ErrQueryFailed = errors.New("availabilityservice client: query failed")
)
