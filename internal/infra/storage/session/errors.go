package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена (истекла или не создавалась)
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrSessionExists возвращается при попытке сохранить сессию с уже занятым ID
	ErrSessionExists = errors.New("session.repository: session already exists")
)
