package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда у пользователя нет сохранённого состояния диалога
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("session.repository: storage error")
)
