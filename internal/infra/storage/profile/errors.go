package profile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда у пользователя нет заполняемой анкеты
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("profile.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации анкеты
	ErrEncode = errors.New("profile.repository: failed to encode profile")

	// ErrDecode возвращается при ошибке десериализации анкеты
	ErrDecode = errors.New("profile.repository: failed to decode profile")
)
