package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда у пользователя нет активного черновика бронирования
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("draft.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации черновика
	ErrEncode = errors.New("draft.repository: failed to encode draft")

	// ErrDecode возвращается при ошибке десериализации черновика
	ErrDecode = errors.New("draft.repository: failed to decode draft")
)
