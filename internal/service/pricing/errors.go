package pricing

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция черновика отсутствует в прейскуранте
	ErrItemNotFound = errors.New("pricing: item not found in price list")

	// ErrUnknownCategory возвращается при неизвестной категории хранения
	ErrUnknownCategory = errors.New("pricing: unknown storage category")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
