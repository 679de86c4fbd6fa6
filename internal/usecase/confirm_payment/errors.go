package confirm_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных запроса
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrNoActiveBooking возвращается, если у пользователя нет черновика,
	// ожидающего оплату
	ErrNoActiveBooking = errors.New("confirm_payment: no active booking")

	// ErrPayloadMismatch возвращается, если payload счёта не совпадает
	// с выставленным или бронирование не в статусе ожидания оплаты
	ErrPayloadMismatch = errors.New("confirm_payment: invoice payload mismatch")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
