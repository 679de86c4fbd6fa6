package inventory

import "errors"

var (
	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("inventory.repository: storage error")

	// ErrCapacityExceeded возвращается, когда резерв списал больше, чем оставалось
	// на складе (параллельные бронирования одного дефицитного товара).
	// Свободный остаток при этом ограничивается нулём.
	ErrCapacityExceeded = errors.New("inventory.repository: free capacity exceeded")
)
