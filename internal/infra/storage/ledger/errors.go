package ledger

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в журнале
	ErrBookingNotFound = errors.New("ledger.repository: booking not found")

	// ErrClientNotFound возвращается, когда клиент не найден в таблице clients
	ErrClientNotFound = errors.New("ledger.repository: client not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ledger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ledger.repository: failed to scan row")
)
