package process_message

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных запроса
	ErrInvalidInput = errors.New("process_message: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (ошибки хранилищ, каталога, журнала). Ошибки пользовательского
	// ввода внутрь не попадают: они гасятся повторным запросом в том же
	// состоянии диалога.
	ErrInternal = errors.New("process_message: internal error")
)
