package catalog

import "errors"

var (
	// ErrStorageNotFound возвращается, когда склад с таким id не найден в каталоге
	ErrStorageNotFound = errors.New("catalog.repository: storage not found")

	// ErrItemNotFound возвращается, когда позиция не найдена в прейскуранте категории
	ErrItemNotFound = errors.New("catalog.repository: item not found")

	// ErrCatalogMissing возвращается, когда справочные ключи не загружены в Redis
	ErrCatalogMissing = errors.New("catalog.repository: catalog keys are not seeded")

	// ErrStorage возвращается при ошибках обращения к Redis
	ErrStorage = errors.New("catalog.repository: storage error")

	// ErrDecode возвращается при ошибке десериализации справочных данных
	ErrDecode = errors.New("catalog.repository: failed to decode catalog data")
)
