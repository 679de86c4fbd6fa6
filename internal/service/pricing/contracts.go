package pricing

import (
	"context"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// CatalogRepository интерфейс каталога для расчёта стоимости
type CatalogRepository interface {
	GetSeasonItem(ctx context.Context, itemID string) (*domain.SeasonItem, error)
	GetOtherItem(ctx context.Context, itemID string) (*domain.OtherItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
