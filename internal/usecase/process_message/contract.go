package process_message

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// SessionRepository интерфейс хранилища состояний диалога
type SessionRepository interface {
	Get(ctx context.Context, userID int64) (domain.DialogState, error)
	Set(ctx context.Context, userID int64, state domain.DialogState) error
	Delete(ctx context.Context, userID int64) error
}

// DraftRepository интерфейс хранилища черновиков бронирования
type DraftRepository interface {
	Get(ctx context.Context, userID int64) (*domain.BookingDraft, error)
	Set(ctx context.Context, d *domain.BookingDraft) error
	Delete(ctx context.Context, userID int64) error
}

// ProfileRepository интерфейс хранилища анкет клиентов
type ProfileRepository interface {
	Get(ctx context.Context, userID int64) (*domain.ClientProfile, error)
	Set(ctx context.Context, p *domain.ClientProfile) error
	SetField(ctx context.Context, userID int64, field domain.ProfileField, value string) error
	Delete(ctx context.Context, userID int64) error
}

// CatalogRepository интерфейс справочника складов и прейскуранта
type CatalogRepository interface {
	GetStorages(ctx context.Context) (map[string]domain.Storage, error)
	GetStorage(ctx context.Context, storageID string) (*domain.Storage, error)
	GetPrices(ctx context.Context) (*domain.PriceList, error)
	GetSeasonItem(ctx context.Context, itemID string) (*domain.SeasonItem, error)
	GetOtherItem(ctx context.Context, itemID string) (*domain.OtherItem, error)
}

// InventoryRepository интерфейс учёта остатков.
// Здесь только read-only операции: ввод количества проверяет доступность,
// но ничего не резервирует.
type InventoryRepository interface {
	GetFree(ctx context.Context, storageID string, category domain.Category, itemID string) (int64, error)
	CheckAvailability(ctx context.Context, storageID string, category domain.Category, itemID string, requested int) (bool, error)
}

// LedgerRepository интерфейс журнала подтверждённых бронирований
type LedgerRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, booking *domain.ConfirmedBooking) (*domain.ConfirmedBooking, error)
	UpsertClient(ctx context.Context, client *domain.ClientProfile) error
}

// PricingService интерфейс расчёта стоимости
type PricingService interface {
	TotalCost(ctx context.Context, d *domain.BookingDraft) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
