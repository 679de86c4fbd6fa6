package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// SessionRepository интерфейс хранилища состояний диалога
type SessionRepository interface {
	Set(ctx context.Context, userID int64, state domain.DialogState) error
}

// DraftRepository интерфейс хранилища черновиков бронирования
type DraftRepository interface {
	Get(ctx context.Context, userID int64) (*domain.BookingDraft, error)
	Delete(ctx context.Context, userID int64) error
}

// LedgerRepository интерфейс журнала подтверждённых бронирований
type LedgerRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.DraftStatus) error
	SetAccessCode(ctx context.Context, id int64, accessCode string) error
	GetClientPassport(ctx context.Context, userID int64) (string, error)
}

// InventoryRepository интерфейс учёта остатков
type InventoryRepository interface {
	Reserve(ctx context.Context, storageID string, category domain.Category, itemID string, count int) error
}

// CodeRenderer интерфейс генерации QR-изображения кода доступа
type CodeRenderer interface {
	Render(code string, issuedAt time.Time) (string, error)
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
