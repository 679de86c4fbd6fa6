package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// Repository учёт свободных/общих мест по тройке (склад, категория, позиция).
// Свободный остаток меняет только Reserve — ровно один раз на бронирование,
// в момент подтверждения оплаты. Проверка доступности при вводе количества
// остаток не резервирует: окно гонки между проверкой и оплатой принято
// продуктом (см. DESIGN.md).
type Repository struct {
	rdb *redis.Client
}

// NewRepository создает новый репозиторий остатков
func NewRepository(rdb *redis.Client) *Repository {
	return &Repository{rdb: rdb}
}

func freeKey(storageID string, category domain.Category, itemID string) string {
	return fmt.Sprintf("stock:%s:%s:%s:free", storageID, category, itemID)
}

func totalKey(storageID string, category domain.Category, itemID string) string {
	return fmt.Sprintf("stock:%s:%s:%s:total", storageID, category, itemID)
}

// GetFree возвращает свободный остаток. Отсутствующий ключ читается как 0
// и никогда не является ошибкой для вызывающей стороны.
func (r *Repository) GetFree(ctx context.Context, storageID string, category domain.Category, itemID string) (int64, error) {
	free, err := r.rdb.Get(ctx, freeKey(storageID, category, itemID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetFree - redis get: %v", ErrStorage, err)
	}
	return free, nil
}

// CheckAvailability read-only проверка: достаточно ли свободных мест
// под запрошенное количество. Остаток не изменяет.
func (r *Repository) CheckAvailability(ctx context.Context, storageID string, category domain.Category, itemID string, requested int) (bool, error) {
	free, err := r.GetFree(ctx, storageID, category, itemID)
	if err != nil {
		return false, err
	}
	return int64(requested) <= free, nil
}

// Reserve списывает count со свободного остатка: free ← free − count.
// Единственный мутатор остатка; вызывается ровно один раз на бронирование,
// при фиксации успешной оплаты. Если остаток ушёл бы в минус, он
// ограничивается нулём и возвращается ErrCapacityExceeded — перебронирование
// наблюдаемо, но инвариант 0 ≤ free сохраняется.
func (r *Repository) Reserve(ctx context.Context, storageID string, category domain.Category, itemID string, count int) error {
	key := freeKey(storageID, category, itemID)

	remaining, err := r.rdb.DecrBy(ctx, key, int64(count)).Result()
	if err != nil {
		return fmt.Errorf("%w: Reserve - redis decrby: %v", ErrStorage, err)
	}

	if remaining < 0 {
		if err := r.rdb.IncrBy(ctx, key, -remaining).Err(); err != nil {
			return fmt.Errorf("%w: Reserve - clamp free at zero: %v", ErrStorage, err)
		}
		return fmt.Errorf("%w: storage=%s category=%s item=%s shortfall=%d",
			ErrCapacityExceeded, storageID, category, itemID, -remaining)
	}

	return nil
}

// SetStock записывает общий и свободный остаток позиции (используется сидером)
func (r *Repository) SetStock(ctx context.Context, storageID string, category domain.Category, itemID string, total, free int64) error {
	if err := r.rdb.Set(ctx, totalKey(storageID, category, itemID), total, 0).Err(); err != nil {
		return fmt.Errorf("%w: SetStock - redis set total: %v", ErrStorage, err)
	}
	if err := r.rdb.Set(ctx, freeKey(storageID, category, itemID), free, 0).Err(); err != nil {
		return fmt.Errorf("%w: SetStock - redis set free: %v", ErrStorage, err)
	}
	return nil
}
