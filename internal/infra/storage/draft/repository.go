package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// Repository хранит черновик бронирования каждого пользователя в Redis.
// Черновик — единственная память диалога между ходами: запись целиком
// читается, мутируется обработчиком состояния и пишется обратно.
type Repository struct {
	rdb *redis.Client
}

// NewRepository создает новый репозиторий черновиков
func NewRepository(rdb *redis.Client) *Repository {
	return &Repository{rdb: rdb}
}

func draftKey(userID int64) string {
	return fmt.Sprintf("draft:%d", userID)
}

// Get возвращает черновик бронирования пользователя
func (r *Repository) Get(ctx context.Context, userID int64) (*domain.BookingDraft, error) {
	raw, err := r.rdb.Get(ctx, draftKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrStorage, err)
	}

	var d domain.BookingDraft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrDecode, err)
	}

	return &d, nil
}

// Set сохраняет черновик целиком
func (r *Repository) Set(ctx context.Context, d *domain.BookingDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrEncode, err)
	}

	if err := r.rdb.Set(ctx, draftKey(d.UserID), raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrStorage, err)
	}

	return nil
}

// Delete удаляет черновик пользователя. Отсутствие черновика не является ошибкой.
func (r *Repository) Delete(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrStorage, err)
	}
	return nil
}
