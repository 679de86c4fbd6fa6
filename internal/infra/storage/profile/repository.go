package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// Repository хранит эфемерную анкету клиента в Redis, пока она заполняется
// в диалоге. После подтверждения оплаты анкета переносится в Postgres,
// а эта копия удаляется.
type Repository struct {
	rdb *redis.Client
}

// NewRepository создает новый репозиторий анкет
func NewRepository(rdb *redis.Client) *Repository {
	return &Repository{rdb: rdb}
}

func profileKey(userID int64) string {
	return fmt.Sprintf("profile:%d", userID)
}

// Get возвращает анкету пользователя
func (r *Repository) Get(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	raw, err := r.rdb.Get(ctx, profileKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrStorage, err)
	}

	var p domain.ClientProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrDecode, err)
	}

	return &p, nil
}

// Set сохраняет анкету целиком
func (r *Repository) Set(ctx context.Context, p *domain.ClientProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrEncode, err)
	}

	if err := r.rdb.Set(ctx, profileKey(p.UserID), raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrStorage, err)
	}

	return nil
}

// SetField записывает одно поле анкеты (чтение-модификация-запись;
// порядок ходов одного пользователя гарантирует транспорт).
func (r *Repository) SetField(ctx context.Context, userID int64, field domain.ProfileField, value string) error {
	p, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}

	p.SetValue(field, value)
	return r.Set(ctx, p)
}

// Delete удаляет анкету пользователя. Отсутствие анкеты не является ошибкой.
func (r *Repository) Delete(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrStorage, err)
	}
	return nil
}
