package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// Repository хранит текущее состояние диалога каждого пользователя в Redis.
// Движок между сообщениями состояния не держит: любой воркер может
// обработать следующее сообщение пользователя.
type Repository struct {
	rdb *redis.Client
}

// NewRepository создает новый репозиторий состояний диалога
func NewRepository(rdb *redis.Client) *Repository {
	return &Repository{rdb: rdb}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

// Get возвращает текущее состояние диалога пользователя
func (r *Repository) Get(ctx context.Context, userID int64) (domain.DialogState, error) {
	value, err := r.rdb.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - redis get: %v", ErrStorage, err)
	}

	return domain.DialogState(value), nil
}

// Set сохраняет состояние диалога пользователя
func (r *Repository) Set(ctx context.Context, userID int64, state domain.DialogState) error {
	if err := r.rdb.Set(ctx, sessionKey(userID), string(state), 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrStorage, err)
	}
	return nil
}

// Delete удаляет состояние диалога пользователя
func (r *Repository) Delete(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrStorage, err)
	}
	return nil
}
