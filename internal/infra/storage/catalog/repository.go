package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

const (
	storagesKey = "storages"
	pricesKey   = "prices"
)

// Repository read-only доступ к справочным данным: склады и прейскурант.
// Данные загружаются сидером (cmd/seed) и для движка неизменяемы.
type Repository struct {
	rdb *redis.Client
}

// NewRepository создает новый репозиторий каталога
func NewRepository(rdb *redis.Client) *Repository {
	return &Repository{rdb: rdb}
}

// GetStorages возвращает все склады, ключи — строковые id
func (r *Repository) GetStorages(ctx context.Context) (map[string]domain.Storage, error) {
	raw, err := r.rdb.Get(ctx, storagesKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCatalogMissing
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStorages - redis get: %v", ErrStorage, err)
	}

	storages := make(map[string]domain.Storage)
	if err := json.Unmarshal([]byte(raw), &storages); err != nil {
		return nil, fmt.Errorf("%w: GetStorages - unmarshal: %v", ErrDecode, err)
	}

	return storages, nil
}

// GetStorage возвращает склад по id
func (r *Repository) GetStorage(ctx context.Context, storageID string) (*domain.Storage, error) {
	storages, err := r.GetStorages(ctx)
	if err != nil {
		return nil, err
	}

	storage, ok := storages[storageID]
	if !ok {
		return nil, ErrStorageNotFound
	}

	return &storage, nil
}

// GetPrices возвращает прейскурант обеих категорий
func (r *Repository) GetPrices(ctx context.Context) (*domain.PriceList, error) {
	raw, err := r.rdb.Get(ctx, pricesKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCatalogMissing
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPrices - redis get: %v", ErrStorage, err)
	}

	var prices domain.PriceList
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return nil, fmt.Errorf("%w: GetPrices - unmarshal: %v", ErrDecode, err)
	}

	return &prices, nil
}

// GetSeasonItem возвращает позицию категории "сезонные вещи" по id
func (r *Repository) GetSeasonItem(ctx context.Context, itemID string) (*domain.SeasonItem, error) {
	prices, err := r.GetPrices(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := prices.Season[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}

	return &item, nil
}

// GetOtherItem возвращает позицию категории "другое" по id
func (r *Repository) GetOtherItem(ctx context.Context, itemID string) (*domain.OtherItem, error) {
	prices, err := r.GetPrices(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := prices.Other[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}

	return &item, nil
}

// SetStorages записывает справочник складов (используется сидером)
func (r *Repository) SetStorages(ctx context.Context, storages map[string]domain.Storage) error {
	raw, err := json.Marshal(storages)
	if err != nil {
		return fmt.Errorf("%w: SetStorages - marshal: %v", ErrDecode, err)
	}
	if err := r.rdb.Set(ctx, storagesKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: SetStorages - redis set: %v", ErrStorage, err)
	}
	return nil
}

// SetPrices записывает прейскурант (используется сидером)
func (r *Repository) SetPrices(ctx context.Context, prices *domain.PriceList) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("%w: SetPrices - marshal: %v", ErrDecode, err)
	}
	if err := r.rdb.Set(ctx, pricesKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: SetPrices - redis set: %v", ErrStorage, err)
	}
	return nil
}
