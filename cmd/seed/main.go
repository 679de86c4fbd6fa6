// Команда seed наполняет Redis справочными данными: склады, прейскурант
// и стартовые остатки мест. Запускается один раз перед стартом сервиса
// и безопасно перезаписывает справочники при повторном запуске.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StorageService/internal/config"
	"github.com/m04kA/SMC-StorageService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/catalog"
	inventoryRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-StorageService/pkg/logger"
	"github.com/m04kA/SMC-StorageService/pkg/ptr"
)

var storages = map[string]domain.Storage{
	"1": {Name: "Склад Сокольники", City: "Moscow", Address: "1-я Сокольническая ул., 4"},
	"2": {Name: "Склад Центральный", City: "Moscow", Address: "Кремлёвская наб., 1, стр. 3"},
	"3": {Name: "Склад Химки", City: "Moscow", Address: "ул. Кирова, 24, Химки"},
	"4": {Name: "Склад Киевская", City: "Moscow", Address: "площадь Киевского Вокзала, 1"},
}

var prices = domain.PriceList{
	Season: map[string]domain.SeasonItem{
		"1": {Name: "Лыжи", Price: domain.SeasonPrice{Week: ptr.Ptr[int64](100), Month: 300}},
		"2": {Name: "Сноуборд", Price: domain.SeasonPrice{Week: ptr.Ptr[int64](100), Month: 300}},
		"3": {Name: "Колёса 4 шт.", Price: domain.SeasonPrice{Month: 200}},
		"4": {Name: "Велосипед", Price: domain.SeasonPrice{Week: ptr.Ptr[int64](150), Month: 400}},
	},
	Other: map[string]domain.OtherItem{
		"1": {Name: "Ячейка 1 кв. м.", BasePrice: 599, AddOnePrice: 150},
	},
}

// стартовый остаток на каждую позицию каждого склада
const initialStock = 10

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}

	catalog := catalogRepo.NewRepository(rdb)
	inventory := inventoryRepo.NewRepository(rdb)

	if err := catalog.SetStorages(ctx, storages); err != nil {
		log.Fatal("Failed to seed storages: %v", err)
	}
	log.Info("Seeded %d storages", len(storages))

	if err := catalog.SetPrices(ctx, &prices); err != nil {
		log.Fatal("Failed to seed prices: %v", err)
	}
	log.Info("Seeded prices: %d season items, %d other items", len(prices.Season), len(prices.Other))

	for storageID := range storages {
		for itemID := range prices.Season {
			if err := inventory.SetStock(ctx, storageID, domain.CategorySeason, itemID, initialStock, initialStock); err != nil {
				log.Fatal("Failed to seed stock: storage=%s item=%s: %v", storageID, itemID, err)
			}
		}
		for itemID := range prices.Other {
			if err := inventory.SetStock(ctx, storageID, domain.CategoryOther, itemID, initialStock, initialStock); err != nil {
				log.Fatal("Failed to seed stock: storage=%s item=%s: %v", storageID, itemID, err)
			}
		}
	}
	log.Info("Seeded stock: %d per item on every storage", initialStock)

	log.Info("Seeding finished")
}
