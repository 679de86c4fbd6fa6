package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/catalog"
)

type fakeCatalog struct {
	season map[string]domain.SeasonItem
	other  map[string]domain.OtherItem
}

func (f *fakeCatalog) GetSeasonItem(_ context.Context, itemID string) (*domain.SeasonItem, error) {
	item, ok := f.season[itemID]
	if !ok {
		return nil, catalogRepo.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeCatalog) GetOtherItem(_ context.Context, itemID string) (*domain.OtherItem, error) {
	item, ok := f.other[itemID]
	if !ok {
		return nil, catalogRepo.ErrItemNotFound
	}
	return &item, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func week(price int64) *int64 { return &price }

func newTestService() *Service {
	return NewService(&fakeCatalog{
		season: map[string]domain.SeasonItem{
			"1": {Name: "Лыжи", Price: domain.SeasonPrice{Week: week(150), Month: 300}},
			"3": {Name: "Колёса 4 шт.", Price: domain.SeasonPrice{Month: 200}},
		},
		other: map[string]domain.OtherItem{
			"1": {Name: "Ячейка 1 кв. м.", BasePrice: 599, AddOnePrice: 150},
		},
	}, nopLogger{})
}

func TestService_TotalCost(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("сезонная позиция: цена за единицу умножается на срок и количество", func(t *testing.T) {
		d := &domain.BookingDraft{
			Category:     domain.CategorySeason,
			ItemID:       "1",
			Count:        1,
			PeriodType:   domain.PeriodWeek,
			PeriodLength: 2,
		}

		total, err := svc.TotalCost(ctx, d)

		require.NoError(t, err)
		assert.Equal(t, int64(300), total)
	})

	t.Run("сезонная позиция: помесячно с количеством", func(t *testing.T) {
		d := &domain.BookingDraft{
			Category:     domain.CategorySeason,
			ItemID:       "3",
			Count:        4,
			PeriodType:   domain.PeriodMonth,
			PeriodLength: 3,
		}

		total, err := svc.TotalCost(ctx, d)

		require.NoError(t, err)
		assert.Equal(t, int64(2400), total)
	})

	t.Run("ячейка: первый кв. м. по базовой цене, остальные по инкрементной", func(t *testing.T) {
		d := &domain.BookingDraft{
			Category:     domain.CategoryOther,
			ItemID:       "1",
			Count:        5,
			PeriodType:   domain.PeriodMonth,
			PeriodLength: 1,
		}

		total, err := svc.TotalCost(ctx, d)

		require.NoError(t, err)
		assert.Equal(t, int64(1199), total)
	})

	t.Run("ячейка: один кв. м. без доплат", func(t *testing.T) {
		d := &domain.BookingDraft{
			Category:     domain.CategoryOther,
			ItemID:       "1",
			Count:        1,
			PeriodType:   domain.PeriodMonth,
			PeriodLength: 2,
		}

		total, err := svc.TotalCost(ctx, d)

		require.NoError(t, err)
		assert.Equal(t, int64(1198), total)
	})

	t.Run("неизвестная позиция", func(t *testing.T) {
		d := &domain.BookingDraft{
			Category:     domain.CategorySeason,
			ItemID:       "99",
			Count:        1,
			PeriodType:   domain.PeriodMonth,
			PeriodLength: 1,
		}

		_, err := svc.TotalCost(ctx, d)

		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("неизвестная категория", func(t *testing.T) {
		d := &domain.BookingDraft{Category: "garage"}

		_, err := svc.TotalCost(ctx, d)

		assert.ErrorIs(t, err, ErrUnknownCategory)
	})
}

func TestDiscounted(t *testing.T) {
	t.Run("скидка считается в точной десятичной арифметике", func(t *testing.T) {
		got := Discounted(1199, 15)

		assert.True(t, decimal.RequireFromString("1019.15").Equal(got))
	})

	t.Run("нулевая скидка возвращает полную стоимость", func(t *testing.T) {
		got := Discounted(1199, 0)

		assert.True(t, decimal.NewFromInt(1199).Equal(got))
	})
}

func TestCheckPromoCode(t *testing.T) {
	inWindow := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("код в окне действия принимается", func(t *testing.T) {
		percent, ok := CheckPromoCode("STORAGE15", inWindow)

		require.True(t, ok)
		assert.Equal(t, 15, percent)
	})

	t.Run("регистр и пробелы не значимы", func(t *testing.T) {
		percent, ok := CheckPromoCode("  storage15 ", inWindow)

		require.True(t, ok)
		assert.Equal(t, 15, percent)
	})

	t.Run("код вне окна отклоняется", func(t *testing.T) {
		_, ok := CheckPromoCode("NEWYEAR10", inWindow)

		assert.False(t, ok)
	})

	t.Run("окно через границу года", func(t *testing.T) {
		percent, ok := CheckPromoCode("NEWYEAR10", time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC))

		require.True(t, ok)
		assert.Equal(t, 10, percent)
	})

	t.Run("граница окна включительна", func(t *testing.T) {
		_, okBefore := CheckPromoCode("STORAGE15", time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC))
		_, okLast := CheckPromoCode("STORAGE15", time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))

		assert.False(t, okBefore)
		assert.True(t, okLast)
	})

	t.Run("неизвестный код", func(t *testing.T) {
		_, ok := CheckPromoCode("FREE100", inWindow)

		assert.False(t, ok)
	})
}
