package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/catalog"
)

// Service расчёт стоимости аренды и скидок
type Service struct {
	catalog CatalogRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса расчёта стоимости
func NewService(catalog CatalogRepository, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// TotalCost считает полную стоимость аренды по черновику:
//   - other:  (base_price + add_one_price × (count − 1)) × period_length —
//     первый кв. м. по базовой цене, каждый дополнительный по инкрементной,
//     длительность только в месяцах;
//   - season: price[period_type] × period_length × count.
func (s *Service) TotalCost(ctx context.Context, d *domain.BookingDraft) (int64, error) {
	switch d.Category {
	case domain.CategoryOther:
		item, err := s.catalog.GetOtherItem(ctx, d.ItemID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrItemNotFound) {
				return 0, ErrItemNotFound
			}
			return 0, fmt.Errorf("%w: TotalCost - get other item: %v", ErrInternal, err)
		}

		monthPrice := item.BasePrice + item.AddOnePrice*int64(d.Count-1)
		total := monthPrice * int64(d.PeriodLength)

		s.logger.Info("TotalCost: other item=%s count=%d months=%d total=%d",
			d.ItemID, d.Count, d.PeriodLength, total)
		return total, nil

	case domain.CategorySeason:
		item, err := s.catalog.GetSeasonItem(ctx, d.ItemID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrItemNotFound) {
				return 0, ErrItemNotFound
			}
			return 0, fmt.Errorf("%w: TotalCost - get season item: %v", ErrInternal, err)
		}

		total := item.PriceFor(d.PeriodType) * int64(d.PeriodLength) * int64(d.Count)

		s.logger.Info("TotalCost: season item=%s count=%d period=%s length=%d total=%d",
			d.ItemID, d.Count, d.PeriodType, d.PeriodLength, total)
		return total, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, d.Category)
	}
}

// Discounted считает цену со скидкой: total × (1 − percent/100).
// Точная десятичная арифметика, без накопления ошибки float.
func Discounted(totalCost int64, promoPercent int) decimal.Decimal {
	total := decimal.NewFromInt(totalCost)
	if promoPercent <= 0 {
		return total
	}

	factor := decimal.NewFromInt(int64(100 - promoPercent)).
		Div(decimal.NewFromInt(100))
	return total.Mul(factor)
}
