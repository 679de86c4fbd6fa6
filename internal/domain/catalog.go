package domain

// Storage склад, на котором арендуются ячейки.
// Справочные данные: движок их читает, но не изменяет.
type Storage struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// SeasonPrice цены позиции категории "сезонные вещи".
// Week == nil означает, что понедельная аренда для позиции недоступна
// и period_type принудительно становится month.
type SeasonPrice struct {
	Week  *int64 `json:"week"`
	Month int64  `json:"month"`
}

// SeasonItem позиция категории "сезонные вещи" (лыжи, сноуборд и т.п.)
type SeasonItem struct {
	Name  string      `json:"name"`
	Price SeasonPrice `json:"price"`
}

// HasWeekPrice returns true if the item can be rented by the week
func (i *SeasonItem) HasWeekPrice() bool {
	return i.Price.Week != nil && *i.Price.Week > 0
}

// PriceFor возвращает цену за единицу для выбранного типа периода
func (i *SeasonItem) PriceFor(periodType PeriodType) int64 {
	if periodType == PeriodWeek && i.HasWeekPrice() {
		return *i.Price.Week
	}
	return i.Price.Month
}

// OtherItem позиция категории "другое": ячейка, тарифицируемая по площади.
// Первый кв. м. по базовой цене, каждый дополнительный — по AddOnePrice.
type OtherItem struct {
	Name        string `json:"name"`
	BasePrice   int64  `json:"base_price"`
	AddOnePrice int64  `json:"add_one_price"`
}

// PriceList прейскурант обеих категорий, ключи — строковые id позиций
type PriceList struct {
	Season map[string]SeasonItem `json:"season"`
	Other  map[string]OtherItem  `json:"other"`
}
