package pricing

import (
	"strings"
	"time"
)

// promoCode промокод с фиксированным календарным окном действия
type promoCode struct {
	percent   int
	fromYear  int
	fromMonth time.Month
	toYear    int
	toMonth   time.Month
}

// promoCodes распознаваемые коды. Набор фиксирован маркетингом:
// окна действия заданы календарными месяцами включительно.
var promoCodes = map[string]promoCode{
	"STORAGE15": {percent: 15, fromYear: 2026, fromMonth: time.September, toYear: 2026, toMonth: time.December},
	"NEWYEAR10": {percent: 10, fromYear: 2026, fromMonth: time.December, toYear: 2027, toMonth: time.January},
}

// CheckPromoCode чистая функция от кода и текущего месяца/года:
// возвращает процент скидки и признак принятия. Неизвестный код или код
// вне своего окна действия — (0, false). Регистр и пробелы не значимы.
func CheckPromoCode(code string, now time.Time) (int, bool) {
	promo, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, false
	}

	month := now.Year()*12 + int(now.Month()) - 1
	from := promo.fromYear*12 + int(promo.fromMonth) - 1
	to := promo.toYear*12 + int(promo.toMonth) - 1

	if month < from || month > to {
		return 0, false
	}

	return promo.percent, true
}
