package domain

// Business validation constants
const (
	// MaxCountPerBooking лимит количества на одно бронирование:
	// штук для season, кв. м. для other
	MaxCountPerBooking = 10

	MinPeriodLength = 1
	MaxPeriodWeeks  = 52 // год понедельной аренды
	MaxPeriodMonths = 12
)

// Time format constants
const (
	DateFormat      = "02.01.2006" // дд.мм.гггг — формат дат в диалоге
	ShortDateFormat = "02.01.06"   // дд.мм.гг — формат дат в сводке бронирования
)

// MaxPeriodLength возвращает предел длины периода для типа периода
func MaxPeriodLength(periodType PeriodType) int {
	if periodType == PeriodWeek {
		return MaxPeriodWeeks
	}
	return MaxPeriodMonths
}
