package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftStatus represents the lifecycle status of a booking
type DraftStatus string

const (
	StatusDraft   DraftStatus = "draft"   // собирается в диалоге, не подтверждено
	StatusCreated DraftStatus = "created" // записано в журнал бронирований, ожидает оплаты
	StatusPayed   DraftStatus = "payed"   // оплачено, код доступа выдан
)

// Category represents a storage product line
type Category string

const (
	CategorySeason Category = "season" // сезонные вещи: штучные позиции, неделя/месяц
	CategoryOther  Category = "other"  // другое: ячейки по площади, только помесячно
)

// PeriodType represents the rental billing unit
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

// BookingDraft бронирование одного пользователя, собираемое по шагам диалога.
// Живёт в Redis до оплаты; поля заполняются в порядке состояний диалога.
type BookingDraft struct {
	UserID         int64           `json:"user_id"`
	StorageID      string          `json:"storage_id"`
	Category       Category        `json:"category"`
	ItemID         string          `json:"item_id"`
	Count          int             `json:"count"`
	PeriodType     PeriodType      `json:"period_type"`
	PeriodLength   int             `json:"period_length"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	TotalCost      int64           `json:"total_cost"`
	PromoPercent   int             `json:"promo_percent"`
	DiscountedCost decimal.Decimal `json:"discounted_price"`
	Status         DraftStatus     `json:"status"`
	BookingID      int64           `json:"booking_id,omitempty"`
	AccessCode     string          `json:"access_code,omitempty"`
	InvoicePayload string          `json:"invoice_payload,omitempty"`
}

// HasDiscount returns true if a promo code has been accepted for this draft
func (d *BookingDraft) HasDiscount() bool {
	return d.PromoPercent > 0
}

// PayableAmount сумма к оплате с учётом скидки
func (d *BookingDraft) PayableAmount() decimal.Decimal {
	if d.HasDiscount() {
		return d.DiscountedCost
	}
	return decimal.NewFromInt(d.TotalCost)
}

// PeriodEnd вычисляет дату окончания аренды.
// Месяцы считаются календарно (AddDate нормализует переполнение конца месяца:
// 31 января + 1 месяц = 2/3 марта), недели — как 7 дней.
func PeriodEnd(start time.Time, periodType PeriodType, length int) time.Time {
	if periodType == PeriodWeek {
		return start.AddDate(0, 0, 7*length)
	}
	return start.AddDate(0, length, 0)
}

// ConfirmedBooking строка журнала подтверждённых бронирований (Postgres).
// Идентификатор назначается монотонно: max существующего id + 1, первый — 1.
type ConfirmedBooking struct {
	ID             int64
	UserID         int64
	StorageID      string
	Category       Category
	ItemID         string
	Count          int
	PeriodType     PeriodType
	PeriodLength   int
	StartDate      time.Time
	EndDate        time.Time
	TotalCost      int64
	PromoPercent   int
	DiscountedCost decimal.Decimal
	Status         DraftStatus
	AccessCode     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
