package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeriodEnd(t *testing.T) {
	tests := []struct {
		name       string
		start      time.Time
		periodType PeriodType
		length     int
		want       time.Time
	}{
		{
			name:       "две недели это 14 дней",
			start:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			periodType: PeriodWeek,
			length:     2,
			want:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "месяц считается календарно",
			start:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			periodType: PeriodMonth,
			length:     1,
			want:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "переполнение конца месяца нормализуется",
			start:      time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			periodType: PeriodMonth,
			length:     1,
			want:       time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "двенадцать месяцев это ровно год",
			start:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			periodType: PeriodMonth,
			length:     12,
			want:       time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodEnd(tt.start, tt.periodType, tt.length))
		})
	}
}

func TestBookingDraft_PayableAmount(t *testing.T) {
	t.Run("без промокода платится полная стоимость", func(t *testing.T) {
		d := &BookingDraft{TotalCost: 1199}

		assert.True(t, decimal.NewFromInt(1199).Equal(d.PayableAmount()))
	})

	t.Run("с промокодом платится цена со скидкой", func(t *testing.T) {
		d := &BookingDraft{
			TotalCost:      1199,
			PromoPercent:   15,
			DiscountedCost: decimal.RequireFromString("1019.15"),
		}

		assert.True(t, decimal.RequireFromString("1019.15").Equal(d.PayableAmount()))
	})
}
