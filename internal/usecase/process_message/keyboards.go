package process_message

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/m04kA/SMC-StorageService/internal/domain"
)

// Подписи кнопок. Транспорт показывает их как reply-клавиатуру и присылает
// назад текстом, поэтому обработчики состояний сверяют ввод с этими строками.
const (
	btnCancel         = "Отмена"
	btnSeason         = "Сезонные вещи"
	btnOther          = "Другое"
	btnWeek           = "Неделя"
	btnMonth          = "Месяц"
	btnEnterPromo     = "Ввести промокод"
	btnBook           = "Забронировать"
	btnPayPrefix      = "Оплатить"
	btnEditSurname    = "Сменить фамилию"
	btnEditName       = "Сменить имя"
	btnEditSecondName = "Сменить отчество"
	btnEditPassport   = "Сменить паспорт"
	btnEditBirthDate  = "Сменить дату рождения"
	btnEditPhone      = "Сменить номер телефона"
)

// editButtons соответствие кнопок «Сменить …» полям анкеты
var editButtons = map[string]domain.ProfileField{
	btnEditSurname:    domain.FieldSurname,
	btnEditName:       domain.FieldName,
	btnEditSecondName: domain.FieldSecondName,
	btnEditPassport:   domain.FieldPassport,
	btnEditBirthDate:  domain.FieldBirthDate,
	btnEditPhone:      domain.FieldPhone,
}

// sortedIDs возвращает ключи каталога в числовом порядке
func sortedIDs[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

// storagesKeyboard клавиатура выбора склада
func storagesKeyboard(storages map[string]domain.Storage) [][]string {
	keyboard := make([][]string, 0, len(storages))
	for _, id := range sortedIDs(storages) {
		storage := storages[id]
		keyboard = append(keyboard, []string{
			fmt.Sprintf("%s. %s(%s)", id, storage.Name, storage.Address),
		})
	}
	return keyboard
}

// categoriesKeyboard клавиатура выбора категории хранения
func categoriesKeyboard() [][]string {
	return [][]string{{btnSeason}, {btnOther}}
}

// seasonKeyboard клавиатура позиций категории "сезонные вещи"
// с ценами и свободными местами на выбранном складе
func (uc *UseCase) seasonKeyboard(ctx context.Context, storageID string, items map[string]domain.SeasonItem) ([][]string, error) {
	keyboard := make([][]string, 0, len(items))
	for _, id := range sortedIDs(items) {
		item := items[id]

		free, err := uc.inventory.GetFree(ctx, storageID, domain.CategorySeason, id)
		if err != nil {
			return nil, err
		}

		var caption string
		if item.HasWeekPrice() {
			caption = fmt.Sprintf("%s. %s\n%d руб. в неделю или %d руб. в месяц\nМест на складе: %d",
				id, item.Name, *item.Price.Week, item.Price.Month, free)
		} else {
			caption = fmt.Sprintf("%s. %s\n%d руб. в месяц\nМест на складе: %d",
				id, item.Name, item.Price.Month, free)
		}
		keyboard = append(keyboard, []string{caption})
	}
	return keyboard, nil
}

// otherKeyboard клавиатура позиций категории "другое"
func (uc *UseCase) otherKeyboard(ctx context.Context, storageID string, items map[string]domain.OtherItem) ([][]string, error) {
	keyboard := make([][]string, 0, len(items))
	for _, id := range sortedIDs(items) {
		item := items[id]

		free, err := uc.inventory.GetFree(ctx, storageID, domain.CategoryOther, id)
		if err != nil {
			return nil, err
		}

		caption := fmt.Sprintf("%s. %s - %d руб.\n(за каждый доп. кв. м. + %d руб.)\nМест на складе: %d кв.м.",
			id, item.Name, item.BasePrice, item.AddOnePrice, free)
		keyboard = append(keyboard, []string{caption})
	}
	return keyboard, nil
}

// periodKeyboard клавиатура выбора типа периода
func periodKeyboard() [][]string {
	return [][]string{{btnWeek, btnMonth}}
}

// bookingKeyboard клавиатура подтверждения бронирования
func bookingKeyboard() [][]string {
	return [][]string{{btnEnterPromo}, {btnBook}, {btnCancel}}
}

// paymentKeyboard клавиатура оплаты с кнопками правки анкеты
func paymentKeyboard(d *domain.BookingDraft) [][]string {
	return [][]string{
		{fmt.Sprintf("%s %s руб.", btnPayPrefix, d.PayableAmount().String())},
		{btnEditSurname},
		{btnEditName},
		{btnEditSecondName},
		{btnEditPassport},
		{btnEditBirthDate},
		{btnEditPhone},
		{btnCancel},
	}
}

// bookingSummary сводка бронирования для состояния подтверждения
func bookingSummary(d *domain.BookingDraft, storage *domain.Storage, itemName string) string {
	countName := "Количество вещей для хранения"
	if d.Category == domain.CategoryOther {
		countName = "Площадь ячейки для хранения, кв.м."
	}

	periodUnits := "мес."
	if d.PeriodType == domain.PeriodWeek {
		periodUnits = "нед."
	}

	summary := fmt.Sprintf(
		"Проверьте выбранные параметры бронирования:\n\n"+
			"Склад: %s в г. %s\nАдрес склада: %s\n\n"+
			"Категория хранения: %s\n%s: %d\n\n"+
			"Период: %d %s\nДоступ к ячейке с %s по %s\n\n"+
			"Сумма к оплате: %d руб.",
		storage.Name, storage.City, storage.Address,
		itemName, countName, d.Count,
		d.PeriodLength, periodUnits,
		d.StartDate.Format(domain.ShortDateFormat), d.EndDate.Format(domain.ShortDateFormat),
		d.TotalCost,
	)

	if d.HasDiscount() {
		summary += fmt.Sprintf("\nС учётом промокода (-%d%%): %s руб.",
			d.PromoPercent, d.DiscountedCost.String())
	}

	return summary
}
