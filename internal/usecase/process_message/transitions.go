package process_message

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	profileRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/profile"
	pricingsvc "github.com/m04kA/SMC-StorageService/internal/service/pricing"
	"github.com/m04kA/SMC-StorageService/pkg/validate"
)

// Тексты реплик движка. Пользовательские сообщения на русском,
// подписи кнопок см. keyboards.go.
const (
	msgGreeting = "Привет!\n" +
		"Я помогу вам арендовать личную ячейку для хранения вещей.\n" +
		"Давайте посмотрим адреса складов, чтобы выбрать ближайший!"
	msgCancelled       = "Бронирование отменено.\nВыберите склад, чтобы начать заново!"
	msgNoActiveBooking = "Активного бронирования не нашлось.\nВыберите склад, чтобы начать заново!"

	msgUnknownStorage  = "Не нашёл такой склад. Пожалуйста, выберите склад кнопкой ниже."
	msgChooseCategory  = "Что хотите хранить?"
	msgUnknownCategory = "Не понял категорию. Пожалуйста, выберите её кнопкой ниже."

	msgChooseStuffSeason = "Выберите, что будете хранить:"
	msgChooseStuffOther  = "Выберите размер ячейки:"
	msgUnknownStuff      = "Не нашёл такую позицию. Пожалуйста, выберите её кнопкой ниже."

	msgInputCountSeason  = "Сколько вещей будете хранить? Введите число от 1 до %d."
	msgInputCountOther   = "Сколько кв. м. вам нужно? Введите число от 1 до %d."
	msgInvalidCount      = "Нужно целое число от 1 до %d. Попробуйте ещё раз."
	msgNotEnoughCapacity = "На складе свободно только %d. Введите количество поменьше."
	msgChoosePeriodType  = "Как будем считать срок аренды?"
	msgUnknownPeriodType = "Пожалуйста, выберите «Неделя» или «Месяц» кнопкой ниже."
	msgInputPeriodWeeks  = "На сколько недель оформим аренду? Введите число от 1 до %d."
	msgInputPeriodMonths = "На сколько месяцев оформим аренду? Введите число от 1 до %d."
	msgInvalidPeriod     = "Нужно целое число от 1 до %d. Попробуйте ещё раз."

	msgConfirmHint  = "Чтобы продолжить, нажмите «Забронировать» или введите промокод."
	msgEnterPromo   = "Введите промокод:"
	msgPromoApplied = "Промокод принят, скидка %d%%!\n\n"
	msgPromoDenied  = "Такой промокод не действует. Оплата без скидки.\n\n"

	msgInputSurname    = "Введите вашу фамилию:"
	msgInputName       = "Введите ваше имя:"
	msgInputSecondName = "Введите ваше отчество:"
	msgInputPassport   = "Введите серию и номер паспорта (только цифры):"
	msgInputBirthDate  = "Введите дату рождения в формате дд.мм.гггг:"
	msgInputPhone      = "Введите номер телефона:"

	msgInvalidName      = "Имя, фамилия и отчество пишутся кириллицей. Попробуйте ещё раз."
	msgInvalidPassport  = "Серия и номер паспорта — это 9 или 10 цифр. Попробуйте ещё раз."
	msgInvalidBirthDate = "Не смог разобрать дату. Нужен формат дд.мм.гггг."
	msgInvalidPhone     = "Не смог разобрать номер. Нужен российский номер телефона."

	msgInvoiceIssued = "Выставили счёт на %s руб.\n" +
		"После подтверждения оплаты пришлём QR-код для доступа к ячейке."
	msgAwaitingPayment = "Ожидаем подтверждения оплаты.\nДля отмены бронирования нажмите «Отмена»."
)

// handleChooseStorage выбор склада по подписи кнопки "id. Название(адрес)"
func (uc *UseCase) handleChooseStorage(ctx context.Context, userID int64, text string) (*Response, error) {
	storages, err := uc.catalog.GetStorages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: handleChooseStorage - load storages: %v", ErrInternal, err)
	}

	storageID := parseLeadingID(text)
	if _, ok := storages[storageID]; !ok {
		return &Response{
			Text:     msgUnknownStorage,
			Keyboard: storagesKeyboard(storages),
			State:    domain.StateChooseStorage,
		}, nil
	}

	draft := &domain.BookingDraft{
		UserID:    userID,
		StorageID: storageID,
		Status:    domain.StatusDraft,
	}
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleChooseStorage - save draft: %v", ErrInternal, err)
	}

	return &Response{
		Text:     msgChooseCategory,
		Keyboard: categoriesKeyboard(),
		State:    domain.StateChooseCategory,
	}, nil
}

// handleChooseCategory выбор категории хранения
func (uc *UseCase) handleChooseCategory(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	var category domain.Category
	switch text {
	case btnSeason:
		category = domain.CategorySeason
	case btnOther:
		category = domain.CategoryOther
	default:
		return &Response{
			Text:     msgUnknownCategory,
			Keyboard: categoriesKeyboard(),
			State:    domain.StateChooseCategory,
		}, nil
	}

	draft.Category = category
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleChooseCategory - save draft: %v", ErrInternal, err)
	}

	return uc.chooseStuffResponse(ctx, draft, "")
}

// chooseStuffResponse предложение позиций выбранной категории с остатками
func (uc *UseCase) chooseStuffResponse(ctx context.Context, draft *domain.BookingDraft, prefix string) (*Response, error) {
	prices, err := uc.catalog.GetPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chooseStuffResponse - load prices: %v", ErrInternal, err)
	}

	var (
		message  string
		keyboard [][]string
	)
	if draft.Category == domain.CategorySeason {
		message = msgChooseStuffSeason
		keyboard, err = uc.seasonKeyboard(ctx, draft.StorageID, prices.Season)
	} else {
		message = msgChooseStuffOther
		keyboard, err = uc.otherKeyboard(ctx, draft.StorageID, prices.Other)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: chooseStuffResponse - build keyboard: %v", ErrInternal, err)
	}

	return &Response{
		Text:     prefix + message,
		Keyboard: keyboard,
		State:    domain.StateChooseStuff,
	}, nil
}

// handleChooseStuff выбор конкретной позиции хранения
func (uc *UseCase) handleChooseStuff(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	prices, err := uc.catalog.GetPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: handleChooseStuff - load prices: %v", ErrInternal, err)
	}

	itemID := parseLeadingID(text)

	var known bool
	if draft.Category == domain.CategorySeason {
		_, known = prices.Season[itemID]
	} else {
		_, known = prices.Other[itemID]
	}
	if !known {
		return uc.chooseStuffResponse(ctx, draft, msgUnknownStuff+"\n\n")
	}

	draft.ItemID = itemID
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleChooseStuff - save draft: %v", ErrInternal, err)
	}

	return &Response{
		Text:  fmt.Sprintf(countPrompt(draft.Category), domain.MaxCountPerBooking),
		State: domain.StateInputCount,
	}, nil
}

// handleInputCount ввод количества вещей или площади ячейки
func (uc *UseCase) handleInputCount(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(text)
	if err != nil || count < 1 || count > domain.MaxCountPerBooking {
		return &Response{
			Text:  fmt.Sprintf(msgInvalidCount, domain.MaxCountPerBooking),
			State: domain.StateInputCount,
		}, nil
	}

	// Проверка без резервирования: место спишется только после оплаты
	available, err := uc.inventory.CheckAvailability(ctx, draft.StorageID, draft.Category, draft.ItemID, count)
	if err != nil {
		return nil, fmt.Errorf("%w: handleInputCount - check availability: %v", ErrInternal, err)
	}
	if !available {
		free, err := uc.inventory.GetFree(ctx, draft.StorageID, draft.Category, draft.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: handleInputCount - get free: %v", ErrInternal, err)
		}
		return &Response{
			Text:  fmt.Sprintf(msgNotEnoughCapacity, free),
			State: domain.StateInputCount,
		}, nil
	}

	draft.Count = count

	// Для "другое" и сезонных позиций без недельной цены выбор типа периода
	// пропускается: аренда только помесячная
	if draft.Category == domain.CategorySeason {
		item, err := uc.catalog.GetSeasonItem(ctx, draft.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: handleInputCount - get season item: %v", ErrInternal, err)
		}
		if item.HasWeekPrice() {
			if err := uc.drafts.Set(ctx, draft); err != nil {
				return nil, fmt.Errorf("%w: handleInputCount - save draft: %v", ErrInternal, err)
			}
			return &Response{
				Text:     msgChoosePeriodType,
				Keyboard: periodKeyboard(),
				State:    domain.StateInputPeriodType,
			}, nil
		}
	}

	draft.PeriodType = domain.PeriodMonth
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleInputCount - save draft: %v", ErrInternal, err)
	}

	return &Response{
		Text:  fmt.Sprintf(msgInputPeriodMonths, domain.MaxPeriodMonths),
		State: domain.StateInputPeriodLength,
	}, nil
}

// handleInputPeriodType выбор единицы периода: неделя или месяц
func (uc *UseCase) handleInputPeriodType(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		periodType domain.PeriodType
		prompt     string
	)
	switch text {
	case btnWeek:
		periodType = domain.PeriodWeek
		prompt = msgInputPeriodWeeks
	case btnMonth:
		periodType = domain.PeriodMonth
		prompt = msgInputPeriodMonths
	default:
		return &Response{
			Text:     msgUnknownPeriodType,
			Keyboard: periodKeyboard(),
			State:    domain.StateInputPeriodType,
		}, nil
	}

	draft.PeriodType = periodType
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleInputPeriodType - save draft: %v", ErrInternal, err)
	}

	return &Response{
		Text:  fmt.Sprintf(prompt, domain.MaxPeriodLength(periodType)),
		State: domain.StateInputPeriodLength,
	}, nil
}

// handleInputPeriodLength ввод длительности аренды. Здесь черновик
// дособирается до цены: даты периода и полная стоимость.
func (uc *UseCase) handleInputPeriodLength(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	maxLength := domain.MaxPeriodLength(draft.PeriodType)

	length, err := strconv.Atoi(text)
	if err != nil || length < domain.MinPeriodLength || length > maxLength {
		return &Response{
			Text:  fmt.Sprintf(msgInvalidPeriod, maxLength),
			State: domain.StateInputPeriodLength,
		}, nil
	}

	now := uc.timeProvider.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	draft.PeriodLength = length
	draft.StartDate = start
	draft.EndDate = domain.PeriodEnd(start, draft.PeriodType, length)

	total, err := uc.pricing.TotalCost(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: handleInputPeriodLength - total cost: %v", ErrInternal, err)
	}
	draft.TotalCost = total

	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleInputPeriodLength - save draft: %v", ErrInternal, err)
	}

	return uc.confirmBookingResponse(ctx, draft, "")
}

// confirmBookingResponse сводка бронирования с клавиатурой подтверждения
func (uc *UseCase) confirmBookingResponse(ctx context.Context, draft *domain.BookingDraft, prefix string) (*Response, error) {
	storage, err := uc.catalog.GetStorage(ctx, draft.StorageID)
	if err != nil {
		return nil, fmt.Errorf("%w: confirmBookingResponse - get storage: %v", ErrInternal, err)
	}

	itemName, err := uc.itemName(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: confirmBookingResponse - get item: %v", ErrInternal, err)
	}

	return &Response{
		Text:     prefix + bookingSummary(draft, storage, itemName),
		Keyboard: bookingKeyboard(),
		State:    domain.StateConfirmBooking,
	}, nil
}

// itemName название выбранной позиции для сводки
func (uc *UseCase) itemName(ctx context.Context, draft *domain.BookingDraft) (string, error) {
	if draft.Category == domain.CategorySeason {
		item, err := uc.catalog.GetSeasonItem(ctx, draft.ItemID)
		if err != nil {
			return "", err
		}
		return item.Name, nil
	}

	item, err := uc.catalog.GetOtherItem(ctx, draft.ItemID)
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

// handleConfirmBooking подтверждение: запись в журнал бронирований
// или переход к вводу промокода
func (uc *UseCase) handleConfirmBooking(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch text {
	case btnEnterPromo:
		return &Response{
			Text:  msgEnterPromo,
			State: domain.StateInputPromoCode,
		}, nil

	case btnBook:
		return uc.confirmDraft(ctx, draft)

	default:
		return uc.confirmBookingResponse(ctx, draft, msgConfirmHint+"\n\n")
	}
}

// confirmDraft записывает бронирование в durable-журнал и открывает анкету.
// Назначение id и вставка выполняются в одной serializable-транзакции,
// иначе конкурентные подтверждения могли бы получить один номер.
func (uc *UseCase) confirmDraft(ctx context.Context, draft *domain.BookingDraft) (*Response, error) {
	var created *domain.ConfirmedBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		id, err := uc.ledger.NextID(txCtx)
		if err != nil {
			return fmt.Errorf("next id: %w", err)
		}

		booking := &domain.ConfirmedBooking{
			ID:             id,
			UserID:         draft.UserID,
			StorageID:      draft.StorageID,
			Category:       draft.Category,
			ItemID:         draft.ItemID,
			Count:          draft.Count,
			PeriodType:     draft.PeriodType,
			PeriodLength:   draft.PeriodLength,
			StartDate:      draft.StartDate,
			EndDate:        draft.EndDate,
			TotalCost:      draft.TotalCost,
			PromoPercent:   draft.PromoPercent,
			DiscountedCost: draft.PayableAmount(),
			Status:         domain.StatusCreated,
		}

		created, err = uc.ledger.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: confirmDraft - transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("confirmDraft: user=%d booking=%d total=%d", draft.UserID, created.ID, draft.TotalCost)

	draft.BookingID = created.ID
	draft.Status = domain.StatusCreated
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: confirmDraft - save draft: %v", ErrInternal, err)
	}

	profile := &domain.ClientProfile{UserID: draft.UserID}
	if err := uc.profiles.Set(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: confirmDraft - create profile: %v", ErrInternal, err)
	}

	return &Response{
		Text:  msgInputSurname,
		State: domain.StateInputSurname,
	}, nil
}

// handleInputPromoCode проверка промокода. Оба исхода возвращают
// к подтверждению бронирования: отличается только отображаемая цена.
func (uc *UseCase) handleInputPromoCode(ctx context.Context, userID int64, text string) (*Response, error) {
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	percent, ok := pricingsvc.CheckPromoCode(text, uc.timeProvider.Now())
	if !ok {
		uc.logger.Info("handleInputPromoCode: user=%d rejected code %q", userID, text)
		return uc.confirmBookingResponse(ctx, draft, msgPromoDenied)
	}

	draft.PromoPercent = percent
	draft.DiscountedCost = pricingsvc.Discounted(draft.TotalCost, percent)
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: handleInputPromoCode - save draft: %v", ErrInternal, err)
	}

	uc.logger.Info("handleInputPromoCode: user=%d applied %d%%", userID, percent)
	return uc.confirmBookingResponse(ctx, draft, fmt.Sprintf(msgPromoApplied, percent))
}

// handleProfileField общий шаг линейного заполнения анкеты:
// валидирует ввод и запрашивает следующее поле
func (uc *UseCase) handleProfileField(
	ctx context.Context,
	userID int64,
	text string,
	field domain.ProfileField,
	currentState, nextState domain.DialogState,
	nextPrompt string,
) (*Response, error) {
	value, ok := normalizeProfileValue(field, text)
	if !ok {
		return &Response{
			Text:  invalidFieldMessage(field),
			State: currentState,
		}, nil
	}

	if err := uc.profiles.SetField(ctx, userID, field, value); err != nil {
		return nil, uc.wrapProfileErr("handleProfileField", err)
	}

	return &Response{
		Text:  nextPrompt,
		State: nextState,
	}, nil
}

// handleInputPhone последнее поле анкеты: после него сводка данных
func (uc *UseCase) handleInputPhone(ctx context.Context, userID int64, text string) (*Response, error) {
	value, ok := normalizeProfileValue(domain.FieldPhone, text)
	if !ok {
		return &Response{
			Text:  msgInvalidPhone,
			State: domain.StateInputPhone,
		}, nil
	}

	if err := uc.profiles.SetField(ctx, userID, domain.FieldPhone, value); err != nil {
		return nil, uc.wrapProfileErr("handleInputPhone", err)
	}

	return uc.clientVerifyResponse(ctx, userID)
}

// clientVerifyResponse сводка анкеты с клавиатурой оплаты и правки полей
func (uc *UseCase) clientVerifyResponse(ctx context.Context, userID int64) (*Response, error) {
	profile, err := uc.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(
		"Проверьте ваши данные:\n\n"+
			"Фамилия: %s\nИмя: %s\nОтчество: %s\n"+
			"Паспорт: %s\nДата рождения: %s\nТелефон: %s",
		profile.Surname, profile.Name, profile.SecondName,
		profile.Passport, profile.BirthDate, profile.Phone,
	)

	return &Response{
		Text:     text,
		Keyboard: paymentKeyboard(draft),
		State:    domain.StateClientVerify,
	}, nil
}

// handleClientVerify проверка данных: оплата или правка поля анкеты
func (uc *UseCase) handleClientVerify(ctx context.Context, userID int64, text string) (*Response, error) {
	if field, ok := editButtons[text]; ok {
		if err := uc.profiles.SetField(ctx, userID, field, ""); err != nil {
			return nil, uc.wrapProfileErr("handleClientVerify", err)
		}
		return &Response{
			Text:  fieldPrompt(field),
			State: domain.StateRemoveClientInfo,
		}, nil
	}

	if strings.HasPrefix(text, btnPayPrefix) {
		return uc.issueInvoice(ctx, userID)
	}

	return uc.clientVerifyResponse(ctx, userID)
}

// issueInvoice фиксирует клиента в durable-хранилище и выставляет счёт
func (uc *UseCase) issueInvoice(ctx context.Context, userID int64) (*Response, error) {
	profile, err := uc.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.IsComplete() {
		// Анкета с пустым полем оплате не подлежит: дозаполняем
		field, _ := profile.FirstEmptyField()
		return &Response{
			Text:  fieldPrompt(field),
			State: domain.StateRemoveClientInfo,
		}, nil
	}

	draft, err := uc.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.UpsertClient(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: issueInvoice - upsert client: %v", ErrInternal, err)
	}
	if err := uc.profiles.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: issueInvoice - delete profile: %v", ErrInternal, err)
	}

	draft.InvoicePayload = fmt.Sprintf("booking-%d-%d", draft.BookingID, userID)
	if err := uc.drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: issueInvoice - save draft: %v", ErrInternal, err)
	}

	uc.logger.Info("issueInvoice: user=%d booking=%d amount=%s", userID, draft.BookingID, draft.PayableAmount().String())

	return &Response{
		Text:  fmt.Sprintf(msgInvoiceIssued, draft.PayableAmount().String()),
		State: domain.StatePayment,
	}, nil
}

// handleRemoveClientInfo дозаполнение очищенного поля анкеты
func (uc *UseCase) handleRemoveClientInfo(ctx context.Context, userID int64, text string) (*Response, error) {
	profile, err := uc.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	field, hasEmpty := profile.FirstEmptyField()
	if !hasEmpty {
		// Все поля уже заполнены: возвращаемся к сводке
		return uc.clientVerifyResponse(ctx, userID)
	}

	value, ok := normalizeProfileValue(field, text)
	if !ok {
		return &Response{
			Text:  invalidFieldMessage(field),
			State: domain.StateRemoveClientInfo,
		}, nil
	}

	if err := uc.profiles.SetField(ctx, userID, field, value); err != nil {
		return nil, uc.wrapProfileErr("handleRemoveClientInfo", err)
	}

	return uc.clientVerifyResponse(ctx, userID)
}

// handlePayment бронирование ждёт подтверждения от платёжного транспорта;
// любой текст пользователя кроме отмены просто повторяет статус
func (uc *UseCase) handlePayment(_ context.Context, userID int64, _ string) (*Response, error) {
	uc.logger.Info("handlePayment: user=%d awaiting payment confirmation", userID)
	return &Response{
		Text:  msgAwaitingPayment,
		State: domain.StatePayment,
	}, nil
}

// wrapProfileErr пробрасывает сентинел отсутствующей анкеты для Execute,
// остальное прячет в ErrInternal
func (uc *UseCase) wrapProfileErr(method string, err error) error {
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s - save profile field: %v", ErrInternal, method, err)
}

// parseLeadingID извлекает числовой id из подписи кнопки "1. Название(...)".
// Текст без точки трактуется как сам id.
func parseLeadingID(text string) string {
	head, _, _ := strings.Cut(text, ".")
	return strings.TrimSpace(head)
}

// countPrompt текст запроса количества в зависимости от категории
func countPrompt(category domain.Category) string {
	if category == domain.CategoryOther {
		return msgInputCountOther
	}
	return msgInputCountSeason
}

// normalizeProfileValue валидирует ввод для поля анкеты и возвращает
// нормализованное значение
func normalizeProfileValue(field domain.ProfileField, text string) (string, bool) {
	text = strings.TrimSpace(text)

	switch field {
	case domain.FieldSurname, domain.FieldName, domain.FieldSecondName:
		return text, validate.CyrillicName(text)
	case domain.FieldPassport:
		cleaned := strings.ReplaceAll(text, " ", "")
		return cleaned, validate.Passport(text)
	case domain.FieldBirthDate:
		return text, validate.BirthDate(text)
	case domain.FieldPhone:
		return text, validate.Phone(text)
	default:
		return "", false
	}
}

// fieldPrompt текст запроса значения поля анкеты
func fieldPrompt(field domain.ProfileField) string {
	switch field {
	case domain.FieldSurname:
		return msgInputSurname
	case domain.FieldName:
		return msgInputName
	case domain.FieldSecondName:
		return msgInputSecondName
	case domain.FieldPassport:
		return msgInputPassport
	case domain.FieldBirthDate:
		return msgInputBirthDate
	default:
		return msgInputPhone
	}
}

// invalidFieldMessage текст повторного запроса при невалидном вводе
func invalidFieldMessage(field domain.ProfileField) string {
	switch field {
	case domain.FieldSurname, domain.FieldName, domain.FieldSecondName:
		return msgInvalidName
	case domain.FieldPassport:
		return msgInvalidPassport
	case domain.FieldBirthDate:
		return msgInvalidBirthDate
	default:
		return msgInvalidPhone
	}
}
