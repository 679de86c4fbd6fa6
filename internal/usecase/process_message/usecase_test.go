package process_message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/catalog"
	draftRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/draft"
	profileRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/profile"
	sessionRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/session"
	pricingService "github.com/m04kA/SMC-StorageService/internal/service/pricing"
)

const testUserID int64 = 10

// --- fakes ---

type fakeSessions struct {
	m map[int64]domain.DialogState
}

func (f *fakeSessions) Get(_ context.Context, userID int64) (domain.DialogState, error) {
	state, ok := f.m[userID]
	if !ok {
		return "", sessionRepo.ErrSessionNotFound
	}
	return state, nil
}

func (f *fakeSessions) Set(_ context.Context, userID int64, state domain.DialogState) error {
	f.m[userID] = state
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, userID int64) error {
	delete(f.m, userID)
	return nil
}

type fakeDrafts struct {
	m map[int64]domain.BookingDraft
}

func (f *fakeDrafts) Get(_ context.Context, userID int64) (*domain.BookingDraft, error) {
	d, ok := f.m[userID]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	return &d, nil
}

func (f *fakeDrafts) Set(_ context.Context, d *domain.BookingDraft) error {
	f.m[d.UserID] = *d
	return nil
}

func (f *fakeDrafts) Delete(_ context.Context, userID int64) error {
	delete(f.m, userID)
	return nil
}

type fakeProfiles struct {
	m map[int64]domain.ClientProfile
}

func (f *fakeProfiles) Get(_ context.Context, userID int64) (*domain.ClientProfile, error) {
	p, ok := f.m[userID]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeProfiles) Set(_ context.Context, p *domain.ClientProfile) error {
	f.m[p.UserID] = *p
	return nil
}

func (f *fakeProfiles) SetField(_ context.Context, userID int64, field domain.ProfileField, value string) error {
	p, ok := f.m[userID]
	if !ok {
		return profileRepo.ErrProfileNotFound
	}
	p.SetValue(field, value)
	f.m[userID] = p
	return nil
}

func (f *fakeProfiles) Delete(_ context.Context, userID int64) error {
	delete(f.m, userID)
	return nil
}

type fakeCatalog struct {
	storages map[string]domain.Storage
	prices   domain.PriceList
}

func (f *fakeCatalog) GetStorages(_ context.Context) (map[string]domain.Storage, error) {
	return f.storages, nil
}

func (f *fakeCatalog) GetStorage(_ context.Context, storageID string) (*domain.Storage, error) {
	s, ok := f.storages[storageID]
	if !ok {
		return nil, catalogRepo.ErrStorageNotFound
	}
	return &s, nil
}

func (f *fakeCatalog) GetPrices(_ context.Context) (*domain.PriceList, error) {
	return &f.prices, nil
}

func (f *fakeCatalog) GetSeasonItem(_ context.Context, itemID string) (*domain.SeasonItem, error) {
	item, ok := f.prices.Season[itemID]
	if !ok {
		return nil, catalogRepo.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeCatalog) GetOtherItem(_ context.Context, itemID string) (*domain.OtherItem, error) {
	item, ok := f.prices.Other[itemID]
	if !ok {
		return nil, catalogRepo.ErrItemNotFound
	}
	return &item, nil
}

type fakeInventory struct {
	free map[string]int64
}

func stockKey(storageID string, category domain.Category, itemID string) string {
	return fmt.Sprintf("%s:%s:%s", storageID, category, itemID)
}

func (f *fakeInventory) GetFree(_ context.Context, storageID string, category domain.Category, itemID string) (int64, error) {
	return f.free[stockKey(storageID, category, itemID)], nil
}

func (f *fakeInventory) CheckAvailability(_ context.Context, storageID string, category domain.Category, itemID string, requested int) (bool, error) {
	return int64(requested) <= f.free[stockKey(storageID, category, itemID)], nil
}

type fakeLedger struct {
	bookings []domain.ConfirmedBooking
	clients  map[int64]domain.ClientProfile
}

func (f *fakeLedger) NextID(_ context.Context) (int64, error) {
	var max int64
	for _, b := range f.bookings {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1, nil
}

func (f *fakeLedger) Create(_ context.Context, booking *domain.ConfirmedBooking) (*domain.ConfirmedBooking, error) {
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings = append(f.bookings, *booking)
	return booking, nil
}

func (f *fakeLedger) UpsertClient(_ context.Context, client *domain.ClientProfile) error {
	f.clients[client.UserID] = *client
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixture ---

type fixture struct {
	uc        *UseCase
	sessions  *fakeSessions
	drafts    *fakeDrafts
	profiles  *fakeProfiles
	inventory *fakeInventory
	ledger    *fakeLedger
}

func week(price int64) *int64 { return &price }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog := &fakeCatalog{
		storages: map[string]domain.Storage{
			"1": {Name: "Склад Сокольники", City: "Moscow", Address: "1-я Сокольническая ул., 4"},
			"2": {Name: "Склад Химки", City: "Moscow", Address: "ул. Кирова, 24, Химки"},
		},
		prices: domain.PriceList{
			Season: map[string]domain.SeasonItem{
				"1": {Name: "Лыжи", Price: domain.SeasonPrice{Week: week(150), Month: 300}},
				"3": {Name: "Колёса 4 шт.", Price: domain.SeasonPrice{Month: 200}},
			},
			Other: map[string]domain.OtherItem{
				"1": {Name: "Ячейка 1 кв. м.", BasePrice: 599, AddOnePrice: 150},
			},
		},
	}

	f := &fixture{
		sessions: &fakeSessions{m: map[int64]domain.DialogState{}},
		drafts:   &fakeDrafts{m: map[int64]domain.BookingDraft{}},
		profiles: &fakeProfiles{m: map[int64]domain.ClientProfile{}},
		inventory: &fakeInventory{free: map[string]int64{
			stockKey("1", domain.CategorySeason, "1"): 10,
			stockKey("1", domain.CategorySeason, "3"): 2,
			stockKey("1", domain.CategoryOther, "1"):  10,
			stockKey("2", domain.CategorySeason, "1"): 10,
		}},
		ledger: &fakeLedger{clients: map[int64]domain.ClientProfile{}},
	}

	pricing := pricingService.NewService(catalog, nopLogger{})

	f.uc = NewUseCase(
		f.sessions,
		f.drafts,
		f.profiles,
		catalog,
		f.inventory,
		f.ledger,
		pricing,
		fakeTxManager{},
		nopLogger{},
	)
	f.uc.timeProvider = fixedTime{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}

	return f
}

func (f *fixture) send(t *testing.T, text string) *Response {
	t.Helper()
	resp, err := f.uc.Execute(context.Background(), &Request{UserID: testUserID, Text: text})
	require.NoError(t, err)
	return resp
}

// доводит диалог до подтверждения бронирования ячейки 5 кв. м. на месяц
func (f *fixture) advanceToConfirm(t *testing.T) *Response {
	t.Helper()
	f.send(t, "/start")
	f.send(t, "1. Склад Сокольники(1-я Сокольническая ул., 4)")
	f.send(t, "Другое")
	f.send(t, "1. Ячейка 1 кв. м. - 599 руб.")
	f.send(t, "5")
	return f.send(t, "1")
}

// доводит диалог до проверки данных клиента
func (f *fixture) advanceToVerify(t *testing.T) *Response {
	t.Helper()
	f.advanceToConfirm(t)
	f.send(t, "Забронировать")
	f.send(t, "Иванов")
	f.send(t, "Иван")
	f.send(t, "Иванович")
	f.send(t, "4510123456")
	f.send(t, "01.02.1990")
	return f.send(t, "+79161234567")
}

// --- tests ---

func TestExecute_Greeting(t *testing.T) {
	f := newFixture(t)

	resp := f.send(t, "/start")

	assert.Equal(t, domain.StateChooseStorage, resp.State)
	assert.Contains(t, resp.Text, "Привет")
	require.Len(t, resp.Keyboard, 2)
	assert.Contains(t, resp.Keyboard[0][0], "Склад Сокольники")
}

func TestExecute_FirstMessageStartsDialog(t *testing.T) {
	f := newFixture(t)

	// Любое первое сообщение без сессии начинает диалог
	resp := f.send(t, "хочу ячейку")

	assert.Equal(t, domain.StateChooseStorage, resp.State)
	assert.Equal(t, domain.StateChooseStorage, f.sessions.m[testUserID])
}

func TestExecute_OtherCategoryFlow(t *testing.T) {
	f := newFixture(t)

	resp := f.advanceToConfirm(t)

	assert.Equal(t, domain.StateConfirmBooking, resp.State)
	assert.Contains(t, resp.Text, "Склад Сокольники")
	assert.Contains(t, resp.Text, "1199 руб.")
	assert.Contains(t, resp.Text, "01.10.26")
	assert.Contains(t, resp.Text, "01.11.26")

	draft := f.drafts.m[testUserID]
	assert.Equal(t, domain.CategoryOther, draft.Category)
	assert.Equal(t, 5, draft.Count)
	assert.Equal(t, domain.PeriodMonth, draft.PeriodType)
	assert.Equal(t, int64(1199), draft.TotalCost)
}

func TestExecute_InvalidCountKeepsState(t *testing.T) {
	f := newFixture(t)
	f.send(t, "/start")
	f.send(t, "1. Склад Сокольники(1-я Сокольническая ул., 4)")
	f.send(t, "Другое")
	f.send(t, "1. Ячейка 1 кв. м. - 599 руб.")

	for _, input := range []string{"abc", "0", "11", "-3"} {
		resp := f.send(t, input)
		assert.Equal(t, domain.StateInputCount, resp.State, "input %q", input)
		assert.Contains(t, resp.Text, "от 1 до 10")
	}
}

func TestExecute_CountAboveFreeReprompts(t *testing.T) {
	f := newFixture(t)
	f.send(t, "/start")
	f.send(t, "1. Склад Сокольники(1-я Сокольническая ул., 4)")
	f.send(t, "Сезонные вещи")
	f.send(t, "3. Колёса 4 шт.")

	// свободно только 2
	resp := f.send(t, "5")

	assert.Equal(t, domain.StateInputCount, resp.State)
	assert.Contains(t, resp.Text, "свободно только 2")

	resp = f.send(t, "2")
	assert.Equal(t, domain.StateInputPeriodLength, resp.State)
}

func TestExecute_SeasonWithWeekPriceAsksPeriodType(t *testing.T) {
	f := newFixture(t)
	f.send(t, "/start")
	f.send(t, "1. Склад Сокольники(1-я Сокольническая ул., 4)")
	f.send(t, "Сезонные вещи")
	f.send(t, "1. Лыжи")

	resp := f.send(t, "1")

	assert.Equal(t, domain.StateInputPeriodType, resp.State)
	assert.Equal(t, [][]string{{"Неделя", "Месяц"}}, resp.Keyboard)

	resp = f.send(t, "Неделя")
	assert.Equal(t, domain.StateInputPeriodLength, resp.State)
	assert.Contains(t, resp.Text, "до 52")

	resp = f.send(t, "2")
	assert.Equal(t, domain.StateConfirmBooking, resp.State)
	assert.Contains(t, resp.Text, "300 руб.")
	assert.Contains(t, resp.Text, "2 нед.")
}

func TestExecute_SeasonWithoutWeekPriceSkipsPeriodType(t *testing.T) {
	f := newFixture(t)
	f.send(t, "/start")
	f.send(t, "1. Склад Сокольники(1-я Сокольническая ул., 4)")
	f.send(t, "Сезонные вещи")
	f.send(t, "3. Колёса 4 шт.")

	resp := f.send(t, "2")

	// тип периода не спрашивается, аренда только помесячная
	assert.Equal(t, domain.StateInputPeriodLength, resp.State)
	assert.Contains(t, resp.Text, "месяцев")
	assert.Equal(t, domain.PeriodMonth, f.drafts.m[testUserID].PeriodType)
}

func TestExecute_PromoCode(t *testing.T) {
	t.Run("действующий код применяет скидку", func(t *testing.T) {
		f := newFixture(t)
		f.advanceToConfirm(t)

		f.send(t, "Ввести промокод")
		resp := f.send(t, "STORAGE15")

		assert.Equal(t, domain.StateConfirmBooking, resp.State)
		assert.Contains(t, resp.Text, "скидка 15%")
		assert.Contains(t, resp.Text, "1019.15 руб.")

		draft := f.drafts.m[testUserID]
		assert.Equal(t, 15, draft.PromoPercent)
	})

	t.Run("недействующий код возвращает к подтверждению без скидки", func(t *testing.T) {
		f := newFixture(t)
		f.advanceToConfirm(t)

		f.send(t, "Ввести промокод")
		resp := f.send(t, "FREE100")

		assert.Equal(t, domain.StateConfirmBooking, resp.State)
		assert.Contains(t, resp.Text, "не действует")

		draft := f.drafts.m[testUserID]
		assert.Equal(t, 0, draft.PromoPercent)
		assert.Equal(t, int64(1199), draft.TotalCost)
	})
}

func TestExecute_BookingConfirmation(t *testing.T) {
	f := newFixture(t)
	f.advanceToConfirm(t)

	resp := f.send(t, "Забронировать")

	assert.Equal(t, domain.StateInputSurname, resp.State)

	require.Len(t, f.ledger.bookings, 1)
	booking := f.ledger.bookings[0]
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, testUserID, booking.UserID)
	assert.Equal(t, domain.StatusCreated, booking.Status)
	assert.Equal(t, int64(1199), booking.TotalCost)

	draft := f.drafts.m[testUserID]
	assert.Equal(t, int64(1), draft.BookingID)
	assert.Equal(t, domain.StatusCreated, draft.Status)

	// анкета открыта пустой
	profile := f.profiles.m[testUserID]
	assert.False(t, profile.IsComplete())
}

func TestExecute_ProfileValidation(t *testing.T) {
	f := newFixture(t)
	f.advanceToConfirm(t)
	f.send(t, "Забронировать")

	// невалидная фамилия не двигает диалог
	resp := f.send(t, "Ivanov")
	assert.Equal(t, domain.StateInputSurname, resp.State)
	assert.Contains(t, resp.Text, "кириллицей")

	resp = f.send(t, "Иванов")
	assert.Equal(t, domain.StateInputName, resp.State)

	f.send(t, "Иван")
	f.send(t, "Иванович")

	// невалидный паспорт
	resp = f.send(t, "12345")
	assert.Equal(t, domain.StateInputPassport, resp.State)

	f.send(t, "4510123456")

	// невалидная дата
	resp = f.send(t, "32.13.1990")
	assert.Equal(t, domain.StateInputBirthDate, resp.State)

	f.send(t, "01.02.1990")

	// невалидный телефон
	resp = f.send(t, "+12025550123")
	assert.Equal(t, domain.StateInputPhone, resp.State)

	resp = f.send(t, "+79161234567")
	assert.Equal(t, domain.StateClientVerify, resp.State)
	assert.Contains(t, resp.Text, "Иванов")
	assert.Contains(t, resp.Text, "4510123456")
	assert.Contains(t, resp.Keyboard[0][0], "Оплатить 1199 руб.")
}

func TestExecute_EditProfileField(t *testing.T) {
	f := newFixture(t)
	f.advanceToVerify(t)

	resp := f.send(t, "Сменить паспорт")
	assert.Equal(t, domain.StateRemoveClientInfo, resp.State)
	assert.Contains(t, resp.Text, "паспорта")

	resp = f.send(t, "4510654321")
	assert.Equal(t, domain.StateClientVerify, resp.State)
	assert.Contains(t, resp.Text, "4510654321")
}

func TestExecute_IssueInvoice(t *testing.T) {
	f := newFixture(t)
	f.advanceToVerify(t)

	resp := f.send(t, "Оплатить 1199 руб.")

	assert.Equal(t, domain.StatePayment, resp.State)
	assert.Contains(t, resp.Text, "1199 руб.")

	// клиент зафиксирован в durable-хранилище, эфемерная анкета удалена
	client, ok := f.ledger.clients[testUserID]
	require.True(t, ok)
	assert.Equal(t, "Иванов", client.Surname)
	_, hasProfile := f.profiles.m[testUserID]
	assert.False(t, hasProfile)

	draft := f.drafts.m[testUserID]
	assert.Equal(t, "booking-1-10", draft.InvoicePayload)

	// в ожидании оплаты любой ввод повторяет статус
	resp = f.send(t, "ну что там")
	assert.Equal(t, domain.StatePayment, resp.State)
}

func TestExecute_CancelResetsDialog(t *testing.T) {
	f := newFixture(t)
	f.advanceToConfirm(t)

	resp := f.send(t, "Отмена")

	assert.Equal(t, domain.StateChooseStorage, resp.State)
	assert.Contains(t, resp.Text, "отменено")

	_, hasDraft := f.drafts.m[testUserID]
	assert.False(t, hasDraft)

	// диалог начинается заново
	resp = f.send(t, "2. Склад Химки(ул. Кирова, 24, Химки)")
	assert.Equal(t, domain.StateChooseCategory, resp.State)
}

func TestExecute_MissingDraftRestartsDialog(t *testing.T) {
	f := newFixture(t)
	f.advanceToConfirm(t)

	// черновик исчез (например, очистка хранилища)
	delete(f.drafts.m, testUserID)

	resp := f.send(t, "Забронировать")

	assert.Equal(t, domain.StateChooseStorage, resp.State)
	assert.Contains(t, resp.Text, "не нашлось")
}

func TestExecute_UnknownButtonReprompts(t *testing.T) {
	f := newFixture(t)
	f.send(t, "/start")

	resp := f.send(t, "99. Несуществующий склад")
	assert.Equal(t, domain.StateChooseStorage, resp.State)
	assert.Contains(t, resp.Text, "Не нашёл")

	f.send(t, "1. Склад Сокольники(1-я Сокольническая ул., 4)")
	resp = f.send(t, "Гараж")
	assert.Equal(t, domain.StateChooseCategory, resp.State)
}

func TestExecute_InvalidUserID(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 0, Text: "/start"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
