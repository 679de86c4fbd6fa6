package process_message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	draftRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/draft"
	profileRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/profile"
	sessionRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/session"
)

// UseCase машина состояний диалога бронирования.
// На каждое входящее сообщение: загружает состояние пользователя из
// хранилища, прогоняет ввод через обработчик состояния, мутирует
// черновик/анкету и возвращает ответ с новым состоянием. Сам движок
// между ходами ничего не помнит, поэтому события разных пользователей
// можно обрабатывать параллельно на разных воркерах.
type UseCase struct {
	sessions     SessionRepository
	drafts       DraftRepository
	profiles     ProfileRepository
	catalog      CatalogRepository
	inventory    InventoryRepository
	ledger       LedgerRepository
	pricing      PricingService
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	drafts DraftRepository,
	profiles ProfileRepository,
	catalog CatalogRepository,
	inventory InventoryRepository,
	ledger LedgerRepository,
	pricing PricingService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		drafts:       drafts,
		profiles:     profiles,
		catalog:      catalog,
		inventory:    inventory,
		ledger:       ledger,
		pricing:      pricing,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает одно входящее сообщение пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	text := strings.TrimSpace(req.Text)

	// Глобальные fallback-команды работают из любого состояния
	if text == "/start" {
		uc.logger.Info("ProcessMessage: user=%d started a new dialog", req.UserID)
		return uc.restart(ctx, req.UserID, msgGreeting)
	}
	if text == btnCancel || text == "/cancel" {
		uc.logger.Info("ProcessMessage: user=%d cancelled the dialog", req.UserID)
		return uc.restart(ctx, req.UserID, msgCancelled)
	}

	state, err := uc.sessions.Get(ctx, req.UserID)
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		// Первое сообщение пользователя: начинаем диалог с выбора склада
		return uc.restart(ctx, req.UserID, msgGreeting)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - load session: %v", ErrInternal, err)
	}

	uc.logger.Info("ProcessMessage: user=%d state=%s", req.UserID, state)

	resp, err := uc.dispatch(ctx, state, req.UserID, text)
	if err != nil {
		// Черновик или анкета могли исчезнуть (отмена с другого устройства,
		// очистка хранилища) — это не сбой, а повод начать диалог заново
		if errors.Is(err, draftRepo.ErrDraftNotFound) || errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("ProcessMessage: user=%d has no active booking in state=%s", req.UserID, state)
			return uc.restart(ctx, req.UserID, msgNoActiveBooking)
		}
		return nil, err
	}

	if err := uc.sessions.Set(ctx, req.UserID, resp.State); err != nil {
		return nil, fmt.Errorf("%w: Execute - save session: %v", ErrInternal, err)
	}

	return resp, nil
}

// dispatch выбирает обработчик по текущему состоянию диалога.
// Каждое состояние обязано ответить на любой ввод: валидный двигает диалог
// вперёд, невалидный повторяет запрос в том же состоянии.
func (uc *UseCase) dispatch(ctx context.Context, state domain.DialogState, userID int64, text string) (*Response, error) {
	switch state {
	case domain.StateChooseStorage:
		return uc.handleChooseStorage(ctx, userID, text)
	case domain.StateChooseCategory:
		return uc.handleChooseCategory(ctx, userID, text)
	case domain.StateChooseStuff:
		return uc.handleChooseStuff(ctx, userID, text)
	case domain.StateInputCount:
		return uc.handleInputCount(ctx, userID, text)
	case domain.StateInputPeriodType:
		return uc.handleInputPeriodType(ctx, userID, text)
	case domain.StateInputPeriodLength:
		return uc.handleInputPeriodLength(ctx, userID, text)
	case domain.StateConfirmBooking:
		return uc.handleConfirmBooking(ctx, userID, text)
	case domain.StateInputPromoCode:
		return uc.handleInputPromoCode(ctx, userID, text)
	case domain.StateInputSurname:
		return uc.handleProfileField(ctx, userID, text, domain.FieldSurname,
			domain.StateInputSurname, domain.StateInputName, msgInputName)
	case domain.StateInputName:
		return uc.handleProfileField(ctx, userID, text, domain.FieldName,
			domain.StateInputName, domain.StateInputSecondName, msgInputSecondName)
	case domain.StateInputSecondName:
		return uc.handleProfileField(ctx, userID, text, domain.FieldSecondName,
			domain.StateInputSecondName, domain.StateInputPassport, msgInputPassport)
	case domain.StateInputPassport:
		return uc.handleProfileField(ctx, userID, text, domain.FieldPassport,
			domain.StateInputPassport, domain.StateInputBirthDate, msgInputBirthDate)
	case domain.StateInputBirthDate:
		return uc.handleProfileField(ctx, userID, text, domain.FieldBirthDate,
			domain.StateInputBirthDate, domain.StateInputPhone, msgInputPhone)
	case domain.StateInputPhone:
		return uc.handleInputPhone(ctx, userID, text)
	case domain.StateClientVerify:
		return uc.handleClientVerify(ctx, userID, text)
	case domain.StateRemoveClientInfo:
		return uc.handleRemoveClientInfo(ctx, userID, text)
	case domain.StatePayment:
		return uc.handlePayment(ctx, userID, text)
	default:
		// Неизвестное состояние в хранилище: начинаем диалог заново
		uc.logger.Warn("ProcessMessage: user=%d has unknown state=%q, restarting", userID, state)
		return uc.restart(ctx, userID, msgNoActiveBooking)
	}
}

// restart сбрасывает диалог: удаляет черновик и анкету, возвращает
// пользователя к выбору склада
func (uc *UseCase) restart(ctx context.Context, userID int64, message string) (*Response, error) {
	if err := uc.drafts.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: restart - delete draft: %v", ErrInternal, err)
	}
	if err := uc.profiles.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: restart - delete profile: %v", ErrInternal, err)
	}

	storages, err := uc.catalog.GetStorages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: restart - load storages: %v", ErrInternal, err)
	}

	if err := uc.sessions.Set(ctx, userID, domain.StateChooseStorage); err != nil {
		return nil, fmt.Errorf("%w: restart - save session: %v", ErrInternal, err)
	}

	return &Response{
		Text:     message,
		Keyboard: storagesKeyboard(storages),
		State:    domain.StateChooseStorage,
	}, nil
}

// loadDraft загружает черновик пользователя. ErrDraftNotFound пробрасывается
// как есть (Execute переводит его в перезапуск диалога), остальные ошибки
// заворачиваются в ErrInternal.
func (uc *UseCase) loadDraft(ctx context.Context, userID int64) (*domain.BookingDraft, error) {
	d, err := uc.drafts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}
	return d, nil
}

// loadProfile аналогично loadDraft для анкеты клиента
func (uc *UseCase) loadProfile(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	p, err := uc.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load profile: %v", ErrInternal, err)
	}
	return p, nil
}
