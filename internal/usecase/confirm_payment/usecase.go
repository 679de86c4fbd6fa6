package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	draftRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/draft"
	inventoryRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-StorageService/internal/integrations/qrpass"
)

const msgPaymentDone = "Оплата прошла успешно!\n" +
	"Ваш код доступа к ячейке на QR-коде ниже. Покажите его на входе склада."

// UseCase фиксация успешной оплаты бронирования: перевод записи журнала
// в статус "payed", списание остатка, выпуск кода доступа и очистка
// диалогового состояния
type UseCase struct {
	sessions     SessionRepository
	drafts       DraftRepository
	ledger       LedgerRepository
	inventory    InventoryRepository
	renderer     CodeRenderer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	drafts DraftRepository,
	ledger LedgerRepository,
	inventory InventoryRepository,
	renderer CodeRenderer,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		drafts:       drafts,
		ledger:       ledger,
		inventory:    inventory,
		renderer:     renderer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Precheck проверяет счёт перед списанием денег: черновик существует,
// ожидает оплату и payload совпадает с выставленным. Ничего не изменяет.
func (uc *UseCase) Precheck(ctx context.Context, req *Request) error {
	_, err := uc.loadPayableDraft(ctx, req)
	return err
}

// Execute фиксирует подтверждённую транспортом оплату.
// Остаток списывается здесь, ровно один раз на бронирование. Перебронирование
// из-за окна между проверкой доступности и оплатой логируется, но оплату
// не отменяет: деньги уже списаны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	draft, err := uc.loadPayableDraft(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.UpdateStatus(ctx, draft.BookingID, domain.StatusPayed); err != nil {
		return nil, fmt.Errorf("%w: Execute - update status: %v", ErrInternal, err)
	}

	err = uc.inventory.Reserve(ctx, draft.StorageID, draft.Category, draft.ItemID, draft.Count)
	if errors.Is(err, inventoryRepo.ErrCapacityExceeded) {
		uc.logger.Warn("ConfirmPayment: booking=%d overbooked: %v", draft.BookingID, err)
	} else if err != nil {
		return nil, fmt.Errorf("%w: Execute - reserve stock: %v", ErrInternal, err)
	}

	passport, err := uc.ledger.GetClientPassport(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get client passport: %v", ErrInternal, err)
	}

	issuedAt := uc.timeProvider.Now()
	accessCode := qrpass.AccessCode(passport, issuedAt)

	if err := uc.ledger.SetAccessCode(ctx, draft.BookingID, accessCode); err != nil {
		return nil, fmt.Errorf("%w: Execute - save access code: %v", ErrInternal, err)
	}

	imagePath, err := uc.renderer.Render(accessCode, issuedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - render qr code: %v", ErrInternal, err)
	}

	// Диалог завершён: черновик больше не нужен, пользователь возвращается
	// к выбору склада
	if err := uc.drafts.Delete(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("%w: Execute - delete draft: %v", ErrInternal, err)
	}
	if err := uc.sessions.Set(ctx, req.UserID, domain.StateChooseStorage); err != nil {
		return nil, fmt.Errorf("%w: Execute - reset session: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmPayment: booking=%d payed, access code issued", draft.BookingID)

	return &Response{
		BookingID:   draft.BookingID,
		AccessCode:  accessCode,
		QRImagePath: imagePath,
		Message:     msgPaymentDone,
	}, nil
}

// loadPayableDraft загружает черновик и сверяет его со счётом
func (uc *UseCase) loadPayableDraft(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Payload == "" {
		return nil, fmt.Errorf("%w: payload must not be empty", ErrInvalidInput)
	}

	draft, err := uc.drafts.Get(ctx, req.UserID)
	if errors.Is(err, draftRepo.ErrDraftNotFound) {
		return nil, ErrNoActiveBooking
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}

	if draft.Status != domain.StatusCreated || draft.InvoicePayload == "" || draft.InvoicePayload != req.Payload {
		return nil, fmt.Errorf("%w: booking=%d status=%s", ErrPayloadMismatch, draft.BookingID, draft.Status)
	}

	return draft, nil
}
