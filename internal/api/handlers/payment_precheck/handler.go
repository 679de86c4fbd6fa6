package payment_precheck

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorageService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-StorageService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные платежа"
	msgNoActiveBooking    = "активное бронирование не найдено"
	msgPayloadMismatch    = "счёт не соответствует бронированию"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/precheck
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PrecheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/precheck - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Precheck(r.Context(), req.ToUseCaseRequest()); err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/precheck - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, confirmPayment.ErrNoActiveBooking):
			h.logger.Warn("POST /payments/precheck - No active booking: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgNoActiveBooking)

		case errors.Is(err, confirmPayment.ErrPayloadMismatch):
			h.logger.Warn("POST /payments/precheck - Payload mismatch: user_id=%d, payload=%s", req.UserID, req.Payload)
			handlers.RespondError(w, http.StatusConflict, msgPayloadMismatch)

		default:
			h.logger.Error("POST /payments/precheck - Failed: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/precheck - Invoice approved: user_id=%d, payload=%s", req.UserID, req.Payload)
	handlers.RespondJSON(w, http.StatusOK, PrecheckResponse{Ok: true})
}
