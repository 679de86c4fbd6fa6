package payment_precheck

import (
	"context"

	confirmPayment "github.com/m04kA/SMC-StorageService/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	Precheck(ctx context.Context, req *confirmPayment.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
