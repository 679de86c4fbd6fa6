package payment_precheck

import (
	confirmPayment "github.com/m04kA/SMC-StorageService/internal/usecase/confirm_payment"
)

// PrecheckRequest HTTP request model: pre-checkout запрос платёжного транспорта
type PrecheckRequest struct {
	UserID  int64  `json:"userId"`
	Payload string `json:"payload"`
}

// PrecheckResponse HTTP response model
type PrecheckResponse struct {
	Ok bool `json:"ok"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PrecheckRequest) ToUseCaseRequest() *confirmPayment.Request {
	return &confirmPayment.Request{
		UserID:  r.UserID,
		Payload: r.Payload,
	}
}
