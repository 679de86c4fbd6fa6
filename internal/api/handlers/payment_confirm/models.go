package payment_confirm

import (
	confirmPayment "github.com/m04kA/SMC-StorageService/internal/usecase/confirm_payment"
)

// ConfirmRequest HTTP request model: уведомление об успешной оплате
type ConfirmRequest struct {
	UserID  int64  `json:"userId"`
	Payload string `json:"payload"`
}

// ConfirmResponse HTTP response model: выданный код доступа
type ConfirmResponse struct {
	BookingID   int64  `json:"bookingId"`
	AccessCode  string `json:"accessCode"`
	QRImagePath string `json:"qrImagePath"`
	Message     string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmRequest) ToUseCaseRequest() *confirmPayment.Request {
	return &confirmPayment.Request{
		UserID:  r.UserID,
		Payload: r.Payload,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmResponse {
	return &ConfirmResponse{
		BookingID:   resp.BookingID,
		AccessCode:  resp.AccessCode,
		QRImagePath: resp.QRImagePath,
		Message:     resp.Message,
	}
}
