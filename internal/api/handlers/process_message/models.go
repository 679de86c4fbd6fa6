package process_message

import (
	processMessage "github.com/m04kA/SMC-StorageService/internal/usecase/process_message"
)

// MessageRequest HTTP request model: входящее сообщение пользователя
type MessageRequest struct {
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
}

// MessageResponse HTTP response model: реплика движка для отправки пользователю
type MessageResponse struct {
	Text     string     `json:"text"`
	Keyboard [][]string `json:"keyboard,omitempty"`
	State    string     `json:"state"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MessageRequest) ToUseCaseRequest() *processMessage.Request {
	return &processMessage.Request{
		UserID: r.UserID,
		Text:   r.Text,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processMessage.Response) *MessageResponse {
	return &MessageResponse{
		Text:     resp.Text,
		Keyboard: resp.Keyboard,
		State:    string(resp.State),
	}
}
