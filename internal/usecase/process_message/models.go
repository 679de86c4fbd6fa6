package process_message

import "github.com/m04kA/SMC-StorageService/internal/domain"

// Request входящее сообщение пользователя: свободный текст или подпись кнопки
type Request struct {
	UserID int64  // идентификатор пользователя в транспорте чата
	Text   string // текст сообщения
}

// Response ответ движка: текст, клавиатура и новое состояние диалога.
// Keyboard — ряды подписей кнопок; nil означает убрать клавиатуру.
type Response struct {
	Text     string
	Keyboard [][]string
	State    domain.DialogState
}
