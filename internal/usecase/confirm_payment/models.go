package confirm_payment

// Request идентификация платежа: пользователь и payload счёта,
// который транспорт возвращает без изменений
type Request struct {
	UserID  int64
	Payload string
}

// Response результат фиксации оплаты
type Response struct {
	BookingID   int64  // номер бронирования в журнале
	AccessCode  string // код доступа к ячейке
	QRImagePath string // путь к PNG с QR-кодом для отправки пользователю
	Message     string // текст для пользователя
}
