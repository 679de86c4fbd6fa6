package domain

// DialogState состояние диалога бронирования для одного пользователя.
// Хранится в Redis по ключу пользователя: сам движок между сообщениями
// состояния не держит.
type DialogState string

const (
	StateChooseStorage     DialogState = "choose_storage"
	StateChooseCategory    DialogState = "choose_category"
	StateChooseStuff       DialogState = "choose_stuff"
	StateInputCount        DialogState = "input_count"
	StateInputPeriodType   DialogState = "input_period_type"
	StateInputPeriodLength DialogState = "input_period_length"
	StateConfirmBooking    DialogState = "confirm_booking"
	StateInputPromoCode    DialogState = "input_promo_code"
	StateInputSurname      DialogState = "input_surname"
	StateInputName         DialogState = "input_name"
	StateInputSecondName   DialogState = "input_second_name"
	StateInputPassport     DialogState = "input_passport"
	StateInputBirthDate    DialogState = "input_birth_date"
	StateInputPhone        DialogState = "input_phone"
	StateClientVerify      DialogState = "client_verify"
	StateRemoveClientInfo  DialogState = "remove_client_info"
	StatePayment           DialogState = "payment"
)
