package domain

// ProfileField имя поля анкеты клиента
type ProfileField string

const (
	FieldSurname    ProfileField = "surname"
	FieldName       ProfileField = "name"
	FieldSecondName ProfileField = "second_name"
	FieldPassport   ProfileField = "passport"
	FieldBirthDate  ProfileField = "birth_date"
	FieldPhone      ProfileField = "phone"
)

// ProfileFieldOrder фиксированный порядок заполнения анкеты.
// Определяет, какое поле редактируется следующим: диалог всегда
// запрашивает первое пустое поле в этом порядке.
var ProfileFieldOrder = []ProfileField{
	FieldSurname,
	FieldName,
	FieldSecondName,
	FieldPassport,
	FieldBirthDate,
	FieldPhone,
}

// ClientProfile анкета клиента, заполняемая по ходу диалога.
// Эфемерная копия живёт в Redis; после подтверждения оплаты
// данные переносятся в durable-таблицу clients и копия удаляется.
type ClientProfile struct {
	UserID     int64  `json:"user_id"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	SecondName string `json:"second_name"`
	Passport   string `json:"passport"`
	BirthDate  string `json:"birth_date"`
	Phone      string `json:"phone"`
}

// Value возвращает значение поля анкеты по имени
func (p *ClientProfile) Value(field ProfileField) string {
	switch field {
	case FieldSurname:
		return p.Surname
	case FieldName:
		return p.Name
	case FieldSecondName:
		return p.SecondName
	case FieldPassport:
		return p.Passport
	case FieldBirthDate:
		return p.BirthDate
	case FieldPhone:
		return p.Phone
	default:
		return ""
	}
}

// SetValue записывает значение поля анкеты по имени
func (p *ClientProfile) SetValue(field ProfileField, value string) {
	switch field {
	case FieldSurname:
		p.Surname = value
	case FieldName:
		p.Name = value
	case FieldSecondName:
		p.SecondName = value
	case FieldPassport:
		p.Passport = value
	case FieldBirthDate:
		p.BirthDate = value
	case FieldPhone:
		p.Phone = value
	}
}

// FirstEmptyField возвращает первое незаполненное поле анкеты в фиксированном
// порядке. Линейный скан детерминирован: повторный вызов на неизменённой
// анкете возвращает то же поле. Второе значение false — анкета заполнена.
func (p *ClientProfile) FirstEmptyField() (ProfileField, bool) {
	for _, field := range ProfileFieldOrder {
		if p.Value(field) == "" {
			return field, true
		}
	}
	return "", false
}

// IsComplete возвращает true, если все поля анкеты заполнены
func (p *ClientProfile) IsComplete() bool {
	_, hasEmpty := p.FirstEmptyField()
	return !hasEmpty
}
