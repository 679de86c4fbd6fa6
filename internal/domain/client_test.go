package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProfile_FirstEmptyField(t *testing.T) {
	t.Run("пустая анкета начинается с фамилии", func(t *testing.T) {
		p := &ClientProfile{UserID: 1}

		field, hasEmpty := p.FirstEmptyField()

		require.True(t, hasEmpty)
		assert.Equal(t, FieldSurname, field)
	})

	t.Run("поля запрашиваются в фиксированном порядке", func(t *testing.T) {
		p := &ClientProfile{UserID: 1}
		values := map[ProfileField]string{
			FieldSurname:    "Иванов",
			FieldName:       "Иван",
			FieldSecondName: "Иванович",
			FieldPassport:   "4510123456",
			FieldBirthDate:  "01.02.1990",
			FieldPhone:      "+79161234567",
		}

		for _, want := range ProfileFieldOrder {
			field, hasEmpty := p.FirstEmptyField()
			require.True(t, hasEmpty)
			assert.Equal(t, want, field)
			p.SetValue(field, values[field])
		}

		_, hasEmpty := p.FirstEmptyField()
		assert.False(t, hasEmpty)
	})

	t.Run("повторный вызов без изменений возвращает то же поле", func(t *testing.T) {
		p := &ClientProfile{UserID: 1, Surname: "Иванов", Name: "Иван"}

		first, _ := p.FirstEmptyField()
		second, _ := p.FirstEmptyField()

		assert.Equal(t, FieldSecondName, first)
		assert.Equal(t, first, second)
	})

	t.Run("очищенное поле в середине становится первым пустым", func(t *testing.T) {
		p := &ClientProfile{
			UserID:     1,
			Surname:    "Иванов",
			Name:       "Иван",
			SecondName: "Иванович",
			Passport:   "4510123456",
			BirthDate:  "01.02.1990",
			Phone:      "+79161234567",
		}
		p.SetValue(FieldPassport, "")

		field, hasEmpty := p.FirstEmptyField()

		require.True(t, hasEmpty)
		assert.Equal(t, FieldPassport, field)
	})
}

func TestClientProfile_IsComplete(t *testing.T) {
	p := &ClientProfile{
		UserID:     1,
		Surname:    "Иванов",
		Name:       "Иван",
		SecondName: "Иванович",
		Passport:   "4510123456",
		BirthDate:  "01.02.1990",
		Phone:      "+79161234567",
	}
	assert.True(t, p.IsComplete())

	p.Phone = ""
	assert.False(t, p.IsComplete())
}
