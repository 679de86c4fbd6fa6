// Package validate чистые предикаты для проверки полей анкеты клиента.
// Каждый предикат проверяет одно поле и возвращает bool; текст повторного
// запроса и retry-цикл остаются на вызывающей стороне.
package validate

import (
	"strings"
	"time"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// BirthDateFormat формат даты рождения: дд.мм.гггг
const BirthDateFormat = "02.01.2006"

// Passport проверяет серию и номер паспорта: после удаления пробелов
// 9–10 символов, только цифры, не все нули.
func Passport(passport string) bool {
	passport = strings.ReplaceAll(strings.TrimSpace(passport), " ", "")

	if len(passport) < 9 || len(passport) > 10 {
		return false
	}

	allZero := true
	for _, r := range passport {
		if r < '0' || r > '9' {
			return false
		}
		if r != '0' {
			allZero = false
		}
	}

	return !allZero
}

// Phone проверяет, что номер принадлежит российскому плану нумерации
// и структурно возможен.
func Phone(phone string) bool {
	parsed, err := phonenumbers.Parse(phone, "RU")
	if err != nil {
		return false
	}

	if phonenumbers.GetRegionCodeForNumber(parsed) != "RU" {
		return false
	}

	return phonenumbers.IsPossibleNumber(parsed)
}

// CyrillicName проверяет, что значение непустое и каждый символ —
// кириллическая буква (регистр не важен).
func CyrillicName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) || !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}

	return true
}

// BirthDate проверяет, что строка разбирается как календарная дата
// в формате дд.мм.гггг.
func BirthDate(birthDate string) bool {
	_, err := time.Parse(BirthDateFormat, strings.TrimSpace(birthDate))
	return err == nil
}
