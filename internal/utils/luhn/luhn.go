package luhn

import "strings"

// Digits возвращает только цифры номера, остальные символы отбрасываются
func Digits(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, ch := range number {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Validate проверяет номер по алгоритму Луна.
// Нецифровые символы (пробелы, дефисы) перед проверкой удаляются.
func Validate(number string) bool {
	number = Digits(number)
	if len(number) == 0 {
		return false
	}

	sum := 0
	isSecond := false

	// Проходим с конца строки
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isSecond = !isSecond
	}

	return sum%10 == 0
}
