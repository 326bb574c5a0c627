package tokenization

import (
	"strconv"
	"time"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/utils/luhn"
)

const (
	minPANLength = 13
	maxPANLength = 16
)

// Validator проверяет данные карты перед токенизацией.
// Проверки выполняются по порядку, возвращается первая ошибка.
type Validator struct {
	now func() time.Time
}

// NewValidator создает валидатор, использующий системные часы
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorWithClock создает валидатор с заданными часами
func NewValidatorWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate запускает все проверки карты
func (v *Validator) Validate(req domain.CardRequest) error {
	if n := len(luhn.Digits(req.CardNumber)); n < minPANLength || n > maxPANLength {
		return &domain.CardValidationError{Reason: "invalid card number length"}
	}
	if !luhn.Validate(req.CardNumber) {
		return &domain.CardValidationError{Reason: "invalid card number"}
	}
	if !ValidCVV(req.CVV) {
		return &domain.CardValidationError{Reason: "invalid cvv"}
	}
	return v.ValidateExpiry(req.ExpirationMonth, req.ExpirationYear)
}

// ValidCVV проверяет, что CVV состоит из 3-4 цифр ASCII
func ValidCVV(cvv string) bool {
	if len(cvv) < 3 || len(cvv) > 4 {
		return false
	}
	return allDigits(cvv)
}

// allDigits сообщает, что строка состоит только из цифр ASCII
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateExpiry сравнивает MM/YY с текущим месяцем и годом
func (v *Validator) ValidateExpiry(month, year string) error {
	// Atoi принимает знак, поэтому формат проверяется побайтно
	if len(month) != 2 || len(year) != 2 || !allDigits(month) || !allDigits(year) {
		return expiryFormatError()
	}
	mm, err := strconv.Atoi(month)
	if err != nil {
		return expiryFormatError()
	}
	yy, err := strconv.Atoi(year)
	if err != nil {
		return expiryFormatError()
	}
	if mm < 1 || mm > 12 || yy < 0 {
		return expiryFormatError()
	}

	now := v.now()
	curYY := now.Year() % 100
	curMM := int(now.Month())

	if yy > curYY || (yy == curYY && mm >= curMM) {
		return nil
	}
	return &domain.CardValidationError{Reason: "card is expired"}
}

func expiryFormatError() error {
	return &domain.CardValidationError{
		Reason: domain.ErrInvalidExpiry.Error(),
		Cause:  domain.ErrInvalidExpiry,
	}
}
