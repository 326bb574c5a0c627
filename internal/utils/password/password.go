package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость хеширования по умолчанию
const DefaultCost = bcrypt.DefaultCost

var (
	// ErrMismatch пароль не соответствует хешу
	ErrMismatch = errors.New("password does not match")
	// ErrTooShort пароль короче минимально допустимой длины
	ErrTooShort = errors.New("password is too short")
	// ErrTooLong bcrypt не принимает пароли длиннее 72 байт
	ErrTooLong = errors.New("password is too long")
)

const maxBytes = 72

// Hasher интерфейс для хеширования паролей
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher хеширует и проверяет пароли клиентов через bcrypt
type BCryptHasher struct {
	cost      int
	minLength int
}

// NewBCryptHasher создает hasher. Некорректная стоимость заменяется на DefaultCost.
func NewBCryptHasher(cost, minLength int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	if minLength < 1 {
		minLength = 1
	}
	return &BCryptHasher{
		cost:      cost,
		minLength: minLength,
	}
}

// Validate проверяет длину пароля до хеширования
func (h *BCryptHasher) Validate(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return ErrTooShort
	}
	if len(password) > maxBytes {
		return ErrTooLong
	}
	return nil
}

// Hash хеширует пароль
func (h *BCryptHasher) Hash(password string) (string, error) {
	if err := h.Validate(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Check проверяет соответствие пароля хешу
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
