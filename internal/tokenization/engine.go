package tokenization

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/utils/luhn"
)

// DrawFunc возвращает равномерно распределенное число из [1, 100]
type DrawFunc func() int

// DefaultDraw использует генератор math/rand процесса
func DefaultDraw() int {
	return rand.Intn(100) + 1
}

// Engine превращает данные карты в TokenizationResult.
// Единственный побочный эффект - розыгрыш отказа провайдера.
type Engine struct {
	validator *Validator
	prefs     domain.PreferenceProvider
	cipher    domain.SymmetricCipher
	draw      DrawFunc
}

// NewEngine создает движок токенизации. nil draw заменяется на DefaultDraw.
func NewEngine(
	validator *Validator,
	prefs domain.PreferenceProvider,
	cipher domain.SymmetricCipher,
	draw DrawFunc,
) *Engine {
	if draw == nil {
		draw = DefaultDraw
	}
	return &Engine{
		validator: validator,
		prefs:     prefs,
		cipher:    cipher,
		draw:      draw,
	}
}

// Tokenize валидирует карту, разыгрывает отказ провайдера и вычисляет токен
func (e *Engine) Tokenize(ctx context.Context, req domain.CardRequest) (*domain.TokenizationResult, error) {
	if err := e.validator.Validate(req); err != nil {
		return nil, err
	}

	rate, err := e.prefs.GetInt(ctx, domain.PrefTokenRejectionRate)
	if err != nil {
		return nil, err
	}
	if e.draw() <= rate {
		return nil, &domain.ProviderRejectedError{Message: domain.MsgTokenRejected}
	}

	pan := luhn.Digits(req.CardNumber)
	sum := sha256.Sum256([]byte(pan))

	expiration, err := e.cipher.Encrypt(req.ExpirationDate())
	if err != nil {
		return nil, fmt.Errorf("tokenization: failed to encrypt expiration: %w", err)
	}

	return &domain.TokenizationResult{
		ClientID:             req.ClientID,
		Token:                hex.EncodeToString(sum[:]),
		LastFour:             pan[len(pan)-4:],
		ExpirationCiphertext: expiration,
	}, nil
}
