package tokenization

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/utils/cipher"
)

type staticPrefs map[string]int

func (p staticPrefs) GetInt(_ context.Context, key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, domain.ErrPreferenceMissing
	}
	return v, nil
}

type failingCipher struct{}

func (failingCipher) Encrypt(string) (string, error) { return "", errors.New("boom") }
func (failingCipher) Decrypt(string) (string, error) { return "", domain.ErrDecryptionFailed }

func newTestCipher(t *testing.T) *cipher.AESGCM {
	t.Helper()
	c, err := cipher.NewAESGCM(make([]byte, cipher.KeySize))
	require.NoError(t, err)
	return c
}

func cardRequest(clientID uuid.UUID, number string) domain.CardRequest {
	return domain.CardRequest{
		ClientID:        clientID,
		CardNumber:      number,
		CVV:             "123",
		ExpirationMonth: "12",
		ExpirationYear:  "49",
	}
}

func TestEngine_Tokenize_HappyPath(t *testing.T) {
	c := newTestCipher(t)
	clientID := uuid.New()
	e := NewEngine(
		NewValidatorWithClock(fixedClock(2026, time.October)),
		staticPrefs{domain.PrefTokenRejectionRate: 0},
		c,
		nil,
	)

	res, err := e.Tokenize(context.Background(), cardRequest(clientID, "4539148803436467"))
	require.NoError(t, err)

	assert.Equal(t, clientID, res.ClientID)
	assert.Equal(t, "6467", res.LastFour)
	assert.Equal(t, "dc7acdd68b5a737fa73186e9a5b6f892c6a9f80f7e72d3d12d5afaea09e36860", res.Token)

	plain, err := c.Decrypt(res.ExpirationCiphertext)
	require.NoError(t, err)
	assert.Equal(t, "12/49", plain)
}

func TestEngine_Tokenize_Deterministic(t *testing.T) {
	e := NewEngine(
		NewValidatorWithClock(fixedClock(2026, time.October)),
		staticPrefs{domain.PrefTokenRejectionRate: 0},
		newTestCipher(t),
		nil,
	)

	first, err := e.Tokenize(context.Background(), cardRequest(uuid.New(), "4539148803436467"))
	require.NoError(t, err)
	second, err := e.Tokenize(context.Background(), cardRequest(uuid.New(), "4539 1488 0343 6467"))
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
	assert.NotEqual(t, first.ExpirationCiphertext, second.ExpirationCiphertext)
}

func TestEngine_Tokenize_ProviderRejection(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		draw     int
		rejected bool
	}{
		{name: "Rate 100 always rejects", rate: 100, draw: 100, rejected: true},
		{name: "Draw equal to rate rejects", rate: 20, draw: 20, rejected: true},
		{name: "Draw above rate passes", rate: 20, draw: 21, rejected: false},
		{name: "Rate 0 never rejects", rate: 0, draw: 1, rejected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(
				NewValidatorWithClock(fixedClock(2026, time.October)),
				staticPrefs{domain.PrefTokenRejectionRate: tt.rate},
				newTestCipher(t),
				func() int { return tt.draw },
			)

			res, err := e.Tokenize(context.Background(), cardRequest(uuid.New(), "4539148803436467"))
			if !tt.rejected {
				require.NoError(t, err)
				assert.NotNil(t, res)
				return
			}

			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrProviderRejected)
			var rejected *domain.ProviderRejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, domain.MsgTokenRejected, rejected.Message)
		})
	}
}

func TestEngine_Tokenize_Errors(t *testing.T) {
	t.Run("Invalid card skips the draw", func(t *testing.T) {
		drawn := false
		e := NewEngine(
			NewValidatorWithClock(fixedClock(2026, time.October)),
			staticPrefs{domain.PrefTokenRejectionRate: 0},
			newTestCipher(t),
			func() int { drawn = true; return 50 },
		)

		_, err := e.Tokenize(context.Background(), cardRequest(uuid.New(), "4539148803436468"))
		assert.ErrorIs(t, err, domain.ErrInvalidCardData)
		assert.False(t, drawn)
	})

	t.Run("Missing preference", func(t *testing.T) {
		e := NewEngine(
			NewValidatorWithClock(fixedClock(2026, time.October)),
			staticPrefs{},
			newTestCipher(t),
			nil,
		)

		_, err := e.Tokenize(context.Background(), cardRequest(uuid.New(), "4539148803436467"))
		assert.ErrorIs(t, err, domain.ErrPreferenceMissing)
	})

	t.Run("Cipher failure", func(t *testing.T) {
		e := NewEngine(
			NewValidatorWithClock(fixedClock(2026, time.October)),
			staticPrefs{domain.PrefTokenRejectionRate: 0},
			failingCipher{},
			nil,
		)

		_, err := e.Tokenize(context.Background(), cardRequest(uuid.New(), "4539148803436467"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCardData)
	})
}

func TestDefaultDraw_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := DefaultDraw()
		assert.GreaterOrEqual(t, x, 1)
		assert.LessOrEqual(t, x, 100)
	}
}
