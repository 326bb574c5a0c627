package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		clientID  uuid.UUID
	}{
		{
			name:      "Valid token generation",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			clientID:  uuid.New(),
		},
		{
			name:      "Short TTL",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			clientID:  uuid.New(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.clientID, "jdoe")

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	clientID := uuid.New()

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(clientID, "jdoe")
		require.NoError(t, err)

		parsed, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, clientID, parsed)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(clientID, "jdoe")
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, -time.Minute)
		token, err := m.Generate(clientID, "jdoe")
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Malformed token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("not.a.token")
		assert.Error(t, err)
	})
}
