package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/avc/checkout-gateway/internal/domain"
)

const (
	// KeySize длина ключа AES-256 в байтах
	KeySize = 32
	// IVSize длина вектора инициализации GCM (96 бит)
	IVSize = 12
	// TagSize длина тега аутентификации GCM (128 бит)
	TagSize = 16
)

// AESGCM реализует domain.SymmetricCipher на AES-256/GCM.
// Формат шифротекста: Base64(IV || ciphertext || tag).
type AESGCM struct {
	aead   gocipher.AEAD
	random io.Reader
}

// NewAESGCM создает шифр из сырого 32-байтового ключа
func NewAESGCM(key []byte) (*AESGCM, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("cipher: key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher: failed to create block cipher: %w", err)
	}

	aead, err := gocipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("cipher: failed to create GCM: %w", err)
	}

	return &AESGCM{aead: aead, random: rand.Reader}, nil
}

// NewAESGCMFromBase64 создает шифр из ключа в Base64 (как он хранится в конфигурации)
func NewAESGCMFromBase64(encodedKey string) (*AESGCM, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("cipher: key is not valid base64: %w", err)
	}
	return NewAESGCM(key)
}

// Encrypt шифрует строку со случайным IV
func (c *AESGCM) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, IVSize, IVSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("cipher: failed to generate iv: %w", err)
	}

	// Seal дописывает ciphertext||tag сразу после IV
	sealed := c.aead.Seal(iv, iv, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt расшифровывает строку. Любая причина отказа возвращается
// как domain.ErrDecryptionFailed без подробностей.
func (c *AESGCM) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}

	if len(data) < IVSize+TagSize {
		return "", domain.ErrDecryptionFailed
	}

	plaintext, err := c.aead.Open(nil, data[:IVSize], data[IVSize:], nil)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
