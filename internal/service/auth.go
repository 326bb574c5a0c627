package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/utils/jwt"
	"github.com/avc/checkout-gateway/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	clientRepo     domain.ClientRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(
	clientRepo domain.ClientRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		clientRepo:     clientRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Register регистрирует нового клиента и возвращает JWT
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (string, error) {
	if reg.Username == "" || reg.Password == "" || reg.Email == "" {
		return "", ErrInvalidInput
	}

	hash, err := s.passwordHasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) || errors.Is(err, password.ErrTooLong) {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return "", fmt.Errorf("auth service: failed to hash password for client %q: %w", reg.Username, err)
	}

	client, err := s.clientRepo.CreateClient(ctx, &domain.Client{
		Username:     reg.Username,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		FirstSurname: reg.FirstSurname,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
	})
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrClientExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register client %q: %w", reg.Username, err)
	}

	token, err := s.jwtManager.Generate(client.ID, client.Username)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for client %s: %w", client.ID, err)
	}

	return token, nil
}

// Login аутентифицирует клиента
func (s *AuthService) Login(ctx context.Context, username, userPassword string) (string, error) {
	if username == "" || userPassword == "" {
		return "", ErrInvalidInput
	}

	client, err := s.clientRepo.GetClientByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get client %q: %w", username, err)
	}

	if !client.IsActive {
		return "", domain.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Check(client.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(client.ID, client.Username)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for client %s: %w", client.ID, err)
	}

	return token, nil
}
