package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/metrics"
)

// Tokenizer превращает данные карты в TokenizationResult без сохранения
type Tokenizer interface {
	Tokenize(ctx context.Context, req domain.CardRequest) (*domain.TokenizationResult, error)
}

// CardService хранилище токенизированных карт (реализует domain.CardService)
type CardService struct {
	tokenizer  Tokenizer
	clientRepo domain.ClientRepository
	cardRepo   domain.CardRepository
	logger     *zap.Logger
}

// NewCardService создает новый CardService
func NewCardService(
	tokenizer Tokenizer,
	clientRepo domain.ClientRepository,
	cardRepo domain.CardRepository,
	logger *zap.Logger,
) *CardService {
	return &CardService{
		tokenizer:  tokenizer,
		clientRepo: clientRepo,
		cardRepo:   cardRepo,
		logger:     logger,
	}
}

// Tokenize токенизирует карту и сохраняет ее за клиентом
func (s *CardService) Tokenize(ctx context.Context, req domain.CardRequest) (*domain.CardView, error) {
	result, err := s.tokenizer.Tokenize(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCardData):
			metrics.Tokenization(metrics.OutcomeInvalid)
			return nil, err
		case errors.Is(err, domain.ErrProviderRejected):
			metrics.Tokenization(metrics.OutcomeRejected)
			s.logger.Info("tokenization rejected by provider", zap.String("client_id", req.ClientID.String()))
			return nil, err
		case errors.Is(err, domain.ErrPreferenceMissing), errors.Is(err, domain.ErrPreferenceNotInteger):
			metrics.Tokenization(metrics.OutcomeError)
			return nil, err
		}
		metrics.Tokenization(metrics.OutcomeError)
		return nil, fmt.Errorf("card service: failed to tokenize card for client %s: %w", req.ClientID, err)
	}

	card, err := s.Store(ctx, result)
	if err != nil {
		metrics.Tokenization(metrics.OutcomeError)
		return nil, err
	}

	metrics.Tokenization(metrics.OutcomeSuccess)
	s.logger.Info("card tokenized",
		zap.String("client_id", card.ClientID.String()),
		zap.String("card_id", card.ID.String()),
		zap.String("last_four", card.LastFour),
	)

	return card.View(), nil
}

// Store сохраняет результат токенизации как карту клиента.
// Повторный токен отклоняется уникальным индексом хранилища.
func (s *CardService) Store(ctx context.Context, result *domain.TokenizationResult) (*domain.TokenizedCard, error) {
	if _, err := s.clientRepo.GetClientByID(ctx, result.ClientID); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("card service: failed to get client %s: %w", result.ClientID, err)
	}

	card, err := s.cardRepo.InsertCard(ctx, &domain.TokenizedCard{
		ClientID:             result.ClientID,
		Token:                result.Token,
		LastFour:             result.LastFour,
		ExpirationCiphertext: result.ExpirationCiphertext,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCard) {
			return nil, err
		}
		return nil, fmt.Errorf("card service: failed to store card for client %s: %w", result.ClientID, err)
	}

	return card, nil
}

// ListCards возвращает карты клиента
func (s *CardService) ListCards(ctx context.Context, clientID uuid.UUID) ([]*domain.CardView, error) {
	cards, err := s.cardRepo.ListCardsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("card service: failed to list cards for client %s: %w", clientID, err)
	}

	views := make([]*domain.CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, card.View())
	}

	return views, nil
}

// GetCard возвращает карту, только если она принадлежит клиенту
func (s *CardService) GetCard(ctx context.Context, cardID, clientID uuid.UUID) (*domain.CardView, error) {
	card, err := s.cardRepo.GetCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("card service: failed to get card %s: %w", cardID, err)
	}

	if card.ClientID != clientID {
		return nil, domain.ErrAccessDenied
	}

	return card.View(), nil
}
