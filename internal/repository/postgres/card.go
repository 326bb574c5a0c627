package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avc/checkout-gateway/internal/domain"
)

const cardColumns = `id, client_id, token, last_four, expiration_ciphertext, created_at, updated_at`

// CardRepository реализует domain.CardRepository
type CardRepository struct {
	db DBTX
}

// NewCardRepository создает новый CardRepository
func NewCardRepository(db DBTX) *CardRepository {
	return &CardRepository{db: db}
}

// InsertCard сохраняет токенизированную карту.
// Уникальность token обеспечивается индексом, а не предварительным чтением.
func (r *CardRepository) InsertCard(ctx context.Context, card *domain.TokenizedCard) (*domain.TokenizedCard, error) {
	created := *card

	err := r.db.QueryRow(ctx,
		`INSERT INTO tokenized_cards (client_id, token, last_four, expiration_ciphertext)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		card.ClientID, card.Token, card.LastFour, card.ExpirationCiphertext,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateCard
		}
		return nil, fmt.Errorf("repository: failed to insert card for client %s: %w", card.ClientID, err)
	}

	return &created, nil
}

// GetCardByID получает карту по ID
func (r *CardRepository) GetCardByID(ctx context.Context, id uuid.UUID) (*domain.TokenizedCard, error) {
	card, err := scanCard(r.db.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM tokenized_cards WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("repository: failed to get card %s: %w", id, err)
	}

	return card, nil
}

// ListCardsByClient получает все карты клиента
func (r *CardRepository) ListCardsByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.TokenizedCard, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+`
		 FROM tokenized_cards
		 WHERE client_id = $1
		 ORDER BY created_at DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list cards for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var cards []*domain.TokenizedCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cards: %w", err)
	}

	return cards, nil
}

func scanCard(row pgx.Row) (*domain.TokenizedCard, error) {
	c := &domain.TokenizedCard{}
	err := row.Scan(&c.ID, &c.ClientID, &c.Token, &c.LastFour, &c.ExpirationCiphertext, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
