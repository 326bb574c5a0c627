package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avc/checkout-gateway/internal/domain"
)

const clientColumns = `id, username, password_hash, first_name, first_surname, email, phone_number, is_active, created_at`

// ClientRepository реализует domain.ClientRepository
type ClientRepository struct {
	db DBTX
}

// NewClientRepository создает новый ClientRepository
func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

// CreateClient создает нового клиента
func (r *ClientRepository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	created := *client

	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (username, password_hash, first_name, first_surname, email, phone_number)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, is_active, created_at`,
		client.Username, client.PasswordHash, client.FirstName, client.FirstSurname, client.Email, client.PhoneNumber,
	).Scan(&created.ID, &created.IsActive, &created.CreatedAt)

	if err != nil {
		// Логин или email уже заняты
		if isUniqueViolation(err) {
			return nil, domain.ErrClientExists
		}
		return nil, fmt.Errorf("repository: failed to create client %q: %w", client.Username, err)
	}

	return &created, nil
}

// GetClientByID получает клиента по ID
func (r *ClientRepository) GetClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("repository: failed to get client by id %s: %w", id, err)
	}

	return client, nil
}

// GetClientByUsername получает клиента по логину
func (r *ClientRepository) GetClientByUsername(ctx context.Context, username string) (*domain.Client, error) {
	client, err := scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE username = $1`,
		username,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("repository: failed to get client by username %q: %w", username, err)
	}

	return client, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	c := &domain.Client{}
	err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.FirstName, &c.FirstSurname,
		&c.Email, &c.PhoneNumber, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
