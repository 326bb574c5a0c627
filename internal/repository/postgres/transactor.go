package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avc/checkout-gateway/internal/domain"
)

// Transactor реализует domain.Transactor поверх pgx
type Transactor struct {
	db DBTX
}

// NewTransactor создает новый Transactor
func NewTransactor(db DBTX) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction выполняет fn в транзакции.
// Ошибка fn откатывает транзакцию и возвращается как есть.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store domain.TxStore) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if err := fn(ctx, newTxStore(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return nil
}

type txStore struct {
	clients  *ClientRepository
	cards    *CardRepository
	orders   *OrderRepository
	payments *PaymentRepository
}

func newTxStore(tx pgx.Tx) *txStore {
	return &txStore{
		clients:  NewClientRepository(tx),
		cards:    NewCardRepository(tx),
		orders:   NewOrderRepository(tx),
		payments: NewPaymentRepository(tx),
	}
}

func (s *txStore) Clients() domain.ClientRepository   { return s.clients }
func (s *txStore) Cards() domain.CardRepository       { return s.cards }
func (s *txStore) Orders() domain.OrderRepository     { return s.orders }
func (s *txStore) Payments() domain.PaymentRepository { return s.payments }
