package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avc/checkout-gateway/internal/domain"
)

// PaymentRepository реализует domain.PaymentRepository (журнал попыток оплаты)
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository создает новый PaymentRepository
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// MaxAttempt возвращает номер последней попытки или 0, если попыток не было
func (r *PaymentRepository) MaxAttempt(ctx context.Context, orderID uuid.UUID) (int, error) {
	var attempt int

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(attempt_no), 0) FROM payment_transactions WHERE order_id = $1`,
		orderID,
	).Scan(&attempt)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to get max attempt for order %s: %w", orderID, err)
	}

	return attempt, nil
}

// HasSuccess сообщает, есть ли у заказа успешная оплата
func (r *PaymentRepository) HasSuccess(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var paid bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payment_transactions WHERE order_id = $1 AND status = $2)`,
		orderID, domain.PaymentStatusSuccess,
	).Scan(&paid)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check payment status for order %s: %w", orderID, err)
	}

	return paid, nil
}

// AppendTransaction добавляет запись в журнал и заполняет RecordedAt.
// Повтор (order_id, attempt_no) возвращает domain.ErrAttemptConflict.
func (r *PaymentRepository) AppendTransaction(ctx context.Context, tx *domain.PaymentTransaction) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payment_transactions (id, order_id, correlation_id, amount, status, attempt_no)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING recorded_at`,
		tx.ID, tx.OrderID, tx.CorrelationID, tx.Amount, tx.Status, tx.AttemptNo,
	).Scan(&tx.RecordedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAttemptConflict
		}
		return fmt.Errorf("repository: failed to append attempt %d for order %s: %w", tx.AttemptNo, tx.OrderID, err)
	}

	return nil
}

// ListTransactions возвращает журнал попыток заказа по возрастанию номера
func (r *PaymentRepository) ListTransactions(ctx context.Context, orderID uuid.UUID) ([]*domain.PaymentTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, correlation_id, amount, status, attempt_no, recorded_at
		 FROM payment_transactions
		 WHERE order_id = $1
		 ORDER BY attempt_no ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list transactions for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var txs []*domain.PaymentTransaction
	for rows.Next() {
		tx := &domain.PaymentTransaction{}
		err := rows.Scan(&tx.ID, &tx.OrderID, &tx.CorrelationID, &tx.Amount, &tx.Status, &tx.AttemptNo, &tx.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return txs, nil
}
