package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avc/checkout-gateway/internal/domain"
)

const orderColumns = `id, client_id, card_id, total_amount, delivery_address, is_blocked, created_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder создает заказ и его позиции.
// Вызывается внутри транзакции, чтобы заказ не сохранился без позиций.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	created := *order

	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (client_id, card_id, total_amount, delivery_address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_blocked, created_at`,
		order.ClientID, order.CardID, order.TotalAmount, order.DeliveryAddress,
	).Scan(&created.ID, &created.IsBlocked, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create order for client %s: %w", order.ClientID, err)
	}

	for _, item := range order.Items {
		_, err := r.db.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4)`,
			created.ID, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to add item %s to order %s: %w", item.ProductID, created.ID, err)
		}
	}

	return &created, nil
}

// GetOrderByID получает заказ по ID
func (r *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.getOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetOrderForUpdate получает заказ и блокирует строку до конца транзакции
func (r *OrderRepository) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.getOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepository) getOrder(ctx context.Context, query string, id uuid.UUID) (*domain.Order, error) {
	order := &domain.Order{}

	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.ClientID, &order.CardID, &order.TotalAmount,
		&order.DeliveryAddress, &order.IsBlocked, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", id, err)
	}

	return order, nil
}

// BlockOrder выставляет is_blocked. Флаг никогда не сбрасывается.
func (r *OrderRepository) BlockOrder(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET is_blocked = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to block order %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

// ListOrderSummaries получает заказы клиента вместе с состоянием оплаты
func (r *OrderRepository) ListOrderSummaries(ctx context.Context, clientID uuid.UUID) ([]*domain.OrderSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT o.id, o.card_id, c.last_four, o.total_amount, o.delivery_address, o.is_blocked,
		        EXISTS(SELECT 1 FROM payment_transactions p WHERE p.order_id = o.id AND p.status = $2) AS paid,
		        (SELECT COALESCE(MAX(p.attempt_no), 0) FROM payment_transactions p WHERE p.order_id = o.id) AS attempts,
		        o.created_at
		 FROM orders o
		 JOIN tokenized_cards c ON c.id = o.card_id
		 WHERE o.client_id = $1
		 ORDER BY o.created_at DESC`,
		clientID, domain.PaymentStatusSuccess,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var summaries []*domain.OrderSummary
	for rows.Next() {
		s := &domain.OrderSummary{}
		err := rows.Scan(&s.ID, &s.CardID, &s.CardLastFour, &s.TotalAmount, &s.DeliveryAddress,
			&s.IsBlocked, &s.Paid, &s.Attempts, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return summaries, nil
}
