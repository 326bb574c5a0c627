package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/checkout-gateway/internal/domain"
)

var orderRowColumns = []string{
	"id", "client_id", "card_id", "total_amount", "delivery_address", "is_blocked", "created_at",
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	price := decimal.RequireFromString("10.00")
	order := &domain.Order{
		ClientID:        uuid.New(),
		CardID:          uuid.New(),
		TotalAmount:     decimal.RequireFromString("30.00"),
		DeliveryAddress: "Calle Mayor 1",
		Items: []domain.OrderLine{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: price},
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: price},
		},
	}

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.ClientID, order.CardID, order.TotalAmount, order.DeliveryAddress).
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_blocked", "created_at"}).AddRow(id, false, time.Now()))
		for _, item := range order.Items {
			mock.ExpectExec(`INSERT INTO order_items`).
				WithArgs(id, item.ProductID, item.Quantity, item.UnitPrice).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}

		created, err := repo.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.False(t, created.IsBlocked)
		assert.True(t, order.TotalAmount.Equal(created.TotalAmount))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item insert error", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.ClientID, order.CardID, order.TotalAmount, order.DeliveryAddress).
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_blocked", "created_at"}).AddRow(id, false, time.Now()))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(id, order.Items[0].ProductID, order.Items[0].Quantity, order.Items[0].UnitPrice).
			WillReturnError(errors.New("database error"))

		_, err := repo.CreateOrder(ctx, order)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("By ID", func(t *testing.T) {
		id, clientID, cardID := uuid.New(), uuid.New(), uuid.New()
		rows := pgxmock.NewRows(orderRowColumns).
			AddRow(id, clientID, cardID, decimal.RequireFromString("42.00"), "Calle Mayor 1", false, time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id = \$1$`).
			WithArgs(id).
			WillReturnRows(rows)

		order, err := repo.GetOrderByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, clientID, order.ClientID)
		assert.Equal(t, "42", order.TotalAmount.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("For update locks the row", func(t *testing.T) {
		id := uuid.New()
		rows := pgxmock.NewRows(orderRowColumns).
			AddRow(id, uuid.New(), uuid.New(), decimal.RequireFromString("42.00"), "Calle Mayor 1", true, time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(id).
			WillReturnRows(rows)

		order, err := repo.GetOrderForUpdate(ctx, id)
		require.NoError(t, err)
		assert.True(t, order.IsBlocked)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM orders`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetOrderByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_BlockOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE orders SET is_blocked = TRUE`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.BlockOrder(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE orders SET is_blocked = TRUE`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.BlockOrder(ctx, id), domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListOrderSummaries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	columns := []string{
		"id", "card_id", "last_four", "total_amount", "delivery_address",
		"is_blocked", "paid", "attempts", "created_at",
	}

	t.Run("Success", func(t *testing.T) {
		clientID := uuid.New()
		rows := pgxmock.NewRows(columns).
			AddRow(uuid.New(), uuid.New(), "6467", decimal.RequireFromString("42.00"), "Calle Mayor 1", false, true, 1, time.Now()).
			AddRow(uuid.New(), uuid.New(), "0005", decimal.RequireFromString("10.00"), "Calle Mayor 2", true, false, 3, time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM orders o JOIN tokenized_cards c`).
			WithArgs(clientID, domain.PaymentStatusSuccess).
			WillReturnRows(rows)

		summaries, err := repo.ListOrderSummaries(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.True(t, summaries[0].Paid)
		assert.Equal(t, "6467", summaries[0].CardLastFour)
		assert.True(t, summaries[1].IsBlocked)
		assert.Equal(t, 3, summaries[1].Attempts)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		clientID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM orders o`).
			WithArgs(clientID, domain.PaymentStatusSuccess).
			WillReturnError(errors.New("database error"))

		_, err := repo.ListOrderSummaries(ctx, clientID)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
