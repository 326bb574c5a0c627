package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avc/checkout-gateway/internal/domain"
)

// MaxDeliveryAddressLength максимальная длина адреса доставки в символах
const MaxDeliveryAddressLength = 100

// OrderService реализует domain.OrderService
type OrderService struct {
	transactor domain.Transactor
	orderRepo  domain.OrderRepository
	unitPrice  decimal.Decimal
}

// NewOrderService создает новый OrderService
func NewOrderService(transactor domain.Transactor, orderRepo domain.OrderRepository, unitPrice decimal.Decimal) *OrderService {
	return &OrderService{
		transactor: transactor,
		orderRepo:  orderRepo,
		unitPrice:  unitPrice,
	}
}

// CreateOrder создает заказ в состоянии OPEN.
// Сумма считается как количество, умноженное на единую цену за единицу.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.NewOrder) (*domain.OrderSummary, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if req.DeliveryAddress == "" || utf8.RuneCountInString(req.DeliveryAddress) > MaxDeliveryAddressLength {
		return nil, fmt.Errorf("%w: delivery address must be 1-%d characters", ErrInvalidInput, MaxDeliveryAddressLength)
	}

	lines, err := s.buildLines(req.Items)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	var summary *domain.OrderSummary
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, store domain.TxStore) error {
		card, err := store.Cards().GetCardByID(ctx, req.CardID)
		if err != nil {
			return err
		}
		if card.ClientID != req.ClientID {
			return domain.ErrAccessDenied
		}

		order, err := store.Orders().CreateOrder(ctx, &domain.Order{
			ClientID:        req.ClientID,
			CardID:          card.ID,
			TotalAmount:     total,
			DeliveryAddress: req.DeliveryAddress,
			Items:           lines,
		})
		if err != nil {
			return err
		}

		summary = &domain.OrderSummary{
			ID:              order.ID,
			CardID:          card.ID,
			CardLastFour:    card.LastFour,
			TotalAmount:     order.TotalAmount,
			DeliveryAddress: order.DeliveryAddress,
			IsBlocked:       order.IsBlocked,
			CreatedAt:       order.CreatedAt,
		}
		return nil
	})
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrCardNotFound) || errors.Is(err, domain.ErrAccessDenied) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to create order for client %s: %w", req.ClientID, err)
	}

	return summary, nil
}

// buildLines объединяет повторяющиеся товары и фиксирует цену
func (s *OrderService) buildLines(items []domain.OrderItem) ([]domain.OrderLine, error) {
	index := make(map[uuid.UUID]int, len(items))
	lines := make([]domain.OrderLine, 0, len(items))

	for _, item := range items {
		if item.ProductID == uuid.Nil || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: every item needs a product and a positive quantity", ErrInvalidInput)
		}
		if i, ok := index[item.ProductID]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, domain.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: s.unitPrice,
		})
	}

	return lines, nil
}

// GetOrders получает все заказы клиента с состоянием оплаты
func (s *OrderService) GetOrders(ctx context.Context, clientID uuid.UUID) ([]*domain.OrderSummary, error) {
	orders, err := s.orderRepo.ListOrderSummaries(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for client %s: %w", clientID, err)
	}

	return orders, nil
}
