package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/metrics"
	"github.com/avc/checkout-gateway/internal/tokenization"
)

// maxConflictRetries сколько раз повторяется попытка при гонке за номер попытки
const maxConflictRetries = 3

// PaymentService машина состояний оплаты заказа (реализует domain.PaymentService).
//
// Каждая попытка выполняется в транзакции с блокировкой строки заказа.
// Отказ и блокировка заказа являются бизнес-результатами: функция транзакции
// возвращает nil, чтобы запись аудита и флаг is_blocked были зафиксированы.
type PaymentService struct {
	transactor domain.Transactor
	prefs      domain.PreferenceProvider
	notifier   domain.RejectionNotifier
	draw       tokenization.DrawFunc
	logger     *zap.Logger
}

// NewPaymentService создает новый PaymentService. nil draw заменяется на tokenization.DefaultDraw.
func NewPaymentService(
	transactor domain.Transactor,
	prefs domain.PreferenceProvider,
	notifier domain.RejectionNotifier,
	draw tokenization.DrawFunc,
	logger *zap.Logger,
) *PaymentService {
	if draw == nil {
		draw = tokenization.DefaultDraw
	}
	return &PaymentService{
		transactor: transactor,
		prefs:      prefs,
		notifier:   notifier,
		draw:       draw,
		logger:     logger,
	}
}

// attemptResult зафиксированный результат одной попытки
type attemptResult struct {
	tx      *domain.PaymentTransaction
	blocked bool
	notice  *domain.RejectionNotice
}

// ProcessPayment выполняет попытку оплаты заказа.
// Отклоненная попытка возвращается как PaymentOutcome без ошибки.
func (s *PaymentService) ProcessPayment(ctx context.Context, orderID, clientID, cardID uuid.UUID) (*domain.PaymentOutcome, error) {
	maxAttempts, err := s.prefs.GetInt(ctx, domain.PrefPaymentMaxAttempts)
	if err != nil {
		return nil, err
	}
	rejectionRate, err := s.prefs.GetInt(ctx, domain.PrefPaymentRejectionRate)
	if err != nil {
		return nil, err
	}

	var res *attemptResult
	for try := 1; ; try++ {
		res, err = s.attempt(ctx, orderID, clientID, cardID, maxAttempts, rejectionRate)
		if errors.Is(err, domain.ErrAttemptConflict) && try < maxConflictRetries {
			s.logger.Warn("payment attempt number taken, retrying",
				zap.String("order_id", orderID.String()),
				zap.Int("try", try),
			)
			continue
		}
		break
	}
	if err != nil {
		if isPaymentSentinel(err) {
			return nil, err
		}
		metrics.PaymentAttempt(metrics.OutcomeError)
		return nil, fmt.Errorf("payment service: failed to process payment for order %s: %w", orderID, err)
	}

	if res.blocked {
		metrics.PaymentAttempt(metrics.OutcomeBlocked)
		s.logger.Info("payment refused, order blocked", zap.String("order_id", orderID.String()))
		return nil, domain.ErrOrderBlocked
	}

	s.logger.Info("payment attempt recorded",
		zap.String("order_id", orderID.String()),
		zap.String("transaction_id", res.tx.ID.String()),
		zap.Int("attempt", res.tx.AttemptNo),
		zap.String("status", string(res.tx.Status)),
	)

	if res.tx.Status == domain.PaymentStatusRejected {
		metrics.PaymentAttempt(metrics.OutcomeRejected)
		// Уведомление ставится в очередь только после фиксации транзакции
		s.notifier.NotifyRejection(*res.notice)
		return &domain.PaymentOutcome{Transaction: res.tx, Message: domain.MsgPaymentRejected}, nil
	}

	metrics.PaymentAttempt(metrics.OutcomeSuccess)
	return &domain.PaymentOutcome{Transaction: res.tx}, nil
}

func (s *PaymentService) attempt(
	ctx context.Context,
	orderID, clientID, cardID uuid.UUID,
	maxAttempts, rejectionRate int,
) (*attemptResult, error) {
	res := &attemptResult{}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, store domain.TxStore) error {
		order, err := store.Orders().GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ClientID != clientID {
			return domain.ErrAccessDenied
		}

		if cardID != uuid.Nil {
			card, err := store.Cards().GetCardByID(ctx, cardID)
			if err != nil {
				return err
			}
			if card.ClientID != clientID {
				return domain.ErrAccessDenied
			}
		}

		paid, err := store.Payments().HasSuccess(ctx, orderID)
		if err != nil {
			return err
		}
		if paid {
			return domain.ErrOrderAlreadyPaid
		}

		last, err := store.Payments().MaxAttempt(ctx, orderID)
		if err != nil {
			return err
		}
		attemptNo := last + 1

		if order.IsBlocked || attemptNo > maxAttempts {
			if !order.IsBlocked {
				if err := store.Orders().BlockOrder(ctx, orderID); err != nil {
					return err
				}
			}
			res.blocked = true
			return nil
		}

		status := domain.PaymentStatusSuccess
		if s.draw() <= rejectionRate {
			status = domain.PaymentStatusRejected
		}

		tx := &domain.PaymentTransaction{
			ID:            uuid.New(),
			OrderID:       orderID,
			CorrelationID: uuid.New(),
			Amount:        order.TotalAmount,
			Status:        status,
			AttemptNo:     attemptNo,
		}
		if err := store.Payments().AppendTransaction(ctx, tx); err != nil {
			return err
		}
		res.tx = tx

		if status == domain.PaymentStatusSuccess {
			return nil
		}

		if attemptNo == maxAttempts {
			if err := store.Orders().BlockOrder(ctx, orderID); err != nil {
				return err
			}
		}

		client, err := store.Clients().GetClientByID(ctx, clientID)
		if err != nil {
			return err
		}
		res.notice = &domain.RejectionNotice{
			Client:  *client,
			OrderID: orderID,
			Amount:  order.TotalAmount,
			Reason:  domain.MsgPaymentRejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func isPaymentSentinel(err error) bool {
	for _, target := range []error{
		domain.ErrOrderNotFound,
		domain.ErrCardNotFound,
		domain.ErrAccessDenied,
		domain.ErrOrderAlreadyPaid,
		domain.ErrAttemptConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
