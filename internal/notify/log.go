package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
)

// LogSender пишет уведомления в лог, когда SMTP не настроен
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender создает LogSender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendRejection логирует уведомление
func (s *LogSender) SendRejection(_ context.Context, notice domain.RejectionNotice) error {
	s.logger.Info("payment rejection notice",
		zap.String("client_id", notice.Client.ID.String()),
		zap.String("email", notice.Client.Email),
		zap.String("order_id", notice.OrderID.String()),
		zap.String("amount", notice.Amount.StringFixed(2)),
		zap.String("reason", notice.Reason),
	)
	return nil
}
