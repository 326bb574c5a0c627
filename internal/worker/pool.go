package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/metrics"
)

// DefaultSendTimeout ограничение времени на доставку одного уведомления
const DefaultSendTimeout = 10 * time.Second

// Pool представляет пул воркеров, доставляющих уведомления об отказах.
// Реализует domain.RejectionNotifier: постановка в очередь не блокирует,
// при переполнении уведомление отбрасывается с записью в лог.
// Очередь живет в памяти и теряется при падении процесса.
type Pool struct {
	workers     int
	queue       chan domain.RejectionNotice
	sender      domain.NotificationSender
	logger      *zap.Logger
	sendTimeout time.Duration
	wg          sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	sender domain.NotificationSender,
	logger *zap.Logger,
) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:     workers,
		queue:       make(chan domain.RejectionNotice, queueSize),
		sender:      sender,
		logger:      logger,
		sendTimeout: DefaultSendTimeout,
	}
}

// Start запускает воркеры
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop закрывает очередь и ждет, пока воркеры доставят оставшиеся уведомления
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// NotifyRejection ставит уведомление в очередь и сразу возвращает управление
func (p *Pool) NotifyRejection(notice domain.RejectionNotice) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		metrics.Notification(metrics.ResultDropped)
		p.logger.Warn("notification pool stopped, dropping notice",
			zap.String("order_id", notice.OrderID.String()),
		)
		return
	}

	select {
	case p.queue <- notice:
		metrics.Notification(metrics.ResultQueued)
	default:
		// Очередь заполнена, пропускаем
		metrics.Notification(metrics.ResultDropped)
		p.logger.Warn("notification queue is full, dropping notice",
			zap.String("order_id", notice.OrderID.String()),
			zap.String("client_id", notice.Client.ID.String()),
		)
	}
}

// worker доставляет уведомления из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("notification worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("notification worker stopping", zap.Int("worker_id", id))
			return
		case notice, ok := <-p.queue:
			if !ok {
				return
			}
			p.deliver(ctx, notice)
		}
	}
}

// deliver отправляет одно уведомление. Ошибки только логируются.
func (p *Pool) deliver(ctx context.Context, notice domain.RejectionNotice) {
	sendCtx, cancel := context.WithTimeout(ctx, p.sendTimeout)
	defer cancel()

	if err := p.sender.SendRejection(sendCtx, notice); err != nil {
		metrics.Notification(metrics.ResultFailed)
		p.logger.Error("failed to deliver rejection notice",
			zap.String("order_id", notice.OrderID.String()),
			zap.String("client_id", notice.Client.ID.String()),
			zap.Error(err),
		)
		return
	}

	metrics.Notification(metrics.ResultDelivered)
	p.logger.Debug("rejection notice delivered", zap.String("order_id", notice.OrderID.String()))
}
