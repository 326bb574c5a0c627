package app

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/config"
	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/handlers"
	"github.com/avc/checkout-gateway/internal/notify"
	"github.com/avc/checkout-gateway/internal/repository/postgres"
	"github.com/avc/checkout-gateway/internal/service"
	"github.com/avc/checkout-gateway/internal/tokenization"
	"github.com/avc/checkout-gateway/internal/utils/cipher"
	"github.com/avc/checkout-gateway/internal/utils/jwt"
	"github.com/avc/checkout-gateway/internal/utils/password"
	"github.com/avc/checkout-gateway/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	client     domain.ClientRepository
	card       domain.CardRepository
	order      domain.OrderRepository
	preference domain.PreferenceRepository
	transactor domain.Transactor
}

// services содержит все сервисы приложения
type services struct {
	auth       domain.AuthService
	preference *service.PreferenceService
	card       domain.CardService
	order      domain.OrderService
	payment    domain.PaymentService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth        *handlers.AuthHandler
	cards       *handlers.CardsHandler
	orders      *handlers.OrdersHandler
	preferences *handlers.PreferencesHandler
	health      *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos       *repositories
	services    *services
	handlers    *handlerSet
	jwtManager  *jwt.Manager
	notifyPool  *worker.Pool
	rateLimiter *handlers.RateLimiter
	apiKey      string
	trustProxy  bool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		client:     postgres.NewClientRepository(dbPool),
		card:       postgres.NewCardRepository(dbPool),
		order:      postgres.NewOrderRepository(dbPool),
		preference: postgres.NewPreferenceRepository(dbPool),
		transactor: postgres.NewTransactor(dbPool),
	}

	// Создание утилит
	aes, err := cipher.NewAESGCM(cfg.CryptoKey)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	passwordHasher := password.NewBCryptHasher(password.DefaultCost, cfg.MinPasswordLength)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Пул уведомлений об отказах
	notifyPool := worker.NewPool(cfg.NotifyWorkers, cfg.NotifyQueueSize, newNotificationSender(cfg, logger), logger)

	// Создание сервисов
	prefs := service.NewPreferenceService(repos.preference)
	engine := tokenization.NewEngine(tokenization.NewValidator(), prefs, aes, tokenization.DefaultDraw)
	svcs := &services{
		auth:       service.NewAuthService(repos.client, passwordHasher, jwtManager),
		preference: prefs,
		card:       service.NewCardService(engine, repos.client, repos.card, logger),
		order:      service.NewOrderService(repos.transactor, repos.order, cfg.OrderUnitPrice),
		payment:    service.NewPaymentService(repos.transactor, prefs, notifyPool, tokenization.DefaultDraw, logger),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:        handlers.NewAuthHandler(svcs.auth, logger),
		cards:       handlers.NewCardsHandler(svcs.card, logger),
		orders:      handlers.NewOrdersHandler(svcs.order, svcs.payment, logger),
		preferences: handlers.NewPreferencesHandler(svcs.preference, logger),
		health:      handlers.NewHealthHandler(dbPool, logger),
	}

	if cfg.TokenizationAPIKey == "" {
		logger.Warn("TOKENIZATION_API_KEY is empty, /api/v1/tokenize will reject all requests")
	}

	return &dependencies{
		repos:       repos,
		services:    svcs,
		handlers:    hdlrs,
		jwtManager:  jwtManager,
		notifyPool:  notifyPool,
		rateLimiter: handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		apiKey:      cfg.TokenizationAPIKey,
		trustProxy:  cfg.TrustProxyHeaders,
	}, nil
}

// newNotificationSender выбирает транспорт уведомлений: SMTP или только лог
func newNotificationSender(cfg *config.Config, logger *zap.Logger) domain.NotificationSender {
	if cfg.SMTPHost == "" {
		logger.Info("SMTP_HOST is empty, rejection notices will only be logged")
		return notify.NewLogSender(logger)
	}
	return notify.NewMailSender(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
}
