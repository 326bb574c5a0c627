package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/config"
	"github.com/avc/checkout-gateway/internal/handlers"
	"github.com/avc/checkout-gateway/internal/metrics"
	"github.com/avc/checkout-gateway/internal/worker"
)

// App представляет приложение
type App struct {
	config      *config.Config
	logger      *zap.Logger
	db          *pgxpool.Pool
	router      *chi.Mux
	notifyPool  *worker.Pool
	rateLimiter *handlers.RateLimiter
	server      *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	metrics.Init()

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:      cfg,
		logger:      logger,
		db:          dbPool,
		router:      router,
		notifyPool:  deps.notifyPool,
		rateLimiter: deps.rateLimiter,
		server:      server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск пула уведомлений
	a.notifyPool.Start(ctx)
	a.logger.Info("notification pool started")

	go a.rateLimiter.Run(ctx)

	// Запуск HTTP сервера и ожидание сигнала завершения
	serveErr := a.serve(ctx)

	// Graceful shutdown выполняется и при падении Listen
	a.shutdown(cancel)

	return serveErr
}
