package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/handlers"
	"github.com/avc/checkout-gateway/internal/metrics"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Адрес клиента из заголовков прокси берется только по явному разрешению
	if deps.trustProxy {
		r.Use(middleware.RealIP)
	}

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(metrics.Instrument)
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	h := deps.handlers

	// Служебные эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Публичные эндпоинты
		r.Post("/auth/register", h.auth.Register)
		r.Post("/auth/login", h.auth.Login)

		// Сервисная токенизация под API-ключом
		r.With(
			deps.rateLimiter.Middleware,
			handlers.APIKeyMiddleware(deps.apiKey),
		).Post("/tokenize", h.cards.Tokenize)

		// Защищенные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(deps.jwtManager))

			r.With(deps.rateLimiter.Middleware).Post("/cards", h.cards.Create)
			r.Get("/cards", h.cards.List)
			r.Get("/cards/{cardId}", h.cards.Get)

			r.Post("/orders", h.orders.CreateOrder)
			r.Get("/orders", h.orders.GetOrders)
			r.Post("/orders/{orderId}/pay", h.orders.Pay)

			r.Post("/preferences", h.preferences.Create)
			r.Get("/preferences/{key}", h.preferences.Get)
			r.Put("/preferences/{key}", h.preferences.Update)
		})
	})
}
