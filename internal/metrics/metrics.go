package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP-метрики
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Метрики ядра оплаты
var (
	paymentAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_attempts_total",
			Help: "Payment attempts by outcome.",
		},
		[]string{"outcome"},
	)

	tokenizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_tokenizations_total",
			Help: "Card tokenization requests by outcome.",
		},
		[]string{"outcome"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rejection_notifications_total",
			Help: "Rejection notifications by delivery result.",
		},
		[]string{"result"},
	)
)

// Значения метки outcome/result
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeBlocked  = "blocked"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"

	ResultQueued    = "queued"
	ResultDropped   = "dropped"
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

var initOnce sync.Once

// Init регистрирует метрики в default-регистре
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			paymentAttempts, tokenizations, notifications,
		)
	})
}

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// PaymentAttempt учитывает завершенную попытку оплаты
func PaymentAttempt(outcome string) {
	paymentAttempts.WithLabelValues(outcome).Inc()
}

// Tokenization учитывает запрос токенизации
func Tokenization(outcome string) {
	tokenizations.WithLabelValues(outcome).Inc()
}

// Notification учитывает судьбу уведомления об отказе
func Notification(result string) {
	notifications.WithLabelValues(result).Inc()
}

// Instrument измеряет RPS, задержку и число запросов в полёте.
// Метка route берется из шаблона маршрута chi, чтобы ID в пути не раздували кардинальность.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)
		route := routePattern(r)

		httpRequestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, route, code).Inc()
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
