package config

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// aesKeySize длина ключа AES-256 в байтах
const aesKeySize = 32

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	CryptoKey   []byte        // Ключ AES-256 для шифрования даты истечения карты
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Ключ сервисного доступа к /api/v1/tokenize
	TokenizationAPIKey string

	// Пул уведомлений об отказах
	NotifyWorkers   int
	NotifyQueueSize int

	// SMTP. Пустой хост включает транспорт, который только логирует
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Ограничение запросов токенизации на IP
	RateLimitRPS   float64
	RateLimitBurst int

	// Доверять X-Forwarded-For/X-Real-IP (только за своим прокси)
	TrustProxyHeaders bool

	OrderUnitPrice    decimal.Decimal // Цена единицы товара в заказе
	MinPasswordLength int             // Минимальная длина пароля
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:])
}

// LoadFrom загружает конфигурацию из переданных аргументов и переменных окружения.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadFrom(args []string) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:       24 * time.Hour,
		LogLevel:          "info",
		NotifyWorkers:     2,
		NotifyQueueSize:   100,
		SMTPPort:          587,
		RateLimitRPS:      5,
		RateLimitBurst:    10,
		OrderUnitPrice:    decimal.RequireFromString("10.00"),
		MinPasswordLength: 8,
	}

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if v, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}
	if v, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}
	if v, ok := os.LookupEnv("JWT_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			cfg.JWTTokenTTL = ttl
		}
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	cfg.TokenizationAPIKey = os.Getenv("TOKENIZATION_API_KEY")

	cfg.NotifyWorkers = positiveInt("NOTIFY_WORKERS", cfg.NotifyWorkers)
	cfg.NotifyQueueSize = positiveInt("NOTIFY_QUEUE_SIZE", cfg.NotifyQueueSize)

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort = positiveInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")

	if v, ok := os.LookupEnv("RATE_LIMIT_RPS"); ok {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps >= 0 {
			cfg.RateLimitRPS = rps
		}
	}
	cfg.RateLimitBurst = positiveInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)
	if v, ok := os.LookupEnv("TRUST_PROXY_HEADERS"); ok {
		if trust, err := strconv.ParseBool(v); err == nil {
			cfg.TrustProxyHeaders = trust
		}
	}
	cfg.MinPasswordLength = positiveInt("MIN_PASSWORD_LENGTH", cfg.MinPasswordLength)

	if v, ok := os.LookupEnv("ORDER_UNIT_PRICE"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil || !price.IsPositive() {
			return nil, fmt.Errorf("invalid ORDER_UNIT_PRICE %q", v)
		}
		cfg.OrderUnitPrice = price
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	key, err := decodeAESKey(os.Getenv("CRYPTO_AES_KEY"))
	if err != nil {
		return nil, err
	}
	cfg.CryptoKey = key

	return cfg, nil
}

func decodeAESKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, fmt.Errorf("CRYPTO_AES_KEY is required")
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("CRYPTO_AES_KEY is not valid base64: %w", err)
	}
	if len(key) != aesKeySize {
		return nil, fmt.Errorf("CRYPTO_AES_KEY must decode to %d bytes, got %d", aesKeySize, len(key))
	}
	return key, nil
}

func positiveInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
