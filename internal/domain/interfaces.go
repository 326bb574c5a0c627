package domain

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository определяет методы для работы с клиентами
type ClientRepository interface {
	CreateClient(ctx context.Context, client *Client) (*Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error)
	GetClientByUsername(ctx context.Context, username string) (*Client, error)
}

// CardRepository определяет методы хранилища токенизированных карт.
// InsertCard обязан соблюдать глобальную уникальность token.
type CardRepository interface {
	InsertCard(ctx context.Context, card *TokenizedCard) (*TokenizedCard, error)
	GetCardByID(ctx context.Context, id uuid.UUID) (*TokenizedCard, error)
	ListCardsByClient(ctx context.Context, clientID uuid.UUID) ([]*TokenizedCard, error)
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)
	BlockOrder(ctx context.Context, id uuid.UUID) error
	ListOrderSummaries(ctx context.Context, clientID uuid.UUID) ([]*OrderSummary, error)
}

// PaymentRepository определяет методы журнала попыток оплаты.
// AppendTransaction обязан соблюдать уникальность (order_id, attempt_no).
type PaymentRepository interface {
	MaxAttempt(ctx context.Context, orderID uuid.UUID) (int, error)
	HasSuccess(ctx context.Context, orderID uuid.UUID) (bool, error)
	AppendTransaction(ctx context.Context, tx *PaymentTransaction) error
	ListTransactions(ctx context.Context, orderID uuid.UUID) ([]*PaymentTransaction, error)
}

// PreferenceRepository определяет методы для работы с системными настройками
type PreferenceRepository interface {
	GetPreference(ctx context.Context, key string) (*SystemPreference, error)
	CreatePreference(ctx context.Context, pref *SystemPreference) (*SystemPreference, error)
	UpdatePreference(ctx context.Context, pref *SystemPreference) (*SystemPreference, error)
}

// TxStore набор репозиториев, работающих внутри одной транзакции БД
type TxStore interface {
	Clients() ClientRepository
	Cards() CardRepository
	Orders() OrderRepository
	Payments() PaymentRepository
}

// Transactor выполняет fn в транзакции. Ошибка fn откатывает транзакцию,
// nil фиксирует её.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, store TxStore) error) error
}

// PreferenceProvider возвращает целочисленные настройки по ключу
type PreferenceProvider interface {
	GetInt(ctx context.Context, key string) (int, error)
}

// SymmetricCipher шифрует короткие строки
type SymmetricCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// RejectionNotifier ставит уведомление в очередь и сразу возвращает управление
type RejectionNotifier interface {
	NotifyRejection(notice RejectionNotice)
}

// NotificationSender доставляет уведомление (вызывается фоновым воркером)
type NotificationSender interface {
	SendRejection(ctx context.Context, notice RejectionNotice) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, reg Registration) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// Registration данные для регистрации клиента
type Registration struct {
	Username     string
	Password     string
	FirstName    string
	FirstSurname string
	Email        string
	PhoneNumber  string
}

// CardService определяет методы хранилища карт
type CardService interface {
	Tokenize(ctx context.Context, req CardRequest) (*CardView, error)
	ListCards(ctx context.Context, clientID uuid.UUID) ([]*CardView, error)
	GetCard(ctx context.Context, cardID, clientID uuid.UUID) (*CardView, error)
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	CreateOrder(ctx context.Context, req NewOrder) (*OrderSummary, error)
	GetOrders(ctx context.Context, clientID uuid.UUID) ([]*OrderSummary, error)
}

// PaymentService определяет операцию оплаты заказа
type PaymentService interface {
	ProcessPayment(ctx context.Context, orderID, clientID, cardID uuid.UUID) (*PaymentOutcome, error)
}

// PreferenceService определяет методы администрирования настроек
type PreferenceService interface {
	GetPreference(ctx context.Context, key string) (*SystemPreference, error)
	CreatePreference(ctx context.Context, pref SystemPreference) (*SystemPreference, error)
	UpdatePreference(ctx context.Context, pref SystemPreference) (*SystemPreference, error)
}
