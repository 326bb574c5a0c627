package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus представляет результат попытки оплаты
type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Ключи системных настроек, которые читает ядро оплаты
const (
	PrefPaymentRejectionRate = "payment.rejection_rate"
	PrefPaymentMaxAttempts   = "payment.max_attempts"
	PrefTokenRejectionRate   = "tokencard.rejection_rate"
	PrefProductMinStock      = "product.min_stock_visibility"
)

// PreferenceDataType описывает тип значения настройки
type PreferenceDataType string

const (
	PreferenceTypeInteger PreferenceDataType = "INTEGER"
	PreferenceTypeString  PreferenceDataType = "STRING"
	PreferenceTypeBoolean PreferenceDataType = "BOOLEAN"
)

// Client представляет клиента магазина
type Client struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	FirstSurname string    `json:"firstSurname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TokenizedCard представляет сохраненную токенизированную карту.
// Зашифрованная дата истечения никогда не покидает ядро.
type TokenizedCard struct {
	ID                   uuid.UUID
	ClientID             uuid.UUID
	Token                string
	LastFour             string
	ExpirationCiphertext string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// CardView публичное представление карты без шифротекста
type CardView struct {
	ID        uuid.UUID  `json:"cardId"`
	ClientID  uuid.UUID  `json:"clientId"`
	Token     string     `json:"token"`
	LastFour  string     `json:"lastFourDigits"`
	CreatedAt time.Time  `json:"creationDate"`
	UpdatedAt *time.Time `json:"updateDate,omitempty"`
}

// View возвращает представление карты для внешнего слоя
func (c *TokenizedCard) View() *CardView {
	return &CardView{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Token:     c.Token,
		LastFour:  c.LastFour,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CardRequest содержит исходные данные карты для токенизации
type CardRequest struct {
	ClientID        uuid.UUID
	CardNumber      string
	CVV             string
	ExpirationMonth string
	ExpirationYear  string
}

// ExpirationDate возвращает дату истечения в формате MM/YY
func (r CardRequest) ExpirationDate() string {
	return r.ExpirationMonth + "/" + r.ExpirationYear
}

// TokenizationResult результат работы движка токенизации (без побочных эффектов)
type TokenizationResult struct {
	ClientID             uuid.UUID
	Token                string
	LastFour             string
	ExpirationCiphertext string
}

// Order представляет заказ клиента
type Order struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	CardID          uuid.UUID
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	IsBlocked       bool
	CreatedAt       time.Time
	Items           []OrderLine
}

// OrderLine сохраненная позиция заказа с ценой на момент создания
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderItem позиция нового заказа
type OrderItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
}

// NewOrder данные для создания заказа
type NewOrder struct {
	ClientID        uuid.UUID
	CardID          uuid.UUID
	DeliveryAddress string
	Items           []OrderItem
}

// OrderSummary материализованное представление заказа для клиента
type OrderSummary struct {
	ID              uuid.UUID       `json:"orderId"`
	CardID          uuid.UUID       `json:"tokenizedCardId"`
	CardLastFour    string          `json:"cardLastFourDigits"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress"`
	IsBlocked       bool            `json:"isBlockedForPayment"`
	Paid            bool            `json:"paid"`
	Attempts        int             `json:"paymentAttempts"`
	CreatedAt       time.Time       `json:"creationDate"`
}

// PaymentTransaction запись аудита для каждой попытки оплаты
type PaymentTransaction struct {
	ID            uuid.UUID       `json:"transactionId"`
	OrderID       uuid.UUID       `json:"orderId"`
	CorrelationID uuid.UUID       `json:"correlationId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"status"`
	AttemptNo     int             `json:"attempt"`
	RecordedAt    time.Time       `json:"transactionDate"`
}

// PaymentOutcome результат обработки платежа.
// Отклонение является зафиксированным бизнес-результатом, а не ошибкой.
type PaymentOutcome struct {
	Transaction *PaymentTransaction
	Message     string
}

// Rejected сообщает, была ли попытка отклонена
func (o *PaymentOutcome) Rejected() bool {
	return o.Transaction != nil && o.Transaction.Status == PaymentStatusRejected
}

// RejectionNotice уведомление клиента об отклоненном платеже
type RejectionNotice struct {
	Client  Client
	OrderID uuid.UUID
	Amount  decimal.Decimal
	Reason  string
}

// SystemPreference представляет настройку времени выполнения
type SystemPreference struct {
	Key         string             `json:"prefKey"`
	Value       string             `json:"prefValue"`
	DataType    PreferenceDataType `json:"dataType"`
	Description string             `json:"description,omitempty"`
	UpdatedAt   *time.Time         `json:"updateDate,omitempty"`
}
