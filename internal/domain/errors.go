package domain

import "errors"

// Ошибки клиентов и доступа
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientExists       = errors.New("client already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
)

// Ошибки карт и токенизации
var (
	ErrInvalidCardData  = errors.New("invalid card data")
	ErrInvalidExpiry    = errors.New("invalid expiration date format")
	ErrProviderRejected = errors.New("tokenization rejected by provider")
	ErrCardNotFound     = errors.New("card not found")
	ErrDuplicateCard    = errors.New("card already tokenized")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Ошибки заказов и платежей
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderBlocked     = errors.New("order blocked for payment")
	ErrOrderAlreadyPaid = errors.New("order already paid")
	ErrAttemptConflict  = errors.New("concurrent payment attempt")
	ErrEmptyOrder       = errors.New("order has no items")
)

// Ошибки настроек
var (
	ErrPreferenceMissing    = errors.New("preference missing")
	ErrPreferenceNotInteger = errors.New("preference is not an integer")
	ErrPreferenceExists     = errors.New("preference already exists")
)

// Сообщения, которые видит клиент
const (
	MsgTokenRejected   = "La generación del token ha sido rechazada por el proveedor."
	MsgPaymentRejected = "El servicio de pago ha rechazado su transaccion, valide los datos ingresados."
	MsgOrderBlocked    = "El pedido ha sido bloqueado por sobrepasar la cantidad de intentos de pago."
)

// CardValidationError описывает первую проваленную проверку карты
type CardValidationError struct {
	Reason string
	Cause  error
}

func (e *CardValidationError) Error() string {
	return e.Reason
}

// Is позволяет сравнивать с ErrInvalidCardData через errors.Is
func (e *CardValidationError) Is(target error) bool {
	return target == ErrInvalidCardData || (e.Cause != nil && target == e.Cause)
}

// ProviderRejectedError отказ симулированного провайдера токенизации
type ProviderRejectedError struct {
	Message string
}

func (e *ProviderRejectedError) Error() string {
	return e.Message
}

func (e *ProviderRejectedError) Is(target error) bool {
	return target == ErrProviderRejected
}
