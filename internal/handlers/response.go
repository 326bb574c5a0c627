package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/avc/checkout-gateway/internal/service"
)

// maxBodyBytes ограничение размера тела JSON-запроса
const maxBodyBytes = 1 << 20

// Response единый конверт ответа API
type Response struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, resp Response, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil && logger != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any, logger *zap.Logger) {
	writeJSON(w, status, Response{Status: status, Message: message, Data: data}, logger)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Error: true, Status: status, Message: message}, nil)
}

// decodeJSON читает тело запроса и проверяет теги validate
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return errors.New(describeValidation(verrs))
		}
		return err
	}
	return nil
}

func describeValidation(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// statusFor переводит ошибку ядра в HTTP-статус и сообщение для клиента.
// Неизвестные ошибки считаются операционными и не раскрываются.
func statusFor(err error) (int, string) {
	var cardErr *domain.CardValidationError
	var provErr *domain.ProviderRejectedError

	switch {
	case errors.As(err, &cardErr):
		return http.StatusBadRequest, cardErr.Reason
	case errors.As(err, &provErr):
		return http.StatusBadRequest, provErr.Message
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidPreferenceValue),
		errors.Is(err, domain.ErrEmptyOrder):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrOrderBlocked):
		return http.StatusConflict, domain.MsgOrderBlocked
	case errors.Is(err, domain.ErrClientExists),
		errors.Is(err, domain.ErrDuplicateCard),
		errors.Is(err, domain.ErrOrderAlreadyPaid),
		errors.Is(err, domain.ErrAttemptConflict),
		errors.Is(err, domain.ErrPreferenceExists):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// respondError отвечает ошибкой, операционные ошибки логируются
func respondError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, op string, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op,
			zap.String("request_id", requestID(r)),
			zap.Error(err),
		)
	}
	writeError(w, status, message)
}
