package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
)

type OrdersHandler struct {
	orderService   domain.OrderService
	paymentService domain.PaymentService
	logger         *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, paymentService domain.PaymentService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService:   orderService,
		paymentService: paymentService,
		logger:         logger,
	}
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type createOrderRequest struct {
	TokenizedCardID string             `json:"tokenizedCardId" validate:"required,uuid"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required,max=100"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type payRequest struct {
	TokenizedCardID string `json:"tokenizedCardId" validate:"omitempty,uuid"`
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	clientID, ok := GetClientID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order := domain.NewOrder{
		ClientID:        clientID,
		CardID:          uuid.MustParse(req.TokenizedCardID),
		DeliveryAddress: req.DeliveryAddress,
		Items:           make([]domain.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	summary, err := h.orderService.CreateOrder(r.Context(), order)
	if err != nil {
		respondError(w, r, h.logger, "failed to create order", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "order created", summary, h.logger)
}

func (h *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	clientID, ok := GetClientID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), clientID)
	if err != nil {
		respondError(w, r, h.logger, "failed to get orders", err)
		return
	}

	message := fmt.Sprintf("orders retrieved: %d", len(orders))
	if len(orders) == 0 {
		message = "client has no orders"
	}
	writeSuccess(w, http.StatusOK, message, orders, h.logger)
}

// Pay выполняет попытку оплаты. Отклонение отвечает 400, но запись попытки
// уже зафиксирована и возвращается в data.
func (h *OrdersHandler) Pay(w http.ResponseWriter, r *http.Request) {
	clientID, ok := GetClientID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	// Тело необязательно: без него карта не проверяется
	var req payRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cardID := uuid.Nil
	if req.TokenizedCardID != "" {
		cardID = uuid.MustParse(req.TokenizedCardID)
	}

	outcome, err := h.paymentService.ProcessPayment(r.Context(), orderID, clientID, cardID)
	if err != nil {
		respondError(w, r, h.logger, "failed to process payment", err)
		return
	}

	if outcome.Rejected() {
		writeJSON(w, http.StatusBadRequest, Response{
			Error:   true,
			Status:  http.StatusBadRequest,
			Message: outcome.Message,
			Data:    outcome.Transaction,
		}, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "payment approved", outcome.Transaction, h.logger)
}
