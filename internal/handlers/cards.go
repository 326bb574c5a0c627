package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
)

// CardsHandler обрабатывает токенизацию и чтение карт клиента
type CardsHandler struct {
	cardService domain.CardService
	logger      *zap.Logger
}

func NewCardsHandler(cardService domain.CardService, logger *zap.Logger) *CardsHandler {
	return &CardsHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// Формат полей проверяет ядро токенизации, здесь только наличие
type cardRequest struct {
	ClientID        string `json:"clientId" validate:"omitempty,uuid"`
	CardNumber      string `json:"cardNumber" validate:"required"`
	CVV             string `json:"cvv" validate:"required"`
	ExpirationMonth string `json:"expirationMonth" validate:"required"`
	ExpirationYear  string `json:"expirationYear" validate:"required"`
}

func (req cardRequest) toDomain(clientID uuid.UUID) domain.CardRequest {
	return domain.CardRequest{
		ClientID:        clientID,
		CardNumber:      req.CardNumber,
		CVV:             req.CVV,
		ExpirationMonth: req.ExpirationMonth,
		ExpirationYear:  req.ExpirationYear,
	}
}

// Create токенизирует карту аутентифицированного клиента
func (h *CardsHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID, ok := GetClientID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// clientId в теле может только совпадать с владельцем токена
	if req.ClientID != "" && req.ClientID != clientID.String() {
		writeError(w, http.StatusForbidden, domain.ErrAccessDenied.Error())
		return
	}

	h.tokenize(w, r, req.toDomain(clientID))
}

// Tokenize сервисная точка входа под API-ключом, clientId берется из тела
func (h *CardsHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "clientId is required")
		return
	}

	h.tokenize(w, r, req.toDomain(clientID))
}

func (h *CardsHandler) tokenize(w http.ResponseWriter, r *http.Request, req domain.CardRequest) {
	card, err := h.cardService.Tokenize(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, "failed to tokenize card", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "card tokenized", card, h.logger)
}

// List возвращает карты клиента
func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, ok := GetClientID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	cards, err := h.cardService.ListCards(r.Context(), clientID)
	if err != nil {
		respondError(w, r, h.logger, "failed to list cards", err)
		return
	}

	writeSuccess(w, http.StatusOK, "cards retrieved", cards, h.logger)
}

// Get возвращает карту по ID
func (h *CardsHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID, ok := GetClientID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "cardId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	card, err := h.cardService.GetCard(r.Context(), cardID, clientID)
	if err != nil {
		respondError(w, r, h.logger, "failed to get card", err)
		return
	}

	writeSuccess(w, http.StatusOK, "card retrieved", card, h.logger)
}
