package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Username     string `json:"username" validate:"required,min=4,max=100"`
	Password     string `json:"password" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	FirstSurname string `json:"firstSurname" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phoneNumber" validate:"omitempty,max=20"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Register(r.Context(), domain.Registration{
		Username:     req.Username,
		Password:     req.Password,
		FirstName:    req.FirstName,
		FirstSurname: req.FirstSurname,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		respondError(w, r, h.logger, "failed to register", err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeSuccess(w, http.StatusCreated, "client registered", authResponse{Token: token, Type: "Bearer"}, h.logger)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, h.logger, "failed to login", err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeSuccess(w, http.StatusOK, "login successful", authResponse{Token: token, Type: "Bearer"}, h.logger)
}
