package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avc/checkout-gateway/internal/domain"
)

// PreferencesHandler администрирование системных настроек
type PreferencesHandler struct {
	prefService domain.PreferenceService
	logger      *zap.Logger
}

func NewPreferencesHandler(prefService domain.PreferenceService, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		prefService: prefService,
		logger:      logger,
	}
}

type createPreferenceRequest struct {
	Key         string `json:"prefKey" validate:"required,max=100"`
	Value       string `json:"prefValue" validate:"required"`
	DataType    string `json:"dataType" validate:"omitempty,oneof=INTEGER STRING BOOLEAN"`
	Description string `json:"description" validate:"max=255"`
}

type updatePreferenceRequest struct {
	Value       string `json:"prefValue" validate:"required"`
	DataType    string `json:"dataType" validate:"omitempty,oneof=INTEGER STRING BOOLEAN"`
	Description string `json:"description" validate:"max=255"`
}

func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	pref, err := h.prefService.GetPreference(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.respondError(w, r, "failed to get preference", err)
		return
	}

	writeSuccess(w, http.StatusOK, "preference retrieved", pref, h.logger)
}

func (h *PreferencesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPreferenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pref, err := h.prefService.CreatePreference(r.Context(), domain.SystemPreference{
		Key:         req.Key,
		Value:       req.Value,
		DataType:    domain.PreferenceDataType(req.DataType),
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, r, "failed to create preference", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "preference created", pref, h.logger)
}

func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePreferenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pref, err := h.prefService.UpdatePreference(r.Context(), domain.SystemPreference{
		Key:         chi.URLParam(r, "key"),
		Value:       req.Value,
		DataType:    domain.PreferenceDataType(req.DataType),
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, r, "failed to update preference", err)
		return
	}

	writeSuccess(w, http.StatusOK, "preference updated", pref, h.logger)
}

// respondError: на этих маршрутах отсутствующая настройка это 404, а не сбой конфигурации
func (h *PreferencesHandler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrPreferenceMissing) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, r, h.logger, op, err)
}
