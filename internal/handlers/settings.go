package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
)

type SettingsStore interface {
	SetCurrency(currency string)
	Currency() string
}

type settingsHandlers struct {
	ResponseHandler response.ResponseHandler
	Settings        SettingsStore
}

func NewSettingsHandlers(deps *Deps) *settingsHandlers {
	return &settingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		Settings:        deps.Settings,
	}
}

func (h *settingsHandlers) SettingsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/currency", h.GetCurrency)
	r.Put("/currency", h.UpdateCurrency)
	return r
}

func (h *settingsHandlers) GetCurrency(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.UpdateCurrencyRequest{Currency: h.Settings.Currency()})
}

func (h *settingsHandlers) UpdateCurrency(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Currency == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("currency is required"))
		return
	}
	h.Settings.SetCurrency(req.Currency)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, req)
}
