package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
)

type PortfolioService interface {
	List(ctx context.Context) []dto.AssetPosition
	Add(ctx context.Context, req dto.CreateAssetRequest) (models.Asset, error)
	Update(ctx context.Context, id string, updates dto.AssetUpdates) (models.Asset, error)
	Remove(ctx context.Context, id string)
	Summary(ctx context.Context) dto.PortfolioSummary
}

type assetHandlers struct {
	ResponseHandler response.ResponseHandler
	PortfolioSvc    PortfolioService
}

func NewAssetHandlers(deps *Deps) *assetHandlers {
	return &assetHandlers{
		ResponseHandler: deps.ResponseHandler,
		PortfolioSvc:    deps.PortfolioSvc,
	}
}

func (h *assetHandlers) AssetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Get("/summary", h.Summary)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Remove)
	return r
}

func (h *assetHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.PortfolioSvc.List(r.Context()))
}

func (h *assetHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	a, err := h.PortfolioSvc.Add(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, a)
}

func (h *assetHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var updates dto.AssetUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	a, err := h.PortfolioSvc.Update(r.Context(), chi.URLParam(r, "id"), updates)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, a)
}

func (h *assetHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	h.PortfolioSvc.Remove(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *assetHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.PortfolioSvc.Summary(r.Context()))
}
