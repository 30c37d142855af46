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

type GoalService interface {
	List(ctx context.Context) []dto.GoalProgress
	Add(ctx context.Context, req dto.CreateGoalRequest) (models.Goal, error)
	Update(ctx context.Context, id string, updates dto.GoalUpdates) (models.Goal, error)
	AddFunds(ctx context.Context, id string, amount float64) (models.Goal, error)
	Remove(ctx context.Context, id string)
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         GoalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) GoalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/funds", h.AddFunds)
	r.Delete("/{id}", h.Remove)
	return r
}

func (h *goalHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.GoalSvc.List(r.Context()))
}

func (h *goalHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	g, err := h.GoalSvc.Add(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, g)
}

func (h *goalHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var updates dto.GoalUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	g, err := h.GoalSvc.Update(r.Context(), chi.URLParam(r, "id"), updates)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, g)
}

func (h *goalHandlers) AddFunds(w http.ResponseWriter, r *http.Request) {
	var req dto.AddGoalFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	g, err := h.GoalSvc.AddFunds(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, g)
}

func (h *goalHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	h.GoalSvc.Remove(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
