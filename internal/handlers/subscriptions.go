package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
)

const defaultUpcomingDays = 30

type SubscriptionService interface {
	Overview(ctx context.Context) dto.SubscriptionsOverview
	Add(ctx context.Context, req dto.CreateSubscriptionRequest) (models.Subscription, error)
	Remove(ctx context.Context, id string)
	Upcoming(ctx context.Context, days int) []dto.UpcomingRenewal
}

type subscriptionHandlers struct {
	ResponseHandler response.ResponseHandler
	SubscriptionSvc SubscriptionService
}

func NewSubscriptionHandlers(deps *Deps) *subscriptionHandlers {
	return &subscriptionHandlers{
		ResponseHandler: deps.ResponseHandler,
		SubscriptionSvc: deps.SubscriptionSvc,
	}
}

func (h *subscriptionHandlers) SubscriptionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Overview)
	r.Post("/", h.Add)
	r.Get("/upcoming", h.Upcoming)
	r.Delete("/{id}", h.Remove)
	return r
}

func (h *subscriptionHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SubscriptionSvc.Overview(r.Context()))
}

func (h *subscriptionHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	sub, err := h.SubscriptionSvc.Add(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, sub)
}

func (h *subscriptionHandlers) Upcoming(w http.ResponseWriter, r *http.Request) {
	days := defaultUpcomingDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("days must be a non-negative integer"))
			return
		}
		days = parsed
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SubscriptionSvc.Upcoming(r.Context(), days))
}

func (h *subscriptionHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	h.SubscriptionSvc.Remove(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
