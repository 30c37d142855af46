package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/response"
)

type AnalyticsService interface {
	Summary(ctx context.Context) dto.Summary
	CashFlow(ctx context.Context) []dto.CashFlowEntry
	NetWorthSeries(ctx context.Context) []dto.BalancePoint
	ExpenseBreakdown(ctx context.Context) []dto.ExpenseSlice
	Insights(ctx context.Context) []dto.Insight
}

type analyticsHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    AnalyticsService
}

func NewAnalyticsHandlers(deps *Deps) *analyticsHandlers {
	return &analyticsHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
	}
}

func (h *analyticsHandlers) AnalyticsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.Summary)
	r.Get("/cashflow", h.CashFlow)
	r.Get("/networth", h.NetWorth)
	r.Get("/expenses", h.Expenses)
	r.Get("/insights", h.Insights)
	return r
}

func (h *analyticsHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.Summary(r.Context()))
}

func (h *analyticsHandlers) CashFlow(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.CashFlow(r.Context()))
}

func (h *analyticsHandlers) NetWorth(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.NetWorthSeries(r.Context()))
}

func (h *analyticsHandlers) Expenses(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.ExpenseBreakdown(r.Context()))
}

func (h *analyticsHandlers) Insights(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.Insights(r.Context()))
}
