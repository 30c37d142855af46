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

type TransactionService interface {
	List(ctx context.Context) []models.Transaction
	Add(ctx context.Context, req dto.CreateTransactionRequest) (models.Transaction, error)
	AddBatch(ctx context.Context, reqs []dto.CreateTransactionRequest) ([]models.Transaction, error)
	SmartIncome(ctx context.Context, req dto.SmartIncomeRequest) ([]models.Transaction, error)
	Remove(ctx context.Context, id string)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Post("/batch", h.AddBatch)
	r.Post("/smart-income", h.SmartIncome)
	r.Delete("/{id}", h.Remove)
	return r
}

func (h *transactionHandlers) List(w http.ResponseWriter, r *http.Request) {
	txs := h.TransactionSvc.List(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	t, err := h.TransactionSvc.Add(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, t)
}

func (h *transactionHandlers) AddBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	txs, err := h.TransactionSvc.AddBatch(r.Context(), req.Transactions)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, txs)
}

func (h *transactionHandlers) SmartIncome(w http.ResponseWriter, r *http.Request) {
	var req dto.SmartIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	txs, err := h.TransactionSvc.SmartIncome(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, txs)
}

func (h *transactionHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	h.TransactionSvc.Remove(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
