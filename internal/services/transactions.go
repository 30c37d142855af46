package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
	"github.com/Leonardo777l/Finanzas-Leo/pkg/logger"
)

type transactionStateStore interface {
	AddTransaction(t models.Transaction) models.Transaction
	AddTransactions(txs []models.Transaction) []models.Transaction
	RemoveTransaction(id string)
	Transactions() []models.Transaction
}

type transactionService struct {
	store transactionStateStore
}

func NewTransactionService(store transactionStateStore) *transactionService {
	return &transactionService{store: store}
}

// List returns transactions newest first.
func (s *transactionService) List(ctx context.Context) []models.Transaction {
	txs := s.store.Transactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date > txs[j].Date
	})
	return txs
}

func (s *transactionService) Add(ctx context.Context, req dto.CreateTransactionRequest) (models.Transaction, error) {
	t, err := buildTransaction(req)
	if err != nil {
		return models.Transaction{}, err
	}
	return s.store.AddTransaction(t), nil
}

// AddBatch validates every record before anything is appended, so a bad row
// never leaves a partial batch behind.
func (s *transactionService) AddBatch(ctx context.Context, reqs []dto.CreateTransactionRequest) ([]models.Transaction, error) {
	if len(reqs) == 0 {
		return nil, errs.NewValidationError("transactions are required")
	}
	txs := make([]models.Transaction, len(reqs))
	for i, req := range reqs {
		t, err := buildTransaction(req)
		if err != nil {
			return nil, err
		}
		txs[i] = t
	}
	return s.store.AddTransactions(txs), nil
}

func (s *transactionService) Remove(ctx context.Context, id string) {
	s.store.RemoveTransaction(id)
}

// incomeSplit is the automatic 50/15/15/10/10 distribution: the remaining
// 50% stays as disposable income, the rest is registered as expenses.
var incomeSplit = []struct {
	label    string
	percent  int64
	category models.ExpenseCategory
}{
	{label: "Ahorro", percent: 15, category: models.CategoryFixed},
	{label: "OCIO", percent: 15, category: models.CategoryVariable},
	{label: "Pago Leo", percent: 10, category: models.CategoryFixed},
	{label: "Pago Fer", percent: 10, category: models.CategoryFixed},
}

// SmartIncome registers an income and its four distribution expenses as one
// atomic batch, all sharing the same timestamp.
func (s *transactionService) SmartIncome(ctx context.Context, req dto.SmartIncomeRequest) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than zero")
	}
	if req.Concept == "" {
		return nil, errs.NewValidationError("concept is required")
	}

	date := time.Now().UTC().Format(time.RFC3339)
	amount := decimal.NewFromFloat(req.Amount)

	txs := make([]models.Transaction, 0, len(incomeSplit)+1)
	txs = append(txs, models.Transaction{
		Date:        date,
		Description: req.Concept,
		Amount:      req.Amount,
		Type:        models.TransactionIncome,
		Category:    models.CategoryVariable,
	})
	for _, part := range incomeSplit {
		share := amount.Mul(decimal.NewFromInt(part.percent)).Div(decimal.NewFromInt(100))
		txs = append(txs, models.Transaction{
			Date:        date,
			Description: fmt.Sprintf("%s (%d%%): %s", part.label, part.percent, req.Concept),
			Amount:      share.InexactFloat64(),
			Type:        models.TransactionExpense,
			Category:    part.category,
		})
	}

	added := s.store.AddTransactions(txs)
	log.Info("smart income registered", "concept", req.Concept, "transactions", len(added))
	return added, nil
}

func buildTransaction(req dto.CreateTransactionRequest) (models.Transaction, error) {
	if req.Description == "" {
		return models.Transaction{}, errs.NewValidationError("description is required")
	}
	if req.Amount <= 0 {
		return models.Transaction{}, errs.NewValidationError("amount must be greater than zero")
	}
	if !req.Type.Valid() {
		return models.Transaction{}, errs.NewValidationError(`type must be "income" or "expense"`)
	}
	if req.Type == models.TransactionExpense && !req.Category.Valid() {
		return models.Transaction{}, errs.NewValidationError(`expenses require category "fixed" or "variable"`)
	}
	if req.Type == models.TransactionIncome && req.Category != "" {
		return models.Transaction{}, errs.NewValidationError("income takes no category")
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	return models.Transaction{
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Tag:         req.Tag,
	}, nil
}
