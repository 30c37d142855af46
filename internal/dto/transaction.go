package dto

import "github.com/Leonardo777l/Finanzas-Leo/internal/models"

type CreateTransactionRequest struct {
	Date        string                 `json:"date"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    models.ExpenseCategory `json:"category,omitempty"`
	Tag         string                 `json:"tag,omitempty"`
}

type CreateTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions"`
}

// SmartIncomeRequest registers an income and its automatic distribution in
// one batch.
type SmartIncomeRequest struct {
	Amount  float64 `json:"amount"`
	Concept string  `json:"concept"`
}
