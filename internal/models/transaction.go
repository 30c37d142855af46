package models

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

type ExpenseCategory string

const (
	CategoryFixed    ExpenseCategory = "fixed"
	CategoryVariable ExpenseCategory = "variable"
)

func (c ExpenseCategory) Valid() bool {
	return c == CategoryFixed || c == CategoryVariable
}

type Transaction struct {
	ID          string          `firestore:"id" json:"id"`
	Date        string          `firestore:"date" json:"date"` // ISO-8601 timestamp
	Description string          `firestore:"description" json:"description"`
	Amount      float64         `firestore:"amount" json:"amount"` // magnitude; sign implied by Type
	Type        TransactionType `firestore:"type" json:"type"`
	Category    ExpenseCategory `firestore:"category,omitempty" json:"category,omitempty"` // expenses only
	Tag         string          `firestore:"tag,omitempty" json:"tag,omitempty"`
}
