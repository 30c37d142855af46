package dto

// Summary is the dashboard headline: lifetime totals plus net worth
// (balance + investments at current prices).
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Balance          float64 `json:"balance"`
	TotalInvestments float64 `json:"totalInvestments"`
	NetWorth         float64 `json:"netWorth"`
}

type CashFlowEntry struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

type BalancePoint struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

type ExpenseSlice struct {
	Tag   string  `json:"tag"`
	Value float64 `json:"value"`
}

type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightSuccess InsightType = "success"
	InsightInfo    InsightType = "info"
)

type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}
