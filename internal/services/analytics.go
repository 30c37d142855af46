package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

const monthLayout = "2006-01"

type analyticsStateStore interface {
	Transactions() []models.Transaction
	Assets() []models.Asset
	Goals() []models.Goal
	Subscriptions() []models.Subscription
	Currency() string
}

type analyticsService struct {
	store analyticsStateStore
}

func NewAnalyticsService(store analyticsStateStore) *analyticsService {
	return &analyticsService{store: store}
}

// Summary computes the dashboard headline figures from the full history.
func (s *analyticsService) Summary(ctx context.Context) dto.Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range s.store.Transactions() {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == models.TransactionIncome {
			income = income.Add(amount)
		} else {
			expenses = expenses.Add(amount)
		}
	}

	investments := decimal.Zero
	for _, a := range s.store.Assets() {
		investments = investments.Add(marketValue(a))
	}

	balance := income.Sub(expenses)
	return dto.Summary{
		TotalIncome:      income.InexactFloat64(),
		TotalExpenses:    expenses.InexactFloat64(),
		Balance:          balance.InexactFloat64(),
		TotalInvestments: investments.InexactFloat64(),
		NetWorth:         balance.Add(investments).InexactFloat64(),
	}
}

// CashFlow groups transactions into per-month income/expense/savings
// buckets, oldest month first.
func (s *analyticsService) CashFlow(ctx context.Context) []dto.CashFlowEntry {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, t := range s.store.Transactions() {
		date, ok := parseTransactionDate(t.Date)
		if !ok {
			continue
		}
		key := date.Format(monthLayout)
		b := buckets[key]
		if b == nil {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[key] = b
		}
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == models.TransactionIncome {
			b.income = b.income.Add(amount)
		} else {
			b.expenses = b.expenses.Add(amount)
		}
	}

	entries := make([]dto.CashFlowEntry, 0, len(buckets))
	for month, b := range buckets {
		entries = append(entries, dto.CashFlowEntry{
			Month:    month,
			Income:   b.income.InexactFloat64(),
			Expenses: b.expenses.InexactFloat64(),
			Savings:  b.income.Sub(b.expenses).InexactFloat64(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Month < entries[j].Month
	})
	return entries
}

// NetWorthSeries is the running balance after each transaction in date
// order.
func (s *analyticsService) NetWorthSeries(ctx context.Context) []dto.BalancePoint {
	txs := s.store.Transactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date < txs[j].Date
	})

	balance := decimal.Zero
	points := make([]dto.BalancePoint, 0, len(txs))
	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == models.TransactionIncome {
			balance = balance.Add(amount)
		} else {
			balance = balance.Sub(amount)
		}
		points = append(points, dto.BalancePoint{
			Date:    t.Date,
			Balance: balance.InexactFloat64(),
		})
	}
	return points
}

// ExpenseBreakdown totals expenses by tag; untagged spending lands in
// "General".
func (s *analyticsService) ExpenseBreakdown(ctx context.Context) []dto.ExpenseSlice {
	totals := make(map[string]decimal.Decimal)
	for _, t := range s.store.Transactions() {
		if t.Type != models.TransactionExpense {
			continue
		}
		tag := t.Tag
		if tag == "" {
			tag = "General"
		}
		totals[tag] = totals[tag].Add(decimal.NewFromFloat(t.Amount))
	}

	slices := make([]dto.ExpenseSlice, 0, len(totals))
	for tag, value := range totals {
		slices = append(slices, dto.ExpenseSlice{Tag: tag, Value: value.InexactFloat64()})
	}
	sort.Slice(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
	return slices
}

func (s *analyticsService) Insights(ctx context.Context) []dto.Insight {
	return s.insightsAt(time.Now())
}

// subscription spend above this monthly figure prompts a review nudge
const subscriptionReviewThreshold = 100.0

func (s *analyticsService) insightsAt(now time.Time) []dto.Insight {
	currency := s.store.Currency()
	insights := []dto.Insight{}

	thisMonth := now.Format(monthLayout)
	lastMonth := now.AddDate(0, -1, 0).Format(monthLayout)

	thisExpenses := decimal.Zero
	lastExpenses := decimal.Zero
	for _, t := range s.store.Transactions() {
		if t.Type != models.TransactionExpense {
			continue
		}
		date, ok := parseTransactionDate(t.Date)
		if !ok {
			continue
		}
		switch date.Format(monthLayout) {
		case thisMonth:
			thisExpenses = thisExpenses.Add(decimal.NewFromFloat(t.Amount))
		case lastMonth:
			lastExpenses = lastExpenses.Add(decimal.NewFromFloat(t.Amount))
		}
	}

	diff := thisExpenses.Sub(lastExpenses)
	percent := decimal.Zero
	if lastExpenses.GreaterThan(decimal.Zero) {
		percent = diff.Div(lastExpenses).Mul(decimal.NewFromInt(100))
	}
	if diff.GreaterThan(decimal.Zero) {
		insights = append(insights, dto.Insight{
			Type:    dto.InsightWarning,
			Title:   "Alerta de Gasto",
			Message: fmt.Sprintf("Has gastado %.1f%% más que el mes pasado. Revisa tus gastos variables.", percent.Abs().InexactFloat64()),
		})
	} else if diff.LessThan(decimal.Zero) {
		insights = append(insights, dto.Insight{
			Type:    dto.InsightSuccess,
			Title:   "¡Buen Trabajo!",
			Message: fmt.Sprintf("Has reducido tus gastos en un %.1f%% comparado con el mes pasado.", percent.Abs().InexactFloat64()),
		})
	}

	subs := monthlyCost(s.store.Subscriptions())
	if subs.GreaterThan(decimal.NewFromFloat(subscriptionReviewThreshold)) {
		insights = append(insights, dto.Insight{
			Type:    dto.InsightInfo,
			Title:   "Revisión de Suscripciones",
			Message: fmt.Sprintf("Gastas %.2f %s/mes en suscripciones. Revisa si las usas todas.", subs.InexactFloat64(), currency),
		})
	}

	for _, g := range s.store.Goals() {
		if g.CurrentAmount >= g.TargetAmount {
			continue
		}
		insights = append(insights, dto.Insight{
			Type:    dto.InsightInfo,
			Title:   "Enfoque en Meta",
			Message: fmt.Sprintf("Estás a %.2f %s de alcanzar tu meta %q. ¡Sigue así!", g.TargetAmount-g.CurrentAmount, currency, g.Name),
		})
		break
	}

	return insights
}

// parseTransactionDate accepts the full ISO-8601 timestamps the forms
// produce as well as bare YYYY-MM-DD dates from CSV imports.
func parseTransactionDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(billingDateLayout, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
