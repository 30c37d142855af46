package services

import (
	"testing"
	"time"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
	"github.com/Leonardo777l/Finanzas-Leo/internal/state"
	"github.com/Leonardo777l/Finanzas-Leo/pkg/helpers"
)

func seedAnalyticsState(t *testing.T) *state.Store {
	t.Helper()
	st := newTestState()
	st.AddTransactions([]models.Transaction{
		{Date: "2025-05-01T00:00:00Z", Description: "Nómina", Amount: 1000, Type: models.TransactionIncome},
		{Date: "2025-05-10T00:00:00Z", Description: "Renta", Amount: 300, Type: models.TransactionExpense, Category: models.CategoryFixed, Tag: "Casa"},
		{Date: "2025-06-02T00:00:00Z", Description: "Nómina", Amount: 1000, Type: models.TransactionIncome},
		{Date: "2025-06-05T00:00:00Z", Description: "Cena", Amount: 150, Type: models.TransactionExpense, Category: models.CategoryVariable, Tag: "Comida"},
		{Date: "2025-06-20", Description: "Súper", Amount: 250, Type: models.TransactionExpense, Category: models.CategoryVariable},
	})
	st.AddAsset(models.Asset{Symbol: "BTC", Name: "Bitcoin", Type: models.AssetCrypto, Quantity: 2, CurrentPrice: 100})
	return st
}

func TestSummaryFigures(t *testing.T) {
	svc := NewAnalyticsService(seedAnalyticsState(t))

	sum := svc.Summary(helpers.TestCtx())
	if sum.TotalIncome != 2000 || sum.TotalExpenses != 700 {
		t.Fatalf("totals wrong: %+v", sum)
	}
	if sum.Balance != 1300 || sum.TotalInvestments != 200 || sum.NetWorth != 1500 {
		t.Fatalf("balance/net worth wrong: %+v", sum)
	}
}

func TestCashFlowGroupsByMonth(t *testing.T) {
	svc := NewAnalyticsService(seedAnalyticsState(t))

	entries := svc.CashFlow(helpers.TestCtx())
	want := []dto.CashFlowEntry{
		{Month: "2025-05", Income: 1000, Expenses: 300, Savings: 700},
		{Month: "2025-06", Income: 1000, Expenses: 400, Savings: 600},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries: %+v", len(entries), entries)
	}
	for i, w := range want {
		if entries[i] != w {
			t.Fatalf("entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestNetWorthSeriesRunningBalance(t *testing.T) {
	svc := NewAnalyticsService(seedAnalyticsState(t))

	points := svc.NetWorthSeries(helpers.TestCtx())
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	balances := []float64{1000, 700, 1700, 1550, 1300}
	for i, b := range balances {
		if points[i].Balance != b {
			t.Fatalf("point %d balance = %v, want %v", i, points[i].Balance, b)
		}
	}
}

func TestExpenseBreakdownByTag(t *testing.T) {
	svc := NewAnalyticsService(seedAnalyticsState(t))

	slices := svc.ExpenseBreakdown(helpers.TestCtx())
	want := []dto.ExpenseSlice{
		{Tag: "Casa", Value: 300},
		{Tag: "General", Value: 250},
		{Tag: "Comida", Value: 150},
	}
	if len(slices) != len(want) {
		t.Fatalf("got %d slices: %+v", len(slices), slices)
	}
	for i, w := range want {
		if slices[i] != w {
			t.Fatalf("slice %d = %+v, want %+v", i, slices[i], w)
		}
	}
}

func TestInsightsSpendingUp(t *testing.T) {
	svc := NewAnalyticsService(seedAnalyticsState(t))
	now := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)

	insights := svc.insightsAt(now)
	if len(insights) == 0 {
		t.Fatalf("expected insights")
	}
	first := insights[0]
	if first.Type != dto.InsightWarning || first.Title != "Alerta de Gasto" {
		t.Fatalf("expected spending warning first, got %+v", first)
	}
}

func TestInsightsSpendingDown(t *testing.T) {
	st := newTestState()
	st.AddTransactions([]models.Transaction{
		{Date: "2025-05-10T00:00:00Z", Description: "a", Amount: 400, Type: models.TransactionExpense, Category: models.CategoryVariable},
		{Date: "2025-06-10T00:00:00Z", Description: "b", Amount: 100, Type: models.TransactionExpense, Category: models.CategoryVariable},
	})
	svc := NewAnalyticsService(st)

	insights := svc.insightsAt(time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC))
	if len(insights) != 1 || insights[0].Type != dto.InsightSuccess || insights[0].Title != "¡Buen Trabajo!" {
		t.Fatalf("expected success insight, got %+v", insights)
	}
}

func TestInsightsSubscriptionReview(t *testing.T) {
	st := newTestState()
	st.AddSubscription(models.Subscription{Name: "Netflix", Amount: 219, BillingCycle: models.BillingMonthly, NextBillingDate: "2025-07-01"})
	svc := NewAnalyticsService(st)

	insights := svc.insightsAt(time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC))
	if len(insights) != 1 || insights[0].Title != "Revisión de Suscripciones" {
		t.Fatalf("expected subscription review insight, got %+v", insights)
	}
}

func TestInsightsGoalFocusOnlyFirstActive(t *testing.T) {
	st := newTestState()
	st.AddGoal(models.Goal{Name: "done", TargetAmount: 100, CurrentAmount: 100})
	st.AddGoal(models.Goal{Name: "Viaje", TargetAmount: 5000, CurrentAmount: 100})
	st.AddGoal(models.Goal{Name: "Auto", TargetAmount: 9000})
	svc := NewAnalyticsService(st)

	insights := svc.insightsAt(time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC))
	if len(insights) != 1 || insights[0].Title != "Enfoque en Meta" {
		t.Fatalf("expected one goal insight, got %+v", insights)
	}
}

func TestInsightsQuietWhenNothingNotable(t *testing.T) {
	svc := NewAnalyticsService(newTestState())

	if insights := svc.insightsAt(time.Now()); len(insights) != 0 {
		t.Fatalf("expected no insights, got %+v", insights)
	}
}

func TestParseTransactionDate(t *testing.T) {
	if _, ok := parseTransactionDate("2025-06-20T10:00:00Z"); !ok {
		t.Fatalf("RFC3339 rejected")
	}
	if _, ok := parseTransactionDate("2025-06-20"); !ok {
		t.Fatalf("bare date rejected")
	}
	if _, ok := parseTransactionDate("el martes"); ok {
		t.Fatalf("garbage accepted")
	}
}
