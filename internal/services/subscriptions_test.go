package services

import (
	"testing"
	"time"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
	"github.com/Leonardo777l/Finanzas-Leo/pkg/helpers"
)

func TestAddSubscriptionValidation(t *testing.T) {
	svc := NewSubscriptionService(newTestState())
	ctx := helpers.TestCtx()

	cases := []struct {
		name string
		req  dto.CreateSubscriptionRequest
	}{
		{"missing name", dto.CreateSubscriptionRequest{Amount: 10, BillingCycle: models.BillingMonthly}},
		{"zero amount", dto.CreateSubscriptionRequest{Name: "Netflix", BillingCycle: models.BillingMonthly}},
		{"bad cycle", dto.CreateSubscriptionRequest{Name: "Netflix", Amount: 10, BillingCycle: "weekly"}},
		{"bad date", dto.CreateSubscriptionRequest{Name: "Netflix", Amount: 10, BillingCycle: models.BillingMonthly, NextBillingDate: "01/02/2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tc.req); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestAddSubscriptionDefaultsBillingDate(t *testing.T) {
	svc := NewSubscriptionService(newTestState())

	sub, err := svc.Add(helpers.TestCtx(), dto.CreateSubscriptionRequest{
		Name: "Spotify", Amount: 129, BillingCycle: models.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if _, perr := time.Parse(billingDateLayout, sub.NextBillingDate); perr != nil {
		t.Fatalf("defaulted date %q not YYYY-MM-DD: %v", sub.NextBillingDate, perr)
	}
}

func TestOverviewMonthlyCost(t *testing.T) {
	svc := NewSubscriptionService(newTestState())
	ctx := helpers.TestCtx()

	mustAddSubscription(t, svc, dto.CreateSubscriptionRequest{Name: "Netflix", Amount: 219, BillingCycle: models.BillingMonthly})
	mustAddSubscription(t, svc, dto.CreateSubscriptionRequest{Name: "Prime", Amount: 1200, BillingCycle: models.BillingYearly})

	overview := svc.Overview(ctx)
	if len(overview.Subscriptions) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(overview.Subscriptions))
	}
	// 219 + 1200/12
	if overview.MonthlyCost != 319 {
		t.Fatalf("monthlyCost = %v, want 319", overview.MonthlyCost)
	}
}

func TestUpcomingRenewalsWindowAndOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	subs := []models.Subscription{
		{Name: "soon", NextBillingDate: "2025-06-17"},
		{Name: "today", NextBillingDate: "2025-06-15"},
		{Name: "late", NextBillingDate: "2025-08-01"},
		{Name: "past", NextBillingDate: "2025-06-01"},
		{Name: "unparseable", NextBillingDate: "soonish"},
	}

	renewals := upcomingAt(subs, 30, now)

	if len(renewals) != 2 {
		t.Fatalf("expected 2 renewals, got %+v", renewals)
	}
	if renewals[0].Subscription.Name != "today" || renewals[0].DaysUntil != 0 {
		t.Fatalf("first renewal wrong: %+v", renewals[0])
	}
	if renewals[1].Subscription.Name != "soon" || renewals[1].DaysUntil != 2 {
		t.Fatalf("second renewal wrong: %+v", renewals[1])
	}
}

func mustAddSubscription(t *testing.T, svc *subscriptionService, req dto.CreateSubscriptionRequest) models.Subscription {
	t.Helper()
	sub, err := svc.Add(helpers.TestCtx(), req)
	if err != nil {
		t.Fatalf("add subscription: %v", err)
	}
	return sub
}
