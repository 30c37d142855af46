package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

const billingDateLayout = "2006-01-02"

type subscriptionStateStore interface {
	AddSubscription(sub models.Subscription) models.Subscription
	RemoveSubscription(id string)
	Subscriptions() []models.Subscription
}

type subscriptionService struct {
	store subscriptionStateStore
}

func NewSubscriptionService(store subscriptionStateStore) *subscriptionService {
	return &subscriptionService{store: store}
}

func (s *subscriptionService) Add(ctx context.Context, req dto.CreateSubscriptionRequest) (models.Subscription, error) {
	if req.Name == "" {
		return models.Subscription{}, errs.NewValidationError("name is required")
	}
	if req.Amount <= 0 {
		return models.Subscription{}, errs.NewValidationError("amount must be greater than zero")
	}
	if !req.BillingCycle.Valid() {
		return models.Subscription{}, errs.NewValidationError(`billing cycle must be "monthly" or "yearly"`)
	}
	next := req.NextBillingDate
	if next == "" {
		next = time.Now().Format(billingDateLayout)
	} else if _, err := time.Parse(billingDateLayout, next); err != nil {
		return models.Subscription{}, errs.NewValidationError("next billing date must be YYYY-MM-DD")
	}
	return s.store.AddSubscription(models.Subscription{
		Name:            req.Name,
		Amount:          req.Amount,
		BillingCycle:    req.BillingCycle,
		NextBillingDate: next,
	}), nil
}

func (s *subscriptionService) Remove(ctx context.Context, id string) {
	s.store.RemoveSubscription(id)
}

// Overview lists subscriptions with the combined monthly cost, yearly plans
// counted at a twelfth.
func (s *subscriptionService) Overview(ctx context.Context) dto.SubscriptionsOverview {
	subs := s.store.Subscriptions()
	return dto.SubscriptionsOverview{
		Subscriptions: subs,
		MonthlyCost:   monthlyCost(subs).InexactFloat64(),
	}
}

// Upcoming returns subscriptions billing within the next `days` days,
// soonest first.
func (s *subscriptionService) Upcoming(ctx context.Context, days int) []dto.UpcomingRenewal {
	return upcomingAt(s.store.Subscriptions(), days, time.Now())
}

func upcomingAt(subs []models.Subscription, days int, now time.Time) []dto.UpcomingRenewal {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	renewals := make([]dto.UpcomingRenewal, 0, len(subs))
	for _, sub := range subs {
		next, err := time.ParseInLocation(billingDateLayout, sub.NextBillingDate, now.Location())
		if err != nil {
			continue
		}
		until := int(next.Sub(today).Hours() / 24)
		if until < 0 || until > days {
			continue
		}
		renewals = append(renewals, dto.UpcomingRenewal{
			Subscription: sub,
			DaysUntil:    until,
		})
	}
	sort.Slice(renewals, func(i, j int) bool {
		return renewals[i].DaysUntil < renewals[j].DaysUntil
	})
	return renewals
}

func monthlyCost(subs []models.Subscription) decimal.Decimal {
	total := decimal.Zero
	twelve := decimal.NewFromInt(12)
	for _, sub := range subs {
		amount := decimal.NewFromFloat(sub.Amount)
		if sub.BillingCycle == models.BillingYearly {
			amount = amount.Div(twelve)
		}
		total = total.Add(amount)
	}
	return total
}
