package dto

import "github.com/Leonardo777l/Finanzas-Leo/internal/models"

type CreateSubscriptionRequest struct {
	Name            string              `json:"name"`
	Amount          float64             `json:"amount"`
	BillingCycle    models.BillingCycle `json:"billingCycle"`
	NextBillingDate string              `json:"nextBillingDate,omitempty"`
}

type SubscriptionsOverview struct {
	Subscriptions []models.Subscription `json:"subscriptions"`
	MonthlyCost   float64               `json:"monthlyCost"`
}

type UpcomingRenewal struct {
	models.Subscription
	DaysUntil int `json:"daysUntil"`
}
