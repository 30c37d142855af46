package models

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

func (c BillingCycle) Valid() bool {
	return c == BillingMonthly || c == BillingYearly
}

type Subscription struct {
	ID              string       `firestore:"id" json:"id"`
	Name            string       `firestore:"name" json:"name"`
	Amount          float64      `firestore:"amount" json:"amount"`
	BillingCycle    BillingCycle `firestore:"billingCycle" json:"billingCycle"`
	NextBillingDate string       `firestore:"nextBillingDate" json:"nextBillingDate"` // YYYY-MM-DD
}
