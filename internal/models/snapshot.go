package models

import "time"

// Snapshot is the syncable subset of application state: the four entity
// collections plus the display currency. The current user id and any
// transient sync-status fields are deliberately not part of it.
type Snapshot struct {
	Transactions  []Transaction  `firestore:"transactions" json:"transactions"`
	Assets        []Asset        `firestore:"assets" json:"assets"`
	Goals         []Goal         `firestore:"goals" json:"goals"`
	Subscriptions []Subscription `firestore:"subscriptions" json:"subscriptions"`
	Currency      string         `firestore:"currency" json:"currency"`
}

// Clone returns a deep copy so that callers can never alias the store's
// internal slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Currency: s.Currency}
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.Assets = append([]Asset(nil), s.Assets...)
	out.Goals = append([]Goal(nil), s.Goals...)
	out.Subscriptions = append([]Subscription(nil), s.Subscriptions...)
	return out
}

// UserDocument is the shape of the per-user remote document.
type UserDocument struct {
	Transactions  []Transaction  `firestore:"transactions" json:"transactions"`
	Assets        []Asset        `firestore:"assets" json:"assets"`
	Goals         []Goal         `firestore:"goals" json:"goals"`
	Subscriptions []Subscription `firestore:"subscriptions" json:"subscriptions"`
	Currency      string         `firestore:"currency" json:"currency"`
	LastUpdated   time.Time      `firestore:"lastUpdated" json:"lastUpdated"`
}

// Snapshot strips the server timestamp from a remote document.
func (d UserDocument) Snapshot() Snapshot {
	return Snapshot{
		Transactions:  d.Transactions,
		Assets:        d.Assets,
		Goals:         d.Goals,
		Subscriptions: d.Subscriptions,
		Currency:      d.Currency,
	}
}

// NewUserDocument stamps a snapshot for a remote write.
func NewUserDocument(s Snapshot, now time.Time) UserDocument {
	return UserDocument{
		Transactions:  s.Transactions,
		Assets:        s.Assets,
		Goals:         s.Goals,
		Subscriptions: s.Subscriptions,
		Currency:      s.Currency,
		LastUpdated:   now,
	}
}
