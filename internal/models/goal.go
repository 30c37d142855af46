package models

type Goal struct {
	ID            string  `firestore:"id" json:"id"`
	Name          string  `firestore:"name" json:"name"`
	TargetAmount  float64 `firestore:"targetAmount" json:"targetAmount"`
	CurrentAmount float64 `firestore:"currentAmount" json:"currentAmount"`
	Deadline      string  `firestore:"deadline,omitempty" json:"deadline,omitempty"`
	Color         string  `firestore:"color,omitempty" json:"color,omitempty"`
}
