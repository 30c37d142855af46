package dto

import "github.com/Leonardo777l/Finanzas-Leo/internal/models"

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	Deadline     string  `json:"deadline,omitempty"`
	Color        string  `json:"color,omitempty"`
}

// GoalUpdates carries a partial update; nil fields are left untouched.
type GoalUpdates struct {
	Name          *string  `json:"name,omitempty"`
	TargetAmount  *float64 `json:"targetAmount,omitempty"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	Color         *string  `json:"color,omitempty"`
}

type AddGoalFundsRequest struct {
	Amount float64 `json:"amount"`
}

type GoalProgress struct {
	models.Goal
	Progress  float64 `json:"progress"` // 0-100
	Remaining float64 `json:"remaining"`
	Completed bool    `json:"completed"`
}
